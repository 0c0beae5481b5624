package ports

type AccessMode int

const (
	ReadWrite = iota
	ReadWriteExecute
	ReadAllWriteOwner
)

type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte, accessMode AccessMode) error
	EnsureDirExists(path string) error
	FileExists(path string) (bool, error)
	MkdirAll(path string, accessMode AccessMode) error
	// MkdirTemp creates a fresh directory under the system temp dir and returns its path.
	MkdirTemp(pattern string) (string, error)
	RemoveAll(path string) error
	Glob(pattern string) ([]string, error)
	// ExpandPath returns path as external processes must see it, with a leading "~"
	// replaced by the home directory.
	ExpandPath(path string) (string, error)
}
