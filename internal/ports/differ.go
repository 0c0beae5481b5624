package ports

// DiffInput is one side of a diff. Path is used by differs that work on files,
// Content by differs that work in memory; callers fill in both.
type DiffInput struct {
	Label   string
	Path    string
	Content []byte
}

// Differ produces a unified diff between two versions of a document.
// An empty result means the inputs are identical.
type Differ interface {
	Diff(original DiffInput, modified DiffInput) ([]byte, error)
}
