package ports

// CommandResult holds the outcome of a command that was started successfully.
type CommandResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

func (r CommandResult) Succeeded() bool {
	return r.ExitCode == 0
}

// CommandRunner executes shell commands and returns their output.
type CommandRunner interface {
	Run(name string, args ...string) ([]byte, error)
	RunInDir(dir, name string, args ...string) ([]byte, error)
	// Capture runs a command in dir (empty for the current directory) and keeps stdout and
	// stderr apart. A non-zero exit is reported through CommandResult.ExitCode; the error is
	// only set when the command could not be run at all.
	Capture(dir string, name string, args ...string) (CommandResult, error)
	// LookPath resolves an executable name against PATH.
	LookPath(name string) (string, error)
}
