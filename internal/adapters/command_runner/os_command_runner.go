package command_runner

import (
	"bytes"
	"errors"
	"os/exec"
	"time"

	"mfspatch/internal/ports"

	"go.uber.org/zap"
)

// OsCommandRunner executes shell commands using os/exec.
type OsCommandRunner struct {
	logger *zap.Logger
}

func ProvideOsCommandRunner(logger *zap.Logger) *OsCommandRunner {
	return &OsCommandRunner{logger: logger}
}

func (r *OsCommandRunner) Run(name string, args ...string) ([]byte, error) {
	return r.RunInDir("", name, args...)
}

func (r *OsCommandRunner) RunInDir(dir, name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	start := time.Now()
	output, err := cmd.CombinedOutput()
	r.logCompleted(dir, name, args, exitCodeOf(cmd, err), start)
	return output, err
}

func (r *OsCommandRunner) Capture(dir string, name string, args ...string) (ports.CommandResult, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		r.logger.Debug("command could not be started", zap.String("command", name), zap.Error(err))
		return ports.CommandResult{}, err
	}

	result := ports.CommandResult{
		ExitCode: exitCodeOf(cmd, err),
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
	}
	r.logCompleted(dir, name, args, result.ExitCode, start)
	return result, nil
}

func (r *OsCommandRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *OsCommandRunner) logCompleted(dir, name string, args []string, exitCode int, start time.Time) {
	r.logger.Debug("command finished",
		zap.String("command", name),
		zap.Strings("args", args),
		zap.String("dir", dir),
		zap.Int("exitCode", exitCode),
		zap.Duration("duration", time.Since(start)),
	)
}

func exitCodeOf(cmd *exec.Cmd, err error) int {
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	if err != nil {
		return -1
	}
	return 0
}

var _ ports.CommandRunner = (*OsCommandRunner)(nil)
