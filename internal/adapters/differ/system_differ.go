package differ

import (
	"mfspatch/internal/core/domain"
	"mfspatch/internal/ports"
)

var _ ports.Differ = (*SystemDiffer)(nil)

// SystemDiffer shells out to GNU diff.
type SystemDiffer struct {
	commandRunner ports.CommandRunner
}

func ProvideSystemDiffer(commandRunner ports.CommandRunner) *SystemDiffer {
	return &SystemDiffer{commandRunner: commandRunner}
}

// Diff runs `diff -u`. Exit status 1 only means the files differ.
func (d *SystemDiffer) Diff(original ports.DiffInput, modified ports.DiffInput) ([]byte, error) {
	args := []string{
		"-u",
		"--label", original.Label,
		"--label", modified.Label,
		original.Path,
		modified.Path,
	}
	result, err := d.commandRunner.Capture("", "diff", args...)
	if err != nil {
		return nil, err
	}
	if result.ExitCode != 0 && result.ExitCode != 1 {
		return nil, &domain.ProcessError{
			Command:  "diff",
			Args:     args,
			ExitCode: result.ExitCode,
			Stderr:   string(result.Stderr),
		}
	}

	return result.Stdout, nil
}
