package patch_validator

import (
	"strings"

	"mfspatch/internal/ports"
)

var _ ports.PatchValidator = (*SystemValidator)(nil)

// SystemValidator asks GNU patch for a dry run against the pristine file.
type SystemValidator struct {
	commandRunner ports.CommandRunner
}

func ProvideSystemValidator(commandRunner ports.CommandRunner) *SystemValidator {
	return &SystemValidator{commandRunner: commandRunner}
}

func (v *SystemValidator) Validate(request ports.ValidationRequest) (ports.ValidationResult, error) {
	result, err := v.commandRunner.Capture("", "patch", "-p0", "--dry-run", "-i", request.PatchPath, request.TargetPath)
	if err != nil {
		return ports.ValidationResult{}, err
	}

	diagnostics := strings.TrimSpace(string(result.Stderr))
	if !result.Succeeded() {
		if stdout := strings.TrimSpace(string(result.Stdout)); stdout != "" {
			diagnostics = strings.TrimSpace(diagnostics + "\n" + stdout)
		}
	}
	return ports.ValidationResult{
		Applies:     result.Succeeded(),
		Diagnostics: diagnostics,
	}, nil
}
