package patch_validator

import (
	"bytes"

	"mfspatch/internal/core/unified"
	"mfspatch/internal/ports"
)

var _ ports.PatchValidator = (*NativeValidator)(nil)

// NativeValidator applies the patch in memory with exact context matching.
type NativeValidator struct{}

func ProvideNativeValidator() *NativeValidator {
	return &NativeValidator{}
}

func (v *NativeValidator) Validate(request ports.ValidationRequest) (ports.ValidationResult, error) {
	diff, err := unified.Parse(request.Patch)
	if err != nil {
		return ports.ValidationResult{Diagnostics: "malformed patch: " + err.Error()}, nil
	}

	applied, err := unified.Apply(string(request.Original), diff)
	if err != nil {
		return ports.ValidationResult{Diagnostics: err.Error()}, nil
	}
	if request.Expected != nil && !bytes.Equal([]byte(applied), request.Expected) {
		return ports.ValidationResult{Diagnostics: "patch applies but does not reproduce the patched file"}, nil
	}

	return ports.ValidationResult{Applies: true}, nil
}
