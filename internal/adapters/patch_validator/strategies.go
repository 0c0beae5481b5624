package patch_validator

import "mfspatch/internal/core"

func ProvideValidatorStrategies(system *SystemValidator, native *NativeValidator) core.ValidatorStrategies {
	return core.ValidatorStrategies{
		System: system,
		Native: native,
	}
}
