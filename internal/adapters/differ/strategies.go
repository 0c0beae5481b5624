package differ

import "mfspatch/internal/core"

func ProvideDifferStrategies(system *SystemDiffer, native *NativeDiffer) core.DifferStrategies {
	return core.DifferStrategies{
		System: system,
		Native: native,
	}
}
