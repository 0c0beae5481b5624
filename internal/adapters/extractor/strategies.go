package extractor

import "mfspatch/internal/core"

func ProvideExtractorStrategies(system *SystemExtractor, native *NativeExtractor) core.ExtractorStrategies {
	return core.ExtractorStrategies{
		System: system,
		Native: native,
	}
}
