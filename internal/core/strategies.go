package core

import (
	"fmt"

	"mfspatch/internal/core/domain"
	"mfspatch/internal/ports"
)

// DifferStrategies holds one Differ per tool strategy.
type DifferStrategies struct {
	System ports.Differ
	Native ports.Differ
}

func (s DifferStrategies) Select(strategy domain.ToolStrategy) (ports.Differ, error) {
	return selectStrategy(strategy, s.System, s.Native, "differ")
}

type ExtractorStrategies struct {
	System ports.PackageExtractor
	Native ports.PackageExtractor
}

func (s ExtractorStrategies) Select(strategy domain.ToolStrategy) (ports.PackageExtractor, error) {
	return selectStrategy(strategy, s.System, s.Native, "extractor")
}

type ValidatorStrategies struct {
	System ports.PatchValidator
	Native ports.PatchValidator
}

func (s ValidatorStrategies) Select(strategy domain.ToolStrategy) (ports.PatchValidator, error) {
	return selectStrategy(strategy, s.System, s.Native, "validator")
}

func selectStrategy[T any](strategy domain.ToolStrategy, system T, native T, kind string) (T, error) {
	var zero T
	if err := domain.ValidateStrategy(strategy); err != nil {
		return zero, fmt.Errorf("%s: %w", kind, err)
	}
	if strategy == domain.StrategyNative {
		return native, nil
	}
	return system, nil
}
