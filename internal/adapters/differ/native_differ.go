package differ

import (
	"mfspatch/internal/core/unified"
	"mfspatch/internal/ports"
)

var _ ports.Differ = (*NativeDiffer)(nil)

// NativeDiffer computes the diff in process from the contents of both inputs.
type NativeDiffer struct{}

func ProvideNativeDiffer() *NativeDiffer {
	return &NativeDiffer{}
}

func (d *NativeDiffer) Diff(original ports.DiffInput, modified ports.DiffInput) ([]byte, error) {
	return unified.Diff(
		string(original.Content),
		string(modified.Content),
		original.Label,
		modified.Label,
		unified.DefaultContext,
	), nil
}
