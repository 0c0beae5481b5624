package ports

type ValidationRequest struct {
	PatchPath  string
	Patch      []byte
	TargetPath string
	Original   []byte
	// Expected is the content the patch should produce. Validators that can compute the
	// result compare against it when it is set.
	Expected []byte
}

type ValidationResult struct {
	Applies     bool
	Diagnostics string
}

// PatchValidator checks whether a patch applies to its target without modifying anything.
type PatchValidator interface {
	Validate(request ValidationRequest) (ValidationResult, error)
}
