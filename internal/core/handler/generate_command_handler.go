package handler

import (
	"fmt"
	"path/filepath"

	"mfspatch/internal/cli/output"
	"mfspatch/internal/cli/progress"
	"mfspatch/internal/core"
	"mfspatch/internal/core/domain"
	"mfspatch/internal/core/unified"
	"mfspatch/internal/ports"

	"go.uber.org/zap"
)

// GenerateOptions overrides configuration values for a single run. Empty values keep the
// configured ones.
type GenerateOptions struct {
	Output      string
	Differ      domain.ToolStrategy
	Extractor   domain.ToolStrategy
	Validator   domain.ToolStrategy
	KeepWorkDir bool
}

type GenerateResult struct {
	Version             string
	PackagePath         string
	PatchPath           string
	WorkDir             string
	Report              core.PatchReport
	PristineFingerprint string
	PatchedFingerprint  string
	Hunks               int
	AddedLines          int
	RemovedLines        int
	EmptyPatch          bool
	Validation          ports.ValidationResult
	Stages              []progress.Stage
	StageSummary        string
}

type GenerateCommandHandler struct {
	configRepository   core.ConfigRepository
	environmentEnsurer core.EnvironmentEnsurer
	sourceProvider     core.SourceProvider
	ruleCompiler       *core.RuleCompiler
	differs            core.DifferStrategies
	validators         core.ValidatorStrategies
	fileSystem         ports.FileSystem
	logger             *zap.Logger
}

func ProvideGenerateCommandHandler(
	configRepository core.ConfigRepository,
	environmentEnsurer core.EnvironmentEnsurer,
	sourceProvider core.SourceProvider,
	ruleCompiler *core.RuleCompiler,
	differs core.DifferStrategies,
	validators core.ValidatorStrategies,
	fileSystem ports.FileSystem,
	logger *zap.Logger,
) GenerateCommandHandler {
	return GenerateCommandHandler{
		configRepository:   configRepository,
		environmentEnsurer: environmentEnsurer,
		sourceProvider:     sourceProvider,
		ruleCompiler:       ruleCompiler,
		differs:            differs,
		validators:         validators,
		fileSystem:         fileSystem,
		logger:             logger,
	}
}

const (
	stageFetch = iota
	stagePatch
	stageDiff
	stageValidate
)

// Handle fetches the pristine bundle, applies the insertion rules and writes the unified
// diff. A patch that fails validation is reported as a warning; the patch file is kept.
func (h *GenerateCommandHandler) Handle(printer *output.Printer, options GenerateOptions) (*GenerateResult, error) {
	loaded, err := h.configRepository.LoadConfig()
	if err != nil {
		return nil, err
	}
	config, err := withOverrides(*loaded, options)
	if err != nil {
		return nil, err
	}

	warnings, err := h.environmentEnsurer.EnsureToolsAvailable(&config)
	for _, warning := range warnings {
		printer.Warning(warning)
	}
	if err != nil {
		return nil, err
	}

	rules, err := h.ruleCompiler.Compile(&config)
	if err != nil {
		return nil, err
	}
	differ, err := h.differs.Select(config.Tools.Differ)
	if err != nil {
		return nil, err
	}
	validator, err := h.validators.Select(config.Tools.Validator)
	if err != nil {
		return nil, err
	}

	// patch(1) receives the path verbatim, so "~" is resolved once for the write and the dry run.
	patchPath, err := h.fileSystem.ExpandPath(config.PatchFile)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve patch path %s: %w", config.PatchFile, err)
	}

	workDir, err := h.fileSystem.MkdirTemp("mfspatch-")
	if err != nil {
		return nil, fmt.Errorf("failed to create work directory: %w", err)
	}
	defer h.cleanup(printer, workDir, options.KeepWorkDir)

	result := &GenerateResult{PatchPath: patchPath, WorkDir: workDir}

	printer.Header(fmt.Sprintf("Generating %s", result.PatchPath))
	printer.Step(fmt.Sprintf("extractor %s, differ %s, validator %s",
		config.Tools.Extractor, config.Tools.Differ, config.Tools.Validator))
	tracker := progress.NewTracker([]string{
		fmt.Sprintf("Fetch pristine %s", config.Package),
		"Apply insertion rules",
		"Create patch",
		"Validate patch",
	}, printer.Out())
	tracker.Start()
	defer tracker.Stop()

	var source *domain.PristineSource
	err = tracker.Run(stageFetch, func() error {
		source, err = h.sourceProvider.Fetch(&config, workDir)
		return err
	})
	if err != nil {
		return nil, err
	}
	result.Version = source.Version
	result.PackagePath = source.PackagePath
	result.PristineFingerprint = core.Fingerprint(source.Content)

	var patched []byte
	modifiedPath := filepath.Join(workDir, config.Labels.Modified)
	err = tracker.Run(stagePatch, func() error {
		document := core.ParseDocument(string(source.Content))
		lines, report := core.ApplyRules(document.Lines, rules)
		result.Report = report
		patched = []byte(document.WithLines(lines).String())
		return h.fileSystem.WriteFile(modifiedPath, patched, ports.ReadAllWriteOwner)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to write patched file: %w", err)
	}
	result.PatchedFingerprint = core.Fingerprint(patched)

	var patch []byte
	err = tracker.Run(stageDiff, func() error {
		patch, err = differ.Diff(
			ports.DiffInput{Label: config.Labels.Original, Path: source.Path, Content: source.Content},
			ports.DiffInput{Label: config.Labels.Modified, Path: modifiedPath, Content: patched},
		)
		if err != nil {
			return err
		}
		return h.fileSystem.WriteFile(result.PatchPath, patch, ports.ReadAllWriteOwner)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create patch: %w", err)
	}
	h.inspectPatch(patch, result)
	result.EmptyPatch = len(patch) == 0

	if result.EmptyPatch {
		tracker.Skip(stageValidate)
	} else {
		_ = tracker.Run(stageValidate, func() error {
			result.Validation, err = validator.Validate(ports.ValidationRequest{
				PatchPath:  result.PatchPath,
				Patch:      patch,
				TargetPath: source.Path,
				Original:   source.Content,
				Expected:   patched,
			})
			if err != nil {
				result.Validation = ports.ValidationResult{Diagnostics: err.Error()}
			}
			if !result.Validation.Applies {
				return fmt.Errorf("patch does not apply")
			}
			return nil
		})
	}
	tracker.Stop()
	result.Stages = tracker.Stages()
	result.StageSummary = tracker.Summary()
	printer.Secondary(result.StageSummary)

	h.printWarnings(printer, result)
	printSummary(printer, result)
	return result, nil
}

func withOverrides(config domain.Config, options GenerateOptions) (domain.Config, error) {
	if options.Output != "" {
		config.PatchFile = options.Output
	}
	if options.Differ != "" {
		config.Tools.Differ = options.Differ
	}
	if options.Extractor != "" {
		config.Tools.Extractor = options.Extractor
	}
	if options.Validator != "" {
		config.Tools.Validator = options.Validator
	}
	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

func (h *GenerateCommandHandler) inspectPatch(patch []byte, result *GenerateResult) {
	if len(patch) == 0 {
		return
	}
	diff, err := unified.Parse(patch)
	if err != nil {
		h.logger.Debug("could not parse generated patch", zap.Error(err))
		return
	}
	result.Hunks = len(diff.Hunks)
	result.AddedLines = diff.AddedLines()
	result.RemovedLines = diff.RemovedLines()
}

func (h *GenerateCommandHandler) cleanup(printer *output.Printer, workDir string, keep bool) {
	if keep {
		printer.Secondary(fmt.Sprintf("work directory kept at %s", workDir))
		return
	}
	if err := h.fileSystem.RemoveAll(workDir); err != nil {
		h.logger.Warn("failed to remove work directory", zap.String("path", workDir), zap.Error(err))
	}
}

func (h *GenerateCommandHandler) printWarnings(printer *output.Printer, result *GenerateResult) {
	for _, name := range result.Report.Unmatched() {
		printer.Warning(fmt.Sprintf("rule '%s' matched no line", name))
	}
	if result.EmptyPatch {
		printer.Warning("patched file is identical to the pristine one, the patch is empty")
		return
	}
	if !result.Validation.Applies {
		printer.Warning("patch failed validation, review it before applying")
		if result.Validation.Diagnostics != "" {
			printer.Warning(result.Validation.Diagnostics)
		}
	}
}

func printSummary(printer *output.Printer, result *GenerateResult) {
	fmt.Fprintln(printer.Out())
	printer.Header("Summary")
	version := result.Version
	if version == "" {
		version = "unknown"
	}
	printer.Field("installed version", version)
	printer.Field("package", result.PackagePath)
	for _, rule := range result.Report.Rules {
		printer.Field(
			"rule "+rule.Name,
			fmt.Sprintf("%d %s, %d lines inserted", rule.Hits, output.Plural(rule.Hits, "hit", "hits"), rule.InsertedLines),
		)
	}
	printer.Field("pristine blake3", result.PristineFingerprint)
	printer.Field("patched blake3", result.PatchedFingerprint)
	printer.Field("hunks", fmt.Sprintf("%d", result.Hunks))
	printer.Field("lines", fmt.Sprintf("+%d -%d", result.AddedLines, result.RemovedLines))

	verdict := "applies cleanly"
	switch {
	case result.EmptyPatch:
		verdict = "skipped"
	case !result.Validation.Applies:
		verdict = "FAILED"
	}
	printer.Field("validation", verdict)
	printer.Success(fmt.Sprintf("patch written to %s", result.PatchPath))
}
