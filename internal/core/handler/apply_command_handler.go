package handler

import (
	"fmt"

	"mfspatch/internal/cli/output"
	"mfspatch/internal/core"
	"mfspatch/internal/core/unified"
	"mfspatch/internal/ports"
)

type ApplyOptions struct {
	Input  string
	Output string
	// Diff prints a unified diff against the input instead of the patched text.
	Diff bool
}

type ApplyCommandHandler struct {
	configRepository core.ConfigRepository
	ruleCompiler     *core.RuleCompiler
	fileSystem       ports.FileSystem
}

func ProvideApplyCommandHandler(
	configRepository core.ConfigRepository,
	ruleCompiler *core.RuleCompiler,
	fileSystem ports.FileSystem,
) ApplyCommandHandler {
	return ApplyCommandHandler{
		configRepository: configRepository,
		ruleCompiler:     ruleCompiler,
		fileSystem:       fileSystem,
	}
}

// Handle runs the insertion rules over a local file. Without an output path the result is
// written to the printer's output stream.
func (h *ApplyCommandHandler) Handle(printer *output.Printer, options ApplyOptions) (core.PatchReport, error) {
	config, err := h.configRepository.LoadConfig()
	if err != nil {
		return core.PatchReport{}, err
	}
	rules, err := h.ruleCompiler.Compile(config)
	if err != nil {
		return core.PatchReport{}, err
	}

	content, err := h.fileSystem.ReadFile(options.Input)
	if err != nil {
		return core.PatchReport{}, fmt.Errorf("failed to read %s: %w", options.Input, err)
	}

	original := string(content)
	document := core.ParseDocument(original)
	lines, report := core.ApplyRules(document.Lines, rules)
	patched := document.WithLines(lines).String()

	for _, name := range report.Unmatched() {
		printer.Warning(fmt.Sprintf("rule '%s' matched no line", name))
	}

	result := []byte(patched)
	if options.Diff {
		result = unified.Diff(original, patched, config.Labels.Original, config.Labels.Modified, unified.DefaultContext)
	}

	if options.Output == "" {
		if _, err := printer.Out().Write(result); err != nil {
			return report, err
		}
		return report, nil
	}

	if err := h.fileSystem.WriteFile(options.Output, result, ports.ReadAllWriteOwner); err != nil {
		return report, fmt.Errorf("failed to write %s: %w", options.Output, err)
	}
	printer.Success(fmt.Sprintf(
		"%d %s inserted, written to %s",
		report.InsertedLines(),
		output.Plural(report.InsertedLines(), "line", "lines"),
		options.Output,
	))
	return report, nil
}
