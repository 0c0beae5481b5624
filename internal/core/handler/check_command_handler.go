package handler

import (
	"fmt"
	"strings"

	"mfspatch/internal/cli/output"
	"mfspatch/internal/core"
)

type RuleState struct {
	Name    string
	Applied bool
}

type CheckResult struct {
	Path        string
	Fingerprint string
	Rules       []RuleState
}

// Patched reports whether every rule's payload is already present.
func (r CheckResult) Patched() bool {
	for _, rule := range r.Rules {
		if !rule.Applied {
			return false
		}
	}
	return len(r.Rules) > 0
}

func (r CheckResult) Pristine() bool {
	for _, rule := range r.Rules {
		if rule.Applied {
			return false
		}
	}
	return true
}

type CheckCommandHandler struct {
	configRepository core.ConfigRepository
	sourceProvider   core.SourceProvider
	ruleCompiler     *core.RuleCompiler
}

func ProvideCheckCommandHandler(
	configRepository core.ConfigRepository,
	sourceProvider core.SourceProvider,
	ruleCompiler *core.RuleCompiler,
) CheckCommandHandler {
	return CheckCommandHandler{
		configRepository: configRepository,
		sourceProvider:   sourceProvider,
		ruleCompiler:     ruleCompiler,
	}
}

// Handle inspects the installed bundle. A rule counts as applied when the first non-blank
// line of its rendered payload already occurs in the bundle.
func (h *CheckCommandHandler) Handle(printer *output.Printer) (*CheckResult, error) {
	config, err := h.configRepository.LoadConfig()
	if err != nil {
		return nil, err
	}
	rules, err := h.ruleCompiler.Compile(config)
	if err != nil {
		return nil, err
	}
	content, err := h.sourceProvider.ReadInstalled(config)
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool)
	for _, line := range core.ParseDocument(string(content)).Lines {
		present[line] = true
	}

	result := &CheckResult{
		Path:        config.InstalledPath,
		Fingerprint: core.Fingerprint(content),
	}
	for _, rule := range rules {
		marker, ok := firstNonBlank(rule.Payload)
		result.Rules = append(result.Rules, RuleState{
			Name:    rule.Name,
			Applied: ok && present[marker],
		})
	}

	printer.Header(result.Path)
	printer.Field("blake3", result.Fingerprint)
	for _, rule := range result.Rules {
		state := "missing"
		if rule.Applied {
			state = "present"
		}
		printer.Field("rule "+rule.Name, state)
	}

	switch {
	case result.Patched():
		printer.Success(fmt.Sprintf("bundle already carries the %s additions", config.Storage.Name))
	case result.Pristine():
		printer.Info("bundle is unpatched")
	default:
		printer.Warning("bundle is partially patched")
	}
	return result, nil
}

func firstNonBlank(lines []string) (string, bool) {
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			return line, true
		}
	}
	return "", false
}
