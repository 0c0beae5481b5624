package handler

import (
	"fmt"
	"strings"

	"mfspatch/internal/cli/output"
	"mfspatch/internal/core"
	"mfspatch/internal/core/domain"
)

type ShowRulesCommandHandler struct {
	configRepository core.ConfigRepository
	ruleCompiler     *core.RuleCompiler
}

func ProvideShowRulesCommandHandler(
	configRepository core.ConfigRepository,
	ruleCompiler *core.RuleCompiler,
) ShowRulesCommandHandler {
	return ShowRulesCommandHandler{
		configRepository: configRepository,
		ruleCompiler:     ruleCompiler,
	}
}

// Handle prints every configured rule, or only the rule called name when it is set.
func (h *ShowRulesCommandHandler) Handle(printer *output.Printer, name string) error {
	config, err := h.configRepository.LoadConfig()
	if err != nil {
		return err
	}

	definitions := config.Rules
	if name != "" {
		rule := config.GetRule(name)
		if rule == nil {
			return fmt.Errorf("rule '%s': %w", name, domain.ErrNotFound)
		}
		definitions = []domain.RuleDefinition{*rule}
	}

	printer.Header(fmt.Sprintf("Rules for %s (%s)", config.Package, config.InstalledPath))
	for _, definition := range definitions {
		payload, err := h.ruleCompiler.RenderPayload(definition, config.Storage)
		if err != nil {
			return fmt.Errorf("rule '%s': %w", definition.Name, err)
		}
		templateText, err := h.ruleCompiler.LoadPayloadTemplate(definition)
		if err != nil {
			return fmt.Errorf("rule '%s': %w", definition.Name, err)
		}

		source := "embedded " + definition.Payload
		if definition.PayloadFile != "" {
			source = definition.PayloadFile
		}
		occurrence := "every match"
		if definition.Once {
			occurrence = "first match only"
		}

		fmt.Fprintln(printer.Out())
		printer.Info(printer.Bold(definition.Name))
		printer.Field("match", string(definition.Match))
		printer.Field("anchor", fmt.Sprintf("%q", definition.Anchor))
		printer.Field("payload", source)
		printer.Field("lines", fmt.Sprintf("%d", len(payload)))
		printer.Field("values", strings.Join(core.ExtractTemplateValues(templateText), ", "))
		printer.Field("inserted before", occurrence)
	}

	if name == "" {
		fmt.Fprintln(printer.Out())
		printer.Secondary("embedded payloads: " + strings.Join(core.EmbeddedPayloadNames(), ", "))
	}
	return nil
}
