package core

import (
	"fmt"
	"strings"

	"mfspatch/internal/core/domain"
	"mfspatch/internal/ports"
)

type RuleCompiler struct {
	templater  ports.Templater
	fileSystem ports.FileSystem
}

func ProvideRuleCompiler(templater ports.Templater, fileSystem ports.FileSystem) *RuleCompiler {
	return &RuleCompiler{
		templater:  templater,
		fileSystem: fileSystem,
	}
}

// Compile turns every configured rule into an InsertionRule, keeping rule order.
func (c *RuleCompiler) Compile(config *domain.Config) ([]InsertionRule, error) {
	rules := make([]InsertionRule, 0, len(config.Rules))
	for _, definition := range config.Rules {
		predicate, err := NewLinePredicate(definition.Match, definition.Anchor)
		if err != nil {
			return nil, fmt.Errorf("rule '%s': %w", definition.Name, err)
		}
		payload, err := c.RenderPayload(definition, config.Storage)
		if err != nil {
			return nil, fmt.Errorf("rule '%s': %w", definition.Name, err)
		}
		rules = append(rules, InsertionRule{
			Name:    definition.Name,
			Matches: predicate,
			Payload: payload,
			Once:    definition.Once,
		})
	}
	return rules, nil
}

// RenderPayload renders the rule's template with the storage values and splits it into lines.
func (c *RuleCompiler) RenderPayload(definition domain.RuleDefinition, storage domain.Storage) ([]string, error) {
	templateText, err := c.LoadPayloadTemplate(definition)
	if err != nil {
		return nil, err
	}

	values := StorageTemplateValues(storage)
	if unknown := UnknownTemplateValues(templateText, values); len(unknown) > 0 {
		return nil, fmt.Errorf("payload references unknown values: %s", strings.Join(unknown, ", "))
	}
	rendered, err := c.templater.Render(templateText, "payload."+definition.Name, values)
	if err != nil {
		return nil, fmt.Errorf("failed to render payload: %w", err)
	}

	lines := ParseDocument(rendered).Lines
	if definition.TrailingBlank {
		lines = append(lines, "")
	}
	return lines, nil
}

// LoadPayloadTemplate returns the unrendered payload of a rule.
func (c *RuleCompiler) LoadPayloadTemplate(definition domain.RuleDefinition) (string, error) {
	if definition.PayloadFile == "" {
		return LoadEmbeddedPayload(definition.Payload)
	}

	exists, err := c.fileSystem.FileExists(definition.PayloadFile)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("payload file %s: %w", definition.PayloadFile, domain.ErrNotFound)
	}
	data, err := c.fileSystem.ReadFile(definition.PayloadFile)
	if err != nil {
		return "", fmt.Errorf("failed to read payload file %s: %w", definition.PayloadFile, err)
	}
	return string(data), nil
}

func StorageTemplateValues(storage domain.Storage) map[string]interface{} {
	return map[string]interface{}{
		"Type":       storage.Type,
		"Name":       storage.Name,
		"Icon":       storage.Icon,
		"Backups":    storage.BackupsEnabled(),
		"Master":     storage.Master,
		"MasterPort": storage.MasterPort,
	}
}

func NewLinePredicate(mode domain.MatchMode, anchor string) (LinePredicate, error) {
	switch mode {
	case domain.MatchContains:
		return func(line string) bool {
			return strings.Contains(line, anchor)
		}, nil
	case domain.MatchPrefix:
		return func(line string) bool {
			return strings.HasPrefix(line, anchor)
		}, nil
	case domain.MatchTrimmedPrefix:
		return func(line string) bool {
			return strings.HasPrefix(strings.TrimSpace(line), anchor)
		}, nil
	case domain.MatchTrimmedEquals:
		return func(line string) bool {
			return strings.TrimSpace(line) == anchor
		}, nil
	default:
		return nil, fmt.Errorf("unknown match mode '%s'", mode)
	}
}
