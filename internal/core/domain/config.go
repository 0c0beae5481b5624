package domain

import (
	"fmt"
	"strings"
)

type MatchMode string

const (
	MatchContains      MatchMode = "contains"
	MatchPrefix        MatchMode = "prefix"
	MatchTrimmedPrefix MatchMode = "trimmed-prefix"
	MatchTrimmedEquals MatchMode = "trimmed-equals"
)

var matchModes = []MatchMode{MatchContains, MatchPrefix, MatchTrimmedPrefix, MatchTrimmedEquals}

// ToolStrategy selects between shelling out to a system utility and the in-process implementation.
type ToolStrategy string

const (
	StrategySystem ToolStrategy = "system"
	StrategyNative ToolStrategy = "native"
)

// RuleDefinition describes one anchor insertion as it appears in the configuration file
type RuleDefinition struct {
	Name          string    `yaml:"name"`
	Match         MatchMode `yaml:"match"`
	Anchor        string    `yaml:"anchor"`
	Payload       string    `yaml:"payload,omitempty"`     // name of an embedded payload template
	PayloadFile   string    `yaml:"payloadFile,omitempty"` // template read from disk, wins over Payload
	TrailingBlank bool      `yaml:"trailingBlank,omitempty"`
	Once          bool      `yaml:"once,omitempty"`
}

// Storage holds the values the payload templates are rendered with
type Storage struct {
	Type       string `yaml:"type"`
	Name       string `yaml:"name"`
	Icon       string `yaml:"icon"`
	Backups    *bool  `yaml:"backups,omitempty"` // unset means the default, true
	Master     string `yaml:"master"`
	MasterPort int    `yaml:"masterPort"`
}

type Labels struct {
	Original string `yaml:"original"`
	Modified string `yaml:"modified"`
}

type Tools struct {
	Differ    ToolStrategy `yaml:"differ"`
	Extractor ToolStrategy `yaml:"extractor"`
	Validator ToolStrategy `yaml:"validator"`
}

// Config holds everything needed to produce a patch for one vendor bundle
type Config struct {
	Package       string           `yaml:"package"`
	InstalledPath string           `yaml:"installedPath"`
	MemberPath    string           `yaml:"memberPath"` // path of the bundle inside the package, no leading slash
	PatchFile     string           `yaml:"patchFile"`
	Labels        Labels           `yaml:"labels"`
	Tools         Tools            `yaml:"tools"`
	Storage       Storage          `yaml:"storage"`
	Rules         []RuleDefinition `yaml:"rules"`
}

func CreateDefaultConfig() Config {
	return Config{
		Package:       "pve-manager",
		InstalledPath: "/usr/share/pve-manager/js/pvemanagerlib.js",
		MemberPath:    "usr/share/pve-manager/js/pvemanagerlib.js",
		PatchFile:     "pve-moosefs.patch",
		Labels: Labels{
			Original: "pvemanagerlib.js",
			Modified: "pvemanagerlib.patched.js",
		},
		Tools: Tools{
			Differ:    StrategySystem,
			Extractor: StrategySystem,
			Validator: StrategySystem,
		},
		Storage: Storage{
			Type:       "moosefs",
			Name:       "MooseFS",
			Icon:       "building",
			Backups:    enabled(true),
			Master:     "mfsmaster",
			MasterPort: 9421,
		},
		Rules: []RuleDefinition{
			{
				Name:    "storage-type",
				Match:   MatchTrimmedPrefix,
				Anchor:  "cephfs: {",
				Payload: "storage_type.js.tmpl",
			},
			{
				Name:          "input-panel",
				Match:         MatchContains,
				Anchor:        "Ext.define('PVE.storage.BTRFSInputPanel'",
				Payload:       "input_panel.js.tmpl",
				TrailingBlank: true,
			},
		},
	}
}

func enabled(value bool) *bool {
	return &value
}

// BackupsEnabled reports whether the storage type offers the backup content type.
func (s Storage) BackupsEnabled() bool {
	return s.Backups == nil || *s.Backups
}

// GetRule returns the rule called name, or nil. The result points into c.Rules.
func (c *Config) GetRule(name string) *RuleDefinition {
	for i := range c.Rules {
		if c.Rules[i].Name == name {
			return &c.Rules[i]
		}
	}
	return nil
}

// ApplyDefaults fills unset fields from the default configuration. Rules are never merged;
// a config without rules gets the default rule set.
func (c *Config) ApplyDefaults() {
	defaults := CreateDefaultConfig()
	if c.Package == "" {
		c.Package = defaults.Package
	}
	if c.InstalledPath == "" {
		c.InstalledPath = defaults.InstalledPath
	}
	if c.MemberPath == "" {
		c.MemberPath = defaults.MemberPath
	}
	if c.PatchFile == "" {
		c.PatchFile = defaults.PatchFile
	}
	if c.Labels.Original == "" {
		c.Labels.Original = defaults.Labels.Original
	}
	if c.Labels.Modified == "" {
		c.Labels.Modified = defaults.Labels.Modified
	}
	if c.Tools.Differ == "" {
		c.Tools.Differ = defaults.Tools.Differ
	}
	if c.Tools.Extractor == "" {
		c.Tools.Extractor = defaults.Tools.Extractor
	}
	if c.Tools.Validator == "" {
		c.Tools.Validator = defaults.Tools.Validator
	}
	c.Storage.applyDefaults(defaults.Storage)
	if len(c.Rules) == 0 {
		c.Rules = defaults.Rules
	}
}

func (c *Config) Validate() error {
	if c.Package == "" {
		return fmt.Errorf("package is empty")
	}
	if c.MemberPath == "" {
		return fmt.Errorf("memberPath is empty")
	}
	if strings.HasPrefix(c.MemberPath, "/") || strings.Contains(c.MemberPath, "..") {
		return fmt.Errorf("memberPath '%s' must be relative to the package root", c.MemberPath)
	}
	if c.PatchFile == "" {
		return fmt.Errorf("patchFile is empty")
	}

	tools := map[string]ToolStrategy{
		"differ":    c.Tools.Differ,
		"extractor": c.Tools.Extractor,
		"validator": c.Tools.Validator,
	}
	for name, strategy := range tools {
		if err := ValidateStrategy(strategy); err != nil {
			return fmt.Errorf("tools.%s: %w", name, err)
		}
	}

	if err := c.Storage.Validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if len(c.Rules) == 0 {
		return fmt.Errorf("no rules defined in configuration")
	}
	seen := make(map[string]bool)
	for i, rule := range c.Rules {
		if rule.Name == "" {
			return fmt.Errorf("rule at index %d has empty name", i)
		}
		if seen[rule.Name] {
			return fmt.Errorf("rule '%s' is defined more than once", rule.Name)
		}
		seen[rule.Name] = true
		if !isKnownMatchMode(rule.Match) {
			return fmt.Errorf("rule '%s' has unknown match mode '%s'", rule.Name, rule.Match)
		}
		if rule.Anchor == "" {
			return fmt.Errorf("rule '%s' has empty anchor", rule.Name)
		}
		if rule.Payload == "" && rule.PayloadFile == "" {
			return fmt.Errorf("rule '%s' must have either payload or payloadFile", rule.Name)
		}
	}

	return nil
}

// applyDefaults fills every unset storage value on its own, so a partial storage section
// keeps the values it sets and inherits the rest.
func (s *Storage) applyDefaults(defaults Storage) {
	if s.Type == "" {
		s.Type = defaults.Type
	}
	if s.Name == "" {
		s.Name = defaults.Name
	}
	if s.Icon == "" {
		s.Icon = defaults.Icon
	}
	if s.Backups == nil {
		s.Backups = enabled(defaults.BackupsEnabled())
	}
	if s.Master == "" {
		s.Master = defaults.Master
	}
	if s.MasterPort == 0 {
		s.MasterPort = defaults.MasterPort
	}
}

func (s Storage) Validate() error {
	values := []struct{ key, value string }{
		{"type", s.Type},
		{"name", s.Name},
		{"icon", s.Icon},
		{"master", s.Master},
	}
	for _, v := range values {
		if strings.TrimSpace(v.value) == "" {
			return fmt.Errorf("%s is empty", v.key)
		}
	}
	if s.MasterPort < 1 || s.MasterPort > 65535 {
		return fmt.Errorf("masterPort %d is outside 1..65535", s.MasterPort)
	}
	return nil
}

func ValidateStrategy(strategy ToolStrategy) error {
	switch strategy {
	case StrategySystem, StrategyNative:
		return nil
	default:
		return fmt.Errorf("unknown strategy '%s', expected '%s' or '%s'", strategy, StrategySystem, StrategyNative)
	}
}

func isKnownMatchMode(mode MatchMode) bool {
	for _, m := range matchModes {
		if m == mode {
			return true
		}
	}
	return false
}
