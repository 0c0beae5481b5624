package core

import (
	"errors"
	"os"
	"strings"
	"testing"

	"mfspatch/internal/adapters/templater"
	"mfspatch/internal/core/domain"
	"mfspatch/internal/ports"
	"mfspatch/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func readTestdata(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return string(data)
}

func newRuleCompiler(fileSystem ports.FileSystem) *RuleCompiler {
	return ProvideRuleCompiler(templater.ProvideTextTemplater(zap.NewNop()), fileSystem)
}

func TestRuleCompiler_DefaultPayloadsRenderMooseFSBlocks(t *testing.T) {
	config := domain.CreateDefaultConfig()
	sut := newRuleCompiler(new(testutil.MockFileSystem))

	storageType, err := sut.RenderPayload(*config.GetRule("storage-type"), config.Storage)
	require.NoError(t, err)
	panel, err := sut.RenderPayload(*config.GetRule("input-panel"), config.Storage)
	require.NoError(t, err)

	assert.Equal(t, strings.Split(readTestdata(t, "moosefs_storage_type.js"), "\n"), storageType)
	expectedPanel := append(strings.Split(readTestdata(t, "moosefs_input_panel.js"), "\n"), "")
	assert.Equal(t, expectedPanel, panel)
}

func TestRuleCompiler_StorageValuesFlowIntoPayload(t *testing.T) {
	config := domain.CreateDefaultConfig()
	backups := false
	config.Storage = domain.Storage{Type: "lizardfs", Name: "LizardFS", Icon: "database", Backups: &backups, Master: "mfsmaster", MasterPort: 9421}
	sut := newRuleCompiler(new(testutil.MockFileSystem))

	payload, err := sut.RenderPayload(*config.GetRule("storage-type"), config.Storage)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"            lizardfs: {",
		"                name: 'LizardFS',",
		"                ipanel: 'LizardFSInputPanel',",
		"                faIcon: 'database',",
		"                backups: false,",
		"            },",
	}, payload)
}

func TestRuleCompiler_PayloadFileOverridesEmbeddedTemplate(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("FileExists", "/etc/mfspatch/registry.tmpl").Return(true, nil)
	fileSystem.On("ReadFile", "/etc/mfspatch/registry.tmpl").Return([]byte("// {{.Name}} start\n// end\n"), nil)
	definition := domain.RuleDefinition{
		Name:        "custom",
		Match:       domain.MatchContains,
		Anchor:      "x",
		Payload:     "storage_type.js.tmpl",
		PayloadFile: "/etc/mfspatch/registry.tmpl",
	}
	sut := newRuleCompiler(fileSystem)

	payload, err := sut.RenderPayload(definition, domain.CreateDefaultConfig().Storage)

	require.NoError(t, err)
	assert.Equal(t, []string{"// MooseFS start", "// end"}, payload)
	fileSystem.AssertExpectations(t)
}

func TestRuleCompiler_MissingPayloadFileIsNotFound(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("FileExists", mock.Anything).Return(false, nil)
	definition := domain.RuleDefinition{Name: "custom", Match: domain.MatchContains, Anchor: "x", PayloadFile: "/missing.tmpl"}
	sut := newRuleCompiler(fileSystem)

	_, err := sut.RenderPayload(definition, domain.Storage{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRuleCompiler_UnknownEmbeddedPayloadIsNotFound(t *testing.T) {
	definition := domain.RuleDefinition{Name: "custom", Match: domain.MatchContains, Anchor: "x", Payload: "nope.tmpl"}
	sut := newRuleCompiler(new(testutil.MockFileSystem))

	_, err := sut.RenderPayload(definition, domain.Storage{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRuleCompiler_RenderErrorIsWrapped(t *testing.T) {
	mockTemplater := new(testutil.MockTemplater)
	mockTemplater.On("Render", mock.Anything, "payload.storage-type", mock.Anything).Return("", errors.New("boom"))
	config := domain.CreateDefaultConfig()
	sut := ProvideRuleCompiler(mockTemplater, new(testutil.MockFileSystem))

	_, err := sut.Compile(&config)

	assert.ErrorContains(t, err, "rule 'storage-type'")
	assert.ErrorContains(t, err, "boom")
}

func TestRuleCompiler_CompiledDefaultsPatchExcerpt(t *testing.T) {
	config := domain.CreateDefaultConfig()
	sut := newRuleCompiler(new(testutil.MockFileSystem))
	rules, err := sut.Compile(&config)
	require.NoError(t, err)
	document := ParseDocument(readTestdata(t, "pvemanagerlib_excerpt.js"))

	patched, report := ApplyRules(document.Lines, rules)

	assert.Empty(t, report.Unmatched())
	assert.True(t, isSubsequence(document.Lines, patched))
	text := document.WithLines(patched).String()
	assert.Contains(t, text, "                backups: true,\n            },\n            cephfs: {\n")
	assert.Contains(t, text, "        me.callParent();\n    },\n});\n\nExt.define('PVE.storage.BTRFSInputPanel', {\n")
	assert.Less(t, strings.Index(text, "moosefs: {"), strings.Index(text, "cephfs: {"))
	assert.True(t, strings.HasSuffix(text, "});\n"))
}

func TestNewLinePredicate(t *testing.T) {
	tests := []struct {
		mode     domain.MatchMode
		anchor   string
		line     string
		expected bool
	}{
		{domain.MatchContains, "BTRFSInputPanel", "Ext.define('PVE.storage.BTRFSInputPanel', {", true},
		{domain.MatchContains, "BTRFSInputPanel", "Ext.define('PVE.storage.ZFSInputPanel', {", false},
		{domain.MatchPrefix, "cephfs: {", "    cephfs: {", false},
		{domain.MatchPrefix, "cephfs: {", "cephfs: { x", true},
		{domain.MatchTrimmedPrefix, "cephfs: {", "\t    cephfs: {", true},
		{domain.MatchTrimmedPrefix, "cephfs: {", "    rbd: {", false},
		{domain.MatchTrimmedEquals, "cephfs: {", "  cephfs: {  ", true},
		{domain.MatchTrimmedEquals, "cephfs: {", "  cephfs: { x", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode)+" "+tt.line, func(t *testing.T) {
			predicate, err := NewLinePredicate(tt.mode, tt.anchor)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, predicate(tt.line))
		})
	}

	_, err := NewLinePredicate("regex", "x")
	assert.Error(t, err)
}

func TestEmbeddedPayloadNames(t *testing.T) {
	assert.Equal(t, []string{"input_panel.js.tmpl", "storage_type.js.tmpl"}, EmbeddedPayloadNames())
}
