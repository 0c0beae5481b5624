package core

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"mfspatch/internal/core/domain"
)

//go:embed payloads/*.tmpl
var payloadTemplates embed.FS

// LoadEmbeddedPayload returns the raw template text of a payload shipped with the binary.
func LoadEmbeddedPayload(name string) (string, error) {
	data, err := payloadTemplates.ReadFile(path.Join("payloads", name))
	if err != nil {
		return "", fmt.Errorf("payload template '%s': %w", name, domain.ErrNotFound)
	}
	return string(data), nil
}

func EmbeddedPayloadNames() []string {
	entries, err := fs.ReadDir(payloadTemplates, "payloads")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}
