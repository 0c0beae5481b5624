package core

import (
	"regexp"
	"sort"
)

// templateActionRegex matches one {{ }} action, including trim markers.
var templateActionRegex = regexp.MustCompile(`\{\{-?(.*?)-?\}\}`)

// templateValueRegex matches a reference to a top-level value such as .Name in `.Name`,
// `if .Backups` or `printf "%d" .MasterPort`. Chained fields like .Storage.Name report Storage.
var templateValueRegex = regexp.MustCompile(`(?:^|[\s(|,])\.(\w+)`)

// ExtractTemplateValues returns the sorted, unique names of the top-level values a payload
// template references.
func ExtractTemplateValues(template string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, action := range templateActionRegex.FindAllStringSubmatch(template, -1) {
		for _, match := range templateValueRegex.FindAllStringSubmatch(action[1], -1) {
			if !seen[match[1]] {
				seen[match[1]] = true
				names = append(names, match[1])
			}
		}
	}
	sort.Strings(names)
	return names
}

// UnknownTemplateValues lists referenced values that the storage section does not provide.
func UnknownTemplateValues(template string, values map[string]interface{}) []string {
	var unknown []string
	for _, name := range ExtractTemplateValues(template) {
		if _, ok := values[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}
