package unified

import (
	"fmt"
	"strings"
)

// Apply applies diff to original. Hunks must match exactly at the line numbers given in
// their headers; no fuzz or offset search is attempted.
func Apply(original string, diff *FileDiff) (string, error) {
	source := splitKeepingTerminators(original)
	var result []string
	next := 0

	for i, hunk := range diff.Hunks {
		start := hunk.OldStart - 1
		if hunk.OldCount == 0 {
			start = hunk.OldStart
		}
		if start < next || start > len(source) {
			return "", fmt.Errorf("hunk %d: start line %d is out of range", i+1, hunk.OldStart)
		}
		result = append(result, source[next:start]...)

		position := start
		for _, line := range hunk.Lines {
			switch line.Kind {
			case LineContext, LineRemoved:
				if position >= len(source) {
					return "", fmt.Errorf("hunk %d: expected %q past end of file", i+1, line.Text)
				}
				if source[position] != terminated(line) {
					return "", fmt.Errorf(
						"hunk %d: line %d is %q, expected %q",
						i+1,
						position+1,
						strings.TrimSuffix(source[position], "\n"),
						line.Text,
					)
				}
				if line.Kind == LineContext {
					result = append(result, source[position])
				}
				position++
			case LineAdded:
				result = append(result, terminated(line))
			}
		}
		next = position
	}

	result = append(result, source[next:]...)
	return strings.Join(result, ""), nil
}

func terminated(line Line) string {
	if line.NoNewline {
		return line.Text
	}
	return line.Text + "\n"
}
