// Package unified reads, writes and applies single-file unified diffs.
package unified

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const DefaultContext = 3

const noNewlineMarker = "\\ No newline at end of file"

// Diff renders a unified diff from original to modified in the format of `diff -u --label`.
// Identical inputs produce an empty diff.
func Diff(original, modified, originalLabel, modifiedLabel string, context int) []byte {
	if original == modified {
		return nil
	}

	a := splitKeepingTerminators(original)
	b := splitKeepingTerminators(modified)
	matcher := difflib.NewMatcher(a, b)

	var out bytes.Buffer
	wroteHeader := false
	for _, group := range matcher.GetGroupedOpCodes(context) {
		if onlyEqual(group) {
			continue
		}
		if !wroteHeader {
			fmt.Fprintf(&out, "--- %s\n+++ %s\n", originalLabel, modifiedLabel)
			wroteHeader = true
		}

		first, last := group[0], group[len(group)-1]
		fmt.Fprintf(&out, "@@ -%s +%s @@\n", formatRange(first.I1, last.I2), formatRange(first.J1, last.J2))
		for _, code := range group {
			switch code.Tag {
			case 'e':
				writeLines(&out, ' ', a[code.I1:code.I2])
			case 'd':
				writeLines(&out, '-', a[code.I1:code.I2])
			case 'i':
				writeLines(&out, '+', b[code.J1:code.J2])
			case 'r':
				writeLines(&out, '-', a[code.I1:code.I2])
				writeLines(&out, '+', b[code.J1:code.J2])
			}
		}
	}

	return out.Bytes()
}

// splitKeepingTerminators splits text after each newline. A final line without a newline
// keeps its bare form so that it compares unequal to the same line with a terminator.
func splitKeepingTerminators(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func writeLines(out *bytes.Buffer, prefix byte, lines []string) {
	for _, line := range lines {
		out.WriteByte(prefix)
		out.WriteString(line)
		if !strings.HasSuffix(line, "\n") {
			out.WriteString("\n" + noNewlineMarker + "\n")
		}
	}
}

func onlyEqual(group []difflib.OpCode) bool {
	for _, code := range group {
		if code.Tag != 'e' {
			return false
		}
	}
	return true
}

func formatRange(start, stop int) string {
	beginning := start + 1
	length := stop - start
	if length == 1 {
		return fmt.Sprintf("%d", beginning)
	}
	if length == 0 {
		beginning--
	}
	return fmt.Sprintf("%d,%d", beginning, length)
}
