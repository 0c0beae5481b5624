package unified

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type LineKind int

const (
	LineContext LineKind = iota
	LineAdded
	LineRemoved
)

type Line struct {
	Kind      LineKind
	Text      string
	NoNewline bool
}

type Hunk struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Lines    []Line
}

// FileDiff is the parsed form of a unified diff touching a single file.
type FileDiff struct {
	OldName string
	NewName string
	Hunks   []Hunk
}

func (d *FileDiff) AddedLines() int {
	return d.countLines(LineAdded)
}

func (d *FileDiff) RemovedLines() int {
	return d.countLines(LineRemoved)
}

func (d *FileDiff) countLines(kind LineKind) int {
	count := 0
	for _, hunk := range d.Hunks {
		for _, line := range hunk.Lines {
			if line.Kind == kind {
				count++
			}
		}
	}
	return count
}

var hunkHeaderRegex = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// Parse reads a single-file unified diff. Text before the "---" header is ignored, like
// patch(1) does. An empty input parses to a diff without hunks.
func Parse(patch []byte) (*FileDiff, error) {
	diff := &FileDiff{}
	if len(patch) == 0 {
		return diff, nil
	}

	var current *Hunk
	oldRemaining, newRemaining := 0, 0

	for i, text := range strings.Split(strings.TrimSuffix(string(patch), "\n"), "\n") {
		lineNumber := i + 1

		switch {
		case strings.HasPrefix(text, "\\ "):
			if current == nil || len(current.Lines) == 0 {
				return nil, fmt.Errorf("line %d: newline marker outside a hunk", lineNumber)
			}
			current.Lines[len(current.Lines)-1].NoNewline = true
		case current != nil && (oldRemaining > 0 || newRemaining > 0):
			line, err := parseHunkLine(text)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			if line.Kind != LineAdded {
				oldRemaining--
			}
			if line.Kind != LineRemoved {
				newRemaining--
			}
			if oldRemaining < 0 || newRemaining < 0 {
				return nil, fmt.Errorf("line %d: hunk is longer than its header states", lineNumber)
			}
			current.Lines = append(current.Lines, line)
		case strings.HasPrefix(text, "--- ") && current == nil && diff.OldName == "":
			diff.OldName = headerName(text[4:])
		case strings.HasPrefix(text, "+++ ") && current == nil && diff.NewName == "":
			diff.NewName = headerName(text[4:])
		case strings.HasPrefix(text, "@@ "):
			if diff.OldName == "" || diff.NewName == "" {
				return nil, fmt.Errorf("line %d: hunk before file header", lineNumber)
			}
			hunk, err := parseHunkHeader(text)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			diff.Hunks = append(diff.Hunks, hunk)
			current = &diff.Hunks[len(diff.Hunks)-1]
			oldRemaining, newRemaining = hunk.OldCount, hunk.NewCount
		case strings.HasPrefix(text, "--- ") && current != nil:
			return nil, fmt.Errorf("line %d: diff touches more than one file", lineNumber)
		}
	}
	if oldRemaining > 0 || newRemaining > 0 {
		return nil, fmt.Errorf("unexpected end of diff inside hunk")
	}

	return diff, nil
}

func parseHunkHeader(text string) (Hunk, error) {
	match := hunkHeaderRegex.FindStringSubmatch(text)
	if match == nil {
		return Hunk{}, fmt.Errorf("malformed hunk header %q", text)
	}
	return Hunk{
		OldStart: atoiOr(match[1], 0),
		OldCount: atoiOr(match[2], 1),
		NewStart: atoiOr(match[3], 0),
		NewCount: atoiOr(match[4], 1),
	}, nil
}

func parseHunkLine(text string) (Line, error) {
	if text == "" {
		// some tools strip the single space of an empty context line
		return Line{Kind: LineContext}, nil
	}
	switch text[0] {
	case ' ':
		return Line{Kind: LineContext, Text: text[1:]}, nil
	case '+':
		return Line{Kind: LineAdded, Text: text[1:]}, nil
	case '-':
		return Line{Kind: LineRemoved, Text: text[1:]}, nil
	default:
		return Line{}, fmt.Errorf("unexpected hunk line %q", text)
	}
}

// headerName drops the optional tab separated timestamp from a file header.
func headerName(text string) string {
	if i := strings.IndexByte(text, '\t'); i >= 0 {
		return text[:i]
	}
	return text
}

func atoiOr(text string, fallback int) int {
	if text == "" {
		return fallback
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		return fallback
	}
	return value
}
