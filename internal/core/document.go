package core

import "strings"

// Document is a text blob split into lines. The line terminator is not part of a line;
// a carriage return before it is kept so that patching never rewrites existing lines.
type Document struct {
	Lines           []string
	TrailingNewline bool
}

func ParseDocument(text string) Document {
	if text == "" {
		return Document{}
	}
	trailingNewline := strings.HasSuffix(text, "\n")
	if trailingNewline {
		text = text[:len(text)-1]
	}
	return Document{
		Lines:           strings.Split(text, "\n"),
		TrailingNewline: trailingNewline,
	}
}

func (d Document) String() string {
	if len(d.Lines) == 0 {
		return ""
	}
	text := strings.Join(d.Lines, "\n")
	if d.TrailingNewline {
		text += "\n"
	}
	return text
}

// WithLines returns a document with the same terminator convention and new content.
func (d Document) WithLines(lines []string) Document {
	return Document{Lines: lines, TrailingNewline: d.TrailingNewline}
}
