package progress

import (
	"os"
	"strings"

	"golang.org/x/term"
)

type terminalCapabilities struct {
	supportsANSI  bool
	terminalWidth int
}

func detectCapabilities(file *os.File) terminalCapabilities {
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	return terminalCapabilities{
		supportsANSI:  initTerminal(file),
		terminalWidth: width,
	}
}

// clearLine returns the sequence that blanks the current line and returns the cursor to
// column zero.
func clearLine(caps terminalCapabilities) string {
	if caps.supportsANSI {
		return "\033[2K\r"
	}
	return "\r" + strings.Repeat(" ", caps.terminalWidth) + "\r"
}

// truncateToWidth cuts s after width visible runes. Escape sequences are copied through
// without counting, and a reset is appended when text was cut.
func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}

	var result strings.Builder
	visible := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
		case visible >= width:
			result.WriteString(reset)
			return result.String()
		default:
			visible++
		}
		result.WriteRune(r)
	}
	return result.String()
}
