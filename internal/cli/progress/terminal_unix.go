//go:build !windows

package progress

import "os"

// Unix terminals understand ANSI sequences without setup.
func initTerminal(_ *os.File) bool {
	return true
}
