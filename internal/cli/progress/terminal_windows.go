//go:build windows

package progress

import (
	"os"

	"golang.org/x/sys/windows"
)

// initTerminal enables virtual terminal processing on the console behind file and reports
// whether ANSI sequences can be used.
func initTerminal(file *os.File) bool {
	handle := windows.Handle(file.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return false
	}
	return windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
