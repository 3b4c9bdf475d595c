//go:build unix

package main

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// terminalInfo reports the controlling terminal's dimensions via a direct
// TIOCGWINSZ ioctl, the lower-level counterpart to golang.org/x/term's
// portable wrapper used on non-Unix builds.
func terminalInfo() string {
	ws, err := unix.IoctlGetWinsize(int(os.Stdin.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return "size unknown"
	}
	return fmt.Sprintf("%dx%d", ws.Col, ws.Row)
}
