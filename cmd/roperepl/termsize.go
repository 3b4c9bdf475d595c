//go:build !unix

package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// terminalInfo reports the controlling terminal's dimensions via
// golang.org/x/term on platforms without an x/sys/unix ioctl path.
func terminalInfo() string {
	w, h, err := term.GetSize(int(os.Stdin.Fd()))
	if err != nil {
		return "size unknown"
	}
	return fmt.Sprintf("%dx%d", w, h)
}
