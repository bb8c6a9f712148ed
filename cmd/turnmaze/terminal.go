package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"golang.org/x/term"
)

// Colour modes accepted by --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// useColor resolves a --color mode against the output writer. "auto" colours
// only when w is the process's terminal.
func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case colorAlways:
		color.ForceOpenColor()
		return true, nil
	case colorNever:
		return false, nil
	case colorAuto:
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("invalid color mode %q (want %s, %s or %s)", mode, colorAuto, colorAlways, colorNever)
	}
}

// terminalWidth returns the width of w when it is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, false
	}
	return width, true
}
