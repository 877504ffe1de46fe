package main

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/cascade/internal/responsive"
)

// terminalColumns returns the width of w when it is a terminal.
func terminalColumns(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return 0, false
	}
	return cols, true
}

// viewportWidth picks the width to resolve at: the explicit flag value when
// set (zero included), the terminal width scaled by pixelsPerColumn, or the
// widest breakpoint threshold.
func viewportWidth(explicit float64, set bool, out io.Writer, pixelsPerColumn float64, bps responsive.Breakpoints) float64 {
	if set {
		return explicit
	}
	if cols, ok := terminalColumns(out); ok {
		return float64(cols) * pixelsPerColumn
	}
	if largest, ok := bps.Largest(); ok {
		return largest.MinWidth
	}
	return 0
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}
