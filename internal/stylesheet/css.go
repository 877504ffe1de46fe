package stylesheet

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteCSS writes the sheet as CSS, one class per rule.
//
// Rules are grouped by breakpoint in breakpoint order. A breakpoint with a
// zero threshold is written without a media query; the others are wrapped in
// @media (min-width: Npx) so wider breakpoints override narrower ones.
// Rules with an empty declaration are skipped.
func (s *Sheet) WriteCSS(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "/* %s: generated by cascade, do not edit */\n", s.name)

	for _, bp := range s.breakpoints.List() {
		indent := ""
		wrapped := bp.MinWidth > 0
		wroteHeader := false

		for _, rule := range s.rules {
			if rule.Breakpoint.Name != bp.Name || len(rule.Declaration) == 0 {
				continue
			}
			if !wroteHeader {
				fmt.Fprintln(bw)
				if wrapped {
					fmt.Fprintf(bw, "@media (min-width: %spx) {\n", strconv.FormatFloat(bp.MinWidth, 'f', -1, 64))
					indent = "  "
				}
				wroteHeader = true
			}

			fmt.Fprintf(bw, "%s.%s {\n", indent, rule.ID)
			for _, property := range rule.Declaration.Properties() {
				fmt.Fprintf(bw, "%s  %s: %s;\n", indent, property, rule.Declaration[property])
			}
			fmt.Fprintf(bw, "%s}\n", indent)
		}

		if wroteHeader && wrapped {
			fmt.Fprintln(bw, "}")
		}
	}

	return bw.Flush()
}
