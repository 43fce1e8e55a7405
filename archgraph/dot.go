// This file implements DOT export of architecture graphs for visual
// inspection.
package archgraph

import (
	"fmt"
	"io"
)

// Styling knobs of the DOT rendering; the accent scheme colors both
// processor and channel types.
const (
	dotColorScheme = "accent"
	dotColors      = 8
	dotNodeStyle   = "filled"
	dotLineWidth   = 2
)

// DOT writes a neato-layout graph with processors colored by type and
// channels colored by protocol. Types beyond the color-scheme size
// wrap around.
func (ag *ArchGraph) DOT(w io.Writer) error {
	write := func(format string, args ...interface{}) error {
		_, err := fmt.Fprintf(w, format, args...)

		return err
	}

	if err := write("graph {\nlayout=neato\nsplines=true\noverlap=scalexy\nsep=1\n"); err != nil {
		return err
	}

	for i := 1; i <= len(ag.procs); i++ {
		if err := write("%d [label=PE%d,style=%s,colorscheme=%s%d,fillcolor=%d]\n",
			i, i, dotNodeStyle, dotColorScheme, dotColors,
			ag.procs[i-1]%dotColors+1); err != nil {
			return err
		}
	}

	for _, ch := range ag.channels {
		if err := write("%d -- %d [penwidth=%d,colorscheme=%s%d,color=%d]\n",
			ch.From, ch.To, dotLineWidth, dotColorScheme, dotColors,
			ch.Type%dotColors+1); err != nil {
			return err
		}
	}

	return write("}\n")
}
