package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DOT writes Graphviz source. Nodes are filled light blue and edges on the
// highlighted path are drawn red with pen width 3. When the scene carries a
// layout, each node gets a pinned pos attribute (scaled to inches).
type DOT[K comparable] struct {
	// Scale converts layout units to Graphviz inches (default 2).
	Scale float64
}

// RenderGraph implements GraphRenderer.
func (d DOT[K]) RenderGraph(w io.Writer, s GraphScene[K]) error {
	scale := d.Scale
	if scale == 0 {
		scale = 2
	}
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "graph %s {\n", dotQuote(s.Title))
	fmt.Fprintf(bw, "  label=%s;\n", dotQuote(s.Title))
	bw.WriteString("  node [style=filled, fillcolor=lightblue];\n")

	for _, id := range s.Nodes {
		name := dotQuote(label(id))
		if p, ok := s.Positions[id]; ok {
			fmt.Fprintf(bw, "  %s [pos=\"%.3f,%.3f!\"];\n", name, p.X*scale, p.Y*scale)
			continue
		}
		fmt.Fprintf(bw, "  %s;\n", name)
	}
	for _, e := range s.Edges {
		from, to := dotQuote(label(e.From)), dotQuote(label(e.To))
		if s.IsHighlighted(e.From, e.To) {
			fmt.Fprintf(bw, "  %s -- %s [color=red, penwidth=3];\n", from, to)
			continue
		}
		fmt.Fprintf(bw, "  %s -- %s;\n", from, to)
	}
	bw.WriteString("}\n")

	return bw.Flush()
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// dotQuote returns s as a double-quoted DOT ID. Only the quote and the
// backslash are escaped; every other byte passes through as-is.
func dotQuote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}
