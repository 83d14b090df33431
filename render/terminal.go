package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	pathStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	nodeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	headStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle  = lipgloss.NewStyle().Padding(0, 1)
)

// Terminal prints an adjacency table with the path vertices emphasized,
// followed by the path itself. For surfaces it prints a short summary.
type Terminal[K comparable] struct{}

// RenderGraph implements GraphRenderer.
func (Terminal[K]) RenderGraph(w io.Writer, s GraphScene[K]) error {
	onPath := make(map[K]bool, len(s.Highlight))
	for _, id := range s.Highlight {
		onPath[id] = true
	}

	adj := make(map[K][]string, len(s.Nodes))
	for _, e := range s.Edges {
		adj[e.From] = append(adj[e.From], label(e.To))
		if e.From != e.To {
			adj[e.To] = append(adj[e.To], label(e.From))
		}
	}

	rows := make([][]string, 0, len(s.Nodes))
	for _, id := range s.Nodes {
		rows = append(rows, []string{label(id), strings.Join(adj[id], ", ")})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NODE", "NEIGHBORS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headStyle
			}
			if col == 0 && row >= 0 && row < len(s.Nodes) && onPath[s.Nodes[row]] {
				return cellStyle.Inherit(pathStyle)
			}
			return cellStyle
		})

	var b strings.Builder
	if s.Title != "" {
		b.WriteString(titleStyle.Render(s.Title))
		b.WriteString("\n")
	}
	b.WriteString(t.String())
	b.WriteString("\n")

	if len(s.Highlight) > 0 {
		parts := make([]string, len(s.Highlight))
		for i, id := range s.Highlight {
			parts[i] = nodeStyle.Render(label(id))
		}
		fmt.Fprintf(&b, "%s %s (%d hops)\n",
			pathStyle.Render("path:"), strings.Join(parts, " → "), s.Highlight.Hops())
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// RenderSurface implements SurfaceRenderer.
func (Terminal[K]) RenderSurface(w io.Writer, s SurfaceScene) error {
	if s.Grid == nil {
		return ErrNilGrid
	}
	n := s.Grid.Size()
	lo, hi := s.Grid.Bounds()

	var b strings.Builder
	if s.Title != "" {
		b.WriteString(titleStyle.Render(s.Title))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "grid: %d×%d over [%g, %g]\n", n, n, s.Grid.Axis[0], s.Grid.Axis[n-1])
	fmt.Fprintf(&b, "z:    [%.4f, %.4f]\n", lo, hi)
	_, err := io.WriteString(w, b.String())

	return err
}
