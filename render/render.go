// Package render turns graphs, highlighted paths and sampled surfaces into
// something a person can look at.
//
// The computational packages (core, bfs, surface) know nothing about this
// package; callers assemble a GraphScene or SurfaceScene and hand it to a
// GraphRenderer or SurfaceRenderer. Three renderers are provided:
//
//	DOT      – Graphviz source (graphs only)
//	HTML     – a self-contained Plotly page (graphs and surfaces)
//	Terminal – lipgloss-styled text (graphs and surfaces)
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/graphplot/bfs"
	"github.com/katalvlaran/graphplot/core"
	"github.com/katalvlaran/graphplot/layout"
	"github.com/katalvlaran/graphplot/surface"
)

// Sentinel errors for rendering.
var (
	// ErrNilGrid is returned when a SurfaceScene carries no grid.
	ErrNilGrid = errors.New("render: surface grid is nil")

	// ErrUnsupported is returned for an unknown renderer name.
	ErrUnsupported = errors.New("render: unsupported format")
)

// Format names accepted by GraphRendererByName.
const (
	FormatHTML     = "html"
	FormatDOT      = "dot"
	FormatTerminal = "terminal"
)

// GraphScene is everything a renderer needs to draw a graph with an
// optional highlighted path.
type GraphScene[K comparable] struct {
	Title     string
	Nodes     []K
	Edges     []core.Edge[K]
	Highlight bfs.Path[K]
	Positions layout.Positions[K]
}

// NewGraphScene snapshots g together with path and positions.
// A nil positions map is replaced by a circular layout at draw time.
func NewGraphScene[K comparable](title string, g *core.Graph[K], path bfs.Path[K], pos layout.Positions[K]) GraphScene[K] {
	return GraphScene[K]{
		Title:     title,
		Nodes:     g.Nodes(),
		Edges:     g.Edges(),
		Highlight: path,
		Positions: pos,
	}
}

// IsHighlighted reports whether the undirected edge u–v lies on the path.
func (s GraphScene[K]) IsHighlighted(u, v K) bool {
	return s.Highlight.Contains(u, v)
}

// HighlightEdges returns the consecutive pairs of the highlighted path.
func (s GraphScene[K]) HighlightEdges() []core.Edge[K] {
	return s.Highlight.Edges()
}

// positions returns the scene layout, falling back to a unit circle.
func (s GraphScene[K]) positions() layout.Positions[K] {
	if len(s.Positions) >= len(s.Nodes) {
		return s.Positions
	}

	return layout.Circular(s.Nodes, 1)
}

// SurfaceScene is a sampled surface plus presentation hints.
type SurfaceScene struct {
	Title  string
	Width  int
	Height int
	Grid   *surface.Grid
}

// GraphRenderer draws a GraphScene to w.
type GraphRenderer[K comparable] interface {
	RenderGraph(w io.Writer, s GraphScene[K]) error
}

// SurfaceRenderer draws a SurfaceScene to w.
type SurfaceRenderer interface {
	RenderSurface(w io.Writer, s SurfaceScene) error
}

// GraphRendererByName maps a format name to a renderer.
func GraphRendererByName[K comparable](name string) (GraphRenderer[K], error) {
	switch name {
	case FormatHTML:
		return HTML[K]{}, nil
	case FormatDOT:
		return DOT[K]{}, nil
	case FormatTerminal:
		return Terminal[K]{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
}

// WriteFile creates path (and its directory) and lets draw fill it.
// The file is flushed and closed before WriteFile returns.
func WriteFile(path string, draw func(io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("render: create directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("render: close file: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := draw(bw); err != nil {
		return err
	}

	return bw.Flush()
}

func label[K comparable](id K) string {
	return fmt.Sprint(id)
}
