package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/katalvlaran/graphplot/surface"
)

// plotlyCDN is the pinned Plotly bundle referenced by generated pages.
const plotlyCDN = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// page is filled by html/template; Data and Layout land in a script context
// and are therefore emitted as escaped JSON.
var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.CDN}}" charset="utf-8"></script>
</head>
<body>
<div id="plot"></div>
<script>
Plotly.newPlot("plot", {{.Data}}, {{.Layout}});
</script>
</body>
</html>
`))

type pageData struct {
	Title  string
	CDN    string
	Data   []map[string]any
	Layout map[string]any
}

// HTML writes a self-contained Plotly page. It renders both graphs
// (scatter traces over a layout) and surfaces (a single surface trace).
type HTML[K comparable] struct{}

// RenderSurface implements SurfaceRenderer.
func (HTML[K]) RenderSurface(w io.Writer, s SurfaceScene) error {
	if s.Grid == nil {
		return ErrNilGrid
	}
	lo, hi := s.Grid.Bounds()
	trace := map[string]any{
		"type": "surface",
		"x":    surface.Rows(s.Grid.X),
		"y":    surface.Rows(s.Grid.Y),
		"z":    surface.Rows(s.Grid.Z),
		"cmin": lo,
		"cmax": hi,
	}
	lay := map[string]any{
		"title":    map[string]any{"text": s.Title},
		"autosize": false,
	}
	if s.Width > 0 {
		lay["width"] = s.Width
	}
	if s.Height > 0 {
		lay["height"] = s.Height
	}

	return execute(w, pageData{Title: s.Title, CDN: plotlyCDN, Data: []map[string]any{trace}, Layout: lay})
}

// RenderGraph implements GraphRenderer. Plain edges, highlighted edges and
// nodes become three scatter traces so the path draws on top.
func (HTML[K]) RenderGraph(w io.Writer, s GraphScene[K]) error {
	pos := s.positions()

	var ex, ey, hx, hy []any
	for _, e := range s.Edges {
		a, b := pos[e.From], pos[e.To]
		if s.IsHighlighted(e.From, e.To) {
			hx = append(hx, a.X, b.X, nil)
			hy = append(hy, a.Y, b.Y, nil)
			continue
		}
		ex = append(ex, a.X, b.X, nil)
		ey = append(ey, a.Y, b.Y, nil)
	}

	nx := make([]float64, 0, len(s.Nodes))
	ny := make([]float64, 0, len(s.Nodes))
	text := make([]string, 0, len(s.Nodes))
	for _, id := range s.Nodes {
		nx = append(nx, pos[id].X)
		ny = append(ny, pos[id].Y)
		text = append(text, label(id))
	}

	data := []map[string]any{
		{
			"type": "scatter", "mode": "lines", "name": "edges",
			"x": ex, "y": ey, "hoverinfo": "none",
			"line": map[string]any{"color": "#888", "width": 1},
		},
		{
			"type": "scatter", "mode": "lines", "name": "path",
			"x": hx, "y": hy, "hoverinfo": "none",
			"line": map[string]any{"color": "red", "width": 3},
		},
		{
			"type": "scatter", "mode": "markers+text", "name": "nodes",
			"x": nx, "y": ny, "text": text, "textposition": "middle center",
			"marker": map[string]any{"color": "lightblue", "size": 28, "line": map[string]any{"width": 1}},
		},
	}
	lay := map[string]any{
		"title":      map[string]any{"text": s.Title},
		"showlegend": false,
		"xaxis":      map[string]any{"visible": false},
		"yaxis":      map[string]any{"visible": false, "scaleanchor": "x"},
	}

	return execute(w, pageData{Title: s.Title, CDN: plotlyCDN, Data: data, Layout: lay})
}

func execute(w io.Writer, d pageData) error {
	if err := page.Execute(w, d); err != nil {
		return fmt.Errorf("render: html: %w", err)
	}

	return nil
}
