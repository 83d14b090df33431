// Package config loads the YAML configuration shared by both demos:
// the graph and query for the shortest-path plot, the sampling grid for the
// surface plot, where outputs go, and how to log.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphplot/core"
	"github.com/katalvlaran/graphplot/surface"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Layout names.
const (
	LayoutSpring   = "spring"
	LayoutCircular = "circular"
)

// Config aggregates application configuration values.
type Config struct {
	Graph   GraphConfig   `yaml:"graph"`
	Surface SurfaceConfig `yaml:"surface"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// GraphConfig describes the graph and the shortest-path query.
// Node IDs are strings; YAML integers decode into them unchanged.
type GraphConfig struct {
	Title  string      `yaml:"title"`
	Edges  [][2]string `yaml:"edges"`
	Source string      `yaml:"source"`
	Target string      `yaml:"target"`
	Layout string      `yaml:"layout"`
	Seed   int64       `yaml:"seed"`
}

// SurfaceConfig describes the sampled surface and its page size.
type SurfaceConfig struct {
	Title  string  `yaml:"title"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Points int     `yaml:"points"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
}

// OutputConfig controls where rendered files go.
type OutputConfig struct {
	Dir         string `yaml:"dir"`
	GraphFile   string `yaml:"graph_file"`
	SurfaceFile string `yaml:"surface_file"`
	Format      string `yaml:"format"` // html|dot|terminal
	Open        bool   `yaml:"open"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text|json
}

// Default returns the sample scenario: edges (1,2),(1,3),(2,3),(2,4),(3,4),
// query 1→4, and a 30×30 cos·sin surface over [-2, 2] on an 800×800 page.
func Default() Config {
	spec := surface.DefaultSpec()

	return Config{
		Graph: GraphConfig{
			Title:  "Shortest path",
			Edges:  [][2]string{{"1", "2"}, {"1", "3"}, {"2", "3"}, {"2", "4"}, {"3", "4"}},
			Source: "1",
			Target: "4",
			Layout: LayoutSpring,
			Seed:   42,
		},
		Surface: SurfaceConfig{
			Title:  "3D surface",
			Min:    spec.Min,
			Max:    spec.Max,
			Points: spec.Points,
			Width:  800,
			Height: 800,
		},
		Output: OutputConfig{
			Dir:         ".",
			GraphFile:   "shortest_path.html",
			SurfaceFile: "3d_plot.html",
			Format:      "html",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path over the defaults and validates the result.
// An empty path yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first problem found, wrapped in ErrInvalid.
func (c Config) Validate() error {
	switch {
	case len(c.Graph.Edges) == 0:
		return fmt.Errorf("%w: graph.edges is empty", ErrInvalid)
	case c.Graph.Source == "":
		return fmt.Errorf("%w: graph.source is empty", ErrInvalid)
	case c.Graph.Target == "":
		return fmt.Errorf("%w: graph.target is empty", ErrInvalid)
	}
	for i, e := range c.Graph.Edges {
		if e[0] == "" || e[1] == "" {
			return fmt.Errorf("%w: graph.edges[%d] has an empty endpoint", ErrInvalid, i)
		}
	}
	switch c.Graph.Layout {
	case LayoutSpring, LayoutCircular:
	default:
		return fmt.Errorf("%w: graph.layout %q (want spring|circular)", ErrInvalid, c.Graph.Layout)
	}

	if err := c.Surface.Spec().Validate(); err != nil {
		return fmt.Errorf("%w: surface: %w", ErrInvalid, err)
	}
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		return fmt.Errorf("%w: surface width/height must be positive", ErrInvalid)
	}

	switch c.Output.Format {
	case "html", "dot", "terminal":
	default:
		return fmt.Errorf("%w: output.format %q (want html|dot|terminal)", ErrInvalid, c.Output.Format)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format %q (want text|json)", ErrInvalid, c.Logging.Format)
	}

	return nil
}

// Spec converts the surface settings to a sampling spec.
func (s SurfaceConfig) Spec() surface.Spec {
	return surface.Spec{Min: s.Min, Max: s.Max, Points: s.Points}
}

// Build constructs the configured graph.
func (g GraphConfig) Build() (*core.Graph[string], error) {
	out := core.NewGraph[string]()
	for _, e := range g.Edges {
		if err := out.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("config: edge %s-%s: %w", e[0], e[1], err)
		}
	}

	return out, nil
}
