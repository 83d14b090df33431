package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphplot/bfs"
	"github.com/katalvlaran/graphplot/config"
	"github.com/katalvlaran/graphplot/core"
	"github.com/katalvlaran/graphplot/layout"
	"github.com/katalvlaran/graphplot/render"
)

// pathResult is what the path command prints.
type pathResult struct {
	Source       string   `json:"source" yaml:"source"`
	Target       string   `json:"target" yaml:"target"`
	Path         []string `json:"path" yaml:"path"`
	Hops         int      `json:"hops" yaml:"hops"`
	Eccentricity int      `json:"eccentricity" yaml:"eccentricity"`
	File         string   `json:"file,omitempty" yaml:"file,omitempty"`
}

func newPathCmd(a *app) *cobra.Command {
	var (
		source string
		target string
		format string
		out    string
		open   bool
	)

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Find and draw the shortest path between two nodes",
		Long: `Find the BFS shortest path between two nodes and draw the graph
with the path highlighted.

Formats:
  html      Plotly page (default file shortest_path.html)
  dot       Graphviz source (default file shortest_path.dot)
  terminal  adjacency table printed to stdout (stderr with --json), no file

Examples:
  graphplot path
  graphplot path --source 3 --target 1 --format terminal
  graphplot path --format dot --out build/graph.dot --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("source") {
				cfg.Graph.Source = source
			}
			if cmd.Flags().Changed("target") {
				cfg.Graph.Target = target
			}
			if cmd.Flags().Changed("format") {
				cfg.Output.Format = format
			}
			if cmd.Flags().Changed("open") {
				cfg.Output.Open = open
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			g, err := cfg.Graph.Build()
			if err != nil {
				return err
			}
			a.log.Info("graph built", "nodes", g.VertexCount(), "edges", g.EdgeCount())

			ctx := cmd.Context()
			path, err := bfs.ShortestPath(g, cfg.Graph.Source, cfg.Graph.Target, bfs.WithContext[string](ctx))
			if err != nil {
				return err
			}
			a.log.Info("path found",
				"source", cfg.Graph.Source, "target", cfg.Graph.Target, "hops", path.Hops())

			dist, err := bfs.Distances(g, cfg.Graph.Source)
			if err != nil {
				return err
			}

			pos, err := graphLayout(g, cfg.Graph)
			if err != nil {
				return err
			}
			scene := render.NewGraphScene(cfg.Graph.Title, g, path, pos)
			renderer, err := render.GraphRendererByName[string](cfg.Output.Format)
			if err != nil {
				return err
			}

			result := pathResult{
				Source:       cfg.Graph.Source,
				Target:       cfg.Graph.Target,
				Path:         path,
				Hops:         path.Hops(),
				Eccentricity: eccentricity(dist),
			}

			stdout := cmd.OutOrStdout()
			if cfg.Output.Format == render.FormatTerminal {
				if cfg.Output.Open {
					a.log.Warn("open ignored: terminal format writes no file")
				}
				// keep stdout parseable when the result goes out as JSON
				table := stdout
				if a.outputJSON {
					table = cmd.ErrOrStderr()
				}
				if err := renderer.RenderGraph(table, scene); err != nil {
					return err
				}
				return a.outputResult(stdout, result)
			}

			file := out
			if file == "" {
				file = graphFile(cfg.Output)
			}
			if err := render.WriteFile(file, func(w io.Writer) error {
				return renderer.RenderGraph(w, scene)
			}); err != nil {
				return err
			}
			a.log.Info("file written", "file", file, "format", cfg.Output.Format)
			result.File = file

			if err := a.openFile(ctx, file, cfg.Output.Open); err != nil {
				return err
			}

			return a.outputResult(stdout, result)
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "source node (overrides config)")
	cmd.Flags().StringVar(&target, "target", "", "target node (overrides config)")
	cmd.Flags().StringVar(&format, "format", "", "output format: html|dot|terminal (overrides config)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: <output.dir>/<output.graph_file>)")
	cmd.Flags().BoolVar(&open, "open", false, "open the written file with the system viewer")

	return cmd
}

// graphLayout computes node positions for the configured layout.
func graphLayout(g *core.Graph[string], cfg config.GraphConfig) (layout.Positions[string], error) {
	if cfg.Layout == config.LayoutCircular {
		return layout.Circular(g.Nodes(), 1), nil
	}

	pos, err := layout.Spring(g, layout.WithSeed(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	return pos, nil
}

// graphFile is the default graph output path; dot output swaps the extension.
func graphFile(cfg config.OutputConfig) string {
	name := cfg.GraphFile
	if cfg.Format == render.FormatDOT {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".dot"
	}

	return filepath.Join(cfg.Dir, name)
}

// eccentricity is the largest hop distance from the source.
func eccentricity(dist map[string]int) int {
	ecc := 0
	for _, d := range dist {
		ecc = max(ecc, d)
	}

	return ecc
}
