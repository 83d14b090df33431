package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphplot/config"
	"github.com/katalvlaran/graphplot/logging"
	"github.com/katalvlaran/graphplot/render"
)

// app carries the global flags and the state resolved from them.
type app struct {
	// Global flags
	cfgFile    string
	logLevel   string
	outputJSON bool

	cfg  config.Config
	log  *slog.Logger
	open render.Opener
}

// Execute builds the command tree and runs it against os.Args.
func Execute() error {
	return newRootCmd(render.Open).ExecuteContext(context.Background())
}

// newRootCmd represents the base command when called without any subcommands.
func newRootCmd(open render.Opener) *cobra.Command {
	a := &app{open: open}

	rootCmd := &cobra.Command{
		Use:   "graphplot",
		Short: "Shortest paths and surface plots",
		Long: `graphplot - draw a BFS shortest path and a sampled 3D surface.

Without a config file the built-in sample is used: the graph
(1,2),(1,3),(2,3),(2,4),(3,4) queried from 1 to 4, and a 30×30 grid
of z = cos(x)·sin(y) over [-2, 2].

Examples:
  # Write shortest_path.html and open it
  graphplot path --open

  # Print the adjacency table and path in the terminal
  graphplot path --format terminal

  # Graphviz output for another query
  graphplot --config graph.yaml path --source a --target f --format dot --out g.dot

  # Write 3d_plot.html with a finer grid
  graphplot surface --points 60
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (YAML; default is the built-in sample)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&a.outputJSON, "json", false, "output result as JSON (for piping)")

	// Add subcommands
	rootCmd.AddCommand(newPathCmd(a))
	rootCmd.AddCommand(newSurfaceCmd(a))

	return rootCmd
}

// init loads the configuration and builds the logger.
func (a *app) init(stderr io.Writer) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.log = logging.New(cfg.Logging, stderr)
	a.log.Debug("config loaded", "file", a.cfgFile)

	return nil
}

// outputResult writes result to w as YAML, or JSON when --json is set.
func (a *app) outputResult(w io.Writer, result any) error {
	if a.outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, err = w.Write(data)

	return err
}

// openFile hands path to the viewer when requested.
func (a *app) openFile(ctx context.Context, path string, want bool) error {
	if !want {
		return nil
	}
	if err := a.open(ctx, path); err != nil {
		return err
	}
	a.log.Info("viewer opened", "file", path)

	return nil
}
