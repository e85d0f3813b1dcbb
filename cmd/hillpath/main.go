// Package main provides the hillpath CLI: it reads an elevation map and
// prints the fewest steps to the best-signal location.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillpath/config"
	"github.com/katalvlaran/hillpath/heightmap"
	"github.com/katalvlaran/hillpath/internal/logging"
)

// Version is the current hillpath version.
var Version = "0.3.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// solveFlags holds the command-line overrides for a solve run.
type solveFlags struct {
	configPath   string
	part         int
	weighting    string
	connectivity int
	draw         bool
	logLevel     string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hillpath",
		Short:         "Hill-climbing shortest paths over elevation maps",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newSolveCmd(), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the hillpath version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "hillpath", Version)
		},
	}
}

func newSolveCmd() *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve [input]",
		Short: "Find the fewest steps from S (part 1) or any 'a' (part 2) to E",
		Long: `Reads an elevation map (a file, or stdin when no file or "-" is given)
and prints the fewest steps to E. Flags override values from --config.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, f)
		},
	}
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Path to a YAML config file")
	cmd.Flags().IntVarP(&f.part, "part", "p", 0, "Part to solve: 1, 2, or 0 for both")
	cmd.Flags().StringVar(&f.weighting, "weighting", config.WeightingUnit, "Move cost: unit or climb")
	cmd.Flags().IntVar(&f.connectivity, "connectivity", 4, "Neighbourhood: 4 or 8")
	cmd.Flags().BoolVar(&f.draw, "draw", false, "Draw each route under its result")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn or error")

	return cmd
}

// resolveConfig merges the config file (if any), explicitly set flags and
// the positional input argument, in that order of precedence (lowest first).
func resolveConfig(cmd *cobra.Command, args []string, f *solveFlags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("part") {
		cfg.Part = f.part
	}
	if flags.Changed("weighting") {
		cfg.Weighting = f.weighting
	}
	if flags.Changed("connectivity") {
		cfg.Connectivity = f.connectivity
	}
	if flags.Changed("draw") {
		cfg.Draw = f.draw
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}

	return cfg, cfg.Validate()
}

func runSolve(cmd *cobra.Command, args []string, f *solveFlags) error {
	cfg, err := resolveConfig(cmd, args, f)
	if err != nil {
		return err
	}
	level, _ := logging.ParseLevel(cfg.Log.Level)
	log := logging.New(cmd.ErrOrStderr(), level)

	data, err := readInput(cfg.Input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	hm, err := heightmap.Parse(string(data))
	if err != nil {
		return err
	}
	log.Debug("heightmap parsed", "width", hm.Width, "height", hm.Height, "lowlands", len(hm.Lowlands()))

	opts := append(cfg.HeightmapOptions(), heightmap.WithLogger(log))
	if n, err := hm.ReachableFrom(hm.Start(), opts...); err == nil {
		log.Debug("cells reachable from start", "count", n, "of", hm.Len())
	}

	out := cmd.OutOrStdout()
	if cfg.Part == 0 || cfg.Part == 1 {
		p, err := hm.Route(opts...)
		if err != nil {
			return fmt.Errorf("part1: %w", err)
		}
		fmt.Fprintf(out, "part1 result = %d\n", p.Steps())
		if cfg.Draw {
			fmt.Fprint(out, hm.Render(p.Nodes))
		}
	}
	if cfg.Part == 0 || cfg.Part == 2 {
		p, err := hm.RouteFromLowest(opts...)
		if err != nil {
			return fmt.Errorf("part2: %w", err)
		}
		fmt.Fprintf(out, "part2 result = %d\n", p.Steps())
		if cfg.Draw {
			fmt.Fprint(out, hm.Render(p.Nodes))
		}
	}

	return nil
}

// readInput reads the file at path, or stdin when path is empty or "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return data, nil
}
