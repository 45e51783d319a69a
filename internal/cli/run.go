package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/robosearch/board"
	"github.com/katalvlaran/robosearch/internal/config"
	"github.com/katalvlaran/robosearch/internal/logging"
	"github.com/katalvlaran/robosearch/search"
	"github.com/katalvlaran/robosearch/state"
)

// runOptions holds options for the run command.
type runOptions struct {
	configPath        string
	strategy          string
	seed              int64
	portalProbability float64
	maxExpansions     int
	perCandidate      bool
	logLevel          string
	logFormat         string
	jsonOutput        bool
	timeout           time.Duration
}

// runReport is the --json output of the run command.
type runReport struct {
	Map        string   `json:"map"`
	Name       string   `json:"name,omitempty"`
	Start      string   `json:"start"`
	Goal       string   `json:"goal"`
	Strategy   string   `json:"strategy"`
	Found      bool     `json:"found"`
	Steps      int      `json:"steps"`
	Path       []string `json:"path"`
	Processed  int      `json:"processed"`
	Remaining  int      `json:"remaining"`
	Expansions int      `json:"expansions"`
	Bound      int      `json:"bound,omitempty"`
	Truncated  bool     `json:"truncated,omitempty"`
	ElapsedMS  int64    `json:"elapsed_ms"`
}

func (a *App) newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run [map]",
		Short: "Search a path on a map",
		Long: `Search a path from the robot to the goal on a map file.

Maps are text grids (.txt, .map) or YAML documents (.yaml, .yml) with a
"rows" list. Flags override the values of the configuration file.

Examples:
  # Breadth-first search on a text map
  robosearch run maps/level1.txt

  # Guided search with a pinned portal stream
  robosearch run -s astar --seed 7 maps/level1.txt

  # Everything from a configuration file, JSON result
  robosearch run -c run.yaml --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.resolveConfig(cmd, opts, args)
			if err != nil {
				return err
			}
			return a.runSearch(cmd.Context(), cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "", "Search strategy (see 'robosearch strategies')")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed of the portal random stream (default: clock)")
	cmd.Flags().Float64Var(&opts.portalProbability, "portal-probability", state.DefaultPortalProbability, "Teleport probability of a portal")
	cmd.Flags().IntVar(&opts.maxExpansions, "max-expansions", 0, "Stop after this many expansions (0 = unlimited)")
	cmd.Flags().BoolVar(&opts.perCandidate, "per-candidate", false, "Guided search scores each candidate on its own costs")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "", "Log format (console, json)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "Abort the search after this duration")

	return cmd
}

// resolveConfig layers defaults, the configuration file and changed flags.
func (a *App) resolveConfig(cmd *cobra.Command, opts *runOptions, args []string) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.LoadFile(opts.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Map = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("strategy") {
		cfg.Strategy = opts.strategy
	}
	if flags.Changed("seed") {
		seed := opts.seed
		cfg.Seed = &seed
	}
	if flags.Changed("portal-probability") {
		cfg.PortalProbability = opts.portalProbability
	}
	if flags.Changed("max-expansions") {
		cfg.MaxExpansions = opts.maxExpansions
	}
	if flags.Changed("per-candidate") {
		cfg.Guided.PerCandidate = opts.perCandidate
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}
	cfg.Log.Output = a.stderr

	if cfg.Map == "" {
		return nil, fmt.Errorf("no map specified (use argument or set map in config)")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// runSearch loads the map, runs the configured strategy and prints the result.
func (a *App) runSearch(ctx context.Context, cfg *config.Config, opts *runOptions) error {
	logger := logging.New(cfg.Log)

	b, err := board.LoadFile(cfg.Map)
	if err != nil {
		return fmt.Errorf("failed to load map: %w", err)
	}
	strategy, err := cfg.BuildStrategy()
	if err != nil {
		return err
	}

	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	engine, err := search.New(b, strategy,
		search.WithContext(ctx),
		search.WithLogger(logger),
		search.WithMaxExpansions(cfg.MaxExpansions),
	)
	if err != nil {
		return fmt.Errorf("failed to build search: %w", err)
	}
	logging.Apply(logger.Debug(),
		logging.Component("cli"),
		logging.Str("map", cfg.Map),
		logging.Strategy(engine.Strategy().Name()),
	).Msg("search configured")

	started := time.Now()
	robots := state.NewRobotFactory(cfg.StateOptions()...)
	var root *state.RobotState
	res, err := engine.Search(func(grid *board.Board) (state.State, error) {
		s, err := robots(grid)
		if err != nil {
			return nil, err
		}
		root = s.(*state.RobotState)
		return root, nil
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	elapsed := time.Since(started)

	logging.Apply(logger.Info(),
		logging.Str("map", cfg.Map),
		logging.Position("start", root.Start()),
		logging.Position("goal", root.Goal()),
		logging.Strategy(res.Strategy),
		logging.Found(res.Found),
		logging.PathLength(res.Steps()),
		logging.Duration(elapsed),
	).Msg("search complete")

	report := runReport{
		Map:        cfg.Map,
		Name:       b.Name(),
		Start:      root.Start().String(),
		Goal:       root.Goal().String(),
		Strategy:   res.Strategy,
		Found:      res.Found,
		Steps:      res.Steps(),
		Path:       make([]string, 0, len(res.Path)),
		Processed:  len(res.Processed),
		Remaining:  len(res.Remaining),
		Expansions: res.Expansions,
		Bound:      res.Bound,
		Truncated:  res.Truncated,
		ElapsedMS:  elapsed.Milliseconds(),
	}
	for _, p := range res.Path {
		report.Path = append(report.Path, p.String())
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	a.printReport(report)
	return nil
}

func (a *App) printReport(r runReport) {
	if r.Name != "" {
		_, _ = fmt.Fprintf(a.stdout, "Map: %s (%s)\n", r.Map, r.Name)
	} else {
		_, _ = fmt.Fprintf(a.stdout, "Map: %s\n", r.Map)
	}
	_, _ = fmt.Fprintf(a.stdout, "Start: %s  Goal: %s\n", r.Start, r.Goal)
	_, _ = fmt.Fprintf(a.stdout, "Strategy: %s\n", r.Strategy)
	if r.Found {
		_, _ = fmt.Fprintf(a.stdout, "Path found in %d steps\n", r.Steps)
		_, _ = fmt.Fprintf(a.stdout, "  %s\n", strings.Join(r.Path, " -> "))
	} else if r.Truncated {
		_, _ = fmt.Fprintf(a.stdout, "No path found: expansion limit reached\n")
	} else {
		_, _ = fmt.Fprintf(a.stdout, "No path found\n")
	}
	if r.Bound > 0 {
		_, _ = fmt.Fprintf(a.stdout, "Depth bound: %d\n", r.Bound)
	}
	_, _ = fmt.Fprintf(a.stdout, "Processed: %d\n", r.Processed)
	_, _ = fmt.Fprintf(a.stdout, "Remaining: %d\n", r.Remaining)
	_, _ = fmt.Fprintf(a.stdout, "Expansions: %d\n", r.Expansions)
	_, _ = fmt.Fprintf(a.stdout, "Elapsed: %dms\n", r.ElapsedMS)
}
