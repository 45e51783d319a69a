package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/robosearch/search"
)

var strategyDescriptions = map[string]string{
	"bfs":    "breadth-first: oldest frontier entry first",
	"dfs":    "depth-first: newest frontier entry first",
	"iddfs":  "iterative deepening: depth-first passes under growing depth bounds",
	"greedy": "greedy best-first: lowest heuristic cost first",
	"astar":  "guided: lowest heuristic + path + hazard cost first",
}

func (a *App) newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available search strategies",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range search.Strategies() {
				_, _ = fmt.Fprintf(a.stdout, "%-8s %s\n", name, strategyDescriptions[name])
			}
		},
	}
}
