package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Muayad-Arafeh/Qscape/pkg/api"
	"github.com/Muayad-Arafeh/Qscape/pkg/graph"
	"github.com/Muayad-Arafeh/Qscape/pkg/pipeline"
	"github.com/Muayad-Arafeh/Qscape/pkg/view"
)

// promptSurface answers the recommendation gate on the terminal.
type promptSurface struct {
	assumeYes bool
}

func (s promptSurface) Notify(message, severity string) {
	switch severity {
	case pipeline.SeverityError:
		bad.Println(message)
	case pipeline.SeverityWarning:
		warn.Println(message)
	default:
		fmt.Println(message)
	}
}

func (s promptSurface) Confirm(title, message string) (bool, error) {
	warn.Println(title)
	fmt.Println(message)
	if s.assumeYes {
		subtle.Println("(--yes) proceeding")
		return true, nil
	}
	fmt.Print("Proceed? [y/N] ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func parseNodeID(arg string) (graph.NodeID, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid node id %q", arg)
	}
	return graph.NodeID(v), nil
}

func solveCmd() *cobra.Command {
	var (
		algorithm    string
		avoidHazards bool
		assumeYes    bool
		noDelay      bool
		blockIDs     []int
	)

	cmd := &cobra.Command{
		Use:   "solve <start> <end>",
		Short: "Compute an evacuation route",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseNodeID(args[0])
			if err != nil {
				return err
			}
			end, err := parseNodeID(args[1])
			if err != nil {
				return err
			}

			cfg := loadConfig()
			client := api.NewClient(cfg.Server.URL)
			ctx := context.Background()

			g, err := client.Graph(ctx)
			if err != nil {
				return fmt.Errorf("fetch graph: %w", err)
			}
			state := view.NewState(g)
			state.SetStart(start)
			state.SetEnd(end)
			for _, id := range blockIDs {
				state.ToggleBlocked(graph.NodeID(id))
			}

			orch := pipeline.NewOrchestrator(state, client, promptSurface{assumeYes: assumeYes}, nil)
			orch.SetDelays(cfg.DelayTable())
			if noDelay {
				orch.SetDelays(zeroDelays())
			}
			orch.SetBusyFunc(func(active bool) {
				if active {
					subtle.Println("solving...")
				}
			})

			err = orch.Solve(ctx, pipeline.SolveOptions{
				Algorithm:    algorithm,
				AvoidHazards: avoidHazards,
				RiskWeight:   cfg.Solver.RiskWeight,
				HazardWeight: cfg.Solver.HazardWeight,
			})
			if errors.Is(err, pipeline.ErrDeclined) {
				return nil
			}
			if err != nil {
				return err
			}

			p := state.SolvedPath()
			good.Printf("Route found (%s)\n", p.Algorithm)
			fmt.Printf("  %-12s %v\n", "Path", p.Path)
			fmt.Printf("  %-12s %.2f\n", "Cost", p.Cost)
			fmt.Printf("  %-12s %.2f ms\n", "Solved in", p.ExecutionTimeMS)
			if p.IsOptimal {
				subtle.Println("  optimal")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "dijkstra", "Solver algorithm")
	cmd.Flags().BoolVar(&avoidHazards, "avoid-hazards", true, "Route around hazard nodes")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Accept the recommendation gate without prompting")
	cmd.Flags().BoolVar(&noDelay, "no-delay", false, "Skip the presentation delay")
	cmd.Flags().IntSliceVar(&blockIDs, "block", nil, "Node ids to block before solving")
	return cmd
}

// zeroDelays removes the presentation pause for every known algorithm.
func zeroDelays() pipeline.DelayTable {
	t := pipeline.DelayTable{}
	for _, algorithm := range pipeline.CompareOrder {
		t[algorithm] = pipeline.DelayProfile{}
	}
	return t
}
