package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Muayad-Arafeh/Qscape/pkg/api"
	"github.com/Muayad-Arafeh/Qscape/pkg/pipeline"
)

func compareCmd() *cobra.Command {
	var avoidHazards bool

	cmd := &cobra.Command{
		Use:   "compare <start> <end>",
		Short: "Run every algorithm and tabulate the results",
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
			reporter := pipeline.NewReporter(api.NewClient(cfg.Server.URL))
			rows, err := reporter.Compare(context.Background(), api.SolveRequest{
				Start:        start,
				End:          end,
				AvoidHazards: avoidHazards,
				RiskWeight:   cfg.Solver.RiskWeight,
				HazardWeight: cfg.Solver.HazardWeight,
			})
			if err != nil {
				return err
			}

			brand.Printf("%-20s %10s %12s %8s %6s %s\n", "Algorithm", "Cost", "Time (ms)", "Optimal", "Hops", "Mode")
			for _, row := range rows {
				if row.Error != "" {
					fmt.Printf("%-20s ", row.Algorithm)
					bad.Println(row.Error)
					continue
				}
				optimal := ""
				if row.Optimal {
					optimal = "yes"
				}
				line := fmt.Sprintf("%-20s %10s %12s %8s %6d %s",
					row.Algorithm, row.Cost, row.TimeMS, optimal, row.PathLen, row.Mode)
				if row.Cost == pipeline.UnreachableGlyph {
					warn.Println(line)
				} else {
					fmt.Println(line)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&avoidHazards, "avoid-hazards", true, "Route around hazard nodes")
	return cmd
}
