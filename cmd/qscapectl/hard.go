package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Muayad-Arafeh/Qscape/pkg/api"
)

func hardCmd() *cobra.Command {
	var (
		algorithm   string
		constraints bool
	)

	cmd := &cobra.Command{
		Use:   "hard <start> <end>",
		Short: "Solve with population and vehicle constraints",
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
			res, err := client.SolveHard(context.Background(), api.HardSolveRequest{
				Start:             start,
				End:               end,
				Algorithm:         algorithm,
				EnableConstraints: constraints,
			})
			if err != nil {
				return err
			}

			if res.IsValid {
				good.Println("Constrained route is valid")
			} else {
				bad.Println("Constrained route violates constraints")
			}
			fmt.Printf("  %-18s %v\n", "Path", res.Path)
			fmt.Printf("  %-18s %.2f\n", "Cost", res.Cost)
			fmt.Printf("  %-18s %.2f\n", "Adjusted cost", res.AdjustedCost)
			fmt.Printf("  %-18s %d\n", "Population served", res.PopulationServed)
			fmt.Printf("  %-18s %d\n", "Population left", res.PopulationLeft)
			fmt.Printf("  %-18s %d\n", "Vehicles used", res.VehiclesUsed)
			if res.Penalty > 0 {
				warn.Printf("  %-18s %.2f\n", "Penalty", res.Penalty)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "dijkstra", "Solver algorithm")
	cmd.Flags().BoolVar(&constraints, "constraints", true, "Enforce capacity and vehicle constraints")
	return cmd
}
