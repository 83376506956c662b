package main

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/spf13/cobra"

	"github.com/Muayad-Arafeh/Qscape/pkg/api"
	"github.com/Muayad-Arafeh/Qscape/pkg/graph"
)

func predictCmd() *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "predict <start> <end>",
		Short: "Show traffic, hazard, and route-quality predictions",
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

			var (
				traffic *graph.TrafficPrediction
				hazards *graph.HazardPredictions
				quality *graph.RouteQuality
			)
			g, ctx := errgroup.WithContext(context.Background())
			g.Go(func() error {
				var err error
				traffic, err = client.PredictTraffic(ctx, nil, nil)
				return err
			})
			g.Go(func() error {
				var err error
				hazards, err = client.PredictHazards(ctx, nil, nil)
				return err
			})
			g.Go(func() error {
				var err error
				quality, err = client.PredictRouteQuality(ctx, start, end, algorithm, nil, nil)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			brand.Println("Route quality")
			printRecommendation(quality)
			fmt.Printf("  %-20s %.1f%%\n", "Success probability", quality.SuccessProbability)
			if quality.Reason != "" {
				fmt.Printf("  %-20s %s\n", "Reason", quality.Reason)
			}
			fmt.Printf("  %-20s %.1f\n", "Estimated time", quality.EstimatedTime)
			fmt.Printf("  %-20s %.1f\n", "Complexity", quality.ComplexityScore)

			fmt.Println()
			brand.Println("Traffic")
			if traffic.PeakHour {
				warn.Println("  peak hour")
			}
			fmt.Printf("  %d nodes with congestion data\n", len(traffic.Nodes))

			fmt.Println()
			brand.Println("Hazards")
			if hazards.NightTime {
				warn.Println("  night time")
			}
			if len(hazards.HighRiskNodes) > 0 {
				bad.Printf("  High-risk nodes: %v\n", hazards.HighRiskNodes)
			} else {
				good.Println("  No high-risk nodes")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "dijkstra", "Solver algorithm")
	return cmd
}

func printRecommendation(q *graph.RouteQuality) {
	switch q.Recommendation {
	case graph.RecommendProceed:
		good.Printf("  %-20s %s\n", "Recommendation", q.Recommendation)
	case graph.RecommendReject:
		bad.Printf("  %-20s %s\n", "Recommendation", q.Recommendation)
	default:
		warn.Printf("  %-20s %s\n", "Recommendation", q.Recommendation)
	}
}
