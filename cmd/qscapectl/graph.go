package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Muayad-Arafeh/Qscape/pkg/api"
	"github.com/Muayad-Arafeh/Qscape/pkg/graph"
)

func graphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Fetch and summarize the evacuation graph",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()
			client := api.NewClient(cfg.Server.URL)
			g, err := client.Graph(context.Background())
			if err != nil {
				bad.Printf("Failed to fetch graph: %v\n", err)
				os.Exit(1)
			}
			if findings := graph.Validate(g); len(findings) > 0 {
				warn.Printf("Graph has %d validation findings:\n", len(findings))
				for _, f := range findings {
					fmt.Printf("  node %d: %s\n", f.NodeID, f.Message)
				}
			}

			brand.Println("Evacuation graph")
			fmt.Printf("  %-12s %d\n", "Nodes", g.NodeCount())
			fmt.Printf("  %-12s %d\n", "Edges", len(g.Edges))
			fmt.Printf("  %-12s %d -> %d\n", "Default", g.Start, g.End)

			regions := map[graph.RegionType]int{}
			blocked := 0
			for _, n := range g.Nodes {
				regions[n.RegionType]++
				if n.Blocked {
					blocked++
				}
			}
			fmt.Println()
			for region, count := range regions {
				fmt.Printf("  %-26s %d\n", region, count)
			}
			if hz := g.HazardNodeIDs(); len(hz) > 0 {
				warn.Printf("  Hazard nodes: %v\n", hz)
			}
			if blocked > 0 {
				subtle.Printf("  Blocked nodes: %d\n", blocked)
			}
		},
	}
}
