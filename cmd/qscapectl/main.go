// qscapectl drives the route-solver backend from the terminal, using the
// same client packages as the desktop app.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Muayad-Arafeh/Qscape/pkg/config"
)

var (
	serverURL  string
	configPath string
)

func loadConfig() config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		bad.Fprintf(os.Stderr, "qscapectl: %v\n", err)
		os.Exit(1)
	}
	if serverURL != "" {
		cfg.Server.URL = serverURL
	}
	return cfg
}

func main() {
	root := &cobra.Command{
		Use:   "qscapectl",
		Short: "Evacuation route planning from the command line",
		Long: "qscapectl talks to a running route-solver backend: fetch the graph,\n" +
			"solve routes, compare algorithms, and inspect predictions.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&serverURL, "server", "", "Backend base URL (overrides config and QSCAPE_SERVER_URL)")
	root.PersistentFlags().StringVar(&configPath, "config", "qscape.toml", "Config file path")

	root.AddCommand(
		graphCmd(),
		solveCmd(),
		compareCmd(),
		predictCmd(),
		hardCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
