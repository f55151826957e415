package main

import (
	"fmt"
	"os"

	"github.com/healixpharm/pharmpanel/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pharmpanel",
	Short: "HealiXPharm admin panel",
	Long: `pharmpanel serves the HealiXPharm pharmacy admin panel: landing,
login and signup screens, and the dashboard with its navigation bar and
collapsible side panel.

Run without a subcommand to start the web server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE:  runServe,
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse the admin panel in the terminal",
	RunE:  runPreview,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default ./pharmpanel.toml, or $PHARMPANEL_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(serveCmd, previewCmd)
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, err
	}
	if verbose {
		cfg.Log.Verbose = true
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
