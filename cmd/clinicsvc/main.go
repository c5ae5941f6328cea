package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/you/clinicsvc/internal/app"
	"github.com/you/clinicsvc/internal/config"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "clinicsvc",
		Short:        "Clinical record API for doctors and their patients",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.yml (overrides CLINICSVC_CONFIG)")

	load := func() (*config.Config, error) {
		if configPath != "" {
			return config.LoadFile(configPath)
		}
		return config.Load()
	}

	rootCmd.AddCommand(serveCmd(load), migrateCmd(load))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd(load func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			return app.Run(cfg)
		},
	}
}

func migrateCmd(load func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create tables and seed route policies",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			return app.Migrate(cfg)
		},
	}
}
