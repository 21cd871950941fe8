// Command dcactl is the operator tool for the debt recovery backend: schema
// migrations, sample data, CSV import and export, and on-demand scoring.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/debt-recovery-backend/internal/app"
	"github.com/heartmarshall/debt-recovery-backend/internal/config"
	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

// cliActor is the principal recorded for changes made from the command line.
var cliActor = domain.Actor{Email: "dcactl@system", Role: domain.RoleAdmin}

// configPath overrides CONFIG_PATH when set with --config.
var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "dcactl",
		Short:         "Operate the debt recovery backend",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $CONFIG_PATH or ./config.yaml)")

	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(tokensCmd())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withContainer loads configuration, wires the application and runs fn.
func withContainer(cmd *cobra.Command, fn func(ctx context.Context, c *app.Container) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	ctx := cmd.Context()
	c, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	return fn(ctx, c)
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Inspect configuration"}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "env",
			Short: "List the environment variables the server reads",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				usage, err := config.Usage()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), usage)
				return nil
			},
		},
		&cobra.Command{
			Use:   "check",
			Short: "Load and validate the configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok: listening on %s:%d, scoring %t, kafka %t\n",
					cfg.Server.Host, cfg.Server.Port, cfg.Scoring.Enabled, cfg.Kafka.Enabled)
				return nil
			},
		},
	)
	return cmd
}
