package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/debt-recovery-backend/internal/adapter/postgres"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd, func(m *postgres.Migrator) error {
					results, err := m.Up(cmd.Context())
					for _, r := range results {
						fmt.Fprintf(cmd.OutOrStdout(), "applied %s (%s)\n", r.Source.Path, r.Duration)
					}
					if err != nil {
						return err
					}
					if len(results) == 0 {
						fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the latest migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd, func(m *postgres.Migrator) error {
					r, err := m.Down(cmd.Context())
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "rolled back %s\n", r.Source.Path)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the state of every migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd, func(m *postgres.Migrator) error {
					statuses, err := m.Status(cmd.Context())
					if err != nil {
						return err
					}
					w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "VERSION\tSTATE\tAPPLIED AT\tFILE")
					for _, s := range statuses {
						applied := "-"
						if s.State == goose.StateApplied {
							applied = s.AppliedAt.Format("2006-01-02 15:04:05")
						}
						fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
					}
					return w.Flush()
				})
			},
		},
	)
	return cmd
}

func withMigrator(cmd *cobra.Command, fn func(m *postgres.Migrator) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	m, err := postgres.NewMigrator(cmd.Context(), cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer m.Close()
	return fn(m)
}
