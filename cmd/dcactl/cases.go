package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/debt-recovery-backend/internal/app"
	"github.com/heartmarshall/debt-recovery-backend/internal/service/reporting"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import debt cases from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
				res, err := c.Importer.ImportCSV(ctx, cliActor, f, filepath.Base(args[0]))
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "imported %d, failed %d\n", res.Imported, res.Failed)
				for _, e := range res.Errors {
					fmt.Fprintf(out, "  line %d %s: %s\n", e.Line, e.Invoice, e.Message)
				}
				return nil
			})
		},
	}
}

func exportCmd() *cobra.Command {
	var (
		format  string
		outPath string
		in      reporting.FilterInput
		minDays int
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export debt cases as CSV or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format = strings.ToLower(format)
			if format != "csv" && format != "json" {
				return fmt.Errorf("unknown format %q (want csv or json)", format)
			}
			if cmd.Flags().Changed("min-days-overdue") {
				in.MinDaysOverdue = &minDays
			}
			filter, err := in.Parse()
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
				if format == "csv" {
					n, err := c.Reporting.ExportCSV(ctx, cliActor, filter, w)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "exported %d cases\n", n)
					return nil
				}
				details, err := c.Reporting.ExportJSON(ctx, cliActor, filter, true)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(details)
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", "csv", "output format: csv or json")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVar(&in.Status, "status", "", "filter by case status")
	cmd.Flags().StringVar(&in.Stage, "stage", "", "filter by investigation stage")
	cmd.Flags().StringVar(&in.MinAmount, "min-amount", "", "minimum amount")
	cmd.Flags().StringVar(&in.MaxAmount, "max-amount", "", "maximum amount")
	cmd.Flags().IntVar(&minDays, "min-days-overdue", 0, "minimum days overdue")
	cmd.Flags().StringVar(&in.SortBy, "sort-by", "", "amount, daysOverdue, customerName or invoiceNumber")
	cmd.Flags().BoolVar(&in.Ascending, "asc", false, "sort ascending")
	return cmd
}

func scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Run one scoring cycle over unscored cases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
				n, err := c.Scoring.ScoreUnscored(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "scored %d cases\n", n)
				return nil
			})
		},
	}
}

func tokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Maintain stored tokens",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "cleanup",
		Short: "Delete expired and revoked refresh tokens and used one-time codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
				n, err := c.Auth.CleanupExpiredTokens(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %d tokens\n", n)
				return nil
			})
		},
	})
	return cmd
}
