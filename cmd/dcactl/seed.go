package main

import (
	"context"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/debt-recovery-backend/internal/app"
	"github.com/heartmarshall/debt-recovery-backend/internal/app/seeder"
)

func seedCmd() *cobra.Command {
	var (
		file   string
		phases []string
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load sample users, cases and investigations",
		Long: `Load sample data. Every phase is an upsert, so the command may be re-run.
Without --file the bundled sample data set is used.

Phases: users, cases, investigations, history.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fixtures, err := seeder.LoadFixtures(file)
			if err != nil {
				return err
			}
			return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
				p := seeder.NewPipeline(c.Logger, c.SeedStores(), fixtures, seeder.BcryptHasher(c.Config.Auth.BcryptCost))
				if err := p.Run(ctx, phases); err != nil {
					return err
				}
				printPhases(cmd, p.Results())
				if p.HasErrors() {
					return fmt.Errorf("seed finished with errors")
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML fixtures file (default: bundled sample data)")
	cmd.Flags().StringSliceVar(&phases, "phases", nil, "run only these phases")
	return cmd
}

func printPhases(cmd *cobra.Command, results map[string]seeder.PhaseResult) {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PHASE\tINSERTED\tUPDATED\tSKIPPED\tDURATION\tERROR")
	for _, name := range names {
		r := results[name]
		errMsg := ""
		if r.Err != nil {
			errMsg = r.Err.Error()
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%s\n", name, r.Inserted, r.Updated, r.Skipped, r.Duration.Round(1e6), errMsg)
	}
	w.Flush()
}
