package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jobtracker/internal/config"
	"jobtracker/pkg/export"
	"jobtracker/pkg/logger"
)

// exportCommand constructs the 'export' subcommand that dumps every tracked
// application as CSV, to stdout or a file.
func exportCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exports all applications as CSV",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			apps, err := strg.AllApplications(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not load applications", zap.Error(err))
			}

			out := os.Stdout
			if path, _ := cmd.Flags().GetString("output"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					logger.Fatal(ctx, "could not create output file", zap.Error(err))
				}
				defer func() {
					if err := f.Close(); err != nil {
						logger.Warn(ctx, "could not close output file", zap.Error(err))
					}
				}()
				out = f
			}

			if err := export.ApplicationsCSV(out, apps); err != nil {
				logger.Fatal(ctx, "could not write CSV", zap.Error(err))
			}
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output file path (defaults to stdout)")

	return cmd
}
