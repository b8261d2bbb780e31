package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sbilibin2017/phixelforge/internal/database"
	"github.com/sbilibin2017/phixelforge/internal/docstore"
	"github.com/sbilibin2017/phixelforge/internal/migration"
	"github.com/sbilibin2017/phixelforge/internal/repositories"
)

func (a *app) newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create the relational schema if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openPostgres(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date.")
			return nil
		},
	}
}

func (a *app) newMigrateCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Copy legacy image documents from Redis into PostgreSQL",
		Long: `Copy every legacy image document into the images table, creating
placeholder users for unknown owners.

The copy is not idempotent: running it twice inserts every image twice.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rdb, err := a.openRedis(ctx)
			if err != nil {
				return err
			}
			defer rdb.Close()
			docs := docstore.New(rdb)

			var report *migration.Report
			if dryRun {
				report, err = migration.New(nil, docs, nil, nil).DryRun(ctx)
			} else {
				db, openErr := a.openPostgres(ctx)
				if openErr != nil {
					return openErr
				}
				defer db.Close()

				m := migration.New(
					migration.SchemaFunc(func(ctx context.Context) error { return database.Migrate(ctx, db) }),
					docs,
					repositories.NewUserRepository(db, nil),
					repositories.NewImageRepository(db, nil),
				)
				report, err = m.Run(ctx)
			}
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			if a.jsonOutput {
				return printJSON(cmd.OutOrStdout(), report)
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Only count the legacy documents")
	return cmd
}
