package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"qariee/internal/appdb"
)

func newGenerateDBCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "generate-db",
		Short: "Build the bundled SQLite database from the catalog",
		Long: `Generate the read-only SQLite database the app ships with, seeded
from db.json and the surah table. An existing database at the output
path is replaced.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := ctx.catalogStore()
			if err != nil {
				return err
			}
			doc, err := store.Load()
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = filepath.Join(cfg.Paths.AppAssetsDir, "database.db")
			}

			stats, err := appdb.Build(cmd.Context(), path, doc, ctx.ensureLogger())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Database written to %s\n", path)
			fmt.Fprintf(out, "Reciters: %d, surahs: %d, data version: %s\n",
				stats.Reciters, stats.Surahs, stats.DataVersion)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default: <app_assets_dir>/database.db)")
	return cmd
}
