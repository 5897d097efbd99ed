package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func newSyncCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Upload the local R2 mirror to the bucket",
		Long: `Walk the local R2 mirror and upload every file to the bucket,
preserving relative paths as object keys. Dotfiles are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var uploads []string
			root := cfg.Paths.R2Dir
			err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if strings.HasPrefix(entry.Name(), ".") {
					if entry.IsDir() {
						return filepath.SkipDir
					}
					return nil
				}
				if entry.IsDir() {
					return nil
				}
				uploads = append(uploads, path)
				return nil
			})
			if err != nil {
				return fmt.Errorf("walk %s: %w", root, err)
			}

			out := cmd.OutOrStdout()
			if len(uploads) == 0 {
				fmt.Fprintf(out, "Nothing to sync under %s\n", root)
				return nil
			}

			if dryRun {
				fmt.Fprintf(out, "Dry run: %d file(s) would be uploaded to %s\n", len(uploads), cfg.Store.Bucket)
				for _, path := range uploads {
					rel, relErr := filepath.Rel(root, path)
					if relErr != nil {
						return relErr
					}
					fmt.Fprintf(out, "  %s\n", filepath.ToSlash(rel))
				}
				return nil
			}

			store, err := ctx.objectStore()
			if err != nil {
				return err
			}
			if !store.Available() {
				return fmt.Errorf("%s not found on PATH; install with: npm install -g wrangler", cfg.Store.Binary)
			}

			bar := newProgressBar(len(uploads), "Syncing", cmd.ErrOrStderr())
			failed := 0
			for _, path := range uploads {
				rel, relErr := filepath.Rel(root, path)
				if relErr != nil {
					return relErr
				}
				key := filepath.ToSlash(rel)
				if err := store.Put(cmd.Context(), path, key); err != nil {
					failed++
					fmt.Fprintf(out, "%s %s: %v\n", failMark("FAIL"), key, err)
				} else {
					fmt.Fprintf(out, "%s %s\n", okMark("OK"), key)
				}
				_ = bar.Add(1)
			}
			_ = bar.Finish()

			fmt.Fprintf(out, "\nSynced %d/%d file(s) to %s\n", len(uploads)-failed, len(uploads), cfg.Store.Bucket)
			if failed > 0 {
				return fmt.Errorf("%d upload(s) failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "List files without uploading")
	return cmd
}
