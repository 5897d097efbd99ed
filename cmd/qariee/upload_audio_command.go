package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"qariee/internal/catalog"
	"qariee/internal/surah"
	"qariee/internal/transfer"
)

// staleStagingAge is how old an abandoned staging directory must be before
// a new run removes it.
const staleStagingAge = 24 * time.Hour

func newUploadAudioCommand(ctx *commandContext) *cobra.Command {
	var start int
	var end int
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "upload-audio <reciter-id> <base-url>",
		Short: "Download a reciter's surahs from a source and upload them to the bucket",
		Long: `Fetch surah MP3s from <base-url>/{NNN}.mp3 into a staging directory
and upload each to audio/<reciter-id>/{NNN}.mp3 in the bucket. Staged
files never survive the run.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := surah.ValidRange(start, end); err != nil {
				return err
			}

			reciterID := args[0]
			baseURL := strings.TrimRight(args[1], "/")
			out := cmd.OutOrStdout()

			store, err := ctx.catalogStore()
			if err != nil {
				return err
			}
			if doc, loadErr := store.Load(); loadErr == nil {
				known := false
				for _, reciter := range doc.Reciters {
					if reciter.ID == reciterID {
						known = true
						break
					}
				}
				if !known {
					fmt.Fprintf(out, "Warning: reciter %q is not in the catalog; run add-reciter first\n", reciterID)
				}
			} else if !errors.Is(loadErr, catalog.ErrNoDocument) {
				return loadErr
			}

			var uploader transfer.Uploader
			if !dryRun {
				objectStore, storeErr := ctx.objectStore()
				if storeErr != nil {
					return storeErr
				}
				if !objectStore.Available() {
					return fmt.Errorf("%s not found on PATH; install with: npm install -g wrangler", cfg.Store.Binary)
				}
				uploader = objectStore
				transfer.CleanStaleStaging(cfg.Paths.StagingDir, staleStagingAge, ctx.ensureLogger())
			}

			fetchOpts := transfer.DefaultFetchOptions()
			fetchOpts.MaxRetries = cfg.Transfer.MaxRetries
			fetchOpts.RetryDelay = time.Duration(cfg.Transfer.RetryDelaySeconds) * time.Second
			fetchOpts.Timeout = time.Duration(cfg.Transfer.TimeoutSeconds) * time.Second
			fetchOpts.Logger = ctx.ensureLogger()

			total := end - start + 1
			bar := newProgressBar(total, "Transferring", cmd.ErrOrStderr())

			orchestrator := transfer.NewOrchestrator(uploader, cfg.Paths.StagingDir, fetchOpts, ctx.ensureLogger())
			orchestrator.OnItem = func(item transfer.ItemResult) {
				switch item.Status {
				case transfer.ItemOK:
					fmt.Fprintf(out, "%s surah %s\n", okMark("OK"), surah.Pad(item.Surah))
				case transfer.ItemDryRun:
					fmt.Fprintf(out, "%s surah %s: %s -> %s\n", dimMark("DRY"), surah.Pad(item.Surah), item.SourceURL, item.RemoteKey)
				case transfer.ItemDownloadFailed:
					fmt.Fprintf(out, "%s surah %s: download: %v\n", failMark("FAIL"), surah.Pad(item.Surah), item.Err)
				case transfer.ItemUploadFailed:
					fmt.Fprintf(out, "%s surah %s: upload: %v\n", failMark("FAIL"), surah.Pad(item.Surah), item.Err)
				}
				_ = bar.Add(1)
			}

			summary, err := orchestrator.Run(cmd.Context(), transfer.Request{
				ReciterID: reciterID,
				BaseURL:   baseURL,
				Start:     start,
				End:       end,
				DryRun:    dryRun,
			})
			_ = bar.Finish()
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "\nDone: %d succeeded, %d failed, %d skipped\n",
				summary.Success, summary.Failed, summary.Skipped)
			if summary.Failed > 0 {
				return fmt.Errorf("%d surah(s) failed", summary.Failed)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&start, "start", "s", 1, "First surah number")
	cmd.Flags().IntVarP(&end, "end", "e", surah.Count, "Last surah number")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show planned transfers without network activity")
	return cmd
}
