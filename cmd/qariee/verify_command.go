package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"qariee/internal/cdncheck"
	"qariee/internal/surah"
)

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	var concurrency int
	var timeoutSeconds int

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that every catalog asset exists on the CDN",
		Long: `Probe the CDN for every reciter image and every surah of every
reciter, then report coverage. Exits non-zero when anything is missing.`,
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
			if len(doc.Reciters) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Catalog has no reciters; nothing to verify")
				return nil
			}

			if concurrency <= 0 {
				concurrency = cfg.Verify.Concurrency
			}
			if timeoutSeconds <= 0 {
				timeoutSeconds = cfg.Verify.TimeoutSeconds
			}
			timeout := time.Duration(timeoutSeconds) * time.Second

			cdnURL := strings.TrimRight(store.CDNBaseURL(cfg.CDN.BaseURL), "/")
			reciterIDs := make([]string, 0, len(doc.Reciters))
			for _, reciter := range doc.Reciters {
				reciterIDs = append(reciterIDs, reciter.ID)
			}

			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()
			checker := cdncheck.NewChecker(&http.Client{})

			fmt.Fprintf(out, "Verifying %d reciter(s) against %s\n\n", len(reciterIDs), cdnURL)

			// Images: one probe per reciter.
			imageKeys := make([]cdncheck.Key, 0, len(reciterIDs))
			for _, id := range reciterIDs {
				imageKeys = append(imageKeys, cdncheck.Key{ReciterID: id})
			}
			imageBar := newProgressBar(len(imageKeys), "Images", errOut)
			imageResults := checker.Scan(cmd.Context(), imageKeys,
				func(key cdncheck.Key) string {
					return fmt.Sprintf("%s/images/reciters/%s.jpg", cdnURL, key.ReciterID)
				},
				cdncheck.ScanOptions{
					Concurrency: concurrency,
					Timeout:     timeout,
					Progress:    func(done, total int) { _ = imageBar.Set(done) },
					Logger:      ctx.ensureLogger(),
				})
			_ = imageBar.Finish()

			imageRows := make([][]string, 0, len(reciterIDs))
			for _, id := range reciterIDs {
				result := imageResults[cdncheck.Key{ReciterID: id}]
				status := okMark("present")
				if !result.Present {
					status = failMark("missing")
				}
				code := ""
				if result.StatusCode != 0 {
					code = strconv.Itoa(result.StatusCode)
				}
				imageRows = append(imageRows, []string{id, status, code})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Reciter ID", "Image", "HTTP Code"},
				imageRows,
				[]columnAlignment{alignLeft, alignLeft, alignRight},
			))
			missingImages := cdncheck.BuildImageReport(reciterIDs, imageResults)

			// Audio: 114 probes per reciter.
			audioKeys := make([]cdncheck.Key, 0, len(reciterIDs)*surah.Count)
			for _, id := range reciterIDs {
				for number := 1; number <= surah.Count; number++ {
					audioKeys = append(audioKeys, cdncheck.Key{ReciterID: id, Surah: number})
				}
			}
			audioBar := newProgressBar(len(audioKeys), "Audio", errOut)
			audioResults := checker.Scan(cmd.Context(), audioKeys,
				func(key cdncheck.Key) string {
					return fmt.Sprintf("%s/audio/%s/%s.mp3", cdnURL, key.ReciterID, surah.Pad(key.Surah))
				},
				cdncheck.ScanOptions{
					Concurrency: concurrency,
					Timeout:     timeout,
					Progress:    func(done, total int) { _ = audioBar.Set(done) },
					Logger:      ctx.ensureLogger(),
				})
			_ = audioBar.Finish()

			coverage := cdncheck.BuildAudioReport(reciterIDs, audioResults)
			missingAudioTotal := 0
			audioRows := make([][]string, 0, len(reciterIDs))
			for _, id := range reciterIDs {
				c := coverage[id]
				missingAudioTotal += len(c.MissingSurahs)
				status := okMark("complete")
				missing := ""
				if !c.Complete() {
					status = failMark(fmt.Sprintf("%d missing", len(c.MissingSurahs)))
					missing = formatMissing(c.MissingSurahs)
				}
				audioRows = append(audioRows, []string{
					id,
					fmt.Sprintf("%d/%d", c.PresentCount, surah.Count),
					status,
					missing,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Reciter", "Present", "Audio", "Missing Surahs"},
				audioRows,
				[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft},
			))

			fmt.Fprintf(out, "Images missing: %d, audio files missing: %d\n",
				len(missingImages), missingAudioTotal)
			if len(missingImages) > 0 || missingAudioTotal > 0 {
				return fmt.Errorf("verification found %d missing image(s) and %d missing audio file(s)",
					len(missingImages), missingAudioTotal)
			}
			fmt.Fprintln(out, okMark("All assets present"))
			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrent", 0, "Concurrent probes (default from config)")
	cmd.Flags().IntVarP(&timeoutSeconds, "timeout", "t", 0, "Per-probe timeout in seconds (default from config)")
	return cmd
}

// formatMissing renders a missing-surah list compactly, truncating long runs.
func formatMissing(numbers []int) string {
	const maxShown = 10
	parts := make([]string, 0, maxShown+1)
	for i, number := range numbers {
		if i == maxShown {
			parts = append(parts, fmt.Sprintf("+%d more", len(numbers)-maxShown))
			break
		}
		parts = append(parts, strconv.Itoa(number))
	}
	return strings.Join(parts, ", ")
}
