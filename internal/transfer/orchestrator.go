package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"qariee/internal/logging"
	"qariee/internal/surah"
)

// Uploader forwards a staged local file to the object store.
type Uploader interface {
	Put(ctx context.Context, localPath, remoteKey string) error
}

// Request describes one upload-audio run.
type Request struct {
	ReciterID string
	BaseURL   string
	Start     int
	End       int
	DryRun    bool
}

// Summary aggregates per-item outcomes across a run. Skipped is reserved for
// a future skip-if-already-uploaded policy and is currently never
// incremented.
type Summary struct {
	Success int
	Failed  int
	Skipped int
}

// ItemStatus classifies one transfer item's outcome.
type ItemStatus int

const (
	ItemOK ItemStatus = iota
	ItemDryRun
	ItemDownloadFailed
	ItemUploadFailed
)

// ItemResult reports the outcome of one surah transfer to the caller.
type ItemResult struct {
	Surah     int
	SourceURL string
	RemoteKey string
	Status    ItemStatus
	Err       error
}

// Orchestrator drives fetch, upload, and cleanup for a surah range.
type Orchestrator struct {
	uploader    Uploader
	stagingRoot string
	fetchOpts   FetchOptions
	logger      *slog.Logger

	// OnItem, when set, receives every item outcome in ascending surah
	// order. Used by the CLI for progress reporting.
	OnItem func(ItemResult)
}

// NewOrchestrator constructs an orchestrator that stages downloads under
// stagingRoot and forwards finished files through uploader.
func NewOrchestrator(uploader Uploader, stagingRoot string, fetchOpts FetchOptions, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Orchestrator{
		uploader:    uploader,
		stagingRoot: stagingRoot,
		fetchOpts:   fetchOpts,
		logger:      logging.NewComponentLogger(logger, "transfer"),
	}
}

// Run processes every surah in the inclusive request range, ascending. In
// dry-run mode no network activity occurs and every item counts as a
// would-be success. The run owns a unique staging directory that is removed
// best-effort when the run ends, however it ends.
func (o *Orchestrator) Run(ctx context.Context, req Request) (Summary, error) {
	var summary Summary

	if err := surah.ValidRange(req.Start, req.End); err != nil {
		return summary, err
	}

	if req.DryRun {
		for number := req.Start; number <= req.End; number++ {
			item := o.buildItem(req, number, "")
			item.Status = ItemDryRun
			summary.Success++
			o.report(item)
		}
		return summary, nil
	}

	runDir := filepath.Join(o.stagingRoot, "qariee-"+uuid.NewString())
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return summary, fmt.Errorf("create staging directory: %w", err)
	}
	defer func() {
		_ = os.RemoveAll(runDir)
	}()

	o.logger.Info("transfer run started",
		logging.String("reciter_id", req.ReciterID),
		logging.Int("start", req.Start),
		logging.Int("end", req.End),
		logging.String("staging_dir", runDir))

	for number := req.Start; number <= req.End; number++ {
		item := o.processItem(ctx, req, number, runDir)
		if item.Status == ItemOK {
			summary.Success++
		} else {
			summary.Failed++
		}
		o.report(item)
		if err := ctx.Err(); err != nil {
			return summary, err
		}
	}

	o.logger.Info("transfer run finished",
		logging.String("reciter_id", req.ReciterID),
		logging.Int("success", summary.Success),
		logging.Int("failed", summary.Failed))
	return summary, nil
}

func (o *Orchestrator) buildItem(req Request, number int, runDir string) ItemResult {
	padded := surah.Pad(number)
	return ItemResult{
		Surah:     number,
		SourceURL: fmt.Sprintf("%s/%s.mp3", req.BaseURL, padded),
		RemoteKey: fmt.Sprintf("audio/%s/%s.mp3", req.ReciterID, padded),
	}
}

func (o *Orchestrator) processItem(ctx context.Context, req Request, number int, runDir string) ItemResult {
	item := o.buildItem(req, number, runDir)
	stagingPath := filepath.Join(runDir, surah.Pad(number)+".mp3")

	// The staging file never survives past the item, success or failure.
	defer func() {
		_ = os.Remove(stagingPath)
		_ = os.Remove(stagingPath + ".partial")
	}()

	if err := Fetch(ctx, item.SourceURL, stagingPath, o.fetchOpts); err != nil {
		o.logger.Warn("download failed",
			logging.String("reciter_id", req.ReciterID),
			logging.Int("surah", number),
			logging.Error(err))
		item.Status = ItemDownloadFailed
		item.Err = err
		return item
	}

	if err := o.uploader.Put(ctx, stagingPath, item.RemoteKey); err != nil {
		o.logger.Warn("upload failed",
			logging.String("reciter_id", req.ReciterID),
			logging.Int("surah", number),
			logging.Error(err))
		item.Status = ItemUploadFailed
		item.Err = err
		return item
	}

	item.Status = ItemOK
	return item
}

func (o *Orchestrator) report(item ItemResult) {
	if o.OnItem != nil {
		o.OnItem(item)
	}
}
