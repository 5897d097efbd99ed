package transfer

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"qariee/internal/logging"
)

// CleanStaleStaging removes leftover qariee-* run directories older than
// maxAge. Runs that crashed before their deferred cleanup leave these
// behind; sweeping them at the start of the next run keeps the staging root
// bounded. Errors are logged and swallowed.
func CleanStaleStaging(stagingRoot string, maxAge time.Duration, logger *slog.Logger) {
	logger = logging.NewComponentLogger(logger, "transfer")

	stagingRoot = strings.TrimSpace(stagingRoot)
	if stagingRoot == "" {
		return
	}

	entries, err := os.ReadDir(stagingRoot)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("read staging root", logging.Error(err))
		}
		return
	}

	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), "qariee-") {
			continue
		}
		dirPath := filepath.Join(stagingRoot, entry.Name())
		info, err := entry.Info()
		if err != nil {
			logger.Warn("stat staging dir", logging.String("path", dirPath), logging.Error(err))
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(dirPath); err != nil {
				logger.Warn("remove stale staging dir", logging.String("path", dirPath), logging.Error(err))
				continue
			}
			logger.Info("removed stale staging dir", logging.String("path", dirPath))
		}
	}
}
