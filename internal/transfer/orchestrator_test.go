package transfer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

type fakeUploader struct {
	puts    []string
	putSeen []string // staged file contents at Put time
	failOn  map[string]bool
}

func (f *fakeUploader) Put(ctx context.Context, localPath, remoteKey string) error {
	if f.failOn[remoteKey] {
		return errors.New("bucket write rejected")
	}
	data, err := os.ReadFile(localPath)
	if err != nil {
		return err
	}
	f.puts = append(f.puts, remoteKey)
	f.putSeen = append(f.putSeen, string(data))
	return nil
}

func TestRunDryRunPerformsNoNetworkCalls(t *testing.T) {
	var requests int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
	}))
	defer srv.Close()

	uploader := &fakeUploader{}
	orc := NewOrchestrator(uploader, t.TempDir(), testFetchOptions(), nil)

	summary, err := orc.Run(context.Background(), Request{
		ReciterID: "hussary",
		BaseURL:   srv.URL,
		Start:     3,
		End:       7,
		DryRun:    true,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Success != 5 || summary.Failed != 0 || summary.Skipped != 0 {
		t.Errorf("summary = %+v, want 5 successes", summary)
	}
	if n := atomic.LoadInt64(&requests); n != 0 {
		t.Errorf("dry run issued %d network calls", n)
	}
	if len(uploader.puts) != 0 {
		t.Errorf("dry run uploaded %d files", len(uploader.puts))
	}
}

func TestRunTransfersRangeAndCleansStaging(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("audio:" + r.URL.Path))
	}))
	defer srv.Close()

	stagingRoot := t.TempDir()
	uploader := &fakeUploader{}
	orc := NewOrchestrator(uploader, stagingRoot, testFetchOptions(), nil)

	var order []int
	orc.OnItem = func(item ItemResult) { order = append(order, item.Surah) }

	summary, err := orc.Run(context.Background(), Request{
		ReciterID: "hussary",
		BaseURL:   srv.URL,
		Start:     1,
		End:       3,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Success != 3 || summary.Failed != 0 {
		t.Fatalf("summary = %+v", summary)
	}

	wantKeys := []string{
		"audio/hussary/001.mp3",
		"audio/hussary/002.mp3",
		"audio/hussary/003.mp3",
	}
	for i, want := range wantKeys {
		if uploader.puts[i] != want {
			t.Errorf("put[%d] = %s, want %s", i, uploader.puts[i], want)
		}
	}
	for i, content := range uploader.putSeen {
		if !strings.HasPrefix(content, "audio:") {
			t.Errorf("staged file %d had unexpected content %q", i, content)
		}
	}
	for i, surahNum := range order {
		if surahNum != i+1 {
			t.Fatalf("items reported out of order: %v", order)
		}
	}

	entries, err := os.ReadDir(stagingRoot)
	if err != nil {
		t.Fatalf("read staging root: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("staging root not cleaned, %d entries remain", len(entries))
	}
}

func TestRunClassifiesFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "002.mp3") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("audio"))
	}))
	defer srv.Close()

	uploader := &fakeUploader{failOn: map[string]bool{"audio/hussary/003.mp3": true}}
	orc := NewOrchestrator(uploader, t.TempDir(), testFetchOptions(), nil)

	var items []ItemResult
	orc.OnItem = func(item ItemResult) { items = append(items, item) }

	summary, err := orc.Run(context.Background(), Request{
		ReciterID: "hussary",
		BaseURL:   srv.URL,
		Start:     1,
		End:       3,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Success != 1 || summary.Failed != 2 {
		t.Fatalf("summary = %+v, want 1 success 2 failures", summary)
	}

	byStatus := map[int]ItemStatus{}
	for _, item := range items {
		byStatus[item.Surah] = item.Status
	}
	if byStatus[1] != ItemOK {
		t.Errorf("surah 1 status = %v, want ok", byStatus[1])
	}
	if byStatus[2] != ItemDownloadFailed {
		t.Errorf("surah 2 status = %v, want download failed", byStatus[2])
	}
	if byStatus[3] != ItemUploadFailed {
		t.Errorf("surah 3 status = %v, want upload failed", byStatus[3])
	}
}

func TestRunRejectsInvalidRange(t *testing.T) {
	orc := NewOrchestrator(&fakeUploader{}, t.TempDir(), testFetchOptions(), nil)
	for _, r := range [][2]int{{0, 5}, {5, 1}, {1, 115}} {
		if _, err := orc.Run(context.Background(), Request{ReciterID: "x", BaseURL: "http://origin", Start: r[0], End: r[1]}); err == nil {
			t.Errorf("range %v accepted", r)
		}
	}
}

func TestCleanStaleStaging(t *testing.T) {
	root := t.TempDir()
	stale := filepath.Join(root, "qariee-old-run")
	fresh := filepath.Join(root, "qariee-fresh-run")
	unrelated := filepath.Join(root, "keepme")
	for _, dir := range []string{stale, fresh, unrelated} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	past := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(stale, past, past); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	CleanStaleStaging(root, 24*time.Hour, nil)

	if _, err := os.Stat(stale); !errors.Is(err, os.ErrNotExist) {
		t.Error("stale staging dir survived cleanup")
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Error("fresh staging dir removed")
	}
	if _, err := os.Stat(unrelated); err != nil {
		t.Error("unrelated dir removed")
	}
}
