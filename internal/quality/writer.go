package quality

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Writer persists run reports and the manifest with pruning.
type Writer struct {
	basePath      string
	retentionDays int
	now           func() time.Time
}

// NewWriter constructs a writer rooted at basePath with a rolling window
// retention.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = 14
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteRunReport writes one run report to disk, records it in the manifest,
// and prunes reports older than the retention window.
func (w *Writer) WriteRunReport(report Report) error {
	if w == nil {
		return fmt.Errorf("quality writer not configured")
	}
	if report.RunID == "" {
		return fmt.Errorf("run report missing run id")
	}

	path := RunReportPath(w.basePath, report.Date, report.RunID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		return err
	}

	manifest, _ := readManifest(ManifestPath(w.basePath), w.retentionDays)
	manifest.Retention.ReportDays = w.retentionDays
	manifest.Runs = append(manifest.Runs, RunMeta{
		RunID:       report.RunID,
		Date:        report.Date,
		GeneratedAt: report.GeneratedAt,
	})
	manifest.Runs = w.prune(manifest.Runs)
	return writeManifest(ManifestPath(w.basePath), manifest)
}

func (w *Writer) prune(runs []RunMeta) []RunMeta {
	cutoff := w.now().UTC().AddDate(0, 0, -w.retentionDays)
	kept := runs[:0]
	for _, run := range runs {
		if run.GeneratedAt.Before(cutoff) {
			_ = os.Remove(RunReportPath(w.basePath, run.Date, run.RunID))
			continue
		}
		kept = append(kept, run)
	}
	return kept
}
