package quality

import (
	"fmt"
	"path/filepath"
)

// RunReportPath builds the path to a run report for a given date and run ID.
func RunReportPath(basePath, date, runID string) string {
	return filepath.Join(basePath, "reports", fmt.Sprintf("%s-%s.json", date, runID))
}

// ManifestPath builds the path to the report manifest.
func ManifestPath(basePath string) string {
	return filepath.Join(basePath, "manifest.json")
}
