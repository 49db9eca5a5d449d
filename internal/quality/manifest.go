package quality

import (
	"encoding/json"
	"os"
	"time"
)

// Manifest tracks written run reports and their retention window.
type Manifest struct {
	Version     int       `json:"version"`
	GeneratedAt time.Time `json:"generatedAt"`
	Retention   Retention `json:"retention"`
	Runs        []RunMeta `json:"runs"`
}

type Retention struct {
	ReportDays int `json:"reportDays"`
}

// RunMeta identifies one persisted run report.
type RunMeta struct {
	RunID       string    `json:"runId"`
	Date        string    `json:"date"`
	GeneratedAt time.Time `json:"generatedAt"`
}

func defaultManifest(retentionDays int) Manifest {
	return Manifest{
		Version:     1,
		GeneratedAt: time.Now().UTC(),
		Retention: Retention{
			ReportDays: retentionDays,
		},
		Runs: []RunMeta{},
	}
}

func readManifest(path string, retentionDays int) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return defaultManifest(retentionDays), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(retentionDays), err
	}
	return m, nil
}

func writeManifest(path string, m Manifest) error {
	m.GeneratedAt = time.Now().UTC()
	tmp := path + ".tmp"
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
