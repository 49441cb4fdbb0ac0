// Package runs persists completed analysis runs so a result can be
// revisited without re-running the pipeline: a json manifest with the
// parameters and cleaning stats, and the rendered report next to it.
package runs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/KineticBytes/goldenage-cli/internal/aggregate"
	"github.com/KineticBytes/goldenage-cli/internal/cleaning"
	"github.com/KineticBytes/goldenage-cli/internal/utils"
)

const (
	manifestFileName = "run.json"
	reportFileName   = "report.txt"
)

// Run is one persisted analysis: where the data came from, what parameters
// shaped it and what the cleaner did. The rendered report is stored
// alongside the manifest, not inside it.
type Run struct {
	ID        string                   `json:"id"`
	Dataset   string                   `json:"dataset"`
	Params    aggregate.Params         `json:"params"`
	Stats     cleaning.Stats           `json:"stats"`
	Averages  []aggregate.ScoreAverage `json:"averages"`
	CreatedAt time.Time                `json:"created_at"`
}

// Save persists the run and its report under dir/<id>/, assigning a fresh
// ID when the run has none. Returns the run ID.
func Save(dir string, run *Run, report string) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	runDir := filepath.Join(dir, run.ID)
	if err := utils.EnsureDir(runDir); err != nil {
		return "", fmt.Errorf("ensure run dir: %w", err)
	}
	data, err := utils.PrettyJSON(run)
	if err != nil {
		return "", err
	}
	if err := utils.SafeWriteFile(filepath.Join(runDir, manifestFileName), data); err != nil {
		return "", err
	}
	if err := utils.SafeWriteFile(filepath.Join(runDir, reportFileName), []byte(report)); err != nil {
		return "", err
	}
	return run.ID, nil
}

// Load reads one run's manifest from dir/<id>/.
func Load(dir, id string) (*Run, error) {
	path := filepath.Join(dir, id, manifestFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("run not found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("read run: %w", err)
	}
	var r Run
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("parse run: %w", err)
	}
	return &r, nil
}

// Report reads the rendered report stored with a run.
func Report(dir, id string) (string, error) {
	b, err := os.ReadFile(filepath.Join(dir, id, reportFileName))
	if err != nil {
		return "", fmt.Errorf("read report: %w", err)
	}
	return string(b), nil
}

// List loads every run manifest under dir, newest first. A missing dir is
// an empty list, not an error.
func List(dir string) ([]*Run, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read runs dir: %w", err)
	}
	var out []*Run
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		r, err := Load(dir, e.Name())
		if err != nil {
			// Skip anything that is not a run directory.
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
