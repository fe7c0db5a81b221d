// Package export writes the current game state snapshot to disk as JSON, one
// file per user per day, with a manifest and a rolling retention window.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/preston-bernstein/dugout/internal/domain"
)

const defaultRetentionDays = 14

// Record is the win/loss/draw tally over a schedule.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

// Tally counts outcomes across schedule.
func Tally(schedule []domain.GameResult) Record {
	var r Record
	for _, g := range schedule {
		switch g.Outcome {
		case domain.OutcomeWin:
			r.Wins++
		case domain.OutcomeLoss:
			r.Losses++
		case domain.OutcomeDraw:
			r.Draws++
		}
	}
	return r
}

// Document is the on-disk export format.
type Document struct {
	ExportedAt time.Time        `json:"exportedAt"`
	User       string           `json:"user"`
	Record     Record           `json:"record"`
	State      domain.GameState `json:"state"`
}

// Writer persists exports and the manifest, pruning old files.
type Writer struct {
	basePath      string
	retentionDays int
	now           func() time.Time
}

// NewWriter constructs a writer rooted at basePath. A non-positive retention
// uses the default.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// BasePath exposes the writer root path.
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// Write exports state for user and returns the file written. A second export
// on the same day replaces the first.
func (w *Writer) Write(user string, state domain.GameState) (string, error) {
	if w == nil || w.basePath == "" {
		return "", errors.New("export writer not configured")
	}
	now := w.now().UTC()
	date := formatDate(now)
	doc := Document{
		ExportedAt: now,
		User:       user,
		Record:     Tally(state.Schedule),
		State:      state.Clone(),
	}

	target := Path(w.basePath, user, date)
	if err := writeJSON(target, doc); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	if err := w.updateManifest(user, date, now); err != nil {
		return target, fmt.Errorf("update manifest: %w", err)
	}
	return target, nil
}

// Read loads an export file.
func Read(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decode export %s: %w", path, err)
	}
	return doc, nil
}

func (w *Writer) updateManifest(user, date string, now time.Time) error {
	path := filepath.Join(w.basePath, manifestName)
	m, _ := ReadManifest(path)
	if m.Users == nil {
		m.Users = make(map[string]UserExports)
	}

	dates, err := w.listDates(user)
	if err != nil {
		return err
	}
	kept := w.prune(user, dates, now)
	m.Version = manifestVersion
	m.RetentionDays = w.retentionDays
	m.Users[user] = UserExports{Dates: kept, LastExported: now}
	m.GeneratedAt = now
	return writeJSON(path, m)
}

func (w *Writer) listDates(user string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(w.basePath, userDir(user)))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	dates := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		dates = append(dates, name[:len(name)-len(".json")])
	}
	sort.Strings(dates)
	return dates, nil
}

func (w *Writer) prune(user string, dates []string, now time.Time) []string {
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -w.retentionDays)
	keep := make([]string, 0, len(dates))
	for _, d := range dates {
		parsed, err := parseDate(d)
		if err == nil && parsed.Before(cutoff) {
			_ = os.Remove(Path(w.basePath, user, d))
			continue
		}
		keep = append(keep, d)
	}
	return keep
}

// writeJSON replaces target atomically via a temp file and rename.
func writeJSON(target string, payload any) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
