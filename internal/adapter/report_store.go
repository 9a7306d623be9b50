package adapter

import (
	"encoding/json"
	"fmt"
	"os"

	m "github.com/mouse-blink/scrub/internal/model"
)

// ReportStore persists and retrieves scrub reports.
type ReportStore interface {
	Save(path m.Path, report m.ScrubReport) error
	Load(path m.Path) (m.ScrubReport, error)
}

type reportStore struct{}

// NewReportStore constructs a ReportStore implementation backed by JSON
// files on disk.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func (rs *reportStore) Save(path m.Path, report m.ScrubReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := os.WriteFile(string(path), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

func (rs *reportStore) Load(path m.Path) (m.ScrubReport, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.ScrubReport{}, fmt.Errorf("read report %s: %w", path, err)
	}

	var report m.ScrubReport
	if err := json.Unmarshal(data, &report); err != nil {
		return m.ScrubReport{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	return report, nil
}
