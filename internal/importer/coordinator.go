// Package importer ingests raw order-line files into the store cache. It
// accepts the delimiter-separated CSV export of the source view and the
// equivalent XLSX sheet; both share the fixed header contract.
package importer

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/devkami/kami-sales-dashboard/internal/sanitize"
	"github.com/devkami/kami-sales-dashboard/internal/store"
)

// Coordinator drives one file import.
type Coordinator struct {
	store *store.Store
}

// NewCoordinator creates an import coordinator.
func NewCoordinator(store *store.Store) *Coordinator {
	return &Coordinator{store: store}
}

// ImportOptions controls one import run.
type ImportOptions struct {
	FilePath      string
	ClearExisting bool // replace cache contents instead of appending
}

// ProgressEvent is one step of the import stream.
type ProgressEvent struct {
	Type      string      `json:"type"` // start/info/done/error
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// ImportReport summarizes a finished import.
type ImportReport struct {
	Filename     string        `json:"filename"`
	TotalRows    int           `json:"totalRows"`
	ImportedRows int           `json:"importedRows"`
	SkippedRows  int           `json:"skippedRows"`
	Duration     time.Duration `json:"duration"`
}

// Import runs asynchronously and streams progress on the returned channel.
func (c *Coordinator) Import(opts ImportOptions) <-chan ProgressEvent {
	progressChan := make(chan ProgressEvent, 100)

	go func() {
		defer close(progressChan)
		c.doImport(opts, progressChan)
	}()

	return progressChan
}

func (c *Coordinator) doImport(opts ImportOptions, progressChan chan ProgressEvent) {
	startTime := time.Now()
	filename := filepath.Base(opts.FilePath)

	c.sendProgress(progressChan, ProgressEvent{
		Type:      "start",
		Message:   fmt.Sprintf("importing %s", filename),
		Data:      map[string]string{"filename": filename},
		Timestamp: time.Now(),
	})

	records, skipped, err := c.readRecords(opts.FilePath)
	if err != nil {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "error",
			Message:   fmt.Sprintf("failed to read file: %v", err),
			Timestamp: time.Now(),
		})
		return
	}

	c.sendProgress(progressChan, ProgressEvent{
		Type:      "info",
		Message:   fmt.Sprintf("parsed %d rows", len(records)),
		Data:      map[string]int{"rows": len(records)},
		Timestamp: time.Now(),
	})

	lines := sanitize.Rows(records)

	if opts.ClearExisting {
		err = c.store.ReplaceOrderLines(lines)
	} else {
		err = c.store.BatchInsertOrderLines(lines)
	}
	if err != nil {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "error",
			Message:   fmt.Sprintf("failed to store lines: %v", err),
			Timestamp: time.Now(),
		})
		return
	}

	report := &ImportReport{
		Filename:     filename,
		TotalRows:    len(records) + skipped,
		ImportedRows: len(lines),
		SkippedRows:  skipped,
		Duration:     time.Since(startTime),
	}
	c.sendProgress(progressChan, ProgressEvent{
		Type:      "done",
		Message:   fmt.Sprintf("imported %d rows", report.ImportedRows),
		Data:      report,
		Timestamp: time.Now(),
	})
}

// ImportSync runs an import and returns its report, draining progress
// internally. Used by the startup seed path.
func (c *Coordinator) ImportSync(opts ImportOptions) (*ImportReport, error) {
	var report *ImportReport
	for event := range c.Import(opts) {
		switch event.Type {
		case "error":
			return nil, fmt.Errorf("import: %s", event.Message)
		case "done":
			if r, ok := event.Data.(*ImportReport); ok {
				report = r
			}
		}
	}
	if report == nil {
		return nil, fmt.Errorf("import: no report produced")
	}
	return report, nil
}

func (c *Coordinator) readRecords(path string) ([]sanitize.Record, int, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return readCSV(path)
	case ".xlsx", ".xlsm":
		return readXLSX(path)
	default:
		return nil, 0, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

// zipRecord pairs a header with one row; short rows leave trailing columns
// empty, long rows drop the excess.
func zipRecord(header, row []string) sanitize.Record {
	rec := make(sanitize.Record, len(header))
	for i, col := range header {
		if i < len(row) {
			rec[col] = row[i]
		} else {
			rec[col] = ""
		}
	}
	return rec
}

func normalizeHeader(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ToLower(strings.TrimSpace(c))
	}
	return out
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func (c *Coordinator) sendProgress(ch chan ProgressEvent, event ProgressEvent) {
	select {
	case ch <- event:
	default:
		// channel full, drop the event
	}
}
