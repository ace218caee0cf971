package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXWriter implements ReportWriter by writing a local .xlsx file.
type XLSXWriter struct {
	path string
}

// NewXLSXWriter creates a writer that saves the report to the given path.
func NewXLSXWriter(path string) *XLSXWriter {
	return &XLSXWriter{path: path}
}

// Write renders the SUMMARY, NETWORKS and HOLDINGS sheets and saves the file.
func (w *XLSXWriter) Write(ctx context.Context, report Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "SUMMARY"); err != nil {
		return fmt.Errorf("renaming summary sheet: %w", err)
	}

	sheets := map[string][][]any{
		"SUMMARY":  summaryRows(report),
		"NETWORKS": networkRows(report),
		"HOLDINGS": holdingRows(report),
	}

	for _, name := range []string{"SUMMARY", "NETWORKS", "HOLDINGS"} {
		if name != "SUMMARY" {
			if _, err := f.NewSheet(name); err != nil {
				return fmt.Errorf("creating sheet %s: %w", name, err)
			}
		}
		for i, row := range sheets[name] {
			cell := fmt.Sprintf("A%d", i+1)
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				return fmt.Errorf("writing %s row %d: %w", name, i+1, err)
			}
		}
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("saving report to %s: %w", w.path, err)
	}
	return nil
}
