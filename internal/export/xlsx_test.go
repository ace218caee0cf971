package export

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestXLSXWriterWritesAllSheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	w := NewXLSXWriter(path)

	report := BuildReport(testBreakdown(), time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC))
	if err := w.Write(context.Background(), report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("opening written file: %v", err)
	}
	defer f.Close()

	for _, name := range []string{"SUMMARY", "NETWORKS", "HOLDINGS"} {
		if idx, _ := f.GetSheetIndex(name); idx < 0 {
			t.Errorf("sheet %s missing", name)
		}
	}

	got, err := f.GetCellValue("SUMMARY", "B3")
	if err != nil {
		t.Fatalf("reading total cell: %v", err)
	}
	if got != "300" {
		t.Errorf("SUMMARY!B3 = %q, want 300", got)
	}

	got, err = f.GetCellValue("NETWORKS", "A2")
	if err != nil {
		t.Fatalf("reading network cell: %v", err)
	}
	if got != "eth-mainnet" {
		t.Errorf("NETWORKS!A2 = %q, want eth-mainnet", got)
	}

	got, err = f.GetCellValue("HOLDINGS", "B2")
	if err != nil {
		t.Fatalf("reading holding cell: %v", err)
	}
	if got != "USDC" {
		t.Errorf("HOLDINGS!B2 = %q, want USDC (stablecoins first)", got)
	}
}

func TestXLSXWriterCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := NewXLSXWriter(filepath.Join(t.TempDir(), "report.xlsx"))
	if err := w.Write(ctx, Report{}); err == nil {
		t.Fatal("expected error on cancelled context, got nil")
	}
}
