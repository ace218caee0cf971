package export

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/stablescan/walletstat/internal/domain"
)

// Report is a breakdown prepared for spreadsheet output.
type Report struct {
	Address     string
	GeneratedAt time.Time
	Total       decimal.Decimal
	Stable      decimal.Decimal
	Percentage  decimal.Decimal
	Networks    []domain.NetworkResult
	Holdings    []domain.Holding
}

// ReportWriter writes a report to a spreadsheet destination.
type ReportWriter interface {
	Write(ctx context.Context, report Report) error
}

// Service turns breakdowns into reports and delegates writing.
type Service struct {
	writer ReportWriter
}

// NewService creates a new export Service.
func NewService(writer ReportWriter) *Service {
	return &Service{writer: writer}
}

// Export writes the breakdown through the configured writer.
// Implements worker.ExportHook.
func (s *Service) Export(ctx context.Context, b domain.Breakdown) error {
	if err := s.writer.Write(ctx, BuildReport(b, time.Now().UTC())); err != nil {
		return fmt.Errorf("writing report for %s: %w", b.Address, err)
	}
	return nil
}

// BuildReport prepares a breakdown for spreadsheet output.
func BuildReport(b domain.Breakdown, at time.Time) Report {
	return Report{
		Address:     b.Address,
		GeneratedAt: at,
		Total:       b.Total,
		Stable:      b.Stable,
		Percentage:  b.Percentage(),
		Networks:    b.Networks,
		Holdings:    b.Holdings,
	}
}

// summaryRows builds the SUMMARY sheet: one label/value pair per row.
func summaryRows(r Report) [][]any {
	return [][]any{
		{"Address", r.Address},
		{"Generated", r.GeneratedAt.Format(time.RFC3339)},
		{"Total USD", toFloat(r.Total)},
		{"Stable USD", toFloat(r.Stable)},
		{"Stable %", toFloat(r.Percentage)},
	}
}

// networkRows builds the NETWORKS sheet data.
// Columns: Network | Total USD | Stable USD | Status | Reason
func networkRows(r Report) [][]any {
	rows := [][]any{
		{"Network", "Total USD", "Stable USD", "Status", "Reason"},
	}

	for _, n := range r.Networks {
		status := "ok"
		if n.Skipped {
			status = "skipped"
		}
		rows = append(rows, []any{
			string(n.Network), toFloat(n.Total), toFloat(n.Stable), status, n.SkipReason,
		})
	}

	return rows
}

// holdingRows builds the HOLDINGS sheet data, stablecoins first.
// Columns: Network | Symbol | Name | Value USD | Stable
func holdingRows(r Report) [][]any {
	rows := [][]any{
		{"Network", "Symbol", "Name", "Value USD", "Stable"},
	}

	ordered := append(
		lo.Filter(r.Holdings, func(h domain.Holding, _ int) bool { return h.Stable }),
		lo.Filter(r.Holdings, func(h domain.Holding, _ int) bool { return !h.Stable })...,
	)

	for _, h := range ordered {
		stable := 0
		if h.Stable {
			stable = 1
		}
		rows = append(rows, []any{
			string(h.Network), h.Symbol, h.Name, toFloat(h.Value), stable,
		})
	}

	return rows
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
