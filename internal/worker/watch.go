package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/stablescan/walletstat/internal/domain"
)

// BreakdownSource computes a fresh breakdown for a wallet address.
type BreakdownSource interface {
	Breakdown(ctx context.Context, address string) (domain.Breakdown, error)
}

// ExportHook is called after each successful breakdown run.
type ExportHook interface {
	Export(ctx context.Context, b domain.Breakdown) error
}

// WatchWorker periodically recomputes the breakdown for one watched wallet.
type WatchWorker struct {
	source   BreakdownSource
	address  string
	interval time.Duration
	hook     ExportHook // optional
}

// NewWatchWorker creates a new WatchWorker with an optional post-run hook.
func NewWatchWorker(source BreakdownSource, address string, interval time.Duration, hook ExportHook) *WatchWorker {
	return &WatchWorker{
		source:   source,
		address:  address,
		interval: interval,
		hook:     hook,
	}
}

// Run starts the watch loop. It blocks until the context is cancelled.
func (w *WatchWorker) Run(ctx context.Context) {
	slog.Info("WatchWorker: starting", "address", w.address, "interval", w.interval)

	// Check immediately on startup
	w.check(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("WatchWorker: shutting down")
			return
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

func (w *WatchWorker) check(ctx context.Context) {
	b, err := w.source.Breakdown(ctx, w.address)
	if err != nil {
		slog.Error("WatchWorker: breakdown failed", "address", w.address, "error", err)
		return
	}

	slog.Info("WatchWorker: breakdown completed",
		"address", w.address,
		"total", domain.FormatUSD(b.Total),
		"stable", domain.FormatUSD(b.Stable),
		"percentage", domain.FormatPercent(b.Percentage()))

	w.runHook(ctx, b)
}

// runHook calls the post-run hook if one is configured.
func (w *WatchWorker) runHook(ctx context.Context, b domain.Breakdown) {
	if w.hook == nil {
		return
	}
	if err := w.hook.Export(ctx, b); err != nil {
		slog.Error("WatchWorker: export hook failed", "error", err)
	} else {
		slog.Info("WatchWorker: export hook completed")
	}
}
