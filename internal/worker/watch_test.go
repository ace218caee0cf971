package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stablescan/walletstat/internal/domain"
)

type mockSource struct {
	callCount atomic.Int32
	err       error
}

func (m *mockSource) Breakdown(_ context.Context, address string) (domain.Breakdown, error) {
	m.callCount.Add(1)
	if m.err != nil {
		return domain.Breakdown{}, m.err
	}
	return domain.Breakdown{Address: address}, nil
}

type mockHook struct {
	callCount atomic.Int32
}

func (m *mockHook) Export(_ context.Context, _ domain.Breakdown) error {
	m.callCount.Add(1)
	return nil
}

func TestWatchWorkerRunsAndShutdown(t *testing.T) {
	mock := &mockSource{}
	w := NewWatchWorker(mock, "0xabc", 50*time.Millisecond, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	w.Run(ctx)

	if got := mock.callCount.Load(); got < 1 {
		t.Errorf("call count = %d, want >= 1", got)
	}
}

func TestWatchWorkerRunsHook(t *testing.T) {
	mock := &mockSource{}
	hook := &mockHook{}
	w := NewWatchWorker(mock, "0xabc", time.Hour, hook)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	w.Run(ctx)

	if got := hook.callCount.Load(); got != 1 {
		t.Errorf("hook call count = %d, want 1 (startup run only)", got)
	}
}

func TestWatchWorkerSkipsHookOnError(t *testing.T) {
	mock := &mockSource{err: errors.New("boom")}
	hook := &mockHook{}
	w := NewWatchWorker(mock, "0xabc", time.Hour, hook)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	w.Run(ctx)

	if got := hook.callCount.Load(); got != 0 {
		t.Errorf("hook call count = %d, want 0 when breakdown fails", got)
	}
}
