package retention

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type fakeDeleter struct {
	calls   atomic.Int64
	cutoff  atomic.Value // time.Time
	deleted int64
	err     error
}

func (f *fakeDeleter) DeleteVisitsBefore(cutoff time.Time) (int64, error) {
	f.calls.Add(1)
	f.cutoff.Store(cutoff)
	return f.deleted, f.err
}

func TestRunOnceCutoff(t *testing.T) {
	f := &fakeDeleter{deleted: 3}
	p := NewPruner(f, 30, time.Hour)

	before := time.Now().UTC().AddDate(0, 0, -30)
	if err := p.RunOnce(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after := time.Now().UTC().AddDate(0, 0, -30)

	cutoff := f.cutoff.Load().(time.Time)
	if cutoff.Before(before.Add(-time.Second)) || cutoff.After(after.Add(time.Second)) {
		t.Errorf("cutoff = %v, want ~30 days ago", cutoff)
	}
}

func TestRunOnceWrapsError(t *testing.T) {
	sentinel := errors.New("disk full")
	p := NewPruner(&fakeDeleter{err: sentinel}, 30, time.Hour)

	if err := p.RunOnce(); !errors.Is(err, sentinel) {
		t.Errorf("error = %v, want wrapped sentinel", err)
	}
}

func TestRunPrunesImmediatelyAndStops(t *testing.T) {
	f := &fakeDeleter{}
	p := NewPruner(f, 30, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	deadline := time.After(time.Second)
	for f.calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("pruner never ran")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pruner did not stop on cancel")
	}
}

func TestNewPrunerDefaults(t *testing.T) {
	p := NewPruner(&fakeDeleter{}, 0, 0)
	if p.interval != time.Hour {
		t.Errorf("interval = %v, want 1h", p.interval)
	}
	if p.keep != 180*24*time.Hour {
		t.Errorf("keep = %v, want 180 days", p.keep)
	}
}
