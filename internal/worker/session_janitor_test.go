package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (s *countingSweeper) Sweep() int {
	s.calls.Add(1)
	return 1
}

func TestSessionJanitorSweepsUntilCancelled(t *testing.T) {
	sweeper := &countingSweeper{}
	janitor := NewSessionJanitor(sweeper, 5*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		janitor.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for sweeper.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("janitor did not sweep")
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop after cancel")
	}
}

func TestSessionJanitorDisabled(t *testing.T) {
	// returns immediately instead of blocking
	NewSessionJanitor(nil, time.Second, nil).Run(context.Background())
	NewSessionJanitor(&countingSweeper{}, 0, nil).Run(context.Background())
}
