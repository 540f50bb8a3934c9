package chat

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/osidou/osidou-web/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	calls atomic.Int32
	fail  atomic.Bool
}

func (f *fakeFetcher) Fetch(ctx context.Context, categoryID int64) (*domain.ChatBoard, error) {
	n := f.calls.Add(1)
	if f.fail.Load() {
		return nil, errors.New("upstream down")
	}
	return &domain.ChatBoard{CategoryID: categoryID, Threads: make([]domain.ChatThread, n)}, nil
}

type recordingSink struct {
	mu        sync.Mutex
	snapshots []*domain.ChatBoard
	errs      []error
}

func (s *recordingSink) Snapshot(b *domain.ChatBoard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots = append(s.snapshots, b)
}

func (s *recordingSink) PollFailed(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = append(s.errs, err)
}

func (s *recordingSink) counts() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.snapshots), len(s.errs)
}

func TestPoller_DefaultInterval(t *testing.T) {
	assert.Equal(t, 5*time.Second, NewPoller(&fakeFetcher{}, 0).Interval())
}

func TestPoller_ImmediateThenTicks(t *testing.T) {
	f := &fakeFetcher{}
	sink := &recordingSink{}
	p := NewPoller(f, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx, 3, sink, nil)
		close(done)
	}()

	require.Eventually(t, func() bool { n, _ := sink.counts(); return n >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancel")
	}

	// snapshots replace each other wholesale and arrive in fetch order
	sink.mu.Lock()
	defer sink.mu.Unlock()
	for i := 1; i < len(sink.snapshots); i++ {
		assert.Greater(t, len(sink.snapshots[i].Threads), len(sink.snapshots[i-1].Threads))
	}
}

func TestPoller_StopsFetchingAfterCancel(t *testing.T) {
	f := &fakeFetcher{}
	p := NewPoller(f, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx, 3, &recordingSink{}, nil)
		close(done)
	}()
	require.Eventually(t, func() bool { return f.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	after := f.calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, f.calls.Load())
}

func TestPoller_FailureReportedAndContinues(t *testing.T) {
	f := &fakeFetcher{}
	f.fail.Store(true)
	sink := &recordingSink{}
	p := NewPoller(f, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx, 1, sink, nil)

	require.Eventually(t, func() bool { _, e := sink.counts(); return e >= 2 }, time.Second, 5*time.Millisecond)
	f.fail.Store(false)
	require.Eventually(t, func() bool { n, _ := sink.counts(); return n >= 1 }, time.Second, 5*time.Millisecond)
}

func TestPoller_WakeTriggersEarlyFetch(t *testing.T) {
	f := &fakeFetcher{}
	sink := &recordingSink{}
	p := NewPoller(f, time.Hour)
	wake := make(chan struct{}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx, 1, sink, wake)

	require.Eventually(t, func() bool { n, _ := sink.counts(); return n == 1 }, time.Second, 5*time.Millisecond)
	wake <- struct{}{}
	require.Eventually(t, func() bool { n, _ := sink.counts(); return n == 2 }, time.Second, 5*time.Millisecond)
}
