package chat

import (
	"context"
	"time"

	"github.com/osidou/osidou-web/internal/domain"
	"github.com/osidou/osidou-web/pkg/logger"
)

// DefaultPollInterval board refresh period
const DefaultPollInterval = 5 * time.Second

// Fetcher loads a board snapshot
type Fetcher interface {
	Fetch(ctx context.Context, categoryID int64) (*domain.ChatBoard, error)
}

// Sink receives each new snapshot, or the error of a failed poll
type Sink interface {
	Snapshot(board *domain.ChatBoard)
	PollFailed(err error)
}

// Poller refreshes one view's board on a fixed interval
type Poller struct {
	fetcher  Fetcher
	interval time.Duration
}

// NewPoller creates a Poller; a non-positive interval uses DefaultPollInterval
func NewPoller(fetcher Fetcher, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{fetcher: fetcher, interval: interval}
}

// Interval returns the polling period
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Run fetches immediately, then on every tick and every wake signal, until
// ctx is canceled. Fetches run one at a time so snapshots arrive in order.
// A failed poll keeps the previous snapshot.
func (p *Poller) Run(ctx context.Context, categoryID int64, sink Sink, wake <-chan struct{}) {
	activePollers.Inc()
	defer activePollers.Dec()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx, categoryID, sink)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-wake:
		}
		p.poll(ctx, categoryID, sink)
	}
}

func (p *Poller) poll(ctx context.Context, categoryID int64, sink Sink) {
	board, err := p.fetcher.Fetch(ctx, categoryID)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		pollsTotal.WithLabelValues("error").Inc()
		logger.GetLogger().Warn().Err(err).Int64("category_id", categoryID).Msg("board poll failed")
		sink.PollFailed(err)
		return
	}
	pollsTotal.WithLabelValues("ok").Inc()
	sink.Snapshot(board)
}
