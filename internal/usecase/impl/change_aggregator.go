package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"courtside/internal/domain/entity"
	"courtside/internal/domain/service"
	"courtside/internal/errors"
	"courtside/internal/usecase"
)

// changeAggregator implements the ChangeUsecase interface. It owns one
// subscription handle per watched table and folds every event into a single
// monotonic last-changed timestamp.
type changeAggregator struct {
	stream service.ChangeStream
	logger *slog.Logger
	now    func() time.Time

	mu       sync.Mutex
	started  bool
	closed   bool
	subs     []service.Subscription
	watching []string
	degraded bool
	last     time.Time
}

// NewChangeAggregator is the constructor for changeAggregator.
func NewChangeAggregator(stream service.ChangeStream, logger *slog.Logger) usecase.ChangeUsecase {
	return &changeAggregator{
		stream: stream,
		logger: logger,
		now:    time.Now,
	}
}

// Start establishes one subscription per watched table. A table that fails
// to subscribe flips the degraded flag but never blocks the others.
func (agg *changeAggregator) Start(ctx context.Context) error {
	agg.mu.Lock()
	defer agg.mu.Unlock()

	if agg.started {
		return errors.New("change aggregator already started")
	}
	agg.started = true

	for _, table := range entity.WatchedTables {
		sub, err := agg.stream.Subscribe(ctx, table, agg.apply)
		if err != nil {
			agg.degraded = true
			agg.logger.Error("Table subscription failed, continuing degraded",
				"table", table, "error", err)

			continue
		}

		agg.subs = append(agg.subs, sub)
		agg.watching = append(agg.watching, table)
	}

	agg.logger.Info("Change aggregator started",
		"watching", len(agg.watching), "degraded", agg.degraded)

	return nil
}

// apply folds one row-level event into the coalesced signal. Events that
// land within the same clock tick collapse into a single observable advance.
func (agg *changeAggregator) apply(event entity.ChangeEvent) {
	agg.mu.Lock()
	defer agg.mu.Unlock()

	if agg.closed {
		return
	}

	if changed := agg.now(); changed.After(agg.last) {
		agg.last = changed
	}
}

// Status returns the current coalesced signal state.
func (agg *changeAggregator) Status() usecase.ChangeStatus {
	agg.mu.Lock()
	defer agg.mu.Unlock()

	watching := make([]string, len(agg.watching))
	copy(watching, agg.watching)

	return usecase.ChangeStatus{
		LastChanged: agg.last,
		Degraded:    agg.degraded,
		Watching:    watching,
	}
}

// Close releases every subscription handle. Each handle is released even
// when an earlier one fails; the errors are joined.
func (agg *changeAggregator) Close() error {
	agg.mu.Lock()
	if agg.closed {
		agg.mu.Unlock()

		return nil
	}
	agg.closed = true
	subs := agg.subs
	agg.subs = nil
	agg.watching = nil
	agg.mu.Unlock()

	var errs []error
	for _, sub := range subs {
		if err := sub.Unsubscribe(); err != nil {
			errs = append(errs, err)
		}
	}

	agg.logger.Info("Change aggregator closed", "released", len(subs))

	return errors.Join(errs...)
}
