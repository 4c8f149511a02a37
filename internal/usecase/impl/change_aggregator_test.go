package impl

import (
	"context"
	"testing"
	"time"

	"courtside/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeAggregator_Start_SubscribesEveryWatchedTable(t *testing.T) {
	stream := newStubChangeStream()
	agg := NewChangeAggregator(stream, newDiscardLogger())

	require.NoError(t, agg.Start(context.Background()))

	status := agg.Status()
	assert.False(t, status.Degraded)
	assert.ElementsMatch(t, entity.WatchedTables, status.Watching)
	assert.True(t, status.LastChanged.IsZero())
}

func TestChangeAggregator_Start_PartialFailureIsDegraded(t *testing.T) {
	stream := newStubChangeStream()
	stream.failing["matches"] = errors.New("subscribe refused")
	agg := NewChangeAggregator(stream, newDiscardLogger())

	require.NoError(t, agg.Start(context.Background()))

	status := agg.Status()
	assert.True(t, status.Degraded)
	assert.Len(t, status.Watching, len(entity.WatchedTables)-1)
	assert.NotContains(t, status.Watching, "matches")
}

func TestChangeAggregator_Start_Twice(t *testing.T) {
	stream := newStubChangeStream()
	agg := NewChangeAggregator(stream, newDiscardLogger())

	require.NoError(t, agg.Start(context.Background()))
	assert.Error(t, agg.Start(context.Background()))
}

func TestChangeAggregator_EventsAdvanceTimestampMonotonically(t *testing.T) {
	stream := newStubChangeStream()
	agg := NewChangeAggregator(stream, newDiscardLogger())
	require.NoError(t, agg.Start(context.Background()))

	stream.emit(entity.ChangeEvent{Table: "accounts", Operation: entity.ChangeInsert})
	first := agg.Status().LastChanged
	require.False(t, first.IsZero())

	// A burst across tables only ever moves the timestamp forward.
	stream.emit(entity.ChangeEvent{Table: "groups", Operation: entity.ChangeUpdate})
	stream.emit(entity.ChangeEvent{Table: "competitions", Operation: entity.ChangeDelete})
	second := agg.Status().LastChanged
	assert.False(t, second.Before(first))
}

func TestChangeAggregator_CoalescesBurstsWithinOneTick(t *testing.T) {
	stream := newStubChangeStream()
	agg := NewChangeAggregator(stream, newDiscardLogger()).(*changeAggregator)

	// Freeze the clock so a burst lands on one tick.
	tick := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	agg.now = func() time.Time { return tick }
	require.NoError(t, agg.Start(context.Background()))

	for _, table := range entity.WatchedTables {
		stream.emit(entity.ChangeEvent{Table: table, Operation: entity.ChangeUpdate})
	}

	assert.Equal(t, tick, agg.Status().LastChanged)
}

func TestChangeAggregator_Close_ReleasesEveryHandle(t *testing.T) {
	stream := newStubChangeStream()
	agg := NewChangeAggregator(stream, newDiscardLogger())
	require.NoError(t, agg.Start(context.Background()))

	require.NoError(t, agg.Close())

	for table, sub := range stream.subs {
		assert.True(t, sub.Closed(), "subscription for %s should be released", table)
	}

	// Events after teardown are dropped.
	stream.emit(entity.ChangeEvent{Table: "accounts", Operation: entity.ChangeInsert})
	assert.True(t, agg.Status().LastChanged.IsZero())

	// Close is idempotent.
	assert.NoError(t, agg.Close())
}

func TestChangeAggregator_Close_JoinsUnsubscribeErrors(t *testing.T) {
	stream := newStubChangeStream()
	agg := NewChangeAggregator(stream, newDiscardLogger())
	require.NoError(t, agg.Start(context.Background()))

	stream.subs["accounts"].err = errors.New("already gone")

	err := agg.Close()
	require.Error(t, err)

	// The failing handle did not stop the rest from being released.
	for table, sub := range stream.subs {
		assert.True(t, sub.Closed(), "subscription for %s should be released", table)
	}
}
