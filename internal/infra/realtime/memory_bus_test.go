package realtime

import (
	"context"
	"testing"

	"courtside/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishReachesSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	var got []entity.ChangeEvent
	_, err := bus.Subscribe(context.Background(), "matches", func(event entity.ChangeEvent) {
		got = append(got, event)
	})
	require.NoError(t, err)

	bus.Publish(entity.ChangeEvent{Table: "matches", Operation: entity.ChangeInsert})
	bus.Publish(entity.ChangeEvent{Table: "groups", Operation: entity.ChangeInsert})

	require.Len(t, got, 1)
	assert.Equal(t, "matches", got[0].Table)
	assert.Equal(t, entity.ChangeInsert, got[0].Operation)
}

func TestMemoryBus_UnsubscribeStopsDelivery(t *testing.T) {
	bus := NewMemoryBus()

	var count int
	sub, err := bus.Subscribe(context.Background(), "accounts", func(entity.ChangeEvent) {
		count++
	})
	require.NoError(t, err)

	bus.Publish(entity.ChangeEvent{Table: "accounts", Operation: entity.ChangeUpdate})
	require.NoError(t, sub.Unsubscribe())
	bus.Publish(entity.ChangeEvent{Table: "accounts", Operation: entity.ChangeUpdate})

	assert.Equal(t, 1, count)
	assert.True(t, sub.Closed())
}

func TestMemoryBus_FailSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	bus.FailSubscribe("matches", errors.New("transport down"))

	_, err := bus.Subscribe(context.Background(), "matches", func(entity.ChangeEvent) {})
	assert.Error(t, err)

	// Other tables are unaffected.
	_, err = bus.Subscribe(context.Background(), "groups", func(entity.ChangeEvent) {})
	assert.NoError(t, err)
}
