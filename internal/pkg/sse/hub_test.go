package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesOnlyThatUser(t *testing.T) {
	hub := NewHub()
	a, cleanupA := hub.Subscribe("u1")
	defer cleanupA()
	b, cleanupB := hub.Subscribe("u2")
	defer cleanupB()

	hub.Publish("u1", Event{Event: EventNotification, Data: "hi"})

	require.Len(t, a, 1)
	assert.Empty(t, b)
	got := <-a
	assert.Equal(t, EventNotification, got.Event)
	assert.Equal(t, "hi", got.Data)
}

func TestHub_BroadcastStampsUser(t *testing.T) {
	hub := NewHub()
	a, cleanupA := hub.Subscribe("u1")
	defer cleanupA()
	b, cleanupB := hub.Subscribe("u2")
	defer cleanupB()

	hub.Broadcast(Event{Event: EventChange})

	assert.Equal(t, "u1", (<-a).UserID)
	assert.Equal(t, "u2", (<-b).UserID)
}

func TestHub_PublishToMany(t *testing.T) {
	hub := NewHub()
	a, cleanupA := hub.Subscribe("u1")
	defer cleanupA()
	b, cleanupB := hub.Subscribe("u2")
	defer cleanupB()

	hub.PublishToMany([]string{"u2", "u3"}, Event{Event: EventNotification})

	assert.Empty(t, a)
	require.Len(t, b, 1)
	assert.Equal(t, "u2", (<-b).UserID)
}

func TestHub_FullBufferDrops(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe("u1")
	defer cleanup()

	for i := 0; i < 25; i++ {
		hub.Publish("u1", Event{Event: EventChange})
	}
	assert.Len(t, ch, 10)
}

func TestHub_CleanupIsIdempotent(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe("u1")
	_, other := hub.Subscribe("u1")
	assert.Equal(t, 2, hub.SubscriberCount("u1"))
	assert.Equal(t, 2, hub.TotalSubscribers())

	cleanup()
	cleanup()
	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 1, hub.SubscriberCount("u1"))

	other()
	assert.Equal(t, 0, hub.TotalSubscribers())

	// publishing after everyone left is harmless
	hub.Publish("u1", Event{Event: EventChange})
	hub.Broadcast(Event{Event: EventChange})
}
