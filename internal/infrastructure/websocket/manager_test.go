package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubjewellers/internal/domain/entity"
)

func TestPublishReachesRegisteredClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager()
	m.Start(ctx)

	a := &Client{Email: "admin@example.com", Send: make(chan []byte, 1)}
	b := &Client{Email: "boss@example.com", Send: make(chan []byte, 1)}
	m.Register <- a
	m.Register <- b

	m.Publish(entity.DashboardEvent{Type: entity.EventOrderPlaced, OrderID: "o1", Total: 42})

	for _, c := range []*Client{a, b} {
		select {
		case raw := <-c.Send:
			var got entity.DashboardEvent
			require.NoError(t, json.Unmarshal(raw, &got))
			assert.Equal(t, entity.EventOrderPlaced, got.Type)
			assert.Equal(t, "o1", got.OrderID)
		case <-time.After(time.Second):
			t.Fatalf("no event delivered to %s", c.Email)
		}
	}
}

func TestUnregisterClosesSendChannel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager()
	m.Start(ctx)

	c := &Client{Email: "admin@example.com", Send: make(chan []byte, 1)}
	m.Register <- c
	m.Unregister <- c

	select {
	case _, ok := <-c.Send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel not closed")
	}
	assert.Equal(t, 0, m.ClientCount())
}
