package live

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Room: EventsRoom,
	}

	hub.register <- client

	data, _ := json.Marshal(map[string]string{"name": "order-placed"})
	hub.Broadcast(EventsRoom, data)

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	hub.unregister <- client
}

func TestHubBroadcastIsScopedToRoom(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	events := &Client{Send: make(chan []byte, 10), Room: EventsRoom}
	other := &Client{Send: make(chan []byte, 10), Room: "other"}
	hub.register <- events
	hub.register <- other

	hub.Broadcast(EventsRoom, []byte("ping"))

	select {
	case <-events.Send:
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	select {
	case msg := <-other.Send:
		t.Fatalf("unexpected message in other room: %s", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// zero buffer and nobody draining: first broadcast evicts the client
	slow := &Client{Send: make(chan []byte), Room: EventsRoom}
	hub.register <- slow

	hub.Broadcast(EventsRoom, []byte("one"))

	select {
	case _, ok := <-slow.Send:
		if ok {
			t.Fatal("expected closed channel for evicted client")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for eviction")
	}
}
