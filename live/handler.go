package live

import (
	"context"
	"log"
	"net/http"

	"mineshop/mq"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/redis/go-redis/v9"
)

// EventsRoom is where every in-process shop event lands.
const EventsRoom = "events"

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// WebSocketHandler upgrades the connection and subscribes it to a room.
// The default room is the shop event stream.
func WebSocketHandler(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		room := ps.ByName("room")
		if room == "" {
			room = EventsRoom
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}

		client := &Client{
			Send: make(chan []byte, 256),
			Room: room,
		}
		hub.register <- client

		go writePump(conn, client)
		go readPump(conn, client, hub)
	}
}

func writePump(conn *websocket.Conn, c *Client) {
	defer conn.Close()
	for msg := range c.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// readPump discards inbound frames; the stream is one-way. Its job is to
// notice the peer going away.
func readPump(conn *websocket.Conn, c *Client, hub *Hub) {
	defer func() {
		hub.unregister <- c
		conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Sink adapts the hub to the event emitter: every emitted event is pushed
// to the event-stream room.
func Sink(hub *Hub) func(event string, data []byte) {
	return func(_ string, data []byte) {
		hub.Broadcast(EventsRoom, data)
	}
}

// Subscribe relays events published by other processes over Redis pub/sub
// into the hub. It blocks until ctx is done.
func Subscribe(ctx context.Context, rdb *redis.Client, hub *Hub) {
	sub := rdb.Subscribe(ctx, mq.Channel)
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			hub.Broadcast(EventsRoom, []byte(msg.Payload))
		}
	}
}
