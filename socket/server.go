package socket

import (
	"context"
	"log"

	"chatconnect_server/models"
	"chatconnect_server/services"

	socketio "github.com/googollee/go-socket.io"
)

// connSink adapts a live socket.io connection to the relay's Sink.
type connSink struct {
	conn socketio.Conn
}

func (s connSink) Deliver(msg models.MessagePayload) error {
	s.conn.Emit("message", msg)
	return nil
}

type joinPayload struct {
	Room string `json:"room"`
}

type messagePayload struct {
	Room string `json:"room"`
	Msg  string `json:"msg"`
}

// NewSocketServer initializes and returns a new Socket.IO server. Clients
// identify themselves with a userId query parameter on the handshake;
// unauthorized joins and messages are logged and dropped, never echoed
// back as protocol errors.
func NewSocketServer(relay *services.RelayService, matches *services.MatchService) *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		url := c.URL()
		c.SetContext(url.Query().Get("userId"))
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, data joinPayload) {
		userID, _ := c.Context().(string)
		if data.Room == "" || userID == "" {
			log.Println("❌ Invalid join request from socket", c.ID())
			return
		}
		if err := relay.Subscribe(data.Room, userID, connSink{conn: c}); err != nil {
			log.Printf("❌ Join rejected for user %s on room %s: %v", userID, data.Room, err)
			return
		}
		c.Join(data.Room)
		log.Printf("👥 User %s joined room %s", userID, data.Room)
	})

	server.OnEvent("/", "message", func(c socketio.Conn, data messagePayload) {
		userID, _ := c.Context().(string)
		if err := relay.Publish(data.Room, userID, data.Msg); err != nil {
			log.Printf("❌ Message dropped for room %s from %s: %v", data.Room, userID, err)
		}
	})

	server.OnError("/", func(c socketio.Conn, e error) {
		log.Println("⚠️ Socket error:", e)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		userID, _ := c.Context().(string)
		if userID != "" {
			relay.UnsubscribeAll(userID)
			matches.Leave(context.Background(), userID)
		}
		log.Println("❌ Socket disconnected:", c.ID(), reason)
	})

	return server
}
