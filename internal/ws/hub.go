package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
	once sync.Once
}

func (c *Client) close() {
	c.once.Do(func() {
		close(c.Send)
	})
}

// Hub fans recorded activities out to connected feed clients. All client
// bookkeeping happens on the Run goroutine; handlers only touch channels.
type Hub struct {
	Clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client.ID] = client

		case client := <-h.Unregister:
			if _, ok := h.Clients[client.ID]; ok {
				delete(h.Clients, client.ID)
				client.close()
			}

		case message := <-h.broadcast:
			for id, client := range h.Clients {
				select {
				case client.Send <- message:
				default:
					// slow consumer, drop it
					delete(h.Clients, id)
					client.close()
				}
			}
		}
	}
}

// Broadcast encodes the event and queues it for every connected client.
func (h *Hub) Broadcast(v any) {
	message, err := json.Marshal(v)
	if err != nil {
		log.Println(err, "Error encoding feed event")
		return
	}
	h.broadcast <- message
}

// Handler upgrades the request and pumps broadcast messages to the client.
// The read loop only detects disconnects; client frames are discarded.
func Handler(h *Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		client := &Client{
			ID:   uuid.NewString(),
			Conn: conn,
			Send: make(chan []byte, 16),
		}
		h.Register <- client

		go func() {
			for message := range client.Send {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					break
				}
			}
			conn.Close()
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		h.Unregister <- client
	})
}
