package ws

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	"backend/events"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Hub fans order-lifecycle events out to websocket subscribers. It implements
// events.Publisher. Delivery is at-most-once: a slow or broken connection is
// dropped, dashboards re-poll anyway.
type Hub struct {
	clients    map[string]map[*websocket.Conn]bool // channel -> set of clients
	broadcast  chan broadcastMessage
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	secret     string
}

type subscription struct {
	Conn    *websocket.Conn
	Channel string
}

type broadcastMessage struct {
	Channel string
	Event   events.Event
}

func NewHub(secret string) *Hub {
	return &Hub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan broadcastMessage, 64),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		secret:     secret,
	}
}

// Publish queues the event for every subscriber of the channel. Never blocks
// the caller: if the hub's buffer is full the event is dropped.
func (h *Hub) Publish(channel string, ev events.Event) {
	select {
	case h.broadcast <- broadcastMessage{Channel: channel, Event: ev}:
	default:
		log.Printf("ws hub buffer full, dropping %s on %s", ev.Name, channel)
	}
}

func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.Channel] == nil {
				h.clients[sub.Channel] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.Channel][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.Channel][sub.Conn]; ok {
				delete(h.clients[sub.Channel], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.Channel] {
				if err := conn.WriteJSON(msg.Event); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.Channel], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket subscribes a client to one channel: GET /ws/:channel.
// `orders` is public; `admin-orders` needs an admin token; `table.N` needs a
// session token for that table.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	channel := c.Param("channel")

	if !h.authorize(c, channel) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "no access"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, Channel: channel}
	h.register <- sub

	go h.drain(sub)
}

func (h *Hub) authorize(c *gin.Context, channel string) bool {
	switch {
	case channel == events.ChannelOrders:
		return true
	case channel == events.ChannelAdmin:
		token := c.Query("token")
		_, err := utils.ParseAdminToken(token, h.secret)
		return err == nil
	case strings.HasPrefix(channel, "table."):
		token := c.Query("session_token")
		claims, err := utils.ParseSessionToken(token, h.secret)
		if err != nil {
			return false
		}
		return channel == fmt.Sprintf("table.%d", claims.TableID)
	}
	return false
}

// drain discards inbound frames; subscribers are read-only. Its real job is
// noticing the close and unregistering.
func (h *Hub) drain(sub subscription) {
	defer func() { h.unregister <- sub }()
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
