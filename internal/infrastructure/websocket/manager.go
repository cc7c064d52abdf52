package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/domain/service"
	"ubjewellers/pkg/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Client is one admin dashboard connection.
type Client struct {
	Email string
	Conn  *websocket.Conn
	Send  chan []byte
}

func NewClient(email string, conn *websocket.Conn) *Client {
	return &Client{Email: email, Conn: conn, Send: make(chan []byte, 16)}
}

// Manager fans dashboard events out to every connected admin.
type Manager struct {
	clients    map[*Client]struct{}
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	mutex      sync.RWMutex
}

var _ service.DashboardNotifier = (*Manager)(nil)

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[*Client]struct{}),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
	}
}

// Start runs the manager's main loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client] = struct{}{}
				m.mutex.Unlock()
				logger.Debug("Dashboard client registered: %s", client.Email)

			case client := <-m.Unregister:
				m.remove(client)
				logger.Debug("Dashboard client unregistered: %s", client.Email)

			case message := <-m.broadcast:
				m.mutex.RLock()
				var slow []*Client
				for client := range m.clients {
					select {
					case client.Send <- message:
					default:
						slow = append(slow, client)
					}
				}
				m.mutex.RUnlock()
				for _, client := range slow {
					m.remove(client)
				}

			case <-ctx.Done():
				m.mutex.Lock()
				for client := range m.clients {
					close(client.Send)
					delete(m.clients, client)
				}
				m.mutex.Unlock()
				return
			}
		}
	}()
}

func (m *Manager) remove(client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if _, ok := m.clients[client]; ok {
		delete(m.clients, client)
		close(client.Send)
	}
}

// Publish never blocks the request that placed or deleted the order; events
// are dropped when the broadcast queue is full.
func (m *Manager) Publish(event entity.DashboardEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to encode dashboard event: %v", err)
		return
	}

	select {
	case m.broadcast <- payload:
	default:
		logger.Warn("Dashboard event dropped, broadcast queue full: %s", event.Type)
	}
}

func (m *Manager) ClientCount() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.clients)
}

// ReadPump only services control frames; admins do not send data.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(512)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Dashboard socket closed unexpectedly: %v", err)
			}
			return
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Warn("Dashboard socket write failed: %v", err)
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
