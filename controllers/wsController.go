package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"warmindo-pos/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message is the envelope broadcast to every connected client.
type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// Hub fans order change events out to websocket subscribers. It stands in
// for the push-notification channel of the hosted backend.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

func (h *Hub) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			fmt.Println("Error during connection upgrade:", err)
			return
		}
		defer conn.Close()

		h.mu.Lock()
		h.clients[conn] = true
		h.mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.clients, conn)
				h.mu.Unlock()
				break
			}
		}
	}
}

// NotifyNewOrder announces a freshly created order.
func (h *Hub) NotifyNewOrder(order models.Order) {
	h.broadcast(Message{Event: "newOrder", Payload: order})
}

// NotifyStatusChanged announces a status transition.
func (h *Hub) NotifyStatusChanged(orderID string, status string) {
	h.broadcast(Message{Event: "statusChanged", Payload: gin.H{"order_id": orderID, "status": status}})
}

func (h *Hub) broadcast(message Message) {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		fmt.Println("Error marshaling message:", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if err := client.WriteMessage(websocket.TextMessage, messageBytes); err != nil {
			fmt.Println("Error writing message:", err)
			client.Close()
			delete(h.clients, client)
		}
	}
}
