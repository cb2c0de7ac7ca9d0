package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/Div1912/Spice-Bite/entity"
	"github.com/Div1912/Spice-Bite/services"
	"github.com/Div1912/Spice-Bite/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// TrackingHub pushes order-status snapshots to everyone watching an
// order, replacing the old fixed-interval polling on the tracking page.
type TrackingHub struct {
	clients    map[string]map[*websocket.Conn]bool // order code -> set of watchers
	broadcast  chan broadcastUpdate
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	orders     *services.OrderService
}

type subscription struct {
	Conn   *websocket.Conn
	Code   string
	UserID uint
}

// TrackingUpdate is the payload written to every watcher on a status
// advance.
type TrackingUpdate struct {
	Code          string                `json:"code"`
	Status        entity.OrderStatus    `json:"status"`
	TrackingSteps []entity.TrackingStep `json:"trackingSteps"`
}

type broadcastUpdate struct {
	Code   string
	Update TrackingUpdate
}

func NewTrackingHub(orders *services.OrderService) *TrackingHub {
	return &TrackingHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan broadcastUpdate),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		orders:     orders,
	}
}

// Run loops over register/unregister/broadcast forever. Start it once
// from main in its own goroutine.
func (h *TrackingHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.Code] == nil {
				h.clients[sub.Code] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.Code][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.Code][sub.Conn]; ok {
				delete(h.clients[sub.Code], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.Code] {
				if err := conn.WriteJSON(msg.Update); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.Code], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast fans a status snapshot out to the order's watchers.
func (h *TrackingHub) Broadcast(code string, update TrackingUpdate) {
	h.broadcast <- broadcastUpdate{Code: code, Update: update}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders/:code
func (h *TrackingHub) HandleWebSocket(c *gin.Context) {
	code := c.Param("code")
	userID := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	// Only the order's customer or an admin may watch it.
	ok, err := h.orders.CanAccessOrder(userID, role, code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "access check failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "no access"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	// Send the current state right away so the page renders without a
	// separate fetch. This must happen before registering: once the
	// connection joins the room the hub goroutine is its only writer.
	if snap, found := h.snapshot(userID, role, code); found {
		if err := conn.WriteJSON(snap); err != nil {
			conn.Close()
			return
		}
	}

	sub := subscription{Conn: conn, Code: code, UserID: userID}
	h.register <- sub

	go h.waitForClose(sub)
}

func (h *TrackingHub) snapshot(userID uint, role, code string) (TrackingUpdate, bool) {
	if t, err := h.orders.Tracking(userID, code); err == nil {
		return TrackingUpdate{Code: t.Code, Status: t.Status, TrackingSteps: t.Steps}, true
	}
	if role == "admin" {
		if d, err := h.orders.DetailForAdmin(code); err == nil {
			return TrackingUpdate{Code: d.Order.Code, Status: d.Order.Status, TrackingSteps: d.Steps}, true
		}
	}
	return TrackingUpdate{}, false
}

// waitForClose drains the connection; watchers never send anything
// meaningful, we only need to notice the disconnect.
func (h *TrackingHub) waitForClose(sub subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
