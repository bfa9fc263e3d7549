package ws

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/entity"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/utils"
)

const (
	EventInsert = "insert"
	EventUpdate = "update"
)

// OrderEvent is the wire payload pushed to staff dashboards: the raw order
// row plus what happened to it.
type OrderEvent struct {
	Type  string        `json:"type"`
	Order *entity.Order `json:"order"`
}

// OrderHub fans order events out to every dashboard subscribed to a course.
// Events for a course are broadcast in the order they are submitted; missed
// events during a dropped connection are not replayed — clients recover with
// a full re-fetch.
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // courseID -> set of clients
	broadcast  chan courseEvent
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
}

type Subscription struct {
	Conn     *websocket.Conn
	CourseID uint
	UserID   uint
}

type courseEvent struct {
	CourseID uint
	Event    OrderEvent
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan courseEvent, 64),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.CourseID] == nil {
				h.clients[sub.CourseID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.CourseID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.CourseID][sub.Conn]; ok {
				delete(h.clients[sub.CourseID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.CourseID] {
				if err := conn.WriteJSON(ev.Event); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.CourseID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrderCreated implements services.OrderEvents.
func (h *OrderHub) OrderCreated(o *entity.Order) {
	h.broadcast <- courseEvent{CourseID: o.CourseID, Event: OrderEvent{Type: EventInsert, Order: o}}
}

// OrderUpdated implements services.OrderEvents.
func (h *OrderHub) OrderUpdated(o *entity.Order) {
	h.broadcast <- courseEvent{CourseID: o.CourseID, Event: OrderEvent{Type: EventUpdate, Order: o}}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders/:courseId (staff only, JWT via query or header)
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	courseID64, err := strconv.ParseUint(c.Param("courseId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
		return
	}
	courseID := uint(courseID64)

	if !utils.CanAccessCourse(c, courseID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "no access"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, CourseID: courseID, UserID: utils.CurrentUserID(c)}
	h.register <- sub

	go h.readLoop(sub)
}

// readLoop drains the connection so pings and close frames are handled; the
// feed is push-only, inbound frames are ignored.
func (h *OrderHub) readLoop(sub Subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
