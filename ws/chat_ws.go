package ws

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/LiamF-2261667/fruckr-sub000/entity"
	"github.com/LiamF-2261667/fruckr-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// ChatHub fans chat messages out to everyone connected to a room.
type ChatHub struct {
	clients    map[uint]map[*websocket.Conn]bool // roomID -> set of clients
	broadcast  chan BroadcastMessage
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	service    *services.ChatService
}

// Subscription is one user connection inside one room.
type Subscription struct {
	Conn   *websocket.Conn
	RoomID uint
	UserID uint
}

type BroadcastMessage struct {
	RoomID  uint
	Message *entity.Message
}

func NewChatHub(service *services.ChatService) *ChatHub {
	return &ChatHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan BroadcastMessage),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		service:    service,
	}
}

func (h *ChatHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RoomID] == nil {
				h.clients[sub.RoomID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RoomID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RoomID][sub.Conn]; ok {
				delete(h.clients[sub.RoomID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.RoomID] {
				if err := conn.WriteJSON(msg.Message); err != nil {
					log.Warn().Err(err).Msg("ws write error")
					conn.Close()
					delete(h.clients[msg.RoomID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/chat/:roomId
func (h *ChatHub) HandleWebSocket(c *gin.Context) {
	roomIDStr := c.Param("roomId")
	var roomID uint
	fmt.Sscan(roomIDStr, &roomID)

	userIDVal, _ := c.Get("userId")
	userID, _ := userIDVal.(uint)

	room, err := h.service.GetRoom(roomID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "room not found"})
		return
	}

	ok, err := h.service.CanAccess(userID, room.ID)
	if err != nil || !ok {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "no access"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("ws upgrade error")
		return
	}

	sub := Subscription{Conn: conn, RoomID: room.ID, UserID: userID}
	h.register <- sub

	go h.listenMessages(sub)
}

func (h *ChatHub) listenMessages(sub Subscription) {
	defer func() { h.unregister <- sub }()

	for {
		_, msgData, err := sub.Conn.ReadMessage()
		if err != nil {
			break
		}

		var payload struct {
			Body string `json:"body"`
		}
		if err := json.Unmarshal(msgData, &payload); err != nil {
			log.Warn().Err(err).Msg("invalid ws payload")
			continue
		}

		// sender comes from the JWT, never from the payload
		msg, err := h.service.Send(sub.UserID, sub.RoomID, payload.Body)
		if err != nil {
			log.Warn().Err(err).Msg("save message failed")
			continue
		}

		h.broadcast <- BroadcastMessage{RoomID: sub.RoomID, Message: msg}
	}
}
