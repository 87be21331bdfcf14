package ws_room

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/meulencv/wenomadus/internal/model"
)

const (
	EventParticipantJoined   = "PARTICIPANT_JOINED"
	EventResponsesSubmitted  = "RESPONSES_SUBMITTED"
	EventRecommendationReady = "RECOMMENDATION_READY"
)

const (
	sendBuffer = 16
	writeWait  = 10 * time.Second
)

type Event struct {
	Type     string      `json:"type"`
	RoomCode string      `json:"room_code"`
	Payload  interface{} `json:"payload"`
}

type Client struct {
	Conn     *websocket.Conn
	Send     chan []byte
	RoomCode string
}

func NewClient(conn *websocket.Conn, roomCode string) *Client {
	return &Client{
		Conn:     conn,
		Send:     make(chan []byte, sendBuffer),
		RoomCode: roomCode,
	}
}

// Hub fans room events out to the websocket clients watching that room.
type Hub struct {
	mu sync.Mutex

	rooms map[string]map[*Client]struct{}

	logger *slog.Logger
}

func New(logger *slog.Logger) *Hub {
	return &Hub{
		rooms:  make(map[string]map[*Client]struct{}),
		logger: logger,
	}
}

func (h *Hub) RegisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[client.RoomCode]; !ok {
		h.rooms[client.RoomCode] = make(map[*Client]struct{})
	}
	h.rooms[client.RoomCode][client] = struct{}{}

	h.logger.Info("client registered", slog.String("room", client.RoomCode))
}

func (h *Hub) RemoveClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(client)
	h.logger.Info("client unregistered", slog.String("room", client.RoomCode))
}

// removeLocked closes Send at most once: only the call that finds the
// client registered closes it.
func (h *Hub) removeLocked(client *Client) {
	room, ok := h.rooms[client.RoomCode]
	if !ok {
		return
	}
	if _, ok := room[client]; !ok {
		return
	}
	delete(room, client)
	close(client.Send)
	if len(room) == 0 {
		delete(h.rooms, client.RoomCode)
	}
}

// Watchers returns how many clients follow the room.
func (h *Hub) Watchers(roomCode string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[roomCode])
}

// BroadcastToRoom drops clients whose send buffer is full.
func (h *Hub) BroadcastToRoom(event Event) {
	message, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to encode event",
			slog.String("type", event.Type),
			slog.String("error", err.Error()))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.rooms[event.RoomCode] {
		select {
		case client.Send <- message:
		default:
			h.logger.Warn("dropping slow client", slog.String("room", event.RoomCode))
			h.removeLocked(client)
		}
	}
}

func (h *Hub) ParticipantJoined(roomCode string, p model.Participant) {
	h.BroadcastToRoom(Event{
		Type:     EventParticipantJoined,
		RoomCode: roomCode,
		Payload: map[string]interface{}{
			"participant_id": p.ID.String(),
			"name":           p.Name,
		},
	})
}

func (h *Hub) ResponsesSubmitted(roomCode string, res model.SubmitResult) {
	h.BroadcastToRoom(Event{
		Type:     EventResponsesSubmitted,
		RoomCode: roomCode,
		Payload:  res,
	})
}

func (h *Hub) RecommendationReady(roomCode string, rec *model.Recommendation) {
	h.BroadcastToRoom(Event{
		Type:     EventRecommendationReady,
		RoomCode: roomCode,
		Payload:  rec,
	})
}

// Serve registers a client for conn and blocks until the peer goes away.
func (h *Hub) Serve(conn *websocket.Conn, roomCode string) {
	client := NewClient(conn, roomCode)
	h.RegisterClient(client)

	go h.StartClientWriting(client)
	h.StartClientReading(client)
}

func (h *Hub) StartClientReading(client *Client) {
	defer func() {
		h.RemoveClient(client)
		client.Conn.Close()
	}()

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) StartClientWriting(client *Client) {
	defer client.Conn.Close()

	for message := range client.Send {
		_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			break
		}
	}
	_ = client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}
