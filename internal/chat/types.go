package chat

import (
	"encoding/json"
	"errors"
	"time"
)

// Входящие события.
const (
	EventJoin           = "join"
	EventGetChatHistory = "get-chat-history"
	EventSendMessage    = "send-message"
)

// Исходящие события.
const (
	EventOnlineUsers    = "online-users"
	EventChatHistory    = "chat-history"
	EventReceiveMessage = "receive-message"
	EventError          = "error"
)

// AdminsGroup — группа рассылки, в которую попадает каждое admin-соединение.
const AdminsGroup = "admins"

var (
	ErrClosed     = errors.New("connection closed")
	ErrBufferFull = errors.New("send buffer full")
)

// Envelope — один кадр протокола: {"event": "...", "data": ...}.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type outbound struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

func encode(event string, data any) ([]byte, error) {
	return json.Marshal(outbound{Event: event, Data: data})
}

// ErrorPayload сообщает клиенту, какая операция не удалась.
type ErrorPayload struct {
	Event string `json:"event"`
	Error string `json:"error"`
}

// Conn — живое соединение с точки зрения Hub и Service.
type Conn interface {
	ID() string
	Send(payload []byte) error
	Close() error
}

// Минимальные методы websocket.Conn, которые нужны клиенту
type WebSocketConn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(string) error)
	Close() error
}
