package web

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/go-portfolio/support-chat/internal/chat"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Разрешаем соединения с любого источника
		return true
	},
}

// =========================
// WebSocket обработчик
// GET /ws
// =========================
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	// Обновляем HTTP-соединение до WebSocket
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := chat.NewClient(uuid.NewString(), conn)
	h.svc.Connect(client)
	log.Printf("client connected: %s", client.ID())

	// Запись в отдельной горутине, чтение в текущей до разрыва
	go client.WriteSocket()
	client.ReadSocket(r.Context(), h.svc)
	log.Printf("client disconnected: %s", client.ID())
}
