package web

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/go-portfolio/support-chat/internal/chat"
)

// Handler — HTTP-обработчики поверх chat.Service.
type Handler struct {
	svc *chat.Service
}

func NewHandler(svc *chat.Service) *Handler {
	return &Handler{svc: svc}
}

// =========================
// Health-check
// GET /health
// =========================
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =========================
// Текущее присутствие пользователей (то же, что видят админы)
// GET /api/online-users
// =========================
func (h *Handler) OnlineUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.OnlineUsers())
}

// =========================
// История переписки пользователя
// GET /api/chat-history/{userId}
// =========================
func (h *Handler) ChatHistory(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	msgs, err := h.svc.ChatHistory(r.Context(), userID)
	if err != nil {
		log.Printf("chat history error for %q: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load chat history"})
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

// withJSON задаёт заголовки JSON
func withJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	withJSON(w)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
