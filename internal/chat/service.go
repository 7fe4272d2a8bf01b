package chat

import (
	"context"
	"log"

	"github.com/go-portfolio/support-chat/internal/message"
	"github.com/go-portfolio/support-chat/internal/user"
)

// Service обрабатывает события соединений: жизненный цикл (lifecycle.go)
// и маршрутизацию сообщений (router.go).
type Service struct {
	dir      *user.Directory
	hub      *Hub
	store    message.Store
	presence *Presence
}

func NewService(dir *user.Directory, hub *Hub, store message.Store) *Service {
	return &Service{
		dir:      dir,
		hub:      hub,
		store:    store,
		presence: NewPresence(dir, hub),
	}
}

// Dispatch направляет входящее событие обработчику.
func (s *Service) Dispatch(ctx context.Context, c Conn, env Envelope) {
	switch env.Event {
	case EventJoin:
		s.Join(c, decodeJoin(env.Data))
	case EventGetChatHistory:
		s.History(ctx, c, decodeHistory(env.Data))
	case EventSendMessage:
		s.SendMessage(ctx, c, decodeSend(env.Data))
	default:
		log.Printf("unknown event %q from %s", env.Event, c.ID())
	}
}

// reply отправляет событие одному соединению; ошибка доставки только логируется.
func (s *Service) reply(c Conn, event string, data any) {
	if err := s.hub.Send(c, event, data); err != nil {
		log.Printf("%s to %s dropped: %v", event, c.ID(), err)
	}
}

// OnlineUsers — текущий публичный снимок присутствия.
func (s *Service) OnlineUsers() map[string]user.PublicProfile {
	return s.dir.PublicView()
}
