package chat

import (
	"context"
	"log"

	"github.com/go-portfolio/support-chat/internal/message"
	"github.com/go-portfolio/support-chat/internal/user"
)

// ChatHistory возвращает всю переписку userID по возрастанию времени.
// Пустой userID даёт пустой список без обращения к хранилищу.
func (s *Service) ChatHistory(ctx context.Context, userID string) ([]message.Message, error) {
	if userID == "" {
		return []message.Message{}, nil
	}
	return s.store.History(ctx, userID)
}

// History отвечает на get-chat-history событием chat-history или error.
func (s *Service) History(ctx context.Context, c Conn, req HistoryRequest) {
	msgs, err := s.ChatHistory(ctx, req.UserID)
	if err != nil {
		log.Printf("chat history error for %q: %v", req.UserID, err)
		s.reply(c, EventError, ErrorPayload{Event: EventGetChatHistory, Error: "failed to load chat history"})
		return
	}
	s.reply(c, EventChatHistory, msgs)
}

// targetUserID: явный userId -> userId отправителя -> сам connectionID.
func (s *Service) targetUserID(c Conn, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if owner, ok := s.dir.Lookup(c.ID()); ok {
		return owner
	}
	return c.ID()
}

// SendMessage сохраняет сообщение и рассылает его группе admins
// и группе целевого пользователя. При ошибке сохранения рассылки нет.
func (s *Service) SendMessage(ctx context.Context, c Conn, req SendRequest) {
	target := s.targetUserID(c, req.UserID)

	username := req.Username
	if username == "" {
		if p, ok := s.dir.Profile(target); ok {
			username = p.Username
		}
	}
	if username == "" {
		username = user.AnonymousName
	}

	msg := &message.Message{
		Username:  username,
		UserID:    target,
		Message:   req.Message,
		FromAdmin: req.FromAdmin,
	}
	if err := s.store.Insert(ctx, msg); err != nil {
		log.Printf("send message error for %q: %v", target, err)
		s.reply(c, EventError, ErrorPayload{Event: EventSendMessage, Error: "failed to send message"})
		return
	}

	s.hub.Emit(AdminsGroup, EventReceiveMessage, msg)
	s.hub.Emit(target, EventReceiveMessage, msg)
}
