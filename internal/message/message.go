package message

import (
	"context"
	"time"
)

// Message — одно сохранённое сообщение. UserID — это ветка переписки,
// т.е. пользователь, даже если писал админ.
type Message struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	UserID    string    `json:"userId"`
	Message   string    `json:"message"`
	FromAdmin bool      `json:"fromAdmin"`
	Timestamp time.Time `json:"timestamp"`
}

// Store — журнал сообщений, только добавление.
type Store interface {
	// Insert сохраняет msg и заполняет ID и Timestamp
	Insert(ctx context.Context, msg *Message) error
	// History — все сообщения userID, от старых к новым
	History(ctx context.Context, userID string) ([]Message, error)
	Close(ctx context.Context) error
}

// stamp проставляет серверное время с точностью до миллисекунд.
func stamp(msg *Message) {
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC().Truncate(time.Millisecond)
	}
}
