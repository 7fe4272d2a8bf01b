package chat

import (
	"sync"

	"github.com/go-portfolio/support-chat/internal/user"
)

// Presence рассылает админам полный снимок присутствия пользователей.
// Вычисление снимка и постановка в очереди сериализованы, поэтому
// каждый админ видит снимки в порядке изменений справочника.
type Presence struct {
	mu  sync.Mutex
	dir *user.Directory
	hub *Hub
}

func NewPresence(dir *user.Directory, hub *Hub) *Presence {
	return &Presence{dir: dir, hub: hub}
}

// Broadcast отправляет online-users всей группе admins.
func (p *Presence) Broadcast() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hub.Emit(AdminsGroup, EventOnlineUsers, p.dir.PublicView())
}

// Snapshot отправляет online-users одному соединению.
func (p *Presence) Snapshot(c Conn) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hub.Send(c, EventOnlineUsers, p.dir.PublicView())
}
