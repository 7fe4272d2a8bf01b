package chat

import (
	"log"

	"github.com/go-portfolio/support-chat/internal/user"
)

// Connect регистрирует новое соединение. Справочник не меняется до join.
func (s *Service) Connect(c Conn) {
	s.hub.Register(c)
}

// Join привязывает соединение к пользователю.
// Админ попадает в группу admins и сразу получает снимок присутствия,
// остальные — в группу своего userId, а админам уходит обновление.
func (s *Service) Join(c Conn, req JoinRequest) {
	role := user.ParseRole(req.Role)
	userID := s.dir.Join(c.ID(), req.Username, role, req.UserID)

	if role.IsAdmin() {
		s.hub.Join(AdminsGroup, c)
		if err := s.presence.Snapshot(c); err != nil {
			log.Printf("presence snapshot to %s dropped: %v", c.ID(), err)
		}
		return
	}

	s.hub.Join(userID, c)
	s.presence.Broadcast()
}

// Disconnect снимает соединение со справочника и групп и всегда
// обновляет присутствие у админов.
func (s *Service) Disconnect(c Conn) {
	s.dir.Disconnect(c.ID())
	s.hub.Unregister(c)
	s.presence.Broadcast()
}
