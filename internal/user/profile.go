package user

// Role — роль, которую клиент заявляет сам при join.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

const AnonymousName = "Anonymous"

// ParseRole: пустая роль -> RoleUser, остальное сохраняется как прислали.
func ParseRole(raw string) Role {
	if raw == "" {
		return RoleUser
	}
	return Role(raw)
}

func (r Role) IsAdmin() bool { return r == RoleAdmin }

// Profile — запись справочника для одного userId.
type Profile struct {
	Username     string `json:"username"`
	Role         Role   `json:"role"`
	Online       bool   `json:"online"`
	ConnectionID string `json:"connectionId,omitempty"`
}

// PublicProfile — то, что админ видит о пользователе.
type PublicProfile struct {
	Username string `json:"username"`
	Online   bool   `json:"online"`
}
