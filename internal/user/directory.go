package user

import "sync"

// Directory — справочник сессий в памяти процесса.
// Профили живут и после отключения, индекс соединений хранит только открытые.
type Directory struct {
	mu          sync.RWMutex
	profiles    map[string]*Profile // userID -> profile
	connections map[string]string   // connectionID -> userID
}

func NewDirectory() *Directory {
	return &Directory{
		profiles:    make(map[string]*Profile),
		connections: make(map[string]string),
	}
}

// Join создаёт или обновляет профиль userID и привязывает к нему соединение.
// При пустом userID идентичностью становится само соединение.
func (d *Directory) Join(connectionID, username string, role Role, userID string) string {
	if userID == "" {
		userID = connectionID
	}
	if username == "" {
		username = AnonymousName
	}
	if role == "" {
		role = RoleUser
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	p := d.profiles[userID]
	if p == nil {
		p = &Profile{}
		d.profiles[userID] = p
	}
	p.Username = username
	p.Role = role
	p.ConnectionID = connectionID
	p.Online = true

	d.connections[connectionID] = userID
	return userID
}

// Disconnect переводит профиль соединения в offline и убирает соединение из индекса.
func (d *Directory) Disconnect(connectionID string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	userID, ok := d.connections[connectionID]
	if !ok {
		return "", false
	}
	delete(d.connections, connectionID)

	if p := d.profiles[userID]; p != nil {
		p.Online = false
		p.ConnectionID = ""
	}
	return userID, true
}

// Lookup возвращает userId открытого соединения.
func (d *Directory) Lookup(connectionID string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	userID, ok := d.connections[connectionID]
	return userID, ok
}

// Profile возвращает копию профиля.
func (d *Directory) Profile(userID string) (Profile, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	p, ok := d.profiles[userID]
	if !ok {
		return Profile{}, false
	}
	return *p, true
}

// PublicView: userId -> {username, online} для всех, кто не админ.
func (d *Directory) PublicView() map[string]PublicProfile {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(map[string]PublicProfile, len(d.profiles))
	for userID, p := range d.profiles {
		if p.Role.IsAdmin() {
			continue
		}
		name := p.Username
		if name == "" {
			name = AnonymousName
		}
		out[userID] = PublicProfile{Username: name, Online: p.Online}
	}
	return out
}
