package chat

import (
	"log"
	"sort"
	"sync"
)

// Hub хранит зарегистрированные соединения и группы рассылки:
// имя группы -> множество соединений. Группы "admins" и по userId.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]Conn            // connectionID -> соединение
	groups  map[string]map[string]Conn // группа -> connectionID -> соединение
	member  map[string]map[string]bool // connectionID -> группы соединения
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]Conn),
		groups:  make(map[string]map[string]Conn),
		member:  make(map[string]map[string]bool),
	}
}

// Register добавляет соединение в Hub (состояние unjoined).
func (h *Hub) Register(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.ID()] = c
	if h.member[c.ID()] == nil {
		h.member[c.ID()] = make(map[string]bool)
	}
}

// Unregister удаляет соединение из Hub и из всех его групп.
func (h *Hub) Unregister(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := c.ID()
	for group := range h.member[id] {
		if members, ok := h.groups[group]; ok {
			delete(members, id)
			if len(members) == 0 {
				delete(h.groups, group)
			}
		}
	}
	delete(h.member, id)
	delete(h.clients, id)
}

// Join добавляет соединение в группу. Незарегистрированные соединения игнорируются.
func (h *Hub) Join(group string, c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := c.ID()
	if _, ok := h.clients[id]; !ok {
		return
	}
	members := h.groups[group]
	if members == nil {
		members = make(map[string]Conn)
		h.groups[group] = members
	}
	members[id] = c
	h.member[id][group] = true
}

// Members возвращает отсортированные connectionID участников группы.
func (h *Hub) Members(group string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ids := make([]string, 0, len(h.groups[group]))
	for id := range h.groups[group] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count — число зарегистрированных соединений.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Emit рассылает событие всем участникам группы и возвращает число
// соединений, принявших кадр. Доставка fire-and-forget: ошибки только логируются.
func (h *Hub) Emit(group, event string, data any) int {
	payload, err := encode(event, data)
	if err != nil {
		log.Printf("hub: marshal %s: %v", event, err)
		return 0
	}

	// Копируем участников, чтобы не держать блокировку во время отправки.
	h.mu.RLock()
	targets := make([]Conn, 0, len(h.groups[group]))
	for _, c := range h.groups[group] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, c := range targets {
		if err := c.Send(payload); err != nil {
			log.Printf("hub: %s to %s dropped: %v", event, c.ID(), err)
			continue
		}
		delivered++
	}
	return delivered
}

// Send отправляет событие одному соединению.
func (h *Hub) Send(c Conn, event string, data any) error {
	payload, err := encode(event, data)
	if err != nil {
		return err
	}
	return c.Send(payload)
}

// Shutdown закрывает все соединения и очищает Hub.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[string]Conn)
	h.groups = make(map[string]map[string]Conn)
	h.member = make(map[string]map[string]bool)
	h.mu.Unlock()

	for _, c := range clients {
		if err := c.Close(); err != nil {
			log.Printf("hub: close %s: %v", c.ID(), err)
		}
	}
}
