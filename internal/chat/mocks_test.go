package chat_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-portfolio/support-chat/internal/chat"
	"github.com/go-portfolio/support-chat/internal/message"
)

// mockClient — фейковая реализация chat.Conn, копит отправленные кадры.
type mockClient struct {
	id     string
	mu     sync.Mutex
	frames [][]byte
	closed bool
	full   bool // эмулирует переполненный буфер

	closeErr error
}

func newMockClient(id string) *mockClient {
	return &mockClient{id: id}
}

func (m *mockClient) ID() string { return m.id }

func (m *mockClient) Send(payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return chat.ErrClosed
	}
	if m.full {
		return chat.ErrBufferFull
	}
	m.frames = append(m.frames, payload)
	return nil
}

func (m *mockClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return m.closeErr
}

// events возвращает полученные кадры с указанным именем события.
func (m *mockClient) events(name string) []chat.Envelope {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []chat.Envelope
	for _, f := range m.frames {
		var env chat.Envelope
		if err := json.Unmarshal(f, &env); err != nil {
			continue
		}
		if env.Event == name {
			out = append(out, env)
		}
	}
	return out
}

func (m *mockClient) raw(name string) [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out [][]byte
	for _, f := range m.frames {
		var env chat.Envelope
		if json.Unmarshal(f, &env) == nil && env.Event == name {
			out = append(out, f)
		}
	}
	return out
}

func (m *mockClient) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frames = nil
}

// memoryStore — in-memory message.Store для тестов.
type memoryStore struct {
	mu       sync.Mutex
	messages []message.Message
	seq      int
	calls    int
	fail     bool
}

func (s *memoryStore) Insert(_ context.Context, msg *message.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.fail {
		return errors.New("store unavailable")
	}
	s.seq++
	msg.ID = fmt.Sprintf("m%d", s.seq)
	msg.Timestamp = time.Date(2024, 1, 1, 0, 0, s.seq, 0, time.UTC)
	s.messages = append(s.messages, *msg)
	return nil
}

func (s *memoryStore) History(_ context.Context, userID string) ([]message.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.fail {
		return nil, errors.New("store unavailable")
	}
	out := []message.Message{}
	for _, m := range s.messages {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *memoryStore) Close(context.Context) error { return nil }

func (s *memoryStore) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
