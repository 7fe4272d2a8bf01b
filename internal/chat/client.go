package chat

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	maxMessageSize = 64 << 10
	readWait       = 60 * time.Second
	writeWait      = 10 * time.Second
	pingPeriod     = 45 * time.Second
	sendBuffer     = 64
)

// Client — одно WebSocket-соединение браузера.
type Client struct {
	id      string
	conn    WebSocketConn
	send    chan []byte   // Очередь исходящих кадров
	closeCh chan struct{} // Закрывается один раз при Close
	once    sync.Once
}

func NewClient(id string, conn WebSocketConn) *Client {
	return &Client{
		id:      id,
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		closeCh: make(chan struct{}),
	}
}

func (client *Client) ID() string { return client.id }

// Send кладёт кадр в очередь и никогда не блокируется.
func (client *Client) Send(payload []byte) error {
	select {
	case <-client.closeCh:
		return ErrClosed
	default:
	}

	select {
	case client.send <- payload:
		return nil
	case <-client.closeCh:
		return ErrClosed
	default:
		return ErrBufferFull
	}
}

// Close останавливает WriteSocket и закрывает соединение. Повторный вызов безопасен.
func (client *Client) Close() error {
	var err error
	client.once.Do(func() {
		close(client.closeCh)
		err = client.conn.Close()
	})
	return err
}

// ReadSocket читает события клиента по порядку и передаёт их в Service.
// При выходе соединение отключается от Service и закрывается.
func (client *Client) ReadSocket(ctx context.Context, svc *Service) {
	defer func() {
		svc.Disconnect(client)
		client.Close()
	}()

	client.conn.SetReadLimit(maxMessageSize)
	client.conn.SetReadDeadline(time.Now().Add(readWait))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(readWait))
		return nil
	})

	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("read error from %s: %v", client.id, err)
			}
			return
		}

		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			log.Printf("malformed frame from %s: %v", client.id, err)
			continue
		}
		svc.Dispatch(ctx, client, env)
	}
}

// WriteSocket отправляет кадры из очереди и поддерживает heartbeat (PING).
func (client *Client) WriteSocket() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Close()
	}()

	for {
		select {
		case payload := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-client.closeCh:
			return
		}
	}
}
