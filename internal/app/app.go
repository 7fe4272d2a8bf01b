package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-portfolio/support-chat/config"
	"github.com/go-portfolio/support-chat/internal/chat"
	"github.com/go-portfolio/support-chat/internal/message"
	"github.com/go-portfolio/support-chat/internal/user"
	"github.com/go-portfolio/support-chat/internal/web"
)

// App связывает хранилище, чат и HTTP-сервер.
type App struct {
	Server  *http.Server
	Service *chat.Service

	hub   *chat.Hub
	store message.Store
}

// New подключается к хранилищу сообщений и собирает маршруты.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := message.Open(ctx, cfg.StoreURI, message.Options{
		Database:   cfg.Database,
		Collection: cfg.Collection,
	})
	if err != nil {
		return nil, fmt.Errorf("open message store: %w", err)
	}
	log.Printf("message store connected")

	return NewWithStore(cfg, store), nil
}

// NewWithStore собирает приложение поверх готового хранилища.
func NewWithStore(cfg *config.Config, store message.Store) *App {
	hub := chat.NewHub()
	svc := chat.NewService(user.NewDirectory(), hub, store)

	return &App{
		Server: &http.Server{
			Addr:    cfg.Addr(),
			Handler: web.NewRouter(web.NewHandler(svc)),
		},
		Service: svc,
		hub:     hub,
		store:   store,
	}
}

// Run блокируется, пока сервер не остановлен.
func (a *App) Run() error {
	log.Printf("Server listening on %s", a.Server.Addr)
	if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown останавливает HTTP, закрывает все соединения и хранилище.
func (a *App) Shutdown(ctx context.Context) error {
	// Shutdown не ждёт hijacked WebSocket-соединения, их закрывает hub
	err := a.Server.Shutdown(ctx)
	a.hub.Shutdown()
	if cerr := a.store.Close(ctx); cerr != nil {
		err = errors.Join(err, fmt.Errorf("close message store: %w", cerr))
	}
	return err
}
