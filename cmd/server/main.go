package main

import (
	"context"
	"log"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/joho/godotenv"

	"github.com/go-portfolio/support-chat/config"
	"github.com/go-portfolio/support-chat/internal/app"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Локально читаем .env, в продакшене переменные берутся из окружения
	_ = godotenv.Load()
	cfg := config.Load()

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to init app: %v", err)
	}

	go func() {
		if err := a.Run(); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"chat-server": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return a.Shutdown(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Server exited with code: %d", exitCode)
	os.Exit(exitCode)
}
