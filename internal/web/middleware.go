package web

import (
	"net/http"

	"github.com/go-chi/cors"
)

// corsMiddleware разрешает любые источники: браузерные клиенты
// чата открываются с произвольных доменов.
func corsMiddleware() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})
}
