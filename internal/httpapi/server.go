package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"

	"farmassist/internal/config"
)

// NewHandler wraps the mux with CORS for the mobile and web clients and
// request logging.
func NewHandler(cfg config.Config, mux *http.ServeMux) http.Handler {
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	})
	return requestLogger(corsHandler(mux))
}

func NewServer(cfg config.Config, mux *http.ServeMux) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewHandler(cfg, mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
