package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/dugout/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/login", handler.Login)
	mux.HandleFunc("/logout", handler.Logout)
	mux.HandleFunc("/api/players", handler.Players)
	mux.HandleFunc("/api/game_state", handler.GameState)
	mux.HandleFunc("/api/order", handler.Order)
	mux.HandleFunc("/api/simulate_game", handler.Simulate)
	return mux
}
