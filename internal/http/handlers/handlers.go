// Package handlers serves the game API used by the dugout client.
package handlers

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/dugout/internal/domain"
	"github.com/preston-bernstein/dugout/internal/league"
	"github.com/preston-bernstein/dugout/internal/logging"
)

const maxRequestBytes = 64 << 10

// Handler wires HTTP routes to the league.
type Handler struct {
	league   *league.League
	sessions *Sessions
	users    map[string]string
	logger   *slog.Logger
}

// NewHandler constructs a Handler. users maps usernames to passwords.
func NewHandler(lg *league.League, sessions *Sessions, users map[string]string, logger *slog.Logger) *Handler {
	if sessions == nil {
		sessions = NewSessions()
	}
	return &Handler{
		league:   lg,
		sessions: sessions,
		users:    users,
		logger:   logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Login checks credentials and issues a session cookie.
func (h *Handler) Login(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)

	var creds credentials
	if err := json.NewDecoder(nethttp.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&creds); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", logger)
		return
	}
	want, ok := h.users[creds.Username]
	if !ok || creds.Username == "" || want != creds.Password {
		logging.Warn(logger, "login rejected", nil, logging.FieldUser, creds.Username)
		writeError(w, r, nethttp.StatusUnauthorized, "invalid username or password", logger)
		return
	}

	token := h.sessions.Create(creds.Username)
	nethttp.SetCookie(w, &nethttp.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: nethttp.SameSiteLaxMode,
	})
	logging.Info(logger, "login accepted", logging.FieldUser, creds.Username)
	writeJSON(w, nethttp.StatusOK, loginResponse{Message: "Login successful", UserID: creds.Username}, logger)
}

// Logout revokes the session and expires the cookie.
func (h *Handler) Logout(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.withSession(w, r, func(user string) {
		if token, _, ok := h.sessions.fromRequest(r); ok {
			h.sessions.Revoke(token)
		}
		nethttp.SetCookie(w, &nethttp.Cookie{Name: SessionCookie, Value: "", Path: "/", MaxAge: -1})
		logging.Info(loggerFromContext(r, h.logger), "logout", logging.FieldUser, user)
		writeMessage(w, "Logged out", h.logger)
	}, nethttp.MethodGet, nethttp.MethodPost)
}

// Players returns the rosters keyed by team name.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.withSession(w, r, func(string) {
		writeJSON(w, nethttp.StatusOK, teamsJSON(h.league.Teams()), h.logger)
	}, nethttp.MethodGet, nethttp.MethodHead)
}

// GameState returns the caller's full season state.
func (h *Handler) GameState(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.withSession(w, r, func(user string) {
		writeJSON(w, nethttp.StatusOK, toGameStateJSON(h.league.State(user)), h.logger)
	}, nethttp.MethodGet)
}

// Order accepts the caller's lineup.
func (h *Handler) Order(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.withSession(w, r, func(user string) {
		logger := loggerFromContext(r, h.logger)
		var payload orderJSON
		if err := json.NewDecoder(nethttp.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&payload); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid request body", logger)
			return
		}
		if len(payload.Batters) != domain.BattingSlots {
			writeError(w, r, nethttp.StatusBadRequest, "batting order needs 9 players", logger)
			return
		}

		var order domain.Lineup
		for i, id := range payload.Batters {
			order.Batters[i] = domain.PlayerID(id)
		}
		order.Pitcher = domain.PlayerID(payload.Pitcher)

		if err := h.league.SubmitOrder(user, order); err != nil {
			logging.Warn(logger, "order rejected", err, logging.FieldUser, user)
			writeError(w, r, nethttp.StatusBadRequest, err.Error(), logger)
			return
		}
		logging.Info(logger, "order received", logging.FieldUser, user)
		writeMessage(w, "Order received successfully!", logger)
	}, nethttp.MethodPost)
}

// Simulate plays the caller's next game.
func (h *Handler) Simulate(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.withSession(w, r, func(user string) {
		result := h.league.Simulate(user)
		logging.Info(loggerFromContext(r, h.logger), "game simulated",
			logging.FieldUser, user,
			"outcome", string(result.Outcome),
		)
		writeJSON(w, nethttp.StatusOK, toResultJSON(result), h.logger)
	}, nethttp.MethodGet, nethttp.MethodPost)
}

func (h *Handler) withSession(w nethttp.ResponseWriter, r *nethttp.Request, fn func(user string), methods ...string) {
	allowed := false
	for _, m := range methods {
		if r.Method == m {
			allowed = true
			break
		}
	}
	if !allowed {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	_, user, ok := h.sessions.fromRequest(r)
	if !ok {
		writeError(w, r, nethttp.StatusUnauthorized, "authentication required", h.logger)
		return
	}
	fn(user)
}
