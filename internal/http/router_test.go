package http

import (
	nethttp "net/http"
	"testing"

	"github.com/preston-bernstein/dugout/internal/http/handlers"
	"github.com/preston-bernstein/dugout/internal/league"
	"github.com/preston-bernstein/dugout/internal/testutil"
)

func TestRouterRegistersRoutes(t *testing.T) {
	h := handlers.NewHandler(league.New(league.Config{}), nil, map[string]string{}, nil)
	router := NewRouter(h)

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{nethttp.MethodGet, "/health", nethttp.StatusOK},
		{nethttp.MethodGet, "/api/players", nethttp.StatusUnauthorized},
		{nethttp.MethodGet, "/api/game_state", nethttp.StatusUnauthorized},
		{nethttp.MethodGet, "/api/simulate_game", nethttp.StatusUnauthorized},
		{nethttp.MethodPost, "/api/order", nethttp.StatusUnauthorized},
		{nethttp.MethodGet, "/logout", nethttp.StatusUnauthorized},
		{nethttp.MethodGet, "/login", nethttp.StatusMethodNotAllowed},
		{nethttp.MethodGet, "/missing", nethttp.StatusNotFound},
	}
	for _, c := range cases {
		rr := testutil.Serve(router, c.method, c.path, nil)
		if rr.Code != c.want {
			t.Fatalf("%s %s expected %d, got %d", c.method, c.path, c.want, rr.Code)
		}
	}
}
