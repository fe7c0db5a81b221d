// Package api is the typed client for the game server's HTTP endpoints.
// Every call goes through the session gateway.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/preston-bernstein/dugout/internal/domain"
	"github.com/preston-bernstein/dugout/internal/gateway"
)

const (
	pathLogin     = "/login"
	pathLogout    = "/logout"
	pathPlayers   = "/api/players"
	pathGameState = "/api/game_state"
	pathOrder     = "/api/order"
	pathSimulate  = "/api/simulate_game"
)

const defaultCredentialsMessage = "invalid credentials"

// Doer is the gateway surface the client needs.
type Doer interface {
	Do(ctx context.Context, r gateway.Request) (*gateway.Response, error)
}

// Client maps server payloads to domain values.
type Client struct {
	gw Doer
}

// NewClient wraps a gateway.
func NewClient(gw Doer) *Client {
	return &Client{gw: gw}
}

// LoginResult is the server's acknowledgement of a login.
type LoginResult struct {
	Message string
	UserID  string
}

// Login posts credentials. A 401 is returned as a *RejectionError carrying
// the server's message.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	resp, err := c.gw.Do(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   pathLogin,
		Body:   credentialsRequest{Username: username, Password: password},
		Public: true,
	})
	if err != nil {
		return LoginResult{}, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		msg := resp.ErrorMessage()
		if msg == "" {
			msg = defaultCredentialsMessage
		}
		return LoginResult{}, &RejectionError{Operation: "login", StatusCode: resp.StatusCode, Message: msg}
	}

	var payload loginResponse
	if err := resp.Decode(&payload); err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Message: payload.Message, UserID: string(payload.UserID)}, nil
}

// Logout ends the server session.
func (c *Client) Logout(ctx context.Context) (string, error) {
	resp, err := c.gw.Do(ctx, gateway.Request{Method: http.MethodGet, Path: pathLogout})
	if err != nil {
		return "", err
	}
	return decodeMessage(resp)
}

// Probe checks whether the current session is accepted using a HEAD on a
// protected resource. A rejected session yields false with ErrAuthLost.
func (c *Client) Probe(ctx context.Context) (bool, error) {
	_, err := c.gw.Do(ctx, gateway.Request{Method: http.MethodHead, Path: pathPlayers})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Players fetches the rosters keyed by team name, in roster order.
func (c *Client) Players(ctx context.Context) ([]domain.Team, error) {
	resp, err := c.gw.Do(ctx, gateway.Request{Method: http.MethodGet, Path: pathPlayers})
	if err != nil {
		return nil, err
	}
	var teams teamsPayload
	if err := resp.Decode(&teams); err != nil {
		return nil, err
	}
	return mapTeams(teams), nil
}

// GameState fetches the full authoritative state.
func (c *Client) GameState(ctx context.Context) (domain.GameState, error) {
	resp, err := c.gw.Do(ctx, gateway.Request{Method: http.MethodGet, Path: pathGameState})
	if err != nil {
		return domain.GameState{}, err
	}
	var payload gameStateResponse
	if err := resp.Decode(&payload); err != nil {
		return domain.GameState{}, err
	}
	state, err := mapGameState(payload)
	if err != nil {
		return domain.GameState{}, malformed(resp, err)
	}
	return state, nil
}

// SubmitOrder sends a validated lineup. A 400 from the server is a
// *RejectionError with the server's reason.
func (c *Client) SubmitOrder(ctx context.Context, lineup domain.Lineup) (string, error) {
	resp, err := c.gw.Do(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   pathOrder,
		Body:   lineupPayload(lineup),
	})
	if err != nil {
		if netErr, ok := gateway.AsNetworkError(err); ok && netErr.StatusCode == http.StatusBadRequest {
			return "", &RejectionError{Operation: "submit order", StatusCode: netErr.StatusCode, Message: netErr.Message, Err: err}
		}
		return "", err
	}
	return decodeMessage(resp)
}

// SimulateGame advances the season by one day and returns the new result.
func (c *Client) SimulateGame(ctx context.Context) (domain.GameResult, error) {
	resp, err := c.gw.Do(ctx, gateway.Request{Method: http.MethodGet, Path: pathSimulate})
	if err != nil {
		return domain.GameResult{}, err
	}
	var payload resultPayload
	if err := resp.Decode(&payload); err != nil {
		return domain.GameResult{}, err
	}
	result, err := mapResult(payload)
	if err != nil {
		return domain.GameResult{}, malformed(resp, err)
	}
	return result, nil
}

func decodeMessage(resp *gateway.Response) (string, error) {
	if len(resp.Body) == 0 {
		return "", nil
	}
	var payload messageResponse
	if err := resp.Decode(&payload); err != nil {
		return "", err
	}
	return payload.Message, nil
}

func malformed(resp *gateway.Response, err error) error {
	return &gateway.NetworkError{
		Method:     resp.Method,
		Path:       resp.Path,
		StatusCode: resp.StatusCode,
		Message:    "malformed response body",
		Err:        err,
	}
}

// IsRetryable reports whether the user may simply try the action again.
// Every NetworkError qualifies; auth loss and rejections do not.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, gateway.ErrAuthLost) {
		return false
	}
	if _, ok := AsRejectionError(err); ok {
		return false
	}
	_, ok := gateway.AsNetworkError(err)
	return ok
}
