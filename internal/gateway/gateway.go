// Package gateway is the single entry point for every call to the game
// server. It attaches the session cookie, classifies responses and turns a
// rejected session into one recovery transition.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/dugout/internal/appstate"
	"github.com/preston-bernstein/dugout/internal/logging"
	"github.com/preston-bernstein/dugout/internal/metrics"
)

// AuthLostFunc runs the recovery transition after a protected call is rejected.
type AuthLostFunc func(ctx context.Context)

// Config controls how the gateway reaches the game server.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Transport  http.RoundTripper
	Timeout    time.Duration
	State      *appstate.State
	OnAuthLost AuthLostFunc
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Request is one call to the server. Body is JSON encoded when non-nil.
// Public calls (login) get a 401 back as a Response instead of ErrAuthLost.
type Request struct {
	Method string
	Path   string
	Body   any
	Public bool
}

// Response is a fully read server reply.
type Response struct {
	Method     string
	Path       string
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the JSON body into dest. A malformed body is reported as
// a NetworkError carrying the response status.
func (r *Response) Decode(dest any) error {
	if err := json.Unmarshal(r.Body, dest); err != nil {
		return &NetworkError{
			Method:     r.Method,
			Path:       r.Path,
			StatusCode: r.StatusCode,
			Message:    "malformed response body",
			Err:        err,
		}
	}
	return nil
}

// ErrorMessage returns the server's {"error": "..."} text, if any.
func (r *Response) ErrorMessage() string {
	return errorMessage(r.Body)
}

// Gateway wraps every server call.
type Gateway struct {
	baseURL    string
	httpClient httpDoer
	state      *appstate.State
	onAuthLost AuthLostFunc
	logger     *slog.Logger
	metrics    *metrics.Recorder
	newID      func() string
	now        func() time.Time
}

// New constructs a gateway with the provided configuration.
func New(cfg Config) *Gateway {
	return &Gateway{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Transport, cfg.Timeout),
		state:      cfg.State,
		onAuthLost: cfg.OnAuthLost,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		newID:      uuid.NewString,
		now:        time.Now,
	}
}

// SetAuthLostHandler replaces the recovery callback. The session controller
// registers itself here once it has been constructed around the gateway.
func (g *Gateway) SetAuthLostHandler(fn AuthLostFunc) {
	g.onAuthLost = fn
}

// BaseURL returns the normalized server address.
func (g *Gateway) BaseURL() string {
	return g.baseURL
}

// Do performs one call. Exactly one of the following happens:
// a successful Response; ErrAuthLost after recovery for a protected 401;
// a *NetworkError for anything else.
func (g *Gateway) Do(ctx context.Context, r Request) (*Response, error) {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}
	path := normalizePath(r.Path)
	requestID := g.newID()
	logger := logging.FromContext(ctx, g.logger)
	if logger != nil {
		logger = logger.With(
			logging.FieldMethod, method,
			logging.FieldPath, path,
			logging.FieldRequestID, requestID,
		)
	}

	req, err := g.buildRequest(ctx, method, path, requestID, r.Body)
	if err != nil {
		return nil, &NetworkError{Method: method, Path: path, Err: err}
	}

	start := g.now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.metrics.RecordCall(path, time.Since(start), err)
		logging.Warn(logger, "server call failed", err)
		return nil, &NetworkError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	duration := time.Since(start)
	if err != nil {
		g.metrics.RecordCall(path, duration, err)
		logging.Warn(logger, "reading server response failed", err)
		return nil, &NetworkError{Method: method, Path: path, StatusCode: resp.StatusCode, Message: "reading response body", Err: err}
	}

	out := &Response{
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}

	switch {
	case out.OK():
		g.metrics.RecordCall(path, duration, nil)
		logging.Debug(logger, "server call completed", logging.FieldStatusCode, out.StatusCode, logging.FieldDurationMS, duration.Milliseconds())
		return out, nil
	case out.StatusCode == http.StatusUnauthorized && r.Public:
		g.metrics.RecordCall(path, duration, nil)
		logging.Debug(logger, "public call rejected credentials", logging.FieldStatusCode, out.StatusCode)
		return out, nil
	case out.StatusCode == http.StatusUnauthorized:
		authErr := fmt.Errorf("%s %s: %w", method, path, ErrAuthLost)
		g.metrics.RecordCall(path, duration, authErr)
		g.metrics.RecordAuthLost(path)
		logging.Warn(logger, "session rejected by server", nil, logging.FieldStatusCode, out.StatusCode)
		g.recover(ctx)
		return nil, authErr
	default:
		netErr := &NetworkError{
			Method:     method,
			Path:       path,
			StatusCode: out.StatusCode,
			Message:    out.ErrorMessage(),
		}
		g.metrics.RecordCall(path, duration, netErr)
		logging.Warn(logger, "server returned error status", netErr, logging.FieldStatusCode, out.StatusCode)
		return nil, netErr
	}
}

func (g *Gateway) recover(ctx context.Context) {
	if g.state != nil {
		g.state.MarkUnauthenticated()
	}
	if g.onAuthLost != nil {
		g.onAuthLost(ctx)
	}
}

func (g *Gateway) buildRequest(ctx context.Context, method, path, requestID string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func errorMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	text := strings.TrimSpace(string(body))
	if len(text) > 200 {
		text = text[:200]
	}
	return text
}
