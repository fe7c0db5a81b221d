package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// Serve sends one request through a game server handler and returns the recorder.
func Serve(h http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// ServeRequest is Serve for a prepared request, e.g. one carrying a session cookie.
func ServeRequest(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// AssertStatus fails the test unless the recorder holds status want.
func AssertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("expected status %d, got %d (body %s)", want, rr.Code, strings.TrimSpace(rr.Body.String()))
	}
}

// DecodeJSON decodes the recorder body into dest.
func DecodeJSON(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(dest); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

// AssertJSONError checks an {"error": "..."} reply with the given status.
// An empty want accepts any non-empty message.
func AssertJSONError(t *testing.T, rr *httptest.ResponseRecorder, status int, want string) {
	t.Helper()
	AssertStatus(t, rr, status)
	var body struct {
		Error string `json:"error"`
	}
	DecodeJSON(t, rr, &body)
	switch {
	case want == "" && body.Error == "":
		t.Fatalf("expected an error message in the body")
	case want != "" && body.Error != want:
		t.Fatalf("expected error %q, got %q", want, body.Error)
	}
}

// LoginCookie logs username in against h and returns the session cookie.
func LoginCookie(t *testing.T, h http.Handler, username, password string) *http.Cookie {
	t.Helper()
	payload, _ := json.Marshal(map[string]string{"username": username, "password": password})
	rr := Serve(h, http.MethodPost, "/login", strings.NewReader(string(payload)))
	AssertStatus(t, rr, http.StatusOK)
	for _, c := range rr.Result().Cookies() {
		if c.Name == "session" {
			return c
		}
	}
	t.Fatalf("login set no session cookie")
	return nil
}
