package gateway

import (
	"net/http"
	"testing"
	"time"
)

func TestNormalizeBaseURLTrimsTrailingSlashAndDefaults(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", defaultBaseURL},
		{"http://game.local:5000/", "http://game.local:5000"},
		{"http://game.local:5000", "http://game.local:5000"},
	}

	for _, c := range cases {
		if got := normalizeBaseURL(c.input); got != c.expected {
			t.Fatalf("expected %s, got %s", c.expected, got)
		}
	}
}

func TestNormalizePathAddsLeadingSlash(t *testing.T) {
	if got := normalizePath("api/players"); got != "/api/players" {
		t.Fatalf("expected /api/players, got %s", got)
	}
	if got := normalizePath("/logout"); got != "/logout" {
		t.Fatalf("expected /logout, got %s", got)
	}
}

func TestResolveHTTPClientDefaultsTimeoutAndJar(t *testing.T) {
	client := resolveHTTPClient(nil, nil, 0)
	httpClient, ok := client.(*http.Client)
	if !ok {
		t.Fatalf("expected *http.Client, got %T", client)
	}
	if httpClient.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected timeout %s, got %s", defaultHTTPTimeout, httpClient.Timeout)
	}
	if httpClient.Jar == nil {
		t.Fatalf("expected cookie jar on default client")
	}
}

func TestResolveHTTPClientUsesProvidedClient(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}
	client := resolveHTTPClient(custom, nil, time.Second)
	if client != custom {
		t.Fatalf("expected provided client to be used")
	}
}

func TestResolveHTTPClientUsesTransportAndTimeout(t *testing.T) {
	rt := roundTripperFunc(func(*http.Request) (*http.Response, error) { return nil, nil })
	client := resolveHTTPClient(nil, rt, 3*time.Second).(*http.Client)
	if client.Timeout != 3*time.Second {
		t.Fatalf("expected configured timeout, got %s", client.Timeout)
	}
	if client.Transport == nil {
		t.Fatalf("expected transport to be wired")
	}
}
