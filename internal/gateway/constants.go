package gateway

import "time"

const (
	defaultBaseURL     = "http://localhost:5000"
	defaultHTTPTimeout = 10 * time.Second
	maxBodyBytes       = 1 << 20
	requestIDHeader    = "X-Request-ID"
)
