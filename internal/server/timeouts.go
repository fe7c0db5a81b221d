package server

import "time"

// Game server requests are small JSON bodies; a slow client is cut off early.
const (
	readHeaderTimeout = 2 * time.Second
	readTimeout       = 5 * time.Second
	writeTimeout      = 5 * time.Second
	idleTimeout       = 60 * time.Second
)

// shutdownTimeout bounds draining in-flight simulations; tests shorten it.
var shutdownTimeout = 10 * time.Second
