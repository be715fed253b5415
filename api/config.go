// Package api provides an HTTP API server for listing and managing stored
// study guides and grade results.
package api

// Config is the API server configuration.
type Config struct {
	// ListenAddr is the address to listen on (e.g., ":8081")
	ListenAddr string
}
