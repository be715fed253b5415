package server

// Config is the streaming server configuration.
type Config struct {
	// ListenAddr is the address to listen on (e.g., ":8080")
	ListenAddr string

	// UpstreamURL is the upstream LLM provider URL (e.g., "http://localhost:11434")
	UpstreamURL string

	// ProviderType specifies the LLM provider type (e.g., "anthropic", "openai", "ollama")
	// This determines how upstream requests and responses are encoded.
	ProviderType string

	// Model is the model name sent to the upstream provider.
	Model string

	// APIKey is the upstream provider API key. Empty for keyless providers
	// like ollama.
	APIKey string
}
