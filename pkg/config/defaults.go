package config

const (
	defaultProvider     = "ollama"
	defaultUpstream     = "http://localhost:11434"
	defaultModel        = "llama3.2"
	defaultServerListen = ":8080"
	defaultAPIListen    = ":8081"

	defaultClientServerTarget = "http://localhost:8080"
	defaultClientAPITarget    = "http://localhost:8081"

	defaultStorageDriver = "sqlite"

	defaultEventstreamProvider = "nop"
	defaultEventstreamTopic    = "studyforge.records"
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		Storage: StorageConfig{
			Driver: defaultStorageDriver,
		},
		Server: ServerConfig{
			Listen:   defaultServerListen,
			Provider: defaultProvider,
			Upstream: defaultUpstream,
			Model:    defaultModel,
		},
		API: APIConfig{
			Listen: defaultAPIListen,
		},
		Client: ClientConfig{
			ServerTarget: defaultClientServerTarget,
			APITarget:    defaultClientAPITarget,
		},
		Eventstream: EventstreamConfig{
			Provider: defaultEventstreamProvider,
			Topic:    defaultEventstreamTopic,
		},
	}
}
