package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"

	"github.com/studyforgeco/studyforge/pkg/config"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Suite")
}

var _ = Describe("Configer config", func() {
	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "config-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	Describe("LoadConfig", func() {
		It("returns default config when no config file exists", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).NotTo(BeNil())

			defaults := config.NewDefaultConfig()
			Expect(cfg.Version).To(Equal(defaults.Version))
			Expect(cfg.Storage.Driver).To(Equal(defaults.Storage.Driver))
			Expect(cfg.Server.Listen).To(Equal(defaults.Server.Listen))
			Expect(cfg.Server.Provider).To(Equal(defaults.Server.Provider))
			Expect(cfg.Server.Upstream).To(Equal(defaults.Server.Upstream))
			Expect(cfg.Server.Model).To(Equal(defaults.Server.Model))
			Expect(cfg.API.Listen).To(Equal(defaults.API.Listen))
			Expect(cfg.Client.ServerTarget).To(Equal(defaults.Client.ServerTarget))
			Expect(cfg.Client.APITarget).To(Equal(defaults.Client.APITarget))
			Expect(cfg.Eventstream.Provider).To(Equal(defaults.Eventstream.Provider))
			Expect(cfg.Eventstream.Topic).To(Equal(defaults.Eventstream.Topic))
		})

		It("loads a valid config file", func() {
			data := `version = 0

[server]
provider = "anthropic"
upstream = "https://api.anthropic.com"
`
			err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
			Expect(err).NotTo(HaveOccurred())

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).NotTo(BeNil())
			Expect(cfg.Version).To(Equal(0))
			Expect(cfg.Server.Provider).To(Equal("anthropic"))
			Expect(cfg.Server.Upstream).To(Equal("https://api.anthropic.com"))
		})

		It("loads all config fields", func() {
			data := `version = 0

[storage]
driver = "postgres"
sqlite_path = "/tmp/studyforge.sqlite"
postgres_dsn = "postgres://localhost:5432/studyforge"

[server]
listen = ":9090"
provider = "openai"
upstream = "https://api.openai.com"
model = "gpt-4.1"

[api]
listen = ":9091"

[client]
server_target = "http://myhost:9090"
api_target = "http://myhost:9091"

[eventstream]
provider = "kafka"
brokers = "broker1:9092, broker2:9092"
topic = "records"
`
			err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
			Expect(err).NotTo(HaveOccurred())

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Version).To(Equal(0))
			Expect(cfg.Storage.Driver).To(Equal("postgres"))
			Expect(cfg.Storage.SQLitePath).To(Equal("/tmp/studyforge.sqlite"))
			Expect(cfg.Storage.PostgresDSN).To(Equal("postgres://localhost:5432/studyforge"))
			Expect(cfg.Server.Listen).To(Equal(":9090"))
			Expect(cfg.Server.Provider).To(Equal("openai"))
			Expect(cfg.Server.Upstream).To(Equal("https://api.openai.com"))
			Expect(cfg.Server.Model).To(Equal("gpt-4.1"))
			Expect(cfg.API.Listen).To(Equal(":9091"))
			Expect(cfg.Client.ServerTarget).To(Equal("http://myhost:9090"))
			Expect(cfg.Client.APITarget).To(Equal("http://myhost:9091"))
			Expect(cfg.Eventstream.Provider).To(Equal("kafka"))
			Expect(cfg.Eventstream.BrokerList()).To(Equal([]string{"broker1:9092", "broker2:9092"}))
			Expect(cfg.Eventstream.Topic).To(Equal("records"))
		})

		It("returns error for malformed TOML", func() {
			err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not valid toml [[["), 0o600)
			Expect(err).NotTo(HaveOccurred())

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).To(HaveOccurred())
			Expect(cfg).To(BeNil())
		})

		It("returns error for unsupported config version", func() {
			data := `version = 99
`
			err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
			Expect(err).NotTo(HaveOccurred())

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unsupported config version"))
			Expect(cfg).To(BeNil())
		})

		It("accepts config with version 0 (omitted)", func() {
			data := `[server]
provider = "openai"
`
			err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
			Expect(err).NotTo(HaveOccurred())

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Server.Provider).To(Equal("openai"))
		})
	})

	Describe("SaveConfig", func() {
		It("persists config to disk", func() {
			cfg := &config.Config{
				Version: config.CurrentV,
				Server: config.ServerConfig{
					Provider: "anthropic",
					Upstream: "https://api.anthropic.com",
				},
			}

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SaveConfig(cfg)
			Expect(err).NotTo(HaveOccurred())

			// Verify the file exists
			_, err = os.Stat(filepath.Join(tmpDir, "config.toml"))
			Expect(err).NotTo(HaveOccurred())

			// Load it back and verify
			loaded, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Server.Provider).To(Equal("anthropic"))
			Expect(loaded.Server.Upstream).To(Equal("https://api.anthropic.com"))
		})

		It("returns error for nil config", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SaveConfig(nil)
			Expect(err).To(HaveOccurred())
		})

		It("overwrites existing config", func() {
			first := &config.Config{
				Version: config.CurrentV,
				Server:  config.ServerConfig{Provider: "ollama"},
			}
			second := &config.Config{
				Version: config.CurrentV,
				Server:  config.ServerConfig{Provider: "anthropic"},
			}

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SaveConfig(first)
			Expect(err).NotTo(HaveOccurred())

			err = c.SaveConfig(second)
			Expect(err).NotTo(HaveOccurred())

			loaded, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Server.Provider).To(Equal("anthropic"))
		})
	})

	Describe("SetConfigValue", func() {
		It("sets a string config key", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SetConfigValue("server.provider", "anthropic")
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Server.Provider).To(Equal("anthropic"))
		})

		It("returns error for unknown key", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SetConfigValue("nonexistent_key", "value")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unknown config key"))
		})

		It("sets client.server_target", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SetConfigValue("client.server_target", "http://remote:9090")
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Client.ServerTarget).To(Equal("http://remote:9090"))
		})

		It("sets client.api_target", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SetConfigValue("client.api_target", "http://remote:9091")
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Client.APITarget).To(Equal("http://remote:9091"))
		})

		It("preserves existing values when setting a new key", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SetConfigValue("server.provider", "anthropic")
			Expect(err).NotTo(HaveOccurred())

			err = c.SetConfigValue("server.upstream", "https://api.anthropic.com")
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Server.Provider).To(Equal("anthropic"))
			Expect(cfg.Server.Upstream).To(Equal("https://api.anthropic.com"))
		})
	})

	Describe("GetConfigValue", func() {
		It("gets a set config value", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SetConfigValue("server.provider", "anthropic")
			Expect(err).NotTo(HaveOccurred())

			val, err := c.GetConfigValue("server.provider")
			Expect(err).NotTo(HaveOccurred())
			Expect(val).To(Equal("anthropic"))
		})

		It("returns default value when no config file exists", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			val, err := c.GetConfigValue("server.provider")
			Expect(err).NotTo(HaveOccurred())
			Expect(val).To(Equal(config.NewDefaultConfig().Server.Provider))
		})

		It("returns empty string for key with no default", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			val, err := c.GetConfigValue("storage.sqlite_path")
			Expect(err).NotTo(HaveOccurred())
			Expect(val).To(BeEmpty())
		})

		It("returns error for unknown key", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			_, err = c.GetConfigValue("nonexistent_key")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unknown config key"))
		})

		It("returns default client target values when no config file exists", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			val, err := c.GetConfigValue("client.server_target")
			Expect(err).NotTo(HaveOccurred())
			Expect(val).To(Equal("http://localhost:8080"))

			val, err = c.GetConfigValue("client.api_target")
			Expect(err).NotTo(HaveOccurred())
			Expect(val).To(Equal("http://localhost:8081"))
		})
	})

	Describe("ValidConfigKeys", func() {
		It("returns all expected keys", func() {
			keys := config.ValidConfigKeys()
			Expect(keys).To(ContainElements(
				"storage.driver",
				"storage.sqlite_path",
				"storage.postgres_dsn",
				"server.listen",
				"server.provider",
				"server.upstream",
				"server.model",
				"api.listen",
				"client.server_target",
				"client.api_target",
				"eventstream.provider",
				"eventstream.brokers",
				"eventstream.topic",
			))
		})

		It("returns keys in stable order", func() {
			keys1 := config.ValidConfigKeys()
			keys2 := config.ValidConfigKeys()
			Expect(keys1).To(Equal(keys2))
		})
	})

	Describe("IsValidConfigKey", func() {
		It("returns true for valid keys", func() {
			Expect(config.IsValidConfigKey("server.provider")).To(BeTrue())
			Expect(config.IsValidConfigKey("storage.driver")).To(BeTrue())
			Expect(config.IsValidConfigKey("client.server_target")).To(BeTrue())
			Expect(config.IsValidConfigKey("client.api_target")).To(BeTrue())
		})

		It("returns false for invalid keys", func() {
			Expect(config.IsValidConfigKey("nonexistent")).To(BeFalse())
			Expect(config.IsValidConfigKey("")).To(BeFalse())
		})

		It("returns false for old flat key names", func() {
			Expect(config.IsValidConfigKey("provider")).To(BeFalse())
			Expect(config.IsValidConfigKey("upstream")).To(BeFalse())
		})
	})

	Describe("round-trip", func() {
		It("saves and loads config correctly with all fields", func() {
			cfg := &config.Config{
				Version: config.CurrentV,
				Storage: config.StorageConfig{
					Driver:     "sqlite",
					SQLitePath: "/tmp/test.sqlite",
				},
				Server: config.ServerConfig{
					Listen:   ":9090",
					Provider: "openai",
					Upstream: "https://api.openai.com",
					Model:    "gpt-4.1",
				},
				API: config.APIConfig{
					Listen: ":9091",
				},
				Client: config.ClientConfig{
					ServerTarget: "http://myhost:9090",
					APITarget:    "http://myhost:9091",
				},
				Eventstream: config.EventstreamConfig{
					Provider: "kafka",
					Brokers:  "localhost:9092",
					Topic:    "records",
				},
			}

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SaveConfig(cfg)
			Expect(err).NotTo(HaveOccurred())

			loaded, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(cfg))
		})
	})
})

var _ = Describe("PresetConfig", func() {
	It("returns openai preset with correct defaults", func() {
		cfg, err := config.PresetConfig("openai")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Version).To(Equal(config.CurrentV))
		Expect(cfg.Server.Provider).To(Equal("openai"))
		Expect(cfg.Server.Upstream).To(Equal("https://api.openai.com"))
		Expect(cfg.Server.Listen).To(Equal(":8080"))
		Expect(cfg.API.Listen).To(Equal(":8081"))
		Expect(cfg.Client.ServerTarget).To(Equal("http://localhost:8080"))
		Expect(cfg.Client.APITarget).To(Equal("http://localhost:8081"))
	})

	It("returns anthropic preset with correct defaults", func() {
		cfg, err := config.PresetConfig("anthropic")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Version).To(Equal(config.CurrentV))
		Expect(cfg.Server.Provider).To(Equal("anthropic"))
		Expect(cfg.Server.Upstream).To(Equal("https://api.anthropic.com"))
		Expect(cfg.Server.Listen).To(Equal(":8080"))
		Expect(cfg.API.Listen).To(Equal(":8081"))
		Expect(cfg.Client.ServerTarget).To(Equal("http://localhost:8080"))
		Expect(cfg.Client.APITarget).To(Equal("http://localhost:8081"))
	})

	It("returns ollama preset with correct defaults", func() {
		cfg, err := config.PresetConfig("ollama")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Version).To(Equal(config.CurrentV))
		Expect(cfg.Server.Provider).To(Equal("ollama"))
		Expect(cfg.Server.Upstream).To(Equal("http://localhost:11434"))
		Expect(cfg.Server.Listen).To(Equal(":8080"))
		Expect(cfg.API.Listen).To(Equal(":8081"))
		Expect(cfg.Client.ServerTarget).To(Equal("http://localhost:8080"))
		Expect(cfg.Client.APITarget).To(Equal("http://localhost:8081"))
	})

	It("is case-insensitive", func() {
		cfg, err := config.PresetConfig("OpenAI")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Server.Provider).To(Equal("openai"))

		cfg, err = config.PresetConfig("ANTHROPIC")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Server.Provider).To(Equal("anthropic"))
	})

	It("returns error for unknown preset", func() {
		cfg, err := config.PresetConfig("nonexistent")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("unknown preset"))
		Expect(cfg).To(BeNil())
	})
})

var _ = Describe("ValidPresetNames", func() {
	It("returns the expected preset names", func() {
		names := config.ValidPresetNames()
		Expect(names).To(ConsistOf("openai", "anthropic", "ollama"))
	})
})

var _ = Describe("ParseConfigTOML", func() {
	It("parses valid TOML into a Config", func() {
		data := []byte(`version = 0

[server]
provider = "anthropic"
upstream = "https://api.anthropic.com"
listen = ":9090"
`)
		cfg, err := config.ParseConfigTOML(data)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Version).To(Equal(0))
		Expect(cfg.Server.Provider).To(Equal("anthropic"))
		Expect(cfg.Server.Upstream).To(Equal("https://api.anthropic.com"))
		Expect(cfg.Server.Listen).To(Equal(":9090"))
	})

	It("returns error for invalid TOML", func() {
		cfg, err := config.ParseConfigTOML([]byte("not valid [[["))
		Expect(err).To(HaveOccurred())
		Expect(cfg).To(BeNil())
	})

	It("returns empty config for empty input", func() {
		cfg, err := config.ParseConfigTOML([]byte(""))
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).NotTo(BeNil())
		Expect(cfg.Server.Provider).To(BeEmpty())
	})

	It("rejects unsupported config version", func() {
		data := []byte(`version = 2
`)
		cfg, err := config.ParseConfigTOML(data)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("unsupported config version"))
		Expect(cfg).To(BeNil())
	})
})

var _ = Describe("NewDefaultConfig", func() {
	It("returns fully-populated defaults", func() {
		cfg := config.NewDefaultConfig()
		Expect(cfg.Version).To(Equal(config.CurrentV))
		Expect(cfg.Storage.Driver).To(Equal("sqlite"))
		Expect(cfg.Server.Listen).To(Equal(":8080"))
		Expect(cfg.Server.Provider).To(Equal("ollama"))
		Expect(cfg.Server.Upstream).To(Equal("http://localhost:11434"))
		Expect(cfg.Server.Model).To(Equal("llama3.2"))
		Expect(cfg.API.Listen).To(Equal(":8081"))
		Expect(cfg.Client.ServerTarget).To(Equal("http://localhost:8080"))
		Expect(cfg.Client.APITarget).To(Equal("http://localhost:8081"))
		Expect(cfg.Eventstream.Provider).To(Equal("nop"))
		Expect(cfg.Eventstream.Topic).To(Equal("studyforge.records"))
	})
})

var _ = Describe("BrokerList", func() {
	It("splits comma-separated brokers and trims whitespace", func() {
		ec := config.EventstreamConfig{Brokers: "a:9092, b:9092 ,c:9092"}
		Expect(ec.BrokerList()).To(Equal([]string{"a:9092", "b:9092", "c:9092"}))
	})

	It("returns nil for empty brokers", func() {
		ec := config.EventstreamConfig{}
		Expect(ec.BrokerList()).To(BeNil())
	})
})

var _ = Describe("InitViper", func() {
	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "viper-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	It("returns viper with defaults when no config file exists", func() {
		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).NotTo(BeNil())

		defaults := config.NewDefaultConfig()
		Expect(v.GetString("server.provider")).To(Equal(defaults.Server.Provider))
		Expect(v.GetString("server.upstream")).To(Equal(defaults.Server.Upstream))
		Expect(v.GetString("server.listen")).To(Equal(defaults.Server.Listen))
		Expect(v.GetString("api.listen")).To(Equal(defaults.API.Listen))
		Expect(v.GetString("client.server_target")).To(Equal(defaults.Client.ServerTarget))
		Expect(v.GetString("client.api_target")).To(Equal(defaults.Client.APITarget))
	})

	It("reads config file values over defaults", func() {
		data := `[server]
provider = "anthropic"
upstream = "https://api.anthropic.com"
`
		err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
		Expect(err).NotTo(HaveOccurred())

		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		Expect(v.GetString("server.provider")).To(Equal("anthropic"))
		Expect(v.GetString("server.upstream")).To(Equal("https://api.anthropic.com"))
		// Unset fields should still get defaults
		defaults := config.NewDefaultConfig()
		Expect(v.GetString("server.listen")).To(Equal(defaults.Server.Listen))
	})

	It("respects environment variables with STUDYFORGE_ prefix", func() {
		os.Setenv("STUDYFORGE_SERVER_PROVIDER", "openai")
		defer os.Unsetenv("STUDYFORGE_SERVER_PROVIDER")

		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		Expect(v.GetString("server.provider")).To(Equal("openai"))
	})

	It("env vars take precedence over config file values", func() {
		data := `[server]
provider = "anthropic"
`
		err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
		Expect(err).NotTo(HaveOccurred())

		os.Setenv("STUDYFORGE_SERVER_PROVIDER", "openai")
		defer os.Unsetenv("STUDYFORGE_SERVER_PROVIDER")

		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		Expect(v.GetString("server.provider")).To(Equal("openai"))
	})
})

var _ = Describe("BindFlags", func() {
	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "bindflag-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	It("binds cobra flags to viper keys via registry", func() {
		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		fs := config.FlagSet{
			config.FlagAPIListenStandalone: {Name: "listen", Shorthand: "l", ViperKey: "api.listen", Description: "Address for API server to listen on"},
		}

		cmd := &cobra.Command{Use: "test"}
		var listen string
		config.AddStringFlag(cmd, fs, config.FlagAPIListenStandalone, &listen)

		// Simulate flag being set by user
		err = cmd.Flags().Set("listen", ":7777")
		Expect(err).NotTo(HaveOccurred())

		config.BindRegisteredFlags(v, cmd, fs, []string{config.FlagAPIListenStandalone})

		Expect(v.GetString("api.listen")).To(Equal(":7777"))
	})

	It("falls through to config when flag not set", func() {
		data := `[api]
listen = ":5555"
`
		err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
		Expect(err).NotTo(HaveOccurred())

		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		fs := config.FlagSet{
			config.FlagAPIListenStandalone: {Name: "listen", Shorthand: "l", ViperKey: "api.listen", Description: "Address for API server to listen on"},
		}

		cmd := &cobra.Command{Use: "test"}
		var listen string
		config.AddStringFlag(cmd, fs, config.FlagAPIListenStandalone, &listen)

		// Do NOT set the flag -- should fall through to config file value
		config.BindRegisteredFlags(v, cmd, fs, []string{config.FlagAPIListenStandalone})

		Expect(v.GetString("api.listen")).To(Equal(":5555"))
	})

	It("skips bindings for nonexistent registry keys", func() {
		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		fs := config.FlagSet{}

		cmd := &cobra.Command{Use: "test"}

		// "nonexistent" is not in the FlagSet -- should be safely skipped
		config.BindRegisteredFlags(v, cmd, fs, []string{"nonexistent"})

		defaults := config.NewDefaultConfig()
		Expect(v.GetString("server.listen")).To(Equal(defaults.Server.Listen))
	})

	It("AddStringFlag pulls name, shorthand, and description from FlagSet", func() {
		fs := config.FlagSet{
			config.FlagAPITarget: {Name: "api-target", Shorthand: "a", ViperKey: "client.api_target", Description: "StudyForge API server URL"},
		}

		cmd := &cobra.Command{Use: "test"}
		var target string
		config.AddStringFlag(cmd, fs, config.FlagAPITarget, &target)

		f := cmd.Flags().Lookup("api-target")
		Expect(f).NotTo(BeNil())
		Expect(f.Shorthand).To(Equal("a"))
		Expect(f.Usage).To(Equal("StudyForge API server URL"))

		defaults := config.NewDefaultConfig()
		Expect(f.DefValue).To(Equal(defaults.Client.APITarget))
	})
})

var _ = Describe("viper default merging via LoadConfig", func() {
	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "config-defaults-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	It("fills in defaults for unset fields in a partial config", func() {
		// Config file only sets server.provider; everything else should get defaults.
		data := `version = 0

[server]
provider = "anthropic"
`
		err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
		Expect(err).NotTo(HaveOccurred())

		c, err := config.NewConfiger(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		cfg, err := c.LoadConfig()
		Expect(err).NotTo(HaveOccurred())

		// Explicitly set value should be preserved.
		Expect(cfg.Server.Provider).To(Equal("anthropic"))

		// Unset fields should get defaults.
		defaults := config.NewDefaultConfig()
		Expect(cfg.Server.Upstream).To(Equal(defaults.Server.Upstream))
		Expect(cfg.Server.Listen).To(Equal(defaults.Server.Listen))
		Expect(cfg.Server.Model).To(Equal(defaults.Server.Model))
		Expect(cfg.API.Listen).To(Equal(defaults.API.Listen))
		Expect(cfg.Client.ServerTarget).To(Equal(defaults.Client.ServerTarget))
		Expect(cfg.Client.APITarget).To(Equal(defaults.Client.APITarget))
		Expect(cfg.Storage.Driver).To(Equal(defaults.Storage.Driver))
		Expect(cfg.Eventstream.Provider).To(Equal(defaults.Eventstream.Provider))
		Expect(cfg.Eventstream.Topic).To(Equal(defaults.Eventstream.Topic))
	})

	It("does not overwrite explicitly set values", func() {
		data := `version = 0

[server]
listen = ":9090"
provider = "openai"
upstream = "https://api.openai.com"
model = "gpt-4.1"

[api]
listen = ":9091"

[client]
server_target = "http://remote:9090"
api_target = "http://remote:9091"
`
		err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
		Expect(err).NotTo(HaveOccurred())

		c, err := config.NewConfiger(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		cfg, err := c.LoadConfig()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Server.Listen).To(Equal(":9090"))
		Expect(cfg.Server.Provider).To(Equal("openai"))
		Expect(cfg.Server.Upstream).To(Equal("https://api.openai.com"))
		Expect(cfg.Server.Model).To(Equal("gpt-4.1"))
		Expect(cfg.API.Listen).To(Equal(":9091"))
		Expect(cfg.Client.ServerTarget).To(Equal("http://remote:9090"))
		Expect(cfg.Client.APITarget).To(Equal("http://remote:9091"))
	})
})
