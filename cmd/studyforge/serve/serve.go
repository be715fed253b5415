// Package servecmder provides the serve command with subcommands for running services.
package servecmder

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/studyforgeco/studyforge/api"
	apicmder "github.com/studyforgeco/studyforge/cmd/studyforge/serve/api"
	streamcmder "github.com/studyforgeco/studyforge/cmd/studyforge/serve/stream"
	"github.com/studyforgeco/studyforge/pkg/config"
	"github.com/studyforgeco/studyforge/pkg/credentials"
	"github.com/studyforgeco/studyforge/pkg/eventstream"
	kafkapublisher "github.com/studyforgeco/studyforge/pkg/eventstream/kafka"
	noppublisher "github.com/studyforgeco/studyforge/pkg/eventstream/nop"
	"github.com/studyforgeco/studyforge/pkg/logger"
	"github.com/studyforgeco/studyforge/pkg/storage"
	"github.com/studyforgeco/studyforge/pkg/storage/inmemory"
	"github.com/studyforgeco/studyforge/pkg/storage/postgres"
	"github.com/studyforgeco/studyforge/pkg/storage/sqlite"
	"github.com/studyforgeco/studyforge/server"
)

type ServeCommander struct {
	serverListen  string
	apiListen     string
	upstream      string
	providerType  string
	model         string
	storageDriver string
	sqlitePath    string
	postgresDSN   string
	eventProvider string
	eventBrokers  string
	eventTopic    string
	debug         bool
	logger        *zap.Logger
}

// serveFlags is the flag registry for the serve command. Each entry maps a
// flag to its dotted viper key so that flag > env > config file > default
// precedence holds for every setting.
var serveFlags = config.FlagSet{
	config.FlagServerListen:  {Name: "server-listen", Shorthand: "p", ViperKey: "server.listen", Description: "Address for the streaming server to listen on"},
	config.FlagAPIListen:     {Name: "api-listen", Shorthand: "a", ViperKey: "api.listen", Description: "Address for the API server to listen on"},
	config.FlagUpstream:      {Name: "upstream", Shorthand: "u", ViperKey: "server.upstream", Description: "Upstream LLM provider URL"},
	config.FlagProvider:      {Name: "provider", ViperKey: "server.provider", Description: "LLM provider type (anthropic, openai, ollama)"},
	config.FlagModel:         {Name: "model", Shorthand: "m", ViperKey: "server.model", Description: "Model name sent to the upstream provider"},
	config.FlagStorageDriver: {Name: "storage-driver", ViperKey: "storage.driver", Description: "Storage driver (memory, sqlite, postgres)"},
	config.FlagSQLite:        {Name: "sqlite", Shorthand: "s", ViperKey: "storage.sqlite_path", Description: "Path to SQLite database"},
	config.FlagPostgres:      {Name: "postgres", ViperKey: "storage.postgres_dsn", Description: "Postgres connection string"},
	config.FlagEventProvider: {Name: "eventstream-provider", ViperKey: "eventstream.provider", Description: "Event stream publisher (nop, kafka)"},
	config.FlagEventBrokers:  {Name: "eventstream-brokers", ViperKey: "eventstream.brokers", Description: "Comma-separated Kafka broker addresses"},
	config.FlagEventTopic:    {Name: "eventstream-topic", ViperKey: "eventstream.topic", Description: "Kafka topic for record events"},
}

// serveFlagKeys is the ordered list of registry keys the serve command uses.
var serveFlagKeys = []string{
	config.FlagServerListen,
	config.FlagAPIListen,
	config.FlagUpstream,
	config.FlagProvider,
	config.FlagModel,
	config.FlagStorageDriver,
	config.FlagSQLite,
	config.FlagPostgres,
	config.FlagEventProvider,
	config.FlagEventBrokers,
	config.FlagEventTopic,
}

const serveLongDesc string = `Run studyforge services.

Use subcommands to run individual services or all services together:
  studyforge serve           Run both the streaming and API servers together
  studyforge serve api       Run just the API server
  studyforge serve stream    Run just the streaming generation server

Settings resolve with flag > environment > config file > default precedence.
Environment variables use the STUDYFORGE_ prefix with underscores, e.g.
STUDYFORGE_SERVER_PROVIDER=anthropic.`

const serveShortDesc string = "Run studyforge services"

func NewServeCmd() *cobra.Command {
	cmder := &ServeCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")
			v, err := config.InitViper(configDir)
			if err != nil {
				return fmt.Errorf("initializing config: %w", err)
			}

			config.BindRegisteredFlags(v, cmd, serveFlags, serveFlagKeys)

			cmder.serverListen = v.GetString("server.listen")
			cmder.apiListen = v.GetString("api.listen")
			cmder.upstream = v.GetString("server.upstream")
			cmder.providerType = v.GetString("server.provider")
			cmder.model = v.GetString("server.model")
			cmder.storageDriver = v.GetString("storage.driver")
			cmder.sqlitePath = v.GetString("storage.sqlite_path")
			cmder.postgresDSN = v.GetString("storage.postgres_dsn")
			cmder.eventProvider = v.GetString("eventstream.provider")
			cmder.eventBrokers = v.GetString("eventstream.brokers")
			cmder.eventTopic = v.GetString("eventstream.topic")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %v", err)
			}
			return cmder.run()
		},
	}

	config.AddStringFlag(cmd, serveFlags, config.FlagServerListen, &cmder.serverListen)
	config.AddStringFlag(cmd, serveFlags, config.FlagAPIListen, &cmder.apiListen)
	config.AddStringFlag(cmd, serveFlags, config.FlagUpstream, &cmder.upstream)
	config.AddStringFlag(cmd, serveFlags, config.FlagProvider, &cmder.providerType)
	config.AddStringFlag(cmd, serveFlags, config.FlagModel, &cmder.model)
	config.AddStringFlag(cmd, serveFlags, config.FlagStorageDriver, &cmder.storageDriver)
	config.AddStringFlag(cmd, serveFlags, config.FlagSQLite, &cmder.sqlitePath)
	config.AddStringFlag(cmd, serveFlags, config.FlagPostgres, &cmder.postgresDSN)
	config.AddStringFlag(cmd, serveFlags, config.FlagEventProvider, &cmder.eventProvider)
	config.AddStringFlag(cmd, serveFlags, config.FlagEventBrokers, &cmder.eventBrokers)
	config.AddStringFlag(cmd, serveFlags, config.FlagEventTopic, &cmder.eventTopic)

	cmd.AddCommand(apicmder.NewAPICmd())
	cmd.AddCommand(streamcmder.NewStreamCmd())

	return cmd
}

func (c *ServeCommander) run() error {
	c.logger = logger.NewLogger(c.debug)
	defer func() { _ = c.logger.Sync() }()

	// Create shared storage driver
	driver, err := c.newStorageDriver()
	if err != nil {
		return err
	}
	defer driver.Close()

	publisher, err := c.newPublisher()
	if err != nil {
		return err
	}
	defer publisher.Close()

	apiKey, err := resolveAPIKey(c.providerType)
	if err != nil {
		return err
	}

	// Create streaming server
	serverConfig := server.Config{
		ListenAddr:   c.serverListen,
		UpstreamURL:  c.upstream,
		ProviderType: c.providerType,
		Model:        c.model,
		APIKey:       apiKey,
	}
	srv, err := server.New(serverConfig, driver, publisher, c.logger)
	if err != nil {
		return fmt.Errorf("creating streaming server: %w", err)
	}
	defer srv.Close()

	// Create API server
	apiServer := api.NewServer(api.Config{ListenAddr: c.apiListen}, driver, c.logger)

	// Channel to capture errors from goroutines
	errChan := make(chan error, 2)

	go func() {
		if err := srv.Run(); err != nil {
			errChan <- fmt.Errorf("streaming server error: %w", err)
		}
	}()

	go func() {
		if err := apiServer.Run(); err != nil {
			errChan <- fmt.Errorf("API server error: %w", err)
		}
	}()

	// Wait for interrupt signal or error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		c.logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
		return nil
	}
}

func (c *ServeCommander) newStorageDriver() (storage.Driver, error) {
	switch c.storageDriver {
	case "postgres":
		driver, err := postgres.NewDriver(context.Background(), c.postgresDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to create Postgres driver: %w", err)
		}
		c.logger.Info("using Postgres storage")
		return driver, nil

	case "sqlite":
		if c.sqlitePath == "" {
			break
		}
		driver, err := sqlite.NewDriver(c.sqlitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create SQLite driver: %w", err)
		}
		c.logger.Info("using SQLite storage", zap.String("path", c.sqlitePath))
		return driver, nil
	}

	c.logger.Info("using in-memory storage")
	return inmemory.NewDriver(), nil
}

func (c *ServeCommander) newPublisher() (eventstream.Publisher, error) {
	if c.eventProvider != "kafka" {
		return noppublisher.NewPublisher(), nil
	}

	brokers := config.EventstreamConfig{Brokers: c.eventBrokers}.BrokerList()
	publisher, err := kafkapublisher.NewPublisher(brokers, c.eventTopic)
	if err != nil {
		return nil, fmt.Errorf("creating kafka publisher: %w", err)
	}

	c.logger.Info("kafka record events enabled",
		zap.Strings("brokers", brokers),
		zap.String("topic", c.eventTopic),
	)
	return publisher, nil
}

// resolveAPIKey looks up the upstream API key from the environment or the
// stored credentials file. A missing key is not an error here; keyless
// providers like ollama never need one.
func resolveAPIKey(provider string) (string, error) {
	manager, err := credentials.NewManager("")
	if err != nil {
		return "", fmt.Errorf("loading credentials: %w", err)
	}

	key, err := manager.ResolveKey(provider)
	if err != nil {
		return "", fmt.Errorf("resolving API key: %w", err)
	}
	return key, nil
}
