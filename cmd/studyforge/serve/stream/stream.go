// Package streamcmder provides the streaming generation server cobra command.
package streamcmder

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

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

type streamCommander struct {
	listen        string
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

	logger *zap.Logger
}

const streamLongDesc string = `Run the streaming generation server.

The server accepts study guide generation and exam grading requests, forwards
prompts to the configured upstream LLM provider, and streams typed event
frames back to the client while persisting finished records.

Supported provider types: anthropic, openai, ollama`

const streamShortDesc string = "Run the studyforge streaming server"

func NewStreamCmd() *cobra.Command {
	cmder := &streamCommander{}

	cmd := &cobra.Command{
		Use:   "stream",
		Short: streamShortDesc,
		Long:  streamLongDesc,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")
			cfger, err := config.NewConfiger(configDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			cfg, err := cfger.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			if !cmd.Flags().Changed("listen") {
				cmder.listen = cfg.Server.Listen
			}
			if !cmd.Flags().Changed("upstream") {
				cmder.upstream = cfg.Server.Upstream
			}
			if !cmd.Flags().Changed("provider") {
				cmder.providerType = cfg.Server.Provider
			}
			if !cmd.Flags().Changed("model") {
				cmder.model = cfg.Server.Model
			}
			if !cmd.Flags().Changed("storage-driver") {
				cmder.storageDriver = cfg.Storage.Driver
			}
			if !cmd.Flags().Changed("sqlite") {
				cmder.sqlitePath = cfg.Storage.SQLitePath
			}
			if !cmd.Flags().Changed("postgres") {
				cmder.postgresDSN = cfg.Storage.PostgresDSN
			}
			if !cmd.Flags().Changed("eventstream-provider") {
				cmder.eventProvider = cfg.Eventstream.Provider
			}
			if !cmd.Flags().Changed("eventstream-brokers") {
				cmder.eventBrokers = cfg.Eventstream.Brokers
			}
			if !cmd.Flags().Changed("eventstream-topic") {
				cmder.eventTopic = cfg.Eventstream.Topic
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %w", err)
			}

			return cmder.run()
		},
	}

	defaults := config.NewDefaultConfig()
	cmd.Flags().StringVarP(&cmder.listen, "listen", "l", defaults.Server.Listen, "Address for the streaming server to listen on")
	cmd.Flags().StringVarP(&cmder.upstream, "upstream", "u", defaults.Server.Upstream, "Upstream LLM provider URL")
	cmd.Flags().StringVarP(&cmder.providerType, "provider", "p", defaults.Server.Provider, "LLM provider type (anthropic, openai, ollama)")
	cmd.Flags().StringVarP(&cmder.model, "model", "m", defaults.Server.Model, "Model name sent to the upstream provider")
	cmd.Flags().StringVar(&cmder.storageDriver, "storage-driver", defaults.Storage.Driver, "Storage driver (memory, sqlite, postgres)")
	cmd.Flags().StringVarP(&cmder.sqlitePath, "sqlite", "s", "", "Path to SQLite database (default: in-memory)")
	cmd.Flags().StringVar(&cmder.postgresDSN, "postgres", "", "Postgres connection string")
	cmd.Flags().StringVar(&cmder.eventProvider, "eventstream-provider", defaults.Eventstream.Provider, "Event stream publisher (nop, kafka)")
	cmd.Flags().StringVar(&cmder.eventBrokers, "eventstream-brokers", defaults.Eventstream.Brokers, "Comma-separated Kafka broker addresses")
	cmd.Flags().StringVar(&cmder.eventTopic, "eventstream-topic", defaults.Eventstream.Topic, "Kafka topic for record events")

	return cmd
}

func (c *streamCommander) run() error {
	c.logger = logger.NewLogger(c.debug)
	defer func() { _ = c.logger.Sync() }()

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

	credManager, err := credentials.NewManager("")
	if err != nil {
		return fmt.Errorf("loading credentials: %w", err)
	}
	apiKey, err := credManager.ResolveKey(c.providerType)
	if err != nil {
		return fmt.Errorf("resolving API key: %w", err)
	}

	srv, err := server.New(server.Config{
		ListenAddr:   c.listen,
		UpstreamURL:  c.upstream,
		ProviderType: c.providerType,
		Model:        c.model,
		APIKey:       apiKey,
	}, driver, publisher, c.logger)
	if err != nil {
		return fmt.Errorf("creating streaming server: %w", err)
	}
	defer srv.Close()

	return srv.Run()
}

func (c *streamCommander) newStorageDriver() (storage.Driver, error) {
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

func (c *streamCommander) newPublisher() (eventstream.Publisher, error) {
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
