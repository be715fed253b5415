// Package apicmder provides the API studyforge server cobra command.
package apicmder

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/studyforgeco/studyforge/api"
	"github.com/studyforgeco/studyforge/pkg/config"
	"github.com/studyforgeco/studyforge/pkg/logger"
	"github.com/studyforgeco/studyforge/pkg/storage"
	"github.com/studyforgeco/studyforge/pkg/storage/inmemory"
	"github.com/studyforgeco/studyforge/pkg/storage/postgres"
	"github.com/studyforgeco/studyforge/pkg/storage/sqlite"
)

type apiCommander struct {
	listen        string
	storageDriver string
	sqlitePath    string
	postgresDSN   string
	debug         bool
	logger        *zap.Logger
}

const apiLongDesc string = `Run the studyforge API server for listing, inspecting, and deleting stored study guides and grade results.`

const apiShortDesc string = "Run the studyforge API server"

func NewAPICmd() *cobra.Command {
	cmder := &apiCommander{}

	cmd := &cobra.Command{
		Use:   "api",
		Short: apiShortDesc,
		Long:  apiLongDesc,
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
				cmder.listen = cfg.API.Listen
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

	defaults := config.NewDefaultConfig()
	cmd.Flags().StringVarP(&cmder.listen, "listen", "l", defaults.API.Listen, "Address for API server to listen on")
	cmd.Flags().StringVar(&cmder.storageDriver, "storage-driver", defaults.Storage.Driver, "Storage driver (memory, sqlite, postgres)")
	cmd.Flags().StringVarP(&cmder.sqlitePath, "sqlite", "s", "", "Path to SQLite database (default: in-memory)")
	cmd.Flags().StringVar(&cmder.postgresDSN, "postgres", "", "Postgres connection string")

	return cmd
}

func (c *apiCommander) run() error {
	c.logger = logger.NewLogger(c.debug)
	defer func() { _ = c.logger.Sync() }()

	driver, err := c.newStorageDriver()
	if err != nil {
		return err
	}
	defer driver.Close()

	server := api.NewServer(api.Config{ListenAddr: c.listen}, driver, c.logger)

	return server.Run()
}

func (c *apiCommander) newStorageDriver() (storage.Driver, error) {
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
