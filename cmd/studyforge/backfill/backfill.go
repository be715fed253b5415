// Package backfillcmder provides the `studyforge backfill` CLI command.
package backfillcmder

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studyforgeco/studyforge/pkg/backfill"
	"github.com/studyforgeco/studyforge/pkg/config"
	"github.com/studyforgeco/studyforge/pkg/eventstream"
	kafkapublisher "github.com/studyforgeco/studyforge/pkg/eventstream/kafka"
	"github.com/studyforgeco/studyforge/pkg/storage"
	"github.com/studyforgeco/studyforge/pkg/storage/postgres"
	"github.com/studyforgeco/studyforge/pkg/storage/sqlite"
)

const backfillLongDesc string = `Republish stored records to the event stream.

Scans every persisted study guide and grade result and re-emits a
persisted-record event for each. Use this to rebuild downstream consumers
after provisioning a new topic or losing an existing one.

Requires a Kafka event stream; storage and broker settings default to the
values in config.toml.

Examples:
  studyforge backfill
  studyforge backfill --dry-run --verbose
  studyforge backfill --subject physics
  studyforge backfill --sqlite ./studyforge.db --eventstream-brokers localhost:9092`

const backfillShortDesc string = "Republish stored records to the event stream"

type backfillCommander struct {
	storageDriver string
	sqlitePath    string
	postgresDSN   string
	eventBrokers  string
	eventTopic    string
	subject       string
	dryRun        bool
	verbose       bool
}

// NewBackfillCmd creates the backfill cobra command.
func NewBackfillCmd() *cobra.Command {
	cmder := &backfillCommander{}

	cmd := &cobra.Command{
		Use:   "backfill",
		Short: backfillShortDesc,
		Long:  backfillLongDesc,
		Args:  cobra.NoArgs,
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

			if !cmd.Flags().Changed("storage-driver") {
				cmder.storageDriver = cfg.Storage.Driver
			}
			if !cmd.Flags().Changed("sqlite") {
				cmder.sqlitePath = cfg.Storage.SQLitePath
			}
			if !cmd.Flags().Changed("postgres") {
				cmder.postgresDSN = cfg.Storage.PostgresDSN
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
			return cmder.run(cmd.Context(), cmd)
		},
	}

	defaults := config.NewDefaultConfig()
	cmd.Flags().StringVar(&cmder.storageDriver, "storage-driver", defaults.Storage.Driver, "Storage driver (sqlite, postgres)")
	cmd.Flags().StringVarP(&cmder.sqlitePath, "sqlite", "s", "", "Path to SQLite database")
	cmd.Flags().StringVar(&cmder.postgresDSN, "postgres", "", "Postgres connection string")
	cmd.Flags().StringVar(&cmder.eventBrokers, "eventstream-brokers", "", "Comma-separated Kafka broker addresses")
	cmd.Flags().StringVar(&cmder.eventTopic, "eventstream-topic", defaults.Eventstream.Topic, "Kafka topic for record events")
	cmd.Flags().StringVar(&cmder.subject, "subject", "", "Only backfill records with this subject")
	cmd.Flags().BoolVar(&cmder.dryRun, "dry-run", false, "Preview records without publishing")
	cmd.Flags().BoolVarP(&cmder.verbose, "verbose", "v", false, "Show per-record details")

	return cmd
}

func (c *backfillCommander) run(ctx context.Context, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}

	driver, err := c.newStorageDriver(ctx)
	if err != nil {
		return err
	}
	defer driver.Close()

	var publisher eventstream.Publisher
	if c.dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "Dry run mode — no events will be published")
	} else {
		brokers := config.EventstreamConfig{Brokers: c.eventBrokers}.BrokerList()
		if len(brokers) == 0 {
			return fmt.Errorf("no Kafka brokers configured; set eventstream.brokers or pass --eventstream-brokers")
		}
		publisher, err = kafkapublisher.NewPublisher(brokers, c.eventTopic)
		if err != nil {
			return fmt.Errorf("creating Kafka publisher: %w", err)
		}
		defer publisher.Close()
	}

	b := backfill.NewBackfiller(driver, publisher, backfill.Options{
		DryRun:  c.dryRun,
		Verbose: c.verbose,
		Subject: c.subject,
	})

	result, err := b.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Summary())
	return nil
}

func (c *backfillCommander) newStorageDriver(ctx context.Context) (storage.Driver, error) {
	switch c.storageDriver {
	case "postgres":
		driver, err := postgres.NewDriver(ctx, c.postgresDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to create Postgres driver: %w", err)
		}
		return driver, nil

	default:
		if c.sqlitePath == "" {
			return nil, fmt.Errorf("no SQLite database configured; set storage.sqlite_path or pass --sqlite")
		}
		driver, err := sqlite.NewDriver(c.sqlitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create SQLite driver: %w", err)
		}
		return driver, nil
	}
}
