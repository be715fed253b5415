// Package configcmder provides the config command for managing persistent
// studyforge configuration stored in the .studyforge/ directory.
package configcmder

import (
	"github.com/spf13/cobra"
)

const configLongDesc string = `Manage persistent studyforge configuration.

Configuration is stored as config.toml in the .studyforge/ directory and
provides default values for command flags. CLI flags always take precedence
over config file values.

Keys use dotted notation matching the TOML section structure:
  server.listen, server.provider, server.upstream, server.model,
  api.listen,
  storage.driver, storage.sqlite_path, storage.postgres_dsn,
  client.server_target, client.api_target,
  eventstream.provider, eventstream.brokers, eventstream.topic

Use subcommands to get, set, or list configuration values:
  studyforge config set <key> <value>    Set a configuration value
  studyforge config get <key>            Get a configuration value
  studyforge config list                 List all configuration values
  studyforge config preset <name>        Apply a provider preset

Examples:
  studyforge config set server.provider anthropic
  studyforge config set server.model claude-sonnet-4-5
  studyforge config get server.provider
  studyforge config preset ollama
  studyforge config list`

const configShortDesc string = "Manage persistent studyforge configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newPresetCmd())

	return cmd
}
