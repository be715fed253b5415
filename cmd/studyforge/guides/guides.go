// Package guidescmder provides the `studyforge guides` CLI commands for
// listing, showing, and deleting stored study guides via the API server.
package guidescmder

import "github.com/spf13/cobra"

// NewGuidesCmd creates the parent guides command.
func NewGuidesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guides",
		Short: "List, show, and delete stored study guides",
		Long: `Inspect study guides persisted by the studyforge server. Requires a
running studyforge API server.

Examples:
  studyforge guides list
  studyforge guides list --subject physics --limit 10
  studyforge guides show abc123
  studyforge guides show              (shows the most recently generated guide)
  studyforge guides delete abc123`,
	}

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newDeleteCmd())

	return cmd
}
