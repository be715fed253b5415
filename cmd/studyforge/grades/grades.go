// Package gradescmder provides the `studyforge grades` CLI commands for
// listing, showing, and deleting stored grade results via the API server.
package gradescmder

import "github.com/spf13/cobra"

// NewGradesCmd creates the parent grades command.
func NewGradesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grades",
		Short: "List, show, and delete stored grade results",
		Long: `Inspect grade results persisted by the studyforge server. Requires a
running studyforge API server.

Examples:
  studyforge grades list
  studyforge grades list --subject chemistry
  studyforge grades show abc123
  studyforge grades show              (shows the most recently graded exam)
  studyforge grades delete abc123`,
	}

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newDeleteCmd())

	return cmd
}
