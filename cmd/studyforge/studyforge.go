// Package studyforgecmder
package studyforgecmder

import (
	"github.com/spf13/cobra"

	authcmder "github.com/studyforgeco/studyforge/cmd/studyforge/auth"
	backfillcmder "github.com/studyforgeco/studyforge/cmd/studyforge/backfill"
	configcmder "github.com/studyforgeco/studyforge/cmd/studyforge/config"
	generatecmder "github.com/studyforgeco/studyforge/cmd/studyforge/generate"
	gradecmder "github.com/studyforgeco/studyforge/cmd/studyforge/grade"
	gradescmder "github.com/studyforgeco/studyforge/cmd/studyforge/grades"
	guidescmder "github.com/studyforgeco/studyforge/cmd/studyforge/guides"
	initcmder "github.com/studyforgeco/studyforge/cmd/studyforge/init"
	servecmder "github.com/studyforgeco/studyforge/cmd/studyforge/serve"
	versioncmder "github.com/studyforgeco/studyforge/cmd/version"
)

const studyforgeLongDesc string = `Studyforge generates study guides and grades exams with streaming LLMs.

Run services using:
  studyforge serve api       Run the records API server
  studyforge serve stream    Run the streaming generation server
  studyforge serve           Run both servers together

Work with guides and exams using:
  studyforge generate        Generate a study guide
  studyforge grade           Grade an exam upload
  studyforge guides          List, show, and delete stored guides
  studyforge grades          List, show, and delete stored grade results`

const studyforgeShortDesc string = "Studyforge - streaming study guides and exam grading"

func NewStudyforgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "studyforge",
		Short: studyforgeShortDesc,
		Long:  studyforgeLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Override path to .studyforge/ config directory")

	// Add subcommands
	cmd.AddCommand(servecmder.NewServeCmd())
	cmd.AddCommand(generatecmder.NewGenerateCmd())
	cmd.AddCommand(gradecmder.NewGradeCmd())
	cmd.AddCommand(guidescmder.NewGuidesCmd())
	cmd.AddCommand(gradescmder.NewGradesCmd())
	cmd.AddCommand(authcmder.NewAuthCmd())
	cmd.AddCommand(backfillcmder.NewBackfillCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(initcmder.NewInitCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
