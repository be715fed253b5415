package gradescmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studyforgeco/studyforge/pkg/cliui"
	"github.com/studyforgeco/studyforge/pkg/config"
	"github.com/studyforgeco/studyforge/pkg/dotdir"
)

type showCommander struct {
	apiTarget string
}

func newShowCmd() *cobra.Command {
	cmder := &showCommander{}

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a stored grade result",
		Long: `Show a grade result's marks, per-question breakdown, and feedback.

With no id, shows the most recently graded exam.`,
		Args: cobra.MaximumNArgs(1),
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

			if !cmd.Flags().Changed("api-target") {
				cmder.apiTarget = cfg.Client.APITarget
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			var id string
			if len(args) > 0 {
				id = args[0]
			}
			return cmder.run(id)
		},
	}

	defaults := config.NewDefaultConfig()
	cmd.Flags().StringVar(&cmder.apiTarget, "api-target", defaults.Client.APITarget, "Studyforge API server URL")

	return cmd
}

func (c *showCommander) run(id string) error {
	if id == "" {
		last, err := dotdir.NewManager().LoadLastRecord("")
		if err != nil {
			return fmt.Errorf("loading last record: %w", err)
		}
		if last == nil || last.Kind != dotdir.RecordKindGrade {
			return fmt.Errorf("no recent grade result; pass an id or run: studyforge grade")
		}
		id = last.ID
	}

	g, err := getGrade(c.apiTarget, id)
	if err != nil {
		return err
	}

	fmt.Printf("\n  %s %s\n",
		cliui.TitleStyle.Render(g.ExamName),
		cliui.HashStyle.Render(g.ID),
	)
	if g.Subject != "" {
		fmt.Printf("  %s %s\n",
			cliui.KeyStyle.Render("Subject:"),
			cliui.ValueStyle.Render(g.Subject),
		)
	}
	fmt.Printf("  %s %s\n\n",
		cliui.KeyStyle.Render("Score:"),
		cliui.ValueStyle.Render(fmt.Sprintf("%.1f / %.1f", g.TotalMarks, g.TotalPossibleMarks)),
	)

	for _, line := range g.Breakdown {
		fmt.Printf("    %s %s %s\n",
			cliui.KeyStyle.Render(line.Question),
			cliui.ValueStyle.Render(fmt.Sprintf("%.1f/%.1f", line.MarksAwarded, line.MarksPossible)),
			cliui.DimStyle.Render(line.Comment),
		)
	}
	if len(g.Breakdown) > 0 {
		fmt.Println()
	}

	if g.Feedback != "" {
		fmt.Printf("  %s\n\n", g.Feedback)
	}

	return nil
}
