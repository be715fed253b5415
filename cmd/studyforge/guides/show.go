package guidescmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studyforgeco/studyforge/pkg/cliui"
	"github.com/studyforgeco/studyforge/pkg/config"
	"github.com/studyforgeco/studyforge/pkg/dotdir"
)

type showCommander struct {
	apiTarget string
	raw       bool
}

func newShowCmd() *cobra.Command {
	cmder := &showCommander{}

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a stored study guide",
		Long: `Show a study guide's full content, rendered for the terminal.

With no id, shows the most recently generated guide.`,
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
	cmd.Flags().BoolVar(&cmder.raw, "raw", false, "Print raw markdown without terminal rendering")

	return cmd
}

func (c *showCommander) run(id string) error {
	if id == "" {
		last, err := dotdir.NewManager().LoadLastRecord("")
		if err != nil {
			return fmt.Errorf("loading last record: %w", err)
		}
		if last == nil || last.Kind != dotdir.RecordKindGuide {
			return fmt.Errorf("no recent study guide; pass an id or run: studyforge generate")
		}
		id = last.ID
	}

	g, err := getGuide(c.apiTarget, id)
	if err != nil {
		return err
	}

	fmt.Printf("\n  %s %s\n",
		cliui.TitleStyle.Render(g.Topic),
		cliui.HashStyle.Render(g.ID),
	)
	fmt.Printf("  %s %s",
		cliui.KeyStyle.Render("Subject:"),
		cliui.ValueStyle.Render(g.Subject),
	)
	if g.Level != "" {
		fmt.Printf("  %s %s",
			cliui.KeyStyle.Render("Level:"),
			cliui.ValueStyle.Render(g.Level),
		)
	}
	fmt.Printf("\n\n")

	if c.raw {
		fmt.Println(g.Content)
		return nil
	}

	rendered, err := cliui.RenderMarkdown(g.Content)
	if err != nil {
		// Fall back to plain text if rendering fails
		fmt.Println(g.Content)
		return nil
	}
	fmt.Print(rendered)

	return nil
}
