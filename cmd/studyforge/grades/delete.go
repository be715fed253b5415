package gradescmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studyforgeco/studyforge/pkg/cliui"
	"github.com/studyforgeco/studyforge/pkg/config"
)

type deleteCommander struct {
	apiTarget string
}

func newDeleteCmd() *cobra.Command {
	cmder := &deleteCommander{}

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored grade result",
		Args:  cobra.ExactArgs(1),
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
			return cmder.run(args[0])
		},
	}

	defaults := config.NewDefaultConfig()
	cmd.Flags().StringVar(&cmder.apiTarget, "api-target", defaults.Client.APITarget, "Studyforge API server URL")

	return cmd
}

func (c *deleteCommander) run(id string) error {
	if err := deleteGrade(c.apiTarget, id); err != nil {
		return err
	}

	fmt.Printf("%s Deleted grade result %s\n", cliui.SuccessMark, cliui.HashStyle.Render(id))
	return nil
}
