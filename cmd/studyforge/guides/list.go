package guidescmder

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/studyforgeco/studyforge/pkg/config"
)

type listCommander struct {
	apiTarget string
	subject   string
	level     string
	limit     int
	offset    int
}

func newListCmd() *cobra.Command {
	cmder := &listCommander{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored study guides",
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
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmder.run(cmd)
		},
	}

	defaults := config.NewDefaultConfig()
	cmd.Flags().StringVar(&cmder.apiTarget, "api-target", defaults.Client.APITarget, "Studyforge API server URL")
	cmd.Flags().StringVarP(&cmder.subject, "subject", "s", "", "Filter by subject")
	cmd.Flags().StringVarP(&cmder.level, "level", "l", "", "Filter by level")
	cmd.Flags().IntVar(&cmder.limit, "limit", 0, "Maximum number of guides to return")
	cmd.Flags().IntVar(&cmder.offset, "offset", 0, "Number of guides to skip")

	return cmd
}

func (c *listCommander) run(cmd *cobra.Command) error {
	output, err := listGuides(c.apiTarget, c.subject, c.level, c.limit, c.offset)
	if err != nil {
		return err
	}

	if output.Count == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No study guides found. Generate one with: studyforge generate <topic> --subject <subject>")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSUBJECT\tTOPIC\tLEVEL\tSECTIONS\tCREATED")
	for _, g := range output.Guides {
		level := g.Level
		if level == "" {
			level = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			g.ID, g.Subject, g.Topic, level, len(g.Sections),
			g.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}
	return w.Flush()
}
