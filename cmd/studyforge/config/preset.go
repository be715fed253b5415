package configcmder

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studyforgeco/studyforge/pkg/cliui"
	"github.com/studyforgeco/studyforge/pkg/config"
)

const presetLongDesc string = `Apply a provider preset.

Overwrites the config.toml file with sane defaults for the named model
provider: listen addresses, upstream URL, provider type, and default model.
Existing settings are replaced.

Available presets: openai, anthropic, ollama

Examples:
  studyforge config preset anthropic
  studyforge config preset ollama`

const presetShortDesc string = "Apply a provider preset"

func newPresetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset <name>",
		Short: presetShortDesc,
		Long:  presetLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")
			return runPreset(args[0], configDir)
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return config.ValidPresetNames(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	return cmd
}

func runPreset(name, configDir string) error {
	cfg, err := config.PresetConfig(name)
	if err != nil {
		return fmt.Errorf("%w\n\nAvailable presets: %s", err, strings.Join(config.ValidPresetNames(), ", "))
	}

	cfger, err := config.NewConfiger(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfger.SaveConfig(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\n  %s Applied preset %s\n",
		cliui.SuccessMark,
		cliui.ValueStyle.Render(strings.ToLower(name)),
	)
	fmt.Printf("  %s %s\n\n",
		cliui.KeyStyle.Render("Config file:"),
		cliui.DimStyle.Render(cfger.GetTarget()),
	)

	fmt.Printf("  %s %s\n",
		cliui.KeyStyle.Render("Provider:"),
		cliui.ValueStyle.Render(cfg.Server.Provider),
	)
	fmt.Printf("  %s %s\n",
		cliui.KeyStyle.Render("Upstream:"),
		cliui.ValueStyle.Render(cfg.Server.Upstream),
	)
	fmt.Printf("  %s %s\n\n",
		cliui.KeyStyle.Render("Model:"),
		cliui.ValueStyle.Render(cfg.Server.Model),
	)

	return nil
}
