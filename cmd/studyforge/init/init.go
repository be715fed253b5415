// Package initcmder provides the init command for initializing a local
// .studyforge directory in the current working directory.
package initcmder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/studyforgeco/studyforge/pkg/config"
)

const (
	dirName = ".studyforge"
)

const initLongDesc string = `Initialize a new .studyforge/ directory in the current working directory.

Creates a local .studyforge/ directory that takes precedence over the default
~/.studyforge/ directory for configuration, credentials, last-record state,
and other studyforge operations.

This is useful for maintaining separate studyforge state per project or
directory. Pass --preset to also write a starter config.toml for a provider.

Examples:
  studyforge init
  studyforge init --preset ollama`

const initShortDesc string = "Initialize a local .studyforge/ directory"

type initCommander struct {
	preset string
}

func NewInitCmd() *cobra.Command {
	cmder := &initCommander{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: initShortDesc,
		Long:  initLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmder.run()
		},
	}

	cmd.Flags().StringVar(&cmder.preset, "preset", "", "Write a starter config.toml for a provider preset (openai, anthropic, ollama)")

	return cmd
}

func (c *initCommander) run() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		fmt.Printf("Already initialized: %s\n", dir)
	} else {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating .studyforge directory: %w", err)
		}
		fmt.Printf("Initialized .studyforge directory: %s\n", dir)
	}

	configPath := filepath.Join(dir, "config.toml")

	var cfg *config.Config
	switch {
	case c.preset != "":
		cfg, err = config.PresetConfig(c.preset)
		if err != nil {
			return err
		}
	default:
		// Plain init seeds defaults, but never clobbers an existing config.
		if _, err := os.Stat(configPath); err == nil {
			return nil
		}
		cfg = config.NewDefaultConfig()
	}

	cfger, err := config.NewConfiger(dir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfger.SaveConfig(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("Wrote config: %s\n", configPath)
	return nil
}
