// Package generatecmder provides the generate command for streaming study
// guide generation through the studyforge server.
package generatecmder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/studyforgeco/studyforge/pkg/cliui"
	"github.com/studyforgeco/studyforge/pkg/config"
	"github.com/studyforgeco/studyforge/pkg/dotdir"
	"github.com/studyforgeco/studyforge/pkg/logger"
	"github.com/studyforgeco/studyforge/pkg/stream"
)

type generateCommander struct {
	serverTarget string
	subject      string
	level        string
	model        string
	instructions string
	debug        bool

	logger *zap.Logger
}

// generateRequest is the JSON body sent to the server's generate endpoint.
type generateRequest struct {
	Subject      string `json:"subject"`
	Topic        string `json:"topic"`
	Level        string `json:"level,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	Model        string `json:"model,omitempty"`
}

const generateLongDesc string = `Generate a study guide by streaming from the studyforge server.

The guide is streamed section by section as the model writes it, then
persisted server-side. The persisted guide id is printed on completion and
remembered as the last record, so "studyforge guides show" with no arguments
displays it.

Examples:
  studyforge generate "thermodynamics" --subject physics
  studyforge generate "the french revolution" --subject history --level high-school`

const generateShortDesc string = "Generate a study guide"

func NewGenerateCmd() *cobra.Command {
	cmder := &generateCommander{}

	cmd := &cobra.Command{
		Use:   "generate <topic>",
		Short: generateShortDesc,
		Long:  generateLongDesc,
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

			if !cmd.Flags().Changed("server-target") {
				cmder.serverTarget = cfg.Client.ServerTarget
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %w", err)
			}

			return cmder.run(args[0])
		},
	}

	defaults := config.NewDefaultConfig()
	cmd.Flags().StringVarP(&cmder.serverTarget, "server-target", "t", defaults.Client.ServerTarget, "Studyforge streaming server URL")
	cmd.Flags().StringVarP(&cmder.subject, "subject", "s", "", "Subject area (e.g., physics)")
	cmd.Flags().StringVarP(&cmder.level, "level", "l", "", "Target level (e.g., high-school, undergraduate)")
	cmd.Flags().StringVarP(&cmder.instructions, "instructions", "i", "", "Extra directions folded into the prompt")
	cmd.Flags().StringVarP(&cmder.model, "model", "m", "", "Override the server's configured model")

	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

func (c *generateCommander) run(topic string) error {
	c.logger = logger.NewLogger(c.debug)
	defer func() { _ = c.logger.Sync() }()

	body, err := json.Marshal(generateRequest{
		Subject:      c.subject,
		Topic:        topic,
		Level:        c.level,
		Instructions: c.instructions,
		Model:        c.model,
	})
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	url := c.serverTarget + "/v1/guides/generate"
	httpReq, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := &http.Client{
		// Guide generation can be slow
		Timeout: 5 * time.Minute,
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("sending request to server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(respBody))
	}

	fmt.Println()
	fmt.Printf("  %s %s\n\n",
		cliui.KeyStyle.Render("Topic:"),
		cliui.NameStyle.Render(topic),
	)

	sections := 0
	consumer := stream.NewConsumer(stream.Handlers{
		OnProgress: func(message string) {
			fmt.Printf("  %s %s\n\n", cliui.DimStyle.Render("●"), cliui.DimStyle.Render(message))
		},
		OnContent: func(chunk string) {
			fmt.Print(chunk)
		},
		OnSection: func(json.RawMessage) {
			sections++
		},
		OnError: func(message string) {
			fmt.Fprintf(os.Stderr, "\n  %s %s\n", cliui.FailMark, message)
		},
	})

	complete, err := consumer.Consume(context.Background(), resp.Body)
	if err != nil {
		var closeErr *stream.CloseError
		if errors.As(err, &closeErr) {
			return fmt.Errorf("stream did not complete: %s", closeErr.Message)
		}
		return fmt.Errorf("consuming stream: %w", err)
	}

	fmt.Println()
	fmt.Printf("\n  %s Guide %s stored %s\n\n",
		cliui.SuccessMark,
		cliui.HashStyle.Render(complete.ID),
		cliui.DimStyle.Render(fmt.Sprintf("(%d sections)", sections)),
	)

	// Remember the stored guide so "guides show" works without an id.
	dotdirManager := dotdir.NewManager()
	if err := dotdirManager.SaveLastRecord(&dotdir.LastRecord{
		Kind:      dotdir.RecordKindGuide,
		ID:        complete.ID,
		CreatedAt: time.Now().UTC(),
	}, ""); err != nil {
		c.logger.Debug("could not save last record", zap.Error(err))
	}

	return nil
}
