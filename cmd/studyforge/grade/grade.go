// Package gradecmder provides the grade command for streaming exam grading
// through the studyforge server.
package gradecmder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/studyforgeco/studyforge/pkg/cliui"
	"github.com/studyforgeco/studyforge/pkg/config"
	"github.com/studyforgeco/studyforge/pkg/dotdir"
	"github.com/studyforgeco/studyforge/pkg/guide"
	"github.com/studyforgeco/studyforge/pkg/logger"
	"github.com/studyforgeco/studyforge/pkg/stream"
)

type gradeCommander struct {
	serverTarget string
	examName     string
	subject      string
	model        string
	answerKey    string
	debug        bool

	logger *zap.Logger
}

const gradeLongDesc string = `Grade an exam file by streaming from the studyforge server.

The exam file is uploaded to the server, graded question by question by the
configured model, and the result is persisted server-side. The marks and
per-question breakdown are printed on completion.

Examples:
  studyforge grade midterm.txt --subject physics
  studyforge grade midterm.txt --answer-key midterm_key.txt
  studyforge grade final.md --exam-name "spring final" --subject chemistry`

const gradeShortDesc string = "Grade an exam upload"

func NewGradeCmd() *cobra.Command {
	cmder := &gradeCommander{}

	cmd := &cobra.Command{
		Use:   "grade <exam-file>",
		Short: gradeShortDesc,
		Long:  gradeLongDesc,
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
	cmd.Flags().StringVarP(&cmder.examName, "exam-name", "n", "", "Name for the stored grade result (default: exam file name)")
	cmd.Flags().StringVarP(&cmder.subject, "subject", "s", "", "Subject area used to focus grading")
	cmd.Flags().StringVarP(&cmder.model, "model", "m", "", "Override the server's configured model")
	cmd.Flags().StringVarP(&cmder.answerKey, "answer-key", "k", "", "Path to an answer key file to score against")

	return cmd
}

func (c *gradeCommander) run(examPath string) error {
	c.logger = logger.NewLogger(c.debug)
	defer func() { _ = c.logger.Sync() }()

	examName := c.examName
	if examName == "" {
		examName = filepath.Base(examPath)
	}

	body, contentType, err := c.buildForm(examPath, examName)
	if err != nil {
		return err
	}

	url := c.serverTarget + "/v1/exams/grade"
	httpReq, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	client := &http.Client{
		// Grading can be slow for long exams
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
		cliui.KeyStyle.Render("Exam:"),
		cliui.NameStyle.Render(examName),
	)

	consumer := stream.NewConsumer(stream.Handlers{
		OnProgress: func(message string) {
			fmt.Printf("  %s %s\n", cliui.DimStyle.Render("●"), cliui.DimStyle.Render(message))
		},
		OnError: func(message string) {
			fmt.Fprintf(os.Stderr, "  %s %s\n", cliui.FailMark, message)
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

	c.printResult(complete)

	// Remember the stored grade so "grades show" works without an id.
	dotdirManager := dotdir.NewManager()
	if err := dotdirManager.SaveLastRecord(&dotdir.LastRecord{
		Kind:      dotdir.RecordKindGrade,
		ID:        complete.ID,
		CreatedAt: time.Now().UTC(),
	}, ""); err != nil {
		c.logger.Debug("could not save last record", zap.Error(err))
	}

	return nil
}

// buildForm assembles the multipart upload with the exam file and fields.
func (c *gradeCommander) buildForm(examPath, examName string) (*bytes.Buffer, string, error) {
	examData, err := os.ReadFile(examPath)
	if err != nil {
		return nil, "", fmt.Errorf("reading exam file: %w", err)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("exam", filepath.Base(examPath))
	if err != nil {
		return nil, "", fmt.Errorf("building form: %w", err)
	}
	if _, err := part.Write(examData); err != nil {
		return nil, "", fmt.Errorf("building form: %w", err)
	}

	fields := map[string]string{
		"exam_name": examName,
		"subject":   c.subject,
		"model":     c.model,
	}
	if c.answerKey != "" {
		keyData, err := os.ReadFile(c.answerKey)
		if err != nil {
			return nil, "", fmt.Errorf("reading answer key: %w", err)
		}
		fields["answer_key"] = string(keyData)
	}
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("building form: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("building form: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}

// printResult renders the marks and per-question breakdown.
func (c *gradeCommander) printResult(complete *stream.Complete) {
	fmt.Println()

	if complete.TotalMarks != nil && complete.TotalPossibleMarks != nil {
		fmt.Printf("  %s %s\n\n",
			cliui.KeyStyle.Render("Score:"),
			cliui.ValueStyle.Render(fmt.Sprintf("%.1f / %.1f", *complete.TotalMarks, *complete.TotalPossibleMarks)),
		)
	}

	var breakdown []guide.GradeLine
	if len(complete.GradeBreakdown) > 0 {
		if err := json.Unmarshal(complete.GradeBreakdown, &breakdown); err == nil {
			for _, line := range breakdown {
				fmt.Printf("    %s %s %s\n",
					cliui.KeyStyle.Render(line.Question),
					cliui.ValueStyle.Render(fmt.Sprintf("%.1f/%.1f", line.MarksAwarded, line.MarksPossible)),
					cliui.DimStyle.Render(line.Comment),
				)
			}
			fmt.Println()
		}
	}

	var custom struct {
		Feedback string `json:"feedback"`
	}
	if len(complete.CustomContent) > 0 {
		if err := json.Unmarshal(complete.CustomContent, &custom); err == nil && custom.Feedback != "" {
			fmt.Printf("  %s\n\n", custom.Feedback)
		}
	}

	fmt.Printf("  %s Grade %s stored\n\n",
		cliui.SuccessMark,
		cliui.HashStyle.Render(complete.ID),
	)
}
