package gradescmder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/studyforgeco/studyforge/pkg/guide"
	"github.com/studyforgeco/studyforge/pkg/llm"
)

type listOutput struct {
	Count  int                 `json:"count"`
	Grades []guide.GradeResult `json:"grades"`
}

// listGrades calls the API server's list endpoint with the given filters.
func listGrades(apiTarget, subject, examName string, limit, offset int) (*listOutput, error) {
	listURL, err := url.Parse(apiTarget)
	if err != nil {
		return nil, fmt.Errorf("invalid API target URL: %w", err)
	}
	listURL.Path = "/v1/grades"
	q := listURL.Query()
	if subject != "" {
		q.Set("subject", subject)
	}
	if examName != "" {
		q.Set("exam_name", examName)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	listURL.RawQuery = q.Encode()

	body, err := apiGet(apiTarget, listURL.String())
	if err != nil {
		return nil, err
	}

	var output listOutput
	if err := json.Unmarshal(body, &output); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	return &output, nil
}

// getGrade fetches a single grade result by id.
func getGrade(apiTarget, id string) (*guide.GradeResult, error) {
	body, err := apiGet(apiTarget, apiTarget+"/v1/grades/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}

	var g guide.GradeResult
	if err := json.Unmarshal(body, &g); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	return &g, nil
}

// deleteGrade removes a grade result by id.
func deleteGrade(apiTarget, id string) error {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodDelete, apiTarget+"/v1/grades/"+url.PathEscape(id), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect to studyforge API at %s: %w", apiTarget, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return apiError(resp)
	}
	return nil
}

func apiGet(apiTarget, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to studyforge API at %s: %w", apiTarget, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var errResp llm.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, errResp.Error)
	}
	return fmt.Errorf("API returned status %d", resp.StatusCode)
}
