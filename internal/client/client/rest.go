package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/vibetracker/internal/client/models"
	"github.com/dmitrijs2005/vibetracker/internal/common"
)

type RESTClient struct {
	baseURL    string
	httpclient *http.Client
}

func NewRESTClient(baseURL string, timeout time.Duration) *RESTClient {
	return &RESTClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpclient: &http.Client{Timeout: timeout},
	}
}

func (c *RESTClient) apipath(path string, id string) string {
	u := c.baseURL + "/api/" + path
	if id != "" {
		u += "?" + url.Values{common.IDQueryParam: {id}}.Encode()
	}
	return u
}

// do sends in as JSON (when non-nil) and decodes a 2xx body into out (when
// non-nil). Transport failures wrap ErrUnavailable; other statuses become
// *APIError.
func (c *RESTClient) do(ctx context.Context, method, target string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpclient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("unexpected response (status code = %d): %w", resp.StatusCode, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var msg struct {
		Error string `json:"error"`
	}
	b, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(b, &msg); err == nil && msg.Error != "" {
		apiErr.Message = msg.Error
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

func (c *RESTClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, c.apipath("health", ""), nil, nil)
}

func (c *RESTClient) ListVibes(ctx context.Context) ([]*models.Vibe, error) {
	var out []*models.Vibe
	if err := c.do(ctx, http.MethodGet, c.apipath("vibes", ""), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) CreateVibe(ctx context.Context, mood string, note *string) (*models.Vibe, error) {
	in := struct {
		Mood string  `json:"mood"`
		Note *string `json:"note,omitempty"`
	}{Mood: mood, Note: note}

	out := &models.Vibe{}
	if err := c.do(ctx, http.MethodPost, c.apipath("vibes", ""), in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) DeleteVibe(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.apipath("vibes", id), nil, nil)
}

func (c *RESTClient) ListGoals(ctx context.Context) ([]*models.Goal, error) {
	var out []*models.Goal
	if err := c.do(ctx, http.MethodGet, c.apipath("goals", ""), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) CreateGoal(ctx context.Context, text string) (*models.Goal, error) {
	in := struct {
		Text string `json:"text"`
	}{Text: text}

	out := &models.Goal{}
	if err := c.do(ctx, http.MethodPost, c.apipath("goals", ""), in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateGoal sets the completion flag. A non-nil revision makes the update
// conditional on the server still holding that revision.
func (c *RESTClient) UpdateGoal(ctx context.Context, id string, completed bool, revision *int64) (*models.Goal, error) {
	in := struct {
		Completed bool   `json:"completed"`
		Revision  *int64 `json:"revision,omitempty"`
	}{Completed: completed, Revision: revision}

	out := &models.Goal{}
	if err := c.do(ctx, http.MethodPatch, c.apipath("goals", id), in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) DeleteGoal(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.apipath("goals", id), nil, nil)
}

func (c *RESTClient) Export(ctx context.Context) (*ExportResult, error) {
	out := &ExportResult{}
	if err := c.do(ctx, http.MethodPost, c.apipath("export", ""), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}
