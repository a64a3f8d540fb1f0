package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/claude/liftweek/internal/models"
	"github.com/claude/liftweek/internal/plan"
)

// HTTPClient implements DataSource by calling the LiftWeek REST API. Used
// for remote MCP mode where the binary runs locally (stdio) but the plan
// lives on the server.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time check: *HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL. The API
// key is sent on mutating requests.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("httpclient: encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet && c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, data)
	}

	return data, nil
}

func (c *HTTPClient) GetPlan(ctx context.Context) (models.WeekPlan, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/v1/plan", nil)
	if err != nil {
		return nil, err
	}

	var p models.WeekPlan
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("httpclient: decode plan: %w", err)
	}
	return p, nil
}

func (c *HTTPClient) GetDay(ctx context.Context, day models.Weekday) (models.DayPlan, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/v1/plan/"+string(day), nil)
	if err != nil {
		return models.DayPlan{}, err
	}
	return decodeDay(body)
}

// decodeDay unmarshals a day-plan response body.
func decodeDay(body []byte) (models.DayPlan, error) {
	var dp models.DayPlan
	if err := json.Unmarshal(body, &dp); err != nil {
		return models.DayPlan{}, fmt.Errorf("httpclient: decode day: %w", err)
	}
	return dp, nil
}

func (c *HTTPClient) AddExercise(ctx context.Context, day models.Weekday, in plan.ExerciseInput) (models.DayPlan, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/v1/plan/"+string(day)+"/exercises", in)
	if err != nil {
		return models.DayPlan{}, err
	}

	// The add endpoint wraps the day plan alongside the created exercise
	// and advisory warnings.
	var resp struct {
		Day models.DayPlan `json:"day"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return models.DayPlan{}, fmt.Errorf("httpclient: decode add response: %w", err)
	}
	return resp.Day, nil
}

func (c *HTTPClient) UpdateExercise(ctx context.Context, day models.Weekday, id string, upd plan.ExerciseUpdate) (models.DayPlan, error) {
	body, err := c.do(ctx, http.MethodPatch, "/api/v1/plan/"+string(day)+"/exercises/"+id, upd)
	if err != nil {
		return models.DayPlan{}, err
	}
	return decodeDay(body)
}

func (c *HTTPClient) RemoveExercise(ctx context.Context, day models.Weekday, id string) (models.DayPlan, error) {
	body, err := c.do(ctx, http.MethodDelete, "/api/v1/plan/"+string(day)+"/exercises/"+id, nil)
	if err != nil {
		return models.DayPlan{}, err
	}
	return decodeDay(body)
}

func (c *HTTPClient) Reorder(ctx context.Context, day models.Weekday, from, to int) (models.DayPlan, error) {
	payload := map[string]int{"from": from, "to": to}
	body, err := c.do(ctx, http.MethodPost, "/api/v1/plan/"+string(day)+"/reorder", payload)
	if err != nil {
		return models.DayPlan{}, err
	}
	return decodeDay(body)
}

func (c *HTTPClient) SetDayFocus(ctx context.Context, day models.Weekday, groups []string) (models.DayPlan, error) {
	payload := map[string][]string{"muscleGroups": groups}
	body, err := c.do(ctx, http.MethodPut, "/api/v1/plan/"+string(day)+"/focus", payload)
	if err != nil {
		return models.DayPlan{}, err
	}
	return decodeDay(body)
}

func (c *HTTPClient) ResetDay(ctx context.Context, day models.Weekday) (models.DayPlan, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/v1/plan/"+string(day)+"/reset", nil)
	if err != nil {
		return models.DayPlan{}, err
	}
	return decodeDay(body)
}

func (c *HTTPClient) ResetWeek(ctx context.Context) (models.WeekPlan, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/v1/plan/reset", nil)
	if err != nil {
		return nil, err
	}

	var p models.WeekPlan
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("httpclient: decode plan: %w", err)
	}
	return p, nil
}

func (c *HTTPClient) GetStats(ctx context.Context) (plan.CompletionStats, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/v1/stats", nil)
	if err != nil {
		return plan.CompletionStats{}, err
	}

	var stats plan.CompletionStats
	if err := json.Unmarshal(body, &stats); err != nil {
		return plan.CompletionStats{}, fmt.Errorf("httpclient: decode stats: %w", err)
	}
	return stats, nil
}

func (c *HTTPClient) GetCatalog(ctx context.Context) (models.Catalog, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/v1/catalog", nil)
	if err != nil {
		return nil, err
	}

	var catalog models.Catalog
	if err := json.Unmarshal(body, &catalog); err != nil {
		return nil, fmt.Errorf("httpclient: decode catalog: %w", err)
	}
	return catalog, nil
}
