package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/taskdeck/taskdeck/engine/task"
	"github.com/taskdeck/taskdeck/pkg/config"
	"github.com/taskdeck/taskdeck/pkg/logger"
)

const apiBasePath = "/api/v0"

// AnalyzeRequest is the wire shape sent to the analyze and suggest
// endpoints.
type AnalyzeRequest struct {
	Strategy string      `json:"strategy"`
	Tasks    []task.Task `json:"tasks"`
}

// AnalyzeResult carries the applied strategy echoed by the service and
// the scored, ordered tasks.
type AnalyzeResult struct {
	Strategy string            `json:"strategy"`
	Tasks    []task.ScoredTask `json:"tasks"`
}

// StrategyList is the strategy metadata served by the service.
type StrategyList struct {
	Strategies []string `json:"strategies"`
	Default    string   `json:"default"`
}

// Client talks to the task analysis service.
type Client struct {
	http *resty.Client
	log  logger.Logger
}

// NewClient builds a client from the configuration. An empty base URL
// derives one from the local server settings.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	baseURL, err := resolveBaseURL(cfg)
	if err != nil {
		return nil, err
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Client.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetRetryCount(cfg.Client.RetryCount).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(retryCondition)
	if cfg.Runtime.LogLevel == "debug" {
		client.SetDebug(true)
	}
	return &Client{http: client, log: logger.FromContext(ctx)}, nil
}

func resolveBaseURL(cfg *config.Config) (string, error) {
	if cfg.Client.BaseURL == "" {
		host := cfg.Server.Host
		if host == "" {
			host = "localhost"
		}
		return fmt.Sprintf("http://%s:%d%s", host, cfg.Server.Port, apiBasePath), nil
	}
	parsed, err := url.Parse(cfg.Client.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", cfg.Client.BaseURL, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", fmt.Errorf("invalid base URL %q: must be an absolute http(s) URL", cfg.Client.BaseURL)
	}
	return cfg.Client.BaseURL, nil
}

// retryCondition retries transport failures and transient server
// statuses.
func retryCondition(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	code := resp.StatusCode()
	return code >= http.StatusInternalServerError ||
		code == http.StatusTooManyRequests ||
		code == http.StatusRequestTimeout
}

// Analyze scores and orders the full task collection.
func (c *Client) Analyze(ctx context.Context, strategy string, tasks []task.Task) (*AnalyzeResult, error) {
	return c.analyze(ctx, "analyze", strategy, tasks)
}

// Suggest returns only the top suggestions for the collection.
func (c *Client) Suggest(ctx context.Context, strategy string, tasks []task.Task) (*AnalyzeResult, error) {
	return c.analyze(ctx, "suggest", strategy, tasks)
}

func (c *Client) analyze(ctx context.Context, op, strategy string, tasks []task.Task) (*AnalyzeResult, error) {
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(AnalyzeRequest{Strategy: strategy, Tasks: tasks}).
		Post("/tasks/" + op)
	if err != nil {
		terr := &TransportError{Op: op, Cause: err}
		c.log.Error("analysis request failed", "detail", terr.Diagnostic())
		return nil, terr
	}
	var result AnalyzeResult
	if rerr := decodeResponse(op, resp, &result); rerr != nil {
		c.log.Error("analysis request failed", "detail", rerr.Diagnostic())
		return nil, rerr
	}
	return &result, nil
}

// Strategies fetches the strategy list the service supports.
func (c *Client) Strategies(ctx context.Context) (*StrategyList, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/strategies")
	if err != nil {
		terr := &TransportError{Op: "strategies", Cause: err}
		c.log.Error("strategy request failed", "detail", terr.Diagnostic())
		return nil, terr
	}
	var envelope struct {
		Data StrategyList `json:"data"`
	}
	if rerr := decodeResponse("strategies", resp, &envelope); rerr != nil {
		c.log.Error("strategy request failed", "detail", rerr.Diagnostic())
		return nil, rerr
	}
	return &envelope.Data, nil
}

// decodeResponse classifies non-2xx statuses and undecodable bodies as
// remote errors, keeping the raw body only for diagnostics.
func decodeResponse(op string, resp *resty.Response, out any) *RemoteError {
	code := resp.StatusCode()
	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		return &RemoteError{Op: op, StatusCode: code, Body: resp.String()}
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &RemoteError{Op: op, StatusCode: code, Body: resp.String(), Cause: err}
	}
	return nil
}
