package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/engine/task"
	"github.com/taskdeck/taskdeck/pkg/config"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	cfg := config.Default()
	cfg.Client.BaseURL = baseURL
	cfg.Client.RetryCount = 0
	client, err := NewClient(context.Background(), cfg)
	require.NoError(t, err)
	return client
}

func sampleTasks() []task.Task {
	hours := 2.0
	return []task.Task{{
		ID:             1,
		Title:          "Fix login bug",
		DueDate:        "2026-08-26",
		EstimatedHours: &hours,
		Importance:     8,
		Dependencies:   []int{},
	}}
}

func TestClientAnalyze(t *testing.T) {
	t.Run("Should refuse an empty collection without any request", func(t *testing.T) {
		var hits atomic.Int32
		ts := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			hits.Add(1)
		}))
		defer ts.Close()
		client := newTestClient(t, ts.URL)
		_, err := client.Analyze(context.Background(), "smart_balance", nil)
		assert.ErrorIs(t, err, ErrNoTasks)
		assert.Zero(t, hits.Load())
	})
	t.Run("Should decode the applied strategy and scored tasks", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/tasks/analyze", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"strategy":"default","tasks":[
				{"id":1,"title":"urgent","due_date":"2026-08-26","estimated_hours":2,
				 "importance":8,"dependencies":[],"score":0.82,"explanation":"Due very soon."}
			]}`))
		}))
		defer ts.Close()
		client := newTestClient(t, ts.URL)
		result, err := client.Analyze(context.Background(), "default", sampleTasks())
		require.NoError(t, err)
		assert.Equal(t, "default", result.Strategy)
		require.Len(t, result.Tasks, 1)
		assert.Equal(t, "urgent", result.Tasks[0].Title)
		assert.InDelta(t, 0.82, result.Tasks[0].Score, 1e-9)
		assert.Equal(t, "Due very soon.", result.Tasks[0].Explanation)
	})
	t.Run("Should classify a non-2xx response as a remote error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		defer ts.Close()
		client := newTestClient(t, ts.URL)
		_, err := client.Analyze(context.Background(), "smart_balance", sampleTasks())
		var remote *RemoteError
		require.ErrorAs(t, err, &remote)
		assert.Equal(t, http.StatusBadGateway, remote.StatusCode)
		assert.Contains(t, remote.Body, "boom")
		assert.Equal(t, "the analysis service returned an unexpected response", err.Error())
	})
	t.Run("Should classify an undecodable success body as a remote error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("<html>not json</html>"))
		}))
		defer ts.Close()
		client := newTestClient(t, ts.URL)
		_, err := client.Analyze(context.Background(), "smart_balance", sampleTasks())
		var remote *RemoteError
		require.ErrorAs(t, err, &remote)
		assert.Equal(t, http.StatusOK, remote.StatusCode)
		assert.Error(t, remote.Cause)
	})
	t.Run("Should classify an unreachable service as a transport error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
		ts.Close()
		client := newTestClient(t, ts.URL)
		_, err := client.Analyze(context.Background(), "smart_balance", sampleTasks())
		var transport *TransportError
		require.ErrorAs(t, err, &transport)
		assert.Equal(t, "could not reach the analysis service", err.Error())
	})
}

func TestClientSuggest(t *testing.T) {
	t.Run("Should post to the suggest endpoint", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/tasks/suggest", r.URL.Path)
			w.Write([]byte(`{"strategy":"smart_balance","tasks":[]}`))
		}))
		defer ts.Close()
		client := newTestClient(t, ts.URL)
		result, err := client.Suggest(context.Background(), "smart_balance", sampleTasks())
		require.NoError(t, err)
		assert.Equal(t, "smart_balance", result.Strategy)
	})
}

func TestClientStrategies(t *testing.T) {
	t.Run("Should unwrap the metadata envelope", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/strategies", r.URL.Path)
			w.Write([]byte(`{"data":{"strategies":["fastest_wins","smart_balance"],"default":"smart_balance"},"message":"strategies retrieved"}`))
		}))
		defer ts.Close()
		client := newTestClient(t, ts.URL)
		list, err := client.Strategies(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"fastest_wins", "smart_balance"}, list.Strategies)
		assert.Equal(t, "smart_balance", list.Default)
	})
}

func TestResolveBaseURL(t *testing.T) {
	t.Run("Should derive from the server settings when unset", func(t *testing.T) {
		cfg := config.Default()
		cfg.Client.BaseURL = ""
		url, err := resolveBaseURL(cfg)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8321/api/v0", url)
	})
	t.Run("Should reject a relative base URL", func(t *testing.T) {
		cfg := config.Default()
		cfg.Client.BaseURL = "/api/v0"
		_, err := resolveBaseURL(cfg)
		assert.Error(t, err)
	})
}
