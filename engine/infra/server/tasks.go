package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskdeck/taskdeck/engine/infra/server/router"
	"github.com/taskdeck/taskdeck/engine/scoring"
	"github.com/taskdeck/taskdeck/pkg/logger"
)

// suggestLimit caps how many tasks the suggest endpoint returns.
const suggestLimit = 3

type analyzeRequest struct {
	Strategy string          `json:"strategy"`
	Tasks    json.RawMessage `json:"tasks"`
}

type analyzeResponse struct {
	Strategy string               `json:"strategy"`
	Tasks    []scoring.ScoredTask `json:"tasks"`
}

// decodeTasks parses the tasks member of an analyze request. Absent or null
// tasks become an empty list; anything that is not a JSON array is rejected.
// Tasks without an id get index+1 so dependency references by position work.
func decodeTasks(raw json.RawMessage) ([]scoring.TaskInput, *router.RequestError) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []scoring.TaskInput{}, nil
	}
	if trimmed[0] != '[' {
		return nil, router.NewBadRequestError("tasks must be a list", nil)
	}
	var tasks []scoring.TaskInput
	if err := json.Unmarshal(trimmed, &tasks); err != nil {
		return nil, router.NewBadRequestError("invalid tasks payload", err)
	}
	for i := range tasks {
		if tasks[i].ID == 0 {
			tasks[i].ID = i + 1
		}
	}
	return tasks, nil
}

func bindAnalyzeRequest(c *gin.Context) ([]scoring.TaskInput, string, *router.RequestError) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, "", router.NewBadRequestError("invalid JSON body", err)
	}
	tasks, reqErr := decodeTasks(req.Tasks)
	if reqErr != nil {
		return nil, "", reqErr
	}
	return tasks, req.Strategy, nil
}

// analyzeHandler scores and orders the submitted tasks. The response body
// is the bare wire shape the clients consume, not the metadata envelope.
func analyzeHandler(c *gin.Context) {
	log := logger.FromContext(c.Request.Context())
	tasks, strategy, reqErr := bindAnalyzeRequest(c)
	if reqErr != nil {
		log.Warn("rejected analyze request", "reason", reqErr.String())
		router.RespondWithError(c, reqErr)
		return
	}
	applied, scored := scoring.Score(tasks, strategy, time.Now())
	log.Debug("scored tasks", "strategy", applied, "count", len(scored))
	c.JSON(http.StatusOK, analyzeResponse{Strategy: applied, Tasks: scored})
}

// suggestHandler is analyzeHandler truncated to the top suggestions.
func suggestHandler(c *gin.Context) {
	log := logger.FromContext(c.Request.Context())
	tasks, strategy, reqErr := bindAnalyzeRequest(c)
	if reqErr != nil {
		log.Warn("rejected suggest request", "reason", reqErr.String())
		router.RespondWithError(c, reqErr)
		return
	}
	applied, scored := scoring.Score(tasks, strategy, time.Now())
	if len(scored) > suggestLimit {
		scored = scored[:suggestLimit]
	}
	c.JSON(http.StatusOK, analyzeResponse{Strategy: applied, Tasks: scored})
}

type strategiesData struct {
	Strategies []string `json:"strategies"`
	Default    string   `json:"default"`
}

// strategiesHandler serves the closed strategy list presented by the UI.
func strategiesHandler(c *gin.Context) {
	router.RespondOK(c, "strategies retrieved", strategiesData{
		Strategies: scoring.Strategies(),
		Default:    scoring.DefaultStrategy,
	})
}

func healthHandler(c *gin.Context) {
	router.RespondOK(c, "healthy", gin.H{"status": "ok"})
}
