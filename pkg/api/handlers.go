package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/100percenttuna/undertow/pkg/database"
	"github.com/100percenttuna/undertow/pkg/models"
	"github.com/100percenttuna/undertow/pkg/services"
)

// handleStartPipeline creates a run and its stories; workers pick the
// stories up from the queue.
func (s *Server) handleStartPipeline(c *gin.Context) {
	var req models.CreatePipelineRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	run, stories, err := s.runService.CreateRun(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	storyIDs := make([]string, len(stories))
	for i, st := range stories {
		storyIDs[i] = st.ID
	}
	c.JSON(http.StatusCreated, gin.H{
		"pipeline_run_id": run.ID,
		"edition_id":      run.EditionID,
		"story_ids":       storyIDs,
	})
}

// handleGetRun returns a run with its stories.
func (s *Server) handleGetRun(c *gin.Context) {
	run, err := s.runService.GetRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	stories, err := s.storySvc.ListByRun(c.Request.Context(), run.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"run": run, "stories": stories})
}

// handlePauseRun parks a running run after in-flight stages complete.
func (s *Server) handlePauseRun(c *gin.Context) {
	if err := s.runService.Pause(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "paused"})
}

// handleResumeRun continues a paused run.
func (s *Server) handleResumeRun(c *gin.Context) {
	if err := s.runService.Resume(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "running"})
}

// handleCancelRun cancels a run. In-flight gateway calls finish; their
// outputs are discarded.
func (s *Server) handleCancelRun(c *gin.Context) {
	var req models.CancelRunRequest
	_ = c.ShouldBindJSON(&req) // reason is optional

	runID := c.Param("id")
	if err := s.runService.Cancel(c.Request.Context(), runID, req.Reason); err != nil {
		respondServiceError(c, err)
		return
	}

	// Cancel same-pod in-flight stories immediately; other pods observe the
	// cancelling status between stages.
	stories, err := s.storySvc.ListByRun(c.Request.Context(), runID)
	if err == nil {
		for _, st := range stories {
			s.workerPool.CancelStory(st.ID)
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// handleGetStory returns one story with its ledger-backed spend total.
func (s *Server) handleGetStory(c *gin.Context) {
	st, err := s.storySvc.GetStory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	ledgerTotal, err := s.ledger.StoryTotal(c.Request.Context(), st.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"story": st, "ledger_total_usd": ledgerTotal})
}

// handleRetryStory rewinds a story to the given pass and requeues it.
func (s *Server) handleRetryStory(c *gin.Context) {
	var req models.RetryStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if err := s.storySvc.RetryFromPass(c.Request.Context(), c.Param("id"), req.FromPass); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "queued", "from_pass": req.FromPass})
}

// handleCancelStory cancels one story.
func (s *Server) handleCancelStory(c *gin.Context) {
	storyID := c.Param("id")
	if err := s.storySvc.RequestCancel(c.Request.Context(), storyID); err != nil {
		respondServiceError(c, err)
		return
	}
	s.workerPool.CancelStory(storyID)
	c.JSON(http.StatusOK, gin.H{"status": "cancelling"})
}

// handleListEscalations returns the review queue, optionally by status.
func (s *Server) handleListEscalations(c *gin.Context) {
	items, err := s.escalations.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"escalations": items})
}

// handleGetEscalation returns one escalation item with its full package.
func (s *Server) handleGetEscalation(c *gin.Context) {
	item, err := s.escalations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// handleResolveEscalation records a reviewer decision and applies it to the
// story.
func (s *Server) handleResolveEscalation(c *gin.Context) {
	var req models.ResolveEscalationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	item, err := s.escalations.Resolve(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// handleGetBudget returns the current budget snapshot.
func (s *Server) handleGetBudget(c *gin.Context) {
	c.JSON(http.StatusOK, s.budgetCtl.Snapshot())
}

// handleBudgetOverride grants a bounded one-day override past the daily hard
// limit.
func (s *Server) handleBudgetOverride(c *gin.Context) {
	var req models.BudgetOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AmountUSD <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount_usd must be positive"})
		return
	}
	s.budgetCtl.SetOverride(req.AmountUSD)
	c.JSON(http.StatusOK, s.budgetCtl.Snapshot())
}

// handleHealth reports database, pool, cache, and budget health.
func (s *Server) handleHealth(c *gin.Context) {
	dbHealth, dbErr := database.Health(c.Request.Context(), s.dbClient.DB())
	poolHealth := s.workerPool.Health()

	status := http.StatusOK
	if dbErr != nil || !poolHealth.IsHealthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{
		"database":   dbHealth,
		"pool":       poolHealth,
		"budget":     s.budgetCtl.Snapshot(),
		"cache_size": s.gw.CacheSize(),
		"time":       time.Now().Format(time.RFC3339),
	})
}

// respondServiceError maps service errors to HTTP responses.
func respondServiceError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
