package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/100percenttuna/undertow/ent"
	"github.com/100percenttuna/undertow/ent/pipelinerun"
	"github.com/100percenttuna/undertow/ent/story"
	"github.com/100percenttuna/undertow/pkg/agent"
	"github.com/100percenttuna/undertow/pkg/config"
	"github.com/100percenttuna/undertow/pkg/events"
	"github.com/100percenttuna/undertow/pkg/metrics"
	"github.com/100percenttuna/undertow/pkg/pipeline"
	"github.com/100percenttuna/undertow/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// StoryRegistry is the subset of WorkerPool used by Worker for cancel
// registration.
type StoryRegistry interface {
	RegisterStory(storyID string, cancel context.CancelFunc)
	UnregisterStory(storyID string)
}

// Worker is a single queue worker that polls for and processes stories.
type Worker struct {
	id        string
	podID     string
	client    *ent.Client
	cfg       *config.Config
	executor  StoryExecutor
	stories   *services.StoryService
	runs      *services.RunService
	publisher *events.Publisher // nil = event delivery disabled
	sink      PublishedSink     // nil = stop at ready_for_publication
	providers ProviderProbe     // nil = assume available
	pool      StoryRegistry
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu               sync.RWMutex
	status           WorkerStatus
	currentStoryID   string
	storiesProcessed int
	lastActivity     time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(
	id, podID string,
	client *ent.Client,
	cfg *config.Config,
	executor StoryExecutor,
	storySvc *services.StoryService,
	runSvc *services.RunService,
	publisher *events.Publisher,
	sink PublishedSink,
	providers ProviderProbe,
	pool StoryRegistry,
) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		cfg:          cfg,
		executor:     executor,
		stories:      storySvc,
		runs:         runSvc,
		publisher:    publisher,
		sink:         sink,
		providers:    providers,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its current
// story. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:               w.id,
		Status:           string(w.status),
		CurrentStoryID:   w.currentStoryID,
		StoriesProcessed: w.storiesProcessed,
		LastActivity:     w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				switch {
				case errors.Is(err, ErrNoStoriesAvailable), errors.Is(err, ErrAtCapacity):
					w.sleep(w.pollInterval())
				case errors.Is(err, ErrProvidersDown):
					// Park until a provider returns; stories stay queued.
					w.sleep(5 * w.pollInterval())
				default:
					log.Error("Error processing story", "error", err)
					w.sleep(time.Second)
				}
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity and provider state, claims a story, and
// drives it to a terminal outcome.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. All-providers-down parks the queue rather than failing stories.
	if w.providers != nil && !w.providers.AnyAvailable() {
		return ErrProvidersDown
	}

	// 2. Global capacity (best-effort; racy across workers but bounded by
	//    worker count and mitigated by poll jitter).
	activeCount, err := w.client.Story.Query().
		Where(story.StatusEQ(story.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active stories: %w", err)
	}
	if activeCount >= w.cfg.Concurrency.MaxConcurrentStories {
		return ErrAtCapacity
	}

	// 3. Claim next story
	claimed, err := w.claimNextStory(ctx)
	if err != nil {
		return err
	}

	log := slog.With("story_id", claimed.ID, "worker_id", w.id)
	log.Info("Story claimed")

	w.publishStoryStatus(ctx, claimed, string(story.StatusInProgress), "")
	w.setStatus(WorkerStatusWorking, claimed.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 4. Story context with the story timeout
	storyCtx, cancelStory := context.WithTimeout(ctx, w.cfg.Timeouts.Story)
	defer cancelStory()

	// 5. Register cancel function for API-triggered cancellation
	w.pool.RegisterStory(claimed.ID, cancelStory)
	defer w.pool.UnregisterStory(claimed.ID)

	// 6. Heartbeat for orphan detection
	heartbeatCtx, cancelHeartbeat := context.WithCancel(storyCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, claimed.ID)

	// 7. Execute
	result := w.executor.ExecuteStory(storyCtx, toJob(claimed))
	if result == nil {
		result = &pipeline.StoryResult{
			Status: pipeline.StatusFailed,
			Err:    fmt.Errorf("executor returned nil result"),
		}
	}
	if result.Status == "" {
		switch {
		case errors.Is(storyCtx.Err(), context.DeadlineExceeded):
			result.Status = pipeline.StatusTimedOut
			result.AbortReason = pipeline.ReasonStoryTimeout
		case storyCtx.Err() != nil:
			result.Status = pipeline.StatusCancelled
		default:
			result.Status = pipeline.StatusFailed
		}
	}

	cancelHeartbeat()

	// 8. Terminal bookkeeping (background context — story ctx may be done)
	if err := w.finalizeStory(context.Background(), claimed, result); err != nil {
		log.Error("Failed to finalize story", "error", err)
		return err
	}

	w.mu.Lock()
	w.storiesProcessed++
	w.mu.Unlock()

	log.Info("Story processing complete", "status", result.Status)
	return nil
}

// claimNextStory atomically claims the next queued story whose run is
// running, using FOR UPDATE SKIP LOCKED for multi-replica safety.
func (w *Worker) claimNextStory(ctx context.Context) (*ent.Story, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	claimed, err := tx.Story.Query().
		Where(
			story.StatusEQ(story.StatusQueued),
			story.HasRunWith(pipelinerun.StatusEQ(pipelinerun.StatusRunning)),
		).
		Order(ent.Asc(story.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoStoriesAvailable
		}
		return nil, fmt.Errorf("failed to query queued story: %w", err)
	}

	now := time.Now()
	update := claimed.Update().
		SetStatus(story.StatusInProgress).
		SetPodID(w.podID).
		SetLastHeartbeatAt(now)
	if claimed.StartedAt == nil {
		update = update.SetStartedAt(now)
	}
	claimed, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim story: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return claimed, nil
}

// runHeartbeat periodically refreshes last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, storyID string) {
	ticker := time.NewTicker(w.cfg.Queue.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.stories.Heartbeat(ctx, storyID); err != nil {
				slog.Warn("Heartbeat update failed", "story_id", storyID, "error", err)
			}
		}
	}
}

// finalizeStory maps the pipeline result onto the persisted story, run, and
// events, then publishes through the sink when appropriate.
func (w *Worker) finalizeStory(ctx context.Context, claimed *ent.Story, result *pipeline.StoryResult) error {
	status, reason := terminalStatus(result)
	errMsg := ""
	if result.Err != nil {
		errMsg = result.Err.Error()
	}

	switch status {
	case story.StatusEscalated, story.StatusPaused:
		if err := w.stories.SetStatus(ctx, claimed.ID, status); err != nil {
			return err
		}
	default:
		if err := w.stories.SetTerminal(ctx, claimed.ID, status, result.FinalArticle, reason, errMsg); err != nil {
			return err
		}
	}

	// Run-level bookkeeping: error log, cost, completion.
	if result.Err != nil {
		if err := w.runs.AppendError(ctx, claimed.RunID, claimed.ID, reason, errMsg); err != nil {
			slog.Warn("Failed to append run error", "run_id", claimed.RunID, "error", err)
		}
	}
	if cost := result.TotalCost(); cost > 0 {
		if err := w.runs.AddCost(ctx, claimed.RunID, cost); err != nil {
			slog.Warn("Failed to add run cost", "run_id", claimed.RunID, "error", err)
		}
	}

	// Publication: hand the article to the sink, then mark published.
	if status == story.StatusReadyForPublication && w.sink != nil && result.FinalArticle != "" {
		if err := w.sink.Publish(ctx, claimed, result.FinalArticle); err != nil {
			slog.Warn("Published-article sink failed; story stays ready_for_publication",
				"story_id", claimed.ID, "error", err)
		} else {
			status = story.StatusPublished
			if err := w.stories.SetStatus(ctx, claimed.ID, story.StatusPublished); err != nil {
				slog.Warn("Failed to mark story published", "story_id", claimed.ID, "error", err)
			}
		}
	}

	metrics.StoriesCompleted.WithLabelValues(string(status)).Inc()
	w.publishStoryStatus(ctx, claimed, string(status), reason)

	if done, err := w.runs.CompleteIfDone(ctx, claimed.RunID); err != nil {
		slog.Warn("Failed to check run completion", "run_id", claimed.RunID, "error", err)
	} else if done {
		if w.publisher != nil {
			w.publisher.PublishRunStatus(ctx, claimed.RunID, string(pipelinerun.StatusCompleted), "")
		}
	}
	return nil
}

// publishStoryStatus publishes a story status event. Nil-safe, best-effort.
func (w *Worker) publishStoryStatus(ctx context.Context, claimed *ent.Story, status, reason string) {
	if w.publisher == nil {
		return
	}
	w.publisher.PublishStoryStatusForRun(ctx, claimed.RunID, claimed.ID, status, reason)
}

// terminalStatus maps a pipeline result to the persisted story status and
// reason code.
func terminalStatus(result *pipeline.StoryResult) (story.Status, string) {
	switch result.Status {
	case pipeline.StatusReadyForPublication:
		return story.StatusReadyForPublication, ""
	case pipeline.StatusEscalated:
		return story.StatusEscalated, ""
	case pipeline.StatusCancelled:
		return story.StatusCancelled, ""
	case pipeline.StatusTimedOut:
		return story.StatusTimedOut, pipeline.ReasonStoryTimeout
	default:
		return story.StatusFailed, result.AbortReason
	}
}

// toJob converts a claimed story row into the orchestrator's job, restoring
// prior analysis state for resumed stories.
func toJob(claimed *ent.Story) pipeline.StoryJob {
	job := pipeline.StoryJob{
		ID:               claimed.ID,
		RunID:            claimed.RunID,
		EditionID:        claimed.EditionID,
		Headline:         claimed.Headline,
		PrimaryZone:      claimed.PrimaryZone,
		SecondaryZones:   claimed.SecondaryZones,
		SourceArticleIDs: claimed.SourceArticleIds,
		Novelty:          claimed.Novelty,
		ZonesAffected:    claimed.ZonesAffected,
		SignalType:       claimed.SignalType,
		Topics:           claimed.Topics,
		Flags:            claimed.Flags,
		StartPass:        1,
		RetryCounts:      make(map[int]int),
	}

	for key, count := range claimed.RetryCounts {
		var pass int
		if _, err := fmt.Sscanf(key, "pass%d", &pass); err == nil {
			job.RetryCounts[pass] = count
		}
	}

	// Resume from the pass after the last passed gate.
	for pass := 1; pass <= 4; pass++ {
		outcome := claimed.GatesPassed[fmt.Sprintf("pass%d", pass)]
		if strings.HasPrefix(outcome, "pass") {
			job.StartPass = pass + 1
		} else {
			break
		}
	}

	if len(claimed.PassOutputs) > 0 {
		bundle := agent.NewBundle()
		bundle.Restore(claimed.PassOutputs)
		job.Bundle = bundle
	}
	return job
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.cfg.Queue.PollInterval
	jitter := w.cfg.Queue.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, storyID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentStoryID = storyID
	w.lastActivity = time.Now()
}
