package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/100percenttuna/undertow/ent"
	"github.com/100percenttuna/undertow/ent/story"
	"github.com/100percenttuna/undertow/pkg/config"
	"github.com/100percenttuna/undertow/pkg/events"
	"github.com/100percenttuna/undertow/pkg/services"
)

// Sweeper lets the pool run periodic maintenance on the gateway cache.
type Sweeper interface {
	Sweep()
}

// WorkerPool manages a pool of queue workers.
type WorkerPool struct {
	podID     string
	client    *ent.Client
	cfg       *config.Config
	executor  StoryExecutor
	stories   *services.StoryService
	runs      *services.RunService
	publisher *events.Publisher
	sink      PublishedSink
	providers ProviderProbe
	sweeper   Sweeper
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Story cancel registry: story_id → cancel function
	activeStories map[string]context.CancelFunc
	mu            sync.RWMutex
	started       bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool. publisher, sink, providers, and
// sweeper may be nil.
func NewWorkerPool(
	podID string,
	client *ent.Client,
	cfg *config.Config,
	executor StoryExecutor,
	storySvc *services.StoryService,
	runSvc *services.RunService,
	publisher *events.Publisher,
	sink PublishedSink,
	providers ProviderProbe,
	sweeper Sweeper,
) *WorkerPool {
	return &WorkerPool{
		podID:         podID,
		client:        client,
		cfg:           cfg,
		executor:      executor,
		stories:       storySvc,
		runs:          runSvc,
		publisher:     publisher,
		sink:          sink,
		providers:     providers,
		sweeper:       sweeper,
		workers:       make([]*Worker, 0, cfg.Queue.WorkerCount),
		stopCh:        make(chan struct{}),
		activeStories: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the orphan detection background task.
// Safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool",
		"pod_id", p.podID,
		"worker_count", p.cfg.Queue.WorkerCount,
		"max_concurrent_stories", p.cfg.Concurrency.MaxConcurrentStories)

	for i := 0; i < p.cfg.Queue.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.cfg, p.executor,
			p.stories, p.runs, p.publisher, p.sink, p.providers, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish. Workers
// finish their current stories before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveStoryIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active stories to complete",
			"count", len(active),
			"story_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterStory stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterStory(storyID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeStories[storyID] = cancel
}

// UnregisterStory removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterStory(storyID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeStories, storyID)
}

// CancelStory triggers context cancellation for a story on this pod.
// Returns true if the story was found and cancelled here. Stories on other
// pods are reached through the cancelling status checked between stages.
func (p *WorkerPool) CancelStory(storyID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeStories[storyID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Story.Query().
		Where(story.StatusEQ(story.StatusQueued)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID, "error", errQ)
	}

	activeStories, errA := p.client.Story.Query().
		Where(
			story.StatusEQ(story.StatusInProgress),
			story.PodIDEQ(p.podID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active stories for health check",
			"pod_id", p.podID, "error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeStories <= p.cfg.Concurrency.MaxConcurrentStories && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("active stories query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		ActiveStories:    activeStories,
		MaxConcurrent:    p.cfg.Concurrency.MaxConcurrentStories,
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}

// getActiveStoryIDs returns IDs of currently processing stories (for logging).
func (p *WorkerPool) getActiveStoryIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	stories := make([]string, 0, len(p.activeStories))
	for id := range p.activeStories {
		stories = append(stories, id)
	}
	return stories
}
