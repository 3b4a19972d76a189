// Package queue provides story queue management and the worker pool that
// drives the pipeline orchestrator.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/100percenttuna/undertow/ent"
	"github.com/100percenttuna/undertow/pkg/pipeline"
)

// Sentinel errors for queue operations.
var (
	// ErrNoStoriesAvailable indicates no queued stories are ready to claim.
	ErrNoStoriesAvailable = errors.New("no stories available")

	// ErrAtCapacity indicates the global concurrent story limit has been reached.
	ErrAtCapacity = errors.New("at capacity")

	// ErrProvidersDown indicates no LLM provider can take traffic; the queue
	// parks instead of failing stories.
	ErrProvidersDown = errors.New("no providers available")
)

// StoryExecutor runs one claimed story to a terminal outcome. Implemented by
// the pipeline orchestrator via executorAdapter; stubbed in tests.
type StoryExecutor interface {
	ExecuteStory(ctx context.Context, job pipeline.StoryJob) *pipeline.StoryResult
}

// PublishedSink receives completed articles after Gate 4. Delivery/email is
// outside the engine; a nil sink leaves stories at ready_for_publication.
type PublishedSink interface {
	Publish(ctx context.Context, story *ent.Story, articleText string) error
}

// ProviderProbe lets the pool park claiming while every provider is down.
type ProviderProbe interface {
	AnyAvailable() bool
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveStories    int            `json:"active_stories"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID               string    `json:"id"`
	Status           string    `json:"status"` // "idle" or "working"
	CurrentStoryID   string    `json:"current_story_id,omitempty"`
	StoriesProcessed int       `json:"stories_processed"`
	LastActivity     time.Time `json:"last_activity"`
}
