package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/100percenttuna/undertow/ent"
	"github.com/100percenttuna/undertow/ent/story"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned stories and sweeps the
// gateway response cache. All pods run this independently — recovery is
// idempotent: a requeued story is claimed exactly once via SKIP LOCKED.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.Queue.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
			if p.sweeper != nil {
				p.sweeper.Sweep()
			}
		}
	}
}

// detectAndRecoverOrphans finds in_progress stories with stale heartbeats
// (crashed pod, lost worker) and requeues them. Progressive state survived
// in the story record, so the next claim resumes from the last passed gate.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.cfg.Queue.OrphanThreshold)

	orphans, err := p.client.Story.Query().
		Where(
			story.StatusEQ(story.StatusInProgress),
			story.LastHeartbeatAtNotNil(),
			story.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned stories: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned stories", "count", len(orphans))

	recovered := 0
	failed := 0
	for _, orphan := range orphans {
		if err := p.recoverOrphanedStory(ctx, orphan); err != nil {
			slog.Error("Failed to recover orphaned story",
				"story_id", orphan.ID,
				"error", err)
			failed++
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	if failed > 0 {
		slog.Warn("Orphan recovery completed with failures",
			"total_orphans", len(orphans),
			"recovered", recovered,
			"failed", failed)
	}
	return nil
}

// recoverOrphanedStory requeues a single orphaned story.
func (p *WorkerPool) recoverOrphanedStory(ctx context.Context, orphan *ent.Story) error {
	log := slog.With("story_id", orphan.ID)
	if orphan.PodID != nil {
		log = log.With("old_pod_id", *orphan.PodID)
	}

	if err := p.stories.Requeue(ctx, orphan.ID); err != nil {
		return err
	}
	if err := p.stories.AddFlags(ctx, orphan.ID, "orphan_recovered"); err != nil {
		log.Warn("Failed to flag recovered orphan", "error", err)
	}
	log.Warn("Orphaned story requeued")
	return nil
}
