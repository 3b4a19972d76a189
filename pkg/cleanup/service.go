// Package cleanup provides data retention enforcement.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/100percenttuna/undertow/pkg/config"
	"github.com/100percenttuna/undertow/pkg/services"
)

// Service periodically enforces retention policies:
//   - Removes catch-up Event rows past their TTL
//   - Removes cost ledger rows past the retention window
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config        *config.RetentionConfig
	eventService  *services.EventService
	ledgerService *services.LedgerService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	eventService *services.EventService,
	ledgerService *services.LedgerService,
) *Service {
	return &Service{
		config:        cfg,
		eventService:  eventService,
		ledgerService: ledgerService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"event_ttl", s.config.EventTTL,
		"ledger_retention", s.config.LedgerRetention,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

// runAll executes one cleanup sweep.
func (s *Service) runAll(ctx context.Context) {
	now := time.Now()

	if s.config.EventTTL > 0 {
		n, err := s.eventService.DeleteOlderThan(ctx, now.Add(-s.config.EventTTL))
		if err != nil {
			slog.Error("Event cleanup failed", "error", err)
		} else if n > 0 {
			slog.Info("Expired events removed", "count", n)
		}
	}

	if s.config.LedgerRetention > 0 {
		n, err := s.ledgerService.DeleteOlderThan(ctx, now.Add(-s.config.LedgerRetention))
		if err != nil {
			slog.Error("Ledger cleanup failed", "error", err)
		} else if n > 0 {
			slog.Info("Expired ledger entries removed", "count", n)
		}
	}
}
