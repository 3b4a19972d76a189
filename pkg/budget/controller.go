// Package budget enforces process-wide spend limits with atomic
// reserve/commit accounting over daily and monthly windows.
package budget

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/100percenttuna/undertow/pkg/config"
	"github.com/100percenttuna/undertow/pkg/metrics"
)

// Denial reasons surfaced with ErrDenied.
const (
	ReasonSoftLimit = "soft_limit"
	ReasonHardLimit = "hard_limit"
)

// ErrDenied indicates the reservation was rejected by a budget limit.
var ErrDenied = errors.New("budget denied")

// ErrUnknownReservation indicates a commit/release for an expired or unknown
// reservation.
var ErrUnknownReservation = errors.New("unknown or expired reservation")

// DeniedError carries the limit that rejected a reservation.
type DeniedError struct {
	Reason string // soft_limit or hard_limit
	Window string // day or month
}

// Error returns the formatted error message.
func (e *DeniedError) Error() string {
	return fmt.Sprintf("budget denied: %s (%s window)", e.Reason, e.Window)
}

// Unwrap makes errors.Is(err, ErrDenied) work.
func (e *DeniedError) Unwrap() error { return ErrDenied }

// Reservation is a held slice of budget awaiting commit or release.
type Reservation struct {
	ID        string
	Estimate  float64
	Critical  bool
	CreatedAt time.Time
}

// window tracks one budget window's committed and reserved totals.
type window struct {
	key      string
	spent    float64
	reserved float64
}

// Controller is the process-wide budget authority. All Gateway calls pass
// through Reserve before dispatch and Commit after the terminal outcome.
type Controller struct {
	cfg *config.BudgetConfig

	mu           sync.Mutex
	day          window
	month        window
	reservations map[string]*Reservation
	overrideUSD  float64 // admin override added to the daily hard limit
	overrideDay  string  // day key the override applies to
	exhaustedFor string  // window key that already emitted BUDGET_EXHAUSTED
	now          func() time.Time

	// OnExhausted is invoked (outside the lock) the first time a window hits
	// its hard limit. Wired to the event publisher by main.
	OnExhausted func(windowKey string)
}

// NewController creates a budget controller with zeroed windows.
func NewController(cfg *config.BudgetConfig) *Controller {
	return &Controller{
		cfg:          cfg,
		reservations: make(map[string]*Reservation),
		now:          time.Now,
	}
}

// Seed initializes the current windows from persisted ledger totals.
// Called once at startup before any reservations.
func (c *Controller) Seed(daySpentUSD, monthSpentUSD float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollWindowsLocked()
	c.day.spent = daySpentUSD
	c.month.spent = monthSpentUSD
	c.publishGaugesLocked()
}

// Reserve atomically holds estimate USD against both windows.
// Critical-path tasks are admitted past the soft limit; nothing is admitted
// past the hard limit (plus any active override).
func (c *Controller) Reserve(estimateUSD float64, critical bool) (*Reservation, error) {
	if estimateUSD < 0 {
		return nil, fmt.Errorf("negative estimate %v", estimateUSD)
	}

	c.mu.Lock()
	c.rollWindowsLocked()
	c.expireReservationsLocked()

	dayTotal := c.day.spent + c.day.reserved + estimateUSD
	monthTotal := c.month.spent + c.month.reserved + estimateUSD

	dayHard := c.cfg.DailyHardUSD + c.activeOverrideLocked()

	var exhausted string
	var denied *DeniedError
	switch {
	case dayTotal > dayHard:
		denied = &DeniedError{Reason: ReasonHardLimit, Window: "day"}
		exhausted = c.markExhaustedLocked(c.day.key)
	case monthTotal > c.cfg.MonthlyHardUSD:
		denied = &DeniedError{Reason: ReasonHardLimit, Window: "month"}
		exhausted = c.markExhaustedLocked(c.month.key)
	case !critical && dayTotal > c.cfg.DailySoftUSD:
		denied = &DeniedError{Reason: ReasonSoftLimit, Window: "day"}
	case !critical && monthTotal > c.cfg.MonthlySoftUSD:
		denied = &DeniedError{Reason: ReasonSoftLimit, Window: "month"}
	}

	if denied != nil {
		c.mu.Unlock()
		metrics.BudgetReservations.WithLabelValues("denied").Inc()
		if exhausted != "" && c.OnExhausted != nil {
			c.OnExhausted(exhausted)
		}
		slog.Warn("Budget reservation denied",
			"reason", denied.Reason, "window", denied.Window,
			"estimate_usd", estimateUSD, "critical", critical)
		return nil, denied
	}

	res := &Reservation{
		ID:        uuid.New().String(),
		Estimate:  estimateUSD,
		Critical:  critical,
		CreatedAt: c.now(),
	}
	c.day.reserved += estimateUSD
	c.month.reserved += estimateUSD
	c.reservations[res.ID] = res
	c.mu.Unlock()

	metrics.BudgetReservations.WithLabelValues("reserved").Inc()
	return res, nil
}

// Commit settles a reservation with the actual spend. The actual amount may
// exceed the estimate; the difference lands on the spent totals either way.
func (c *Controller) Commit(res *Reservation, actualUSD float64) error {
	if res == nil {
		return ErrUnknownReservation
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollWindowsLocked()

	if _, ok := c.reservations[res.ID]; !ok {
		// Expired reservation: still count the spend so the ledger and
		// budget never diverge.
		c.day.spent += actualUSD
		c.month.spent += actualUSD
		c.publishGaugesLocked()
		return ErrUnknownReservation
	}
	delete(c.reservations, res.ID)

	c.day.reserved -= res.Estimate
	c.month.reserved -= res.Estimate
	c.day.spent += actualUSD
	c.month.spent += actualUSD
	c.publishGaugesLocked()
	return nil
}

// Release drops a reservation without spend (call failed before dispatch).
func (c *Controller) Release(res *Reservation) {
	if res == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.reservations[res.ID]; !ok {
		return
	}
	delete(c.reservations, res.ID)
	c.day.reserved -= res.Estimate
	c.month.reserved -= res.Estimate
}

// SetOverride grants a bounded admin override on top of the daily hard limit.
// The override expires at the day boundary.
func (c *Controller) SetOverride(amountUSD float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollWindowsLocked()
	c.overrideUSD = amountUSD
	c.overrideDay = c.day.key
	// A fresh override re-arms the exhaustion event for the day window.
	if c.exhaustedFor == c.day.key {
		c.exhaustedFor = ""
	}
	slog.Info("Budget override set", "amount_usd", amountUSD, "expires_after", c.day.key)
}

// Snapshot reports current window totals for the health endpoint.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollWindowsLocked()
	return State{
		DayKey:        c.day.key,
		DaySpentUSD:   c.day.spent,
		DayReserved:   c.day.reserved,
		MonthKey:      c.month.key,
		MonthSpentUSD: c.month.spent,
		MonthReserved: c.month.reserved,
		OverrideUSD:   c.activeOverrideLocked(),
		OpenHolds:     len(c.reservations),
	}
}

// State is a point-in-time budget snapshot.
type State struct {
	DayKey        string  `json:"day_key"`
	DaySpentUSD   float64 `json:"day_spent_usd"`
	DayReserved   float64 `json:"day_reserved_usd"`
	MonthKey      string  `json:"month_key"`
	MonthSpentUSD float64 `json:"month_spent_usd"`
	MonthReserved float64 `json:"month_reserved_usd"`
	OverrideUSD   float64 `json:"override_usd"`
	OpenHolds     int     `json:"open_holds"`
}

// rollWindowsLocked resets window totals when the day or month changes.
func (c *Controller) rollWindowsLocked() {
	now := c.now()
	dayKey := now.Format("2006-01-02")
	monthKey := now.Format("2006-01")

	if c.day.key != dayKey {
		c.day = window{key: dayKey}
		if c.exhaustedFor != c.month.key {
			c.exhaustedFor = ""
		}
	}
	if c.month.key != monthKey {
		c.month = window{key: monthKey}
		c.exhaustedFor = ""
	}
}

// expireReservationsLocked reclaims holds older than the reservation TTL.
func (c *Controller) expireReservationsLocked() {
	cutoff := c.now().Add(-c.cfg.ReservationTTL)
	for id, res := range c.reservations {
		if res.CreatedAt.Before(cutoff) {
			c.day.reserved -= res.Estimate
			c.month.reserved -= res.Estimate
			delete(c.reservations, id)
			slog.Warn("Budget reservation expired without commit",
				"reservation_id", id, "estimate_usd", res.Estimate)
		}
	}
}

// activeOverrideLocked returns the override amount if it applies to today.
func (c *Controller) activeOverrideLocked() float64 {
	if c.overrideDay == c.day.key {
		return c.overrideUSD
	}
	return 0
}

// markExhaustedLocked records the first hard-limit breach per window and
// returns the window key to announce, or "" if already announced.
func (c *Controller) markExhaustedLocked(windowKey string) string {
	if c.exhaustedFor == windowKey {
		return ""
	}
	c.exhaustedFor = windowKey
	return windowKey
}

// publishGaugesLocked refreshes the spend gauges so overruns are observable
// within the scrape interval.
func (c *Controller) publishGaugesLocked() {
	metrics.BudgetSpent.WithLabelValues("day").Set(c.day.spent)
	metrics.BudgetSpent.WithLabelValues("month").Set(c.month.spent)
}
