package maintenance

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/transit-fleet/internal/db"
	"github.com/ukydev/transit-fleet/internal/models"
)

// UsageTracker accumulates per-component usage hours against rated
// replacement thresholds. Accumulation is additive: calling AddUsage twice
// adds twice, so callers must not double-report the same interval.
type UsageTracker struct {
	mu         sync.Mutex
	components db.ComponentCollection
}

// NewUsageTracker creates a tracker over the given component store.
func NewUsageTracker(components db.ComponentCollection) *UsageTracker {
	return &UsageTracker{components: components}
}

// AddUsage adds usage hours to a component. Negative hours are rejected:
// usage is monotonically non-decreasing until a replacement resets it.
// Concurrent callers on the same component are serialized.
func (t *UsageTracker) AddUsage(ctx context.Context, componentID string, hours float64) error {
	if hours < 0 {
		return fmt.Errorf("usage hours must be non-negative, got %v", hours)
	}
	if hours == 0 {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.components.AddUsage(ctx, componentID, hours); err != nil {
		return fmt.Errorf("persist usage: %w", err)
	}

	log.WithFields(log.Fields{
		"component_id": componentID,
		"hours":        hours,
	}).Debug("usage recorded")
	return nil
}

// IsOverThreshold reports whether a component's cumulative usage has reached
// the given fraction of its rated maximum. The comparison is inclusive.
// Components without a rated maximum never trip.
func (t *UsageTracker) IsOverThreshold(ctx context.Context, componentID string, threshold float64) (bool, error) {
	component, err := t.components.FindComponentByID(ctx, componentID)
	if err != nil {
		return false, err
	}
	return component.OverThreshold(threshold), nil
}

// ComponentsNeedingMaintenance returns every component in the fleet at or
// over the threshold.
func (t *UsageTracker) ComponentsNeedingMaintenance(ctx context.Context, threshold float64) ([]models.VehicleComponent, error) {
	all, err := t.components.FindAllComponents(ctx)
	if err != nil {
		return nil, err
	}

	var needing []models.VehicleComponent
	for _, c := range all {
		if c.OverThreshold(threshold) {
			needing = append(needing, c)
		}
	}
	return needing, nil
}

// MarkReplaced resets a component's usage counter after a completed
// replacement and returns it to operational status.
func (t *UsageTracker) MarkReplaced(ctx context.Context, componentID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.components.ResetUsage(ctx, componentID)
}
