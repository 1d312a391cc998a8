package maintenance

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/transit-fleet/internal/db"
)

// Evaluator answers "is vehicle V due for maintenance" on demand. There is
// no background scheduler; callers drive evaluation within their own request
// lifetime. The strategy kind is an explicit argument so concurrent requests
// can evaluate under different strategies without interfering.
type Evaluator struct {
	vehicles   db.VehicleCollection
	history    db.MaintenanceCollection
	components db.ComponentCollection
	policy     Policy
}

// NewEvaluator wires an evaluator over its store collaborators.
func NewEvaluator(vehicles db.VehicleCollection, history db.MaintenanceCollection, components db.ComponentCollection, policy Policy) *Evaluator {
	return &Evaluator{
		vehicles:   vehicles,
		history:    history,
		components: components,
		policy:     policy,
	}
}

// Policy returns the policy the evaluator runs under.
func (e *Evaluator) Policy() Policy {
	return e.policy
}

// EvaluateDue loads the vehicle's latest maintenance record and component
// list and applies the given strategy. A vehicle with no history and no
// components still yields a deterministic answer.
func (e *Evaluator) EvaluateDue(ctx context.Context, vehicleID string, kind StrategyKind) (bool, error) {
	if _, err := e.vehicles.FindVehicleByID(ctx, vehicleID); err != nil {
		return false, fmt.Errorf("lookup vehicle %s: %w", vehicleID, err)
	}

	history, err := e.history.FindHistoryByVehicle(ctx, vehicleID)
	if err != nil {
		return false, fmt.Errorf("load maintenance history: %w", err)
	}

	components, err := e.components.FindComponentsByVehicle(ctx, vehicleID)
	if err != nil {
		return false, fmt.Errorf("load components: %w", err)
	}

	due := IsDue(kind, LatestRecord(history), components, e.policy, time.Now())

	log.WithFields(log.Fields{
		"vehicle_id": vehicleID,
		"strategy":   kind.String(),
		"due":        due,
	}).Debug("maintenance evaluation")
	return due, nil
}
