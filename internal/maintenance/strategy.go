package maintenance

import (
	"fmt"
	"time"

	"github.com/ukydev/transit-fleet/internal/models"
)

// StrategyKind is a closed set of due-determination rules. Adding a rule
// means adding a constant here and a case to IsDue; the compiler flags any
// switch that misses one.
type StrategyKind int

const (
	TimeBased StrategyKind = iota
	UsageBased
	Predictive
)

// ErrUnknownStrategy is returned when a strategy name does not map to a kind.
var ErrUnknownStrategy = fmt.Errorf("unknown strategy")

// ParseStrategy maps a strategy name to its kind.
func ParseStrategy(name string) (StrategyKind, error) {
	switch name {
	case "time":
		return TimeBased, nil
	case "usage":
		return UsageBased, nil
	case "predictive":
		return Predictive, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// String returns the wire name of the strategy kind.
func (k StrategyKind) String() string {
	switch k {
	case TimeBased:
		return "time"
	case UsageBased:
		return "usage"
	case Predictive:
		return "predictive"
	default:
		return fmt.Sprintf("StrategyKind(%d)", int(k))
	}
}

// IsDue decides whether a vehicle requires maintenance. It is a pure
// function over the inputs: last is the most recent maintenance record (nil
// when the vehicle has no history), components is the vehicle's component
// list (may be empty), now anchors the time comparison. It never mutates
// its arguments.
func IsDue(kind StrategyKind, last *models.MaintenanceRecord, components []models.VehicleComponent, policy Policy, now time.Time) bool {
	switch kind {
	case TimeBased:
		return dueByTime(last, policy.IntervalDays, now)
	case UsageBased:
		return dueByUsage(components, policy.UsageThreshold)
	case Predictive:
		// Early-warning blend: either rule firing under tightened
		// parameters flags the vehicle.
		return dueByTime(last, policy.PredictiveIntervalDays(), now) ||
			dueByUsage(components, policy.PredictiveUsageThreshold())
	default:
		// Unreachable for parsed kinds. Fail safe.
		return true
	}
}

// dueByTime flags vehicles whose last service is at least intervalDays old.
// A vehicle with no history at all is always due: never-serviced vehicles
// must surface.
func dueByTime(last *models.MaintenanceRecord, intervalDays int, now time.Time) bool {
	if last == nil {
		return true
	}
	elapsed := now.Sub(last.ServiceDate)
	return elapsed >= time.Duration(intervalDays)*24*time.Hour
}

// dueByUsage flags vehicles with any component at or over the usage
// threshold. With no evaluable component data the rule cannot fire: unknown
// is treated as not-due, the inverse of the time rule's fail-safe, because
// usage accrual starts at zero for freshly registered parts.
func dueByUsage(components []models.VehicleComponent, threshold float64) bool {
	for i := range components {
		if components[i].OverThreshold(threshold) {
			return true
		}
	}
	return false
}

// LatestRecord returns the most recent entry of a history ordered
// most-recent-last, or nil for an empty history.
func LatestRecord(history []models.MaintenanceRecord) *models.MaintenanceRecord {
	if len(history) == 0 {
		return nil
	}
	return &history[len(history)-1]
}
