package stations

import (
	"context"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/transit-fleet/internal/db"
	"github.com/ukydev/transit-fleet/internal/models"
)

// PairEvents reconstructs arrival→departure dwell intervals from a stream of
// station events. The input need not be sorted; a defensive stable sort by
// timestamp runs first. Pairing keeps one open arrival per (vehicle, station)
// bucket:
//
//   - ARRIVAL over an open arrival supersedes it; the earlier arrival is
//     reported unmatched (a vehicle cannot be arriving twice).
//   - DEPARTURE with an open arrival emits an interval and clears the slot.
//   - DEPARTURE with no open arrival is an orphan, reported unmatched.
//   - Anything still open when the stream ends is reported unmatched.
//
// Non-positive durations cannot survive the sort, but the guard stays: an
// interval is only emitted when departure is strictly after arrival.
func PairEvents(events []models.StationEvent) ([]models.DwellInterval, []models.UnmatchedEvent) {
	sorted := make([]models.StationEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	type bucket struct {
		vehicleID string
		stationID string
	}

	open := make(map[bucket]models.StationEvent)
	// Buckets in first-seen order, so output ordering is deterministic when
	// draining leftovers.
	var openOrder []bucket

	var intervals []models.DwellInterval
	var unmatched []models.UnmatchedEvent

	for _, ev := range sorted {
		key := bucket{vehicleID: ev.VehicleID, stationID: ev.StationID}

		switch ev.Kind {
		case models.EventArrival:
			if prior, ok := open[key]; ok {
				unmatched = append(unmatched, models.UnmatchedEvent{
					Event:  prior,
					Reason: models.UnmatchedSupersededArrival,
				})
			} else {
				openOrder = append(openOrder, key)
			}
			open[key] = ev

		case models.EventDeparture:
			arrival, ok := open[key]
			if !ok {
				unmatched = append(unmatched, models.UnmatchedEvent{
					Event:  ev,
					Reason: models.UnmatchedOrphanDeparture,
				})
				continue
			}

			duration := ev.Timestamp.Sub(arrival.Timestamp)
			if duration <= 0 {
				// Identical timestamps or skewed clocks. Drop the pair
				// rather than emit a non-positive dwell.
				unmatched = append(unmatched, models.UnmatchedEvent{
					Event:  arrival,
					Reason: models.UnmatchedNonPositiveDwell,
				})
				unmatched = append(unmatched, models.UnmatchedEvent{
					Event:  ev,
					Reason: models.UnmatchedNonPositiveDwell,
				})
			} else {
				intervals = append(intervals, models.DwellInterval{
					VehicleID:  ev.VehicleID,
					StationID:  ev.StationID,
					ArrivedAt:  arrival.Timestamp,
					DepartedAt: ev.Timestamp,
					Duration:   duration,
				})
			}
			delete(open, key)

		default:
			log.WithField("kind", ev.Kind).Warn("skipping station event of unknown kind")
		}
	}

	for _, key := range openOrder {
		if arrival, ok := open[key]; ok {
			unmatched = append(unmatched, models.UnmatchedEvent{
				Event:  arrival,
				Reason: models.UnmatchedMissingDeparture,
			})
			delete(open, key)
		}
	}

	return intervals, unmatched
}

// Pairer computes dwell intervals for a vehicle from its recorded station
// events.
type Pairer struct {
	events db.StationEventCollection
}

// NewPairer creates a pairer over the given event store.
func NewPairer(events db.StationEventCollection) *Pairer {
	return &Pairer{events: events}
}

// ComputeDwellIntervals fetches a vehicle's events and pairs them. Intervals
// are derived on demand and never persisted.
func (p *Pairer) ComputeDwellIntervals(ctx context.Context, vehicleID string) ([]models.DwellInterval, []models.UnmatchedEvent, error) {
	events, err := p.events.FindEventsByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, nil, fmt.Errorf("load station events: %w", err)
	}
	intervals, unmatched := PairEvents(events)
	return intervals, unmatched, nil
}
