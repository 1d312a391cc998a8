package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventKind distinguishes station event types.
type EventKind string

const (
	EventArrival   EventKind = "ARRIVAL"
	EventDeparture EventKind = "DEPARTURE"
)

// StationEvent represents a GPS-derived arrival or departure of a vehicle at
// a station. Events are immutable once recorded; ordering is by timestamp
// per (vehicle, station).
type StationEvent struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID  string             `bson:"vehicle_id" json:"vehicle_id"`
	StationID  string             `bson:"station_id" json:"station_id"`
	Kind       EventKind          `bson:"kind" json:"kind"`
	Location   Location           `bson:"location" json:"location"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
	OperatorID string             `bson:"operator_id,omitempty" json:"operator_id,omitempty"`
}

// DwellInterval is the time a vehicle spent at a station between a matched
// arrival and departure. It is derived on demand and never persisted.
type DwellInterval struct {
	VehicleID  string        `json:"vehicle_id"`
	StationID  string        `json:"station_id"`
	ArrivedAt  time.Time     `json:"arrived_at"`
	DepartedAt time.Time     `json:"departed_at"`
	Duration   time.Duration `json:"duration"`
}

// Unmatched event reasons.
const (
	UnmatchedSupersededArrival = "superseded_arrival"
	UnmatchedOrphanDeparture   = "orphan_departure"
	UnmatchedMissingDeparture  = "missing_departure"
	UnmatchedNonPositiveDwell  = "non_positive_dwell"
)

// UnmatchedEvent is a station event that could not be paired into a dwell
// interval, with the reason it was left out.
type UnmatchedEvent struct {
	Event  StationEvent `json:"event"`
	Reason string       `json:"reason"`
}
