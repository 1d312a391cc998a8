package main

import (
	"math"
	"testing"

	"github.com/ukydev/transit-fleet/internal/models"
)

func TestJitterLocation_StaysClose(t *testing.T) {
	base := models.Location{Lat: 51.5074, Lon: -0.1278}

	for i := 0; i < 100; i++ {
		loc := jitterLocation(base, 50)
		if math.Abs(loc.Lat-base.Lat) > 0.001 {
			t.Errorf("latitude jitter too large: %f", loc.Lat)
		}
		if math.Abs(loc.Lon-base.Lon) > 0.001 {
			t.Errorf("longitude jitter too large: %f", loc.Lon)
		}
	}
}

func TestStopsHaveDistinctIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, stop := range stops {
		if seen[stop.ID] {
			t.Errorf("duplicate stop ID %q", stop.ID)
		}
		seen[stop.ID] = true
	}
}
