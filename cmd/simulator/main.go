package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/transit-fleet/internal/auth"
	"github.com/ukydev/transit-fleet/internal/models"
)

// Station stops for simulated routes.
var stops = []struct {
	ID       string
	Location models.Location
}{
	{"central", models.Location{Lat: 51.5074, Lon: -0.1278}},
	{"riverside", models.Location{Lat: 51.5099, Lon: -0.1180}},
	{"market", models.Location{Lat: 51.5155, Lon: -0.1410}},
	{"depot-north", models.Location{Lat: 51.5300, Lon: -0.1230}},
	{"university", models.Location{Lat: 51.5246, Lon: -0.1340}},
	{"hospital", models.Location{Lat: 51.4980, Lon: -0.1190}},
}

func jitterLocation(base models.Location, meters float64) models.Location {
	latMetersPerDeg := 111320.0
	lonMetersPerDeg := 111320.0 * math.Cos(base.Lat*math.Pi/180)
	dLat := (rand.Float64()*2 - 1) * (meters / latMetersPerDeg)
	dLon := (rand.Float64()*2 - 1) * (meters / lonMetersPerDeg)
	return models.Location{Lat: base.Lat + dLat, Lon: base.Lon + dLon}
}

var authToken string

func authorizedPost(url string, body *bytes.Buffer) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	return client.Do(req)
}

func postJSON(apiURL, path string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	resp, err := authorizedPost(apiURL+path, bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s returned %d: %s", path, resp.StatusCode, string(body))
	}
	return nil
}

// simulateStopSequence posts an ARRIVAL/DEPARTURE pair per stop, with the
// occasional missed departure to exercise unmatched reporting downstream.
func simulateStopSequence(apiURL, vehicleID string, now time.Time) time.Time {
	for _, stop := range stops {
		arrival := models.StationEvent{
			VehicleID: vehicleID,
			StationID: stop.ID,
			Kind:      models.EventArrival,
			Location:  jitterLocation(stop.Location, 30),
			Timestamp: now,
		}
		if err := postJSON(apiURL, "/api/stations/events", arrival); err != nil {
			log.WithError(err).Warn("arrival not recorded")
		}

		dwell := time.Duration(20+rand.Intn(160)) * time.Second
		now = now.Add(dwell)

		// ~5% of departures never get logged
		if rand.Float64() < 0.05 {
			log.WithFields(log.Fields{"vehicle": vehicleID, "station": stop.ID}).Info("simulated missed departure")
		} else {
			departure := models.StationEvent{
				VehicleID: vehicleID,
				StationID: stop.ID,
				Kind:      models.EventDeparture,
				Location:  jitterLocation(stop.Location, 30),
				Timestamp: now,
			}
			if err := postJSON(apiURL, "/api/stations/events", departure); err != nil {
				log.WithError(err).Warn("departure not recorded")
			}
		}

		now = now.Add(time.Duration(2+rand.Intn(10)) * time.Minute)
	}
	return now
}

func reportUsage(apiURL, componentID string, hours float64) {
	path := fmt.Sprintf("/api/components/%s/usage", componentID)
	if err := postJSON(apiURL, path, map[string]float64{"hours": hours}); err != nil {
		log.WithError(err).Warn("usage not reported")
	}
}

func pollMaintenanceDue(apiURL, vehicleID, strategy string) {
	url := fmt.Sprintf("%s/api/vehicles/%s/maintenance-due?strategy=%s", apiURL, vehicleID, strategy)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		log.WithError(err).Warn("bad evaluation request")
		return
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.WithError(err).Warn("evaluation request failed")
		return
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	log.WithFields(log.Fields{"vehicle": vehicleID, "strategy": strategy}).Info(string(body))
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using process environment")
	}

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	authToken = os.Getenv("API_TOKEN")
	if authToken == "" {
		// Mint a service token with the shared API secret.
		service, err := auth.NewService()
		if err != nil {
			log.WithError(err).Fatal("failed to build auth service")
		}
		authToken, err = service.GenerateServiceToken("simulator", models.RoleOperator)
		if err != nil {
			log.WithError(err).Fatal("failed to mint service token")
		}
	}

	vehicleID := os.Getenv("SIM_VEHICLE_ID")
	if vehicleID == "" {
		log.Fatal("SIM_VEHICLE_ID is required (hex ObjectID of a registered vehicle)")
	}
	componentID := os.Getenv("SIM_COMPONENT_ID")

	rounds := 3
	if v := os.Getenv("SIM_ROUNDS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			rounds = parsed
		}
	}

	now := time.Now().Add(-time.Duration(rounds) * time.Hour)
	for i := 0; i < rounds; i++ {
		now = simulateStopSequence(apiURL, vehicleID, now)

		if componentID != "" {
			reportUsage(apiURL, componentID, 1+rand.Float64()*4)
		}

		for _, strategy := range []string{"time", "usage", "predictive"} {
			pollMaintenanceDue(apiURL, vehicleID, strategy)
		}
	}

	log.WithField("rounds", rounds).Info("simulation complete")
}
