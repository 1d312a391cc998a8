package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/transit-fleet/internal/alerts"
	"github.com/ukydev/transit-fleet/internal/auth"
	"github.com/ukydev/transit-fleet/internal/db"
	"github.com/ukydev/transit-fleet/internal/handlers"
	"github.com/ukydev/transit-fleet/internal/maintenance"
	"github.com/ukydev/transit-fleet/internal/middleware"
	"github.com/ukydev/transit-fleet/internal/stations"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using process environment")
	}

	if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}
	log.SetFormatter(&log.JSONFormatter{})

	client, err := db.ConnectMongo()
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	log.Info("connected to MongoDB")

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "fleet"
	}
	database := client.Database(dbName)

	vehicles := &db.MongoVehicleCollection{Collection: database.Collection("vehicles")}
	history := &db.MongoMaintenanceCollection{Collection: database.Collection("maintenance")}
	components := &db.MongoComponentCollection{Collection: database.Collection("components")}
	alertStore := &db.MongoAlertCollection{Collection: database.Collection("alerts")}
	events := &db.MongoStationEventCollection{Collection: database.Collection("station_events")}

	policy := maintenance.PolicyFromEnv()
	selector := maintenance.NewSelector(maintenance.TimeBased)
	evaluator := maintenance.NewEvaluator(vehicles, history, components, policy)
	tracker := maintenance.NewUsageTracker(components)
	pairer := stations.NewPairer(events)

	notifyTimeout := alerts.DefaultNotifyTimeout
	if v := os.Getenv("NOTIFY_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			notifyTimeout = parsed
		}
	}
	dispatcher := alerts.NewDispatcher(alertStore, notifyTimeout)

	available := buildChannels()
	for _, name := range strings.Split(os.Getenv("NOTIFY_CHANNELS"), ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		notifier, ok := available[name]
		if !ok {
			log.WithField("channel", name).Warn("unknown notification channel in NOTIFY_CHANNELS")
			continue
		}
		dispatcher.Subscribe(notifier)
		log.WithField("channel", name).Info("notification channel subscribed")
	}

	authService, err := auth.NewService()
	if err != nil {
		log.WithError(err).Fatal("failed to build auth service")
	}
	authMiddleware := middleware.NewAuthMiddleware(authService)

	maintenanceHandler := handlers.NewMaintenanceHandler(evaluator, selector, tracker, dispatcher, components)
	alertHandler := handlers.NewAlertHandler(dispatcher, alertStore, available)
	stationHandler := handlers.NewStationHandler(pairer, events)
	registryHandler := handlers.NewRegistryHandler(vehicles, components, history)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/api/vehicles", registryHandler.RegisterVehicle)
	mux.HandleFunc("/api/components", registryHandler.RegisterComponent)
	mux.HandleFunc("/api/maintenance", registryHandler.RecordMaintenance)
	mux.HandleFunc("/api/strategy", maintenanceHandler.SelectStrategy)
	mux.HandleFunc("/api/alerts", alertHandler.Alerts)
	mux.HandleFunc("/api/channels", alertHandler.Channels)
	mux.HandleFunc("/api/channels/", alertHandler.Channels)
	mux.HandleFunc("/api/stations/events", stationHandler.RecordEvent)
	mux.HandleFunc("/api/vehicles/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/maintenance-due"):
			maintenanceHandler.EvaluateDue(w, r)
		case strings.HasSuffix(r.URL.Path, "/dwell"):
			stationHandler.DwellIntervals(w, r)
		default:
			http.NotFound(w, r)
		}
	})
	mux.HandleFunc("/api/components/", maintenanceHandler.ReportUsage)
	mux.HandleFunc("/api/alerts/", alertHandler.Resolve)

	handler := authMiddleware.Authenticate(authMiddleware.RequireMutate(mux))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("HTTP server listening")
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

// buildChannels constructs every notification channel the environment
// configures. Channels that fail to connect are left out with a warning;
// the dispatcher works with whatever remains.
func buildChannels() map[string]alerts.Notifier {
	available := make(map[string]alerts.Notifier)

	if addr := os.Getenv("SMTP_ADDR"); addr != "" {
		from := os.Getenv("SMTP_FROM")
		recipients := strings.Split(os.Getenv("ALERT_RECIPIENTS"), ",")
		available["email"] = alerts.NewEmailNotifier(addr, from, recipients)
	}

	if gateway := os.Getenv("SMS_GATEWAY_URL"); gateway != "" {
		available["sms"] = alerts.NewSMSNotifier(gateway, os.Getenv("SMS_API_KEY"))
	}

	if broker := os.Getenv("MQTT_BROKER_URL"); broker != "" {
		topic := os.Getenv("MQTT_ALERT_TOPIC")
		if topic == "" {
			topic = "fleet/alerts"
		}
		notifier, err := alerts.NewMQTTNotifier(broker, "transit-fleet-core", topic)
		if err != nil {
			log.WithError(err).Warn("mqtt channel unavailable")
		} else {
			available["mqtt"] = notifier
		}
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		channel := os.Getenv("REDIS_ALERT_CHANNEL")
		if channel == "" {
			channel = "fleet:alerts"
		}
		notifier, err := alerts.NewRedisNotifier(addr, os.Getenv("REDIS_PASSWORD"), channel)
		if err != nil {
			log.WithError(err).Warn("redis channel unavailable")
		} else {
			available["redis"] = notifier
		}
	}

	return available
}
