package main

import (
	"os"
	"testing"
)

func clearChannelEnv() {
	os.Unsetenv("SMTP_ADDR")
	os.Unsetenv("SMTP_FROM")
	os.Unsetenv("ALERT_RECIPIENTS")
	os.Unsetenv("SMS_GATEWAY_URL")
	os.Unsetenv("SMS_API_KEY")
	os.Unsetenv("MQTT_BROKER_URL")
	os.Unsetenv("REDIS_ADDR")
}

func TestBuildChannels_Empty(t *testing.T) {
	clearChannelEnv()
	available := buildChannels()
	if len(available) != 0 {
		t.Errorf("expected no channels without configuration, got %d", len(available))
	}
}

func TestBuildChannels_EmailAndSMS(t *testing.T) {
	clearChannelEnv()
	defer clearChannelEnv()
	os.Setenv("SMTP_ADDR", "smtp.agency.local:25")
	os.Setenv("SMTP_FROM", "alerts@agency.local")
	os.Setenv("ALERT_RECIPIENTS", "dispatch@agency.local")
	os.Setenv("SMS_GATEWAY_URL", "https://sms.example.com/send")

	available := buildChannels()
	if _, ok := available["email"]; !ok {
		t.Error("expected email channel to be configured")
	}
	if _, ok := available["sms"]; !ok {
		t.Error("expected sms channel to be configured")
	}
	if len(available) != 2 {
		t.Errorf("expected exactly 2 channels, got %d", len(available))
	}
}
