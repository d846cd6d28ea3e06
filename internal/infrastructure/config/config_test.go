package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
device:
  name: "Test Light"
storage:
  path: "/tmp/test-creds.db"
cloud:
  endpoint: "coap+tcp://cloud.example.com:5683"
  auth_code: "abc123"
mqtt:
  enabled: true
  broker:
    host: "localhost"
    port: 1883
    client_id: "cloudlight-test"
  qos: 1
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Device.Name != "Test Light" {
		t.Errorf("Device.Name = %q, want %q", cfg.Device.Name, "Test Light")
	}
	if cfg.Cloud.Endpoint != "coap+tcp://cloud.example.com:5683" {
		t.Errorf("Cloud.Endpoint = %q", cfg.Cloud.Endpoint)
	}
	if cfg.MQTT.Broker.ClientID != "cloudlight-test" {
		t.Errorf("MQTT.Broker.ClientID = %q", cfg.MQTT.Broker.ClientID)
	}
	// Defaults survive partial files.
	if cfg.Cloud.Provider != "test" {
		t.Errorf("Cloud.Provider = %q, want default %q", cfg.Cloud.Provider, "test")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "invalid: [yaml: content")
	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	path := writeConfig(t, `
device:
  name: ""
`)
	_, err := Load(path)
	if !errors.Is(err, ErrMissingDeviceName) {
		t.Errorf("Load() error = %v, want ErrMissingDeviceName", err)
	}
}

func TestLoad_InvalidQoS(t *testing.T) {
	path := writeConfig(t, `
mqtt:
  qos: 3
`)
	_, err := Load(path)
	if !errors.Is(err, ErrInvalidQoS) {
		t.Errorf("Load() error = %v, want ErrInvalidQoS", err)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CLOUDLIGHT_CLOUD_ENDPOINT", "coap+tcp://override:5683")
	path := writeConfig(t, `
cloud:
  endpoint: "coap+tcp://from-file:5683"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Cloud.Endpoint != "coap+tcp://override:5683" {
		t.Errorf("Cloud.Endpoint = %q, want env override", cfg.Cloud.Endpoint)
	}
}

func TestDefault_GeneratesClientID(t *testing.T) {
	a := Default()
	b := Default()

	if a.MQTT.Broker.ClientID == "" {
		t.Fatal("Default() left MQTT client id empty")
	}
	if a.MQTT.Broker.ClientID == b.MQTT.Broker.ClientID {
		t.Error("Default() produced identical client ids for two instances")
	}
	if err := a.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}
