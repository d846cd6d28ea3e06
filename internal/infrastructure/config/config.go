package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for the cloudlight runtime.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Device   DeviceConfig   `yaml:"device"`
	Storage  StorageConfig  `yaml:"storage"`
	Cloud    CloudConfig    `yaml:"cloud"`
	MQTT     MQTTConfig     `yaml:"mqtt"`
	InfluxDB InfluxDBConfig `yaml:"influxdb"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DeviceConfig contains the device identity presented to the cloud.
type DeviceConfig struct {
	Name             string `yaml:"name"`
	Manufacturer     string `yaml:"manufacturer"`
	SpecVersion      string `yaml:"spec_version"`
	DataModelVersion string `yaml:"data_model_version"`
}

// StorageConfig contains SQLite credential storage settings.
type StorageConfig struct {
	Path        string `yaml:"path"`
	WALMode     bool   `yaml:"wal_mode"`
	BusyTimeout int    `yaml:"busy_timeout"`
}

// CloudConfig contains the registration-service session parameters.
// Endpoint, AuthCode, SubjectID and Provider mirror the positional
// command-line arguments and act as their defaults.
type CloudConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AuthCode  string `yaml:"auth_code"`
	SubjectID string `yaml:"subject_id"`
	Provider  string `yaml:"provider"`
}

// MQTTConfig contains MQTT broker connection settings.
// The broker carries the cloud session transport and retained light state.
type MQTTConfig struct {
	Enabled   bool                `yaml:"enabled"`
	Broker    MQTTBrokerConfig    `yaml:"broker"`
	Auth      MQTTAuthConfig      `yaml:"auth"`
	QoS       int                 `yaml:"qos"`
	Reconnect MQTTReconnectConfig `yaml:"reconnect"`
}

// MQTTBrokerConfig contains MQTT broker connection details.
type MQTTBrokerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	TLS      bool   `yaml:"tls"`
	ClientID string `yaml:"client_id"`
}

// MQTTAuthConfig contains MQTT authentication credentials.
type MQTTAuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// MQTTReconnectConfig contains MQTT reconnection settings (seconds).
type MQTTReconnectConfig struct {
	InitialDelay int `yaml:"initial_delay"`
	MaxDelay     int `yaml:"max_delay"`
}

// InfluxDBConfig contains InfluxDB telemetry settings.
type InfluxDBConfig struct {
	Enabled       bool   `yaml:"enabled"`
	URL           string `yaml:"url"`
	Token         string `yaml:"token"`
	Org           string `yaml:"org"`
	Bucket        string `yaml:"bucket"`
	BatchSize     int    `yaml:"batch_size"`
	FlushInterval int    `yaml:"flush_interval"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Validation errors.
var (
	ErrMissingDeviceName = errors.New("config: device name is required")
	ErrMissingStorage    = errors.New("config: storage path is required")
	ErrInvalidQoS        = errors.New("config: mqtt qos must be 0, 1 or 2")
	ErrMissingEndpoint   = errors.New("config: cloud endpoint is required")
)

// Load reads configuration from the YAML file at path.
//
// Values not present in the file keep their defaults; environment variables
// (CLOUDLIGHT_*) override both. The result is validated before it is returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)
	cfg.applyGenerated()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns the built-in configuration used when no config file exists.
// The cloud defaults match the well-known local test endpoint so a bare
// binary can register against a broker/stack on the same host.
func Default() *Config {
	cfg := &Config{
		Device: DeviceConfig{
			Name:             "Cloud Device",
			Manufacturer:     "ocfcloud.com",
			SpecVersion:      "ocf.1.0.0",
			DataModelVersion: "ocf.res.1.0.0",
		},
		Storage: StorageConfig{
			Path:        "data/cloudlight_creds.db",
			WALMode:     true,
			BusyTimeout: 5,
		},
		Cloud: CloudConfig{
			Endpoint:  "coap+tcp://127.0.0.1:5683",
			AuthCode:  "test",
			SubjectID: "00000000-0000-0000-0000-000000000001",
			Provider:  "test",
		},
		MQTT: MQTTConfig{
			Enabled: false,
			Broker: MQTTBrokerConfig{
				Host: "127.0.0.1",
				Port: 1883,
			},
			QoS: 1,
			Reconnect: MQTTReconnectConfig{
				InitialDelay: 1,
				MaxDelay:     60,
			},
		},
		InfluxDB: InfluxDBConfig{
			Enabled:       false,
			BatchSize:     100,
			FlushInterval: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
	cfg.applyGenerated()
	return cfg
}

// applyGenerated fills values that cannot have a static default.
// The MQTT client id must be unique per device, so an absent value gets a
// random suffix rather than a shared constant.
func (c *Config) applyGenerated() {
	if c.MQTT.Broker.ClientID == "" {
		c.MQTT.Broker.ClientID = "cloudlight-" + uuid.NewString()[:8]
	}
}

// applyEnvOverrides applies CLOUDLIGHT_* environment variables on top of the
// loaded configuration. Only settings that make sense to vary per deployment
// without editing the file are exposed.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CLOUDLIGHT_DEVICE_NAME"); v != "" {
		cfg.Device.Name = v
	}
	if v := os.Getenv("CLOUDLIGHT_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("CLOUDLIGHT_CLOUD_ENDPOINT"); v != "" {
		cfg.Cloud.Endpoint = v
	}
	if v := os.Getenv("CLOUDLIGHT_CLOUD_AUTH_CODE"); v != "" {
		cfg.Cloud.AuthCode = v
	}
	if v := os.Getenv("CLOUDLIGHT_MQTT_HOST"); v != "" {
		cfg.MQTT.Broker.Host = v
	}
	if v := os.Getenv("CLOUDLIGHT_MQTT_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.MQTT.Broker.Port = port
		}
	}
	if v := os.Getenv("CLOUDLIGHT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate checks the configuration for values that would prevent startup.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Device.Name) == "" {
		return ErrMissingDeviceName
	}
	if strings.TrimSpace(c.Storage.Path) == "" {
		return ErrMissingStorage
	}
	if strings.TrimSpace(c.Cloud.Endpoint) == "" {
		return ErrMissingEndpoint
	}
	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		return ErrInvalidQoS
	}
	if c.MQTT.Enabled {
		if c.MQTT.Broker.Host == "" || c.MQTT.Broker.Port <= 0 {
			return fmt.Errorf("config: mqtt enabled but broker host/port not set")
		}
	}
	if c.InfluxDB.Enabled {
		if c.InfluxDB.URL == "" || c.InfluxDB.Org == "" || c.InfluxDB.Bucket == "" {
			return fmt.Errorf("config: influxdb enabled but url/org/bucket not set")
		}
	}
	return nil
}
