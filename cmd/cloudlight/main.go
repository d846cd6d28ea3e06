// Cloudlight - cloud-connected light device runtime
//
// Cloudlight is the runtime shell of a long-lived IoT light device: two
// light resources behind a request dispatcher, a single-threaded event
// scheduler, a cloud registration session over MQTT and a one-shot trust
// bootstrap backed by SQLite.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hongtianjun/cloudlight/internal/cloud"
	"github.com/hongtianjun/cloudlight/internal/engine"
	"github.com/hongtianjun/cloudlight/internal/fota"
	"github.com/hongtianjun/cloudlight/internal/infrastructure/config"
	"github.com/hongtianjun/cloudlight/internal/infrastructure/database"
	"github.com/hongtianjun/cloudlight/internal/infrastructure/influxdb"
	"github.com/hongtianjun/cloudlight/internal/infrastructure/logging"
	"github.com/hongtianjun/cloudlight/internal/infrastructure/mqtt"
	"github.com/hongtianjun/cloudlight/internal/resource"
	"github.com/hongtianjun/cloudlight/internal/scheduler"
	"github.com/hongtianjun/cloudlight/internal/trust"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

// lightURIs are the resources every cloudlight device hosts.
var lightURIs = []string{"/light/1", "/light/2"}

func main() {
	// Shutdown flows through the signal bridge and the scheduler's
	// termination flag, not through context cancellation.
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
//
// Initialisation failures before the scheduler loop starts are fatal;
// once the loop runs, only a termination signal ends the process.
func run(ctx context.Context, args []string) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting cloudlight",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration; a missing file is not an error, the built-in
	// defaults describe a working local setup.
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		cfg = config.Default()
		log.Info("no configuration file, using defaults", "path", configPath)
	case err != nil:
		return fmt.Errorf("loading config: %w", err)
	default:
		log.Info("configuration loaded", "path", configPath)
	}

	// Positional arguments overlay the configured cloud coordinates.
	// Starting with none is fine; the usage text is informational.
	if len(args) == 0 {
		printUsage(os.Stderr, cfg)
	}
	applyArgs(cfg, args)
	if cfg.Cloud.SubjectID == "" {
		cfg.Cloud.SubjectID = uuid.NewString()
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Open credential storage
	db, err := database.Open(ctx, database.Config{
		Path:        cfg.Storage.Path,
		WALMode:     cfg.Storage.WALMode,
		BusyTimeout: cfg.Storage.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", cfg.Storage.Path)

	store, err := trust.NewSQLiteStore(ctx, db)
	if err != nil {
		return fmt.Errorf("initialising credential store: %w", err)
	}

	// Trust bootstrap runs only on a device with no persisted
	// configuration; a configured device never re-installs the anchor.
	configured, err := store.HasConfiguration(ctx, 0)
	if err != nil {
		return fmt.Errorf("checking device configuration: %w", err)
	}
	if !configured {
		log.Info("no persisted configuration, running factory bootstrap")
		trust.NewBootstrap(store, log).OnFactoryReset(ctx, 0)
	}

	// Connect to MQTT broker (optional)
	var broker *mqtt.Client
	if cfg.MQTT.Enabled {
		broker, err = mqtt.Connect(cfg.MQTT)
		if err != nil {
			return fmt.Errorf("connecting to MQTT: %w", err)
		}
		defer func() {
			log.Info("disconnecting from MQTT")
			if closeErr := broker.Close(); closeErr != nil {
				log.Error("error closing MQTT", "error", closeErr)
			}
		}()
		broker.SetLogger(log)
		broker.SetOnConnect(func() {
			log.Info("MQTT reconnected")
		})
		broker.SetOnDisconnect(func(err error) {
			log.Warn("MQTT disconnected", "error", err)
		})
		log.Info("MQTT connected",
			"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
			"client_id", cfg.MQTT.Broker.ClientID,
		)
	}

	// Connect to InfluxDB (optional); telemetry failures never block startup.
	var metrics *influxdb.Client
	if cfg.InfluxDB.Enabled {
		metrics, err = influxdb.Connect(cfg.InfluxDB)
		if err != nil {
			log.Warn("InfluxDB unavailable, telemetry disabled", "error", err)
			metrics = nil
		} else {
			defer func() {
				log.Info("closing InfluxDB")
				if closeErr := metrics.Close(); closeErr != nil {
					log.Error("error closing InfluxDB", "error", closeErr)
				}
			}()
			metrics.SetOnError(func(err error) {
				log.Warn("InfluxDB write failed", "error", err)
			})
			log.Info("InfluxDB connected", "url", cfg.InfluxDB.URL)
		}
	}

	// Resource engine and scheduler loop
	eng := engine.New(log)
	loop := scheduler.New(eng, log)
	eng.SetWake(loop.Wake)

	dispatcher := resource.NewDispatcher(log)

	// notifyState runs after every successful write: retained state on the
	// broker for late subscribers, one telemetry point per change.
	notifyState := func(uri string, s resource.State) {
		if broker != nil {
			publishLightState(broker, log, uri, s)
		}
		if metrics != nil {
			metrics.WriteLightState(uri, s.SwitchOn, s.Level)
		}
	}

	for _, uri := range lightURIs {
		if err := registerLight(eng, dispatcher, uri, notifyState); err != nil {
			return fmt.Errorf("registering %s: %w", uri, err)
		}
	}

	// Firmware update gateway: commands arrive over the broker, run on the
	// scheduler goroutine, and are confirmed by the registered handler.
	gateway := fota.NewGateway()
	gateway.RegisterCommandHandler(func(cmd fota.Command) bool {
		log.Info("firmware command accepted", "command", cmd.String())
		return true
	})

	if broker != nil {
		if err := subscribeResourceWrites(broker, eng, log, byte(cfg.MQTT.QoS)); err != nil {
			return fmt.Errorf("subscribing to resource writes: %w", err)
		}
		if err := subscribeFirmwareCommands(broker, eng, gateway, log, cfg.MQTT.Broker.ClientID, byte(cfg.MQTT.QoS)); err != nil {
			return fmt.Errorf("subscribing to firmware commands: %w", err)
		}

		// Announce the boot state so subscribers see both lights off.
		for _, uri := range lightURIs {
			publishLightState(broker, log, uri, resource.State{})
		}
	}

	// Cloud session: status notifications feed the monitor, then the
	// provisioning request kicks off registration.
	var session *cloud.MQTTSession
	if broker != nil {
		session = cloud.NewMQTTSession(broker, cfg.MQTT.Broker.ClientID, byte(cfg.MQTT.QoS), log)
		monitor := cloud.NewMonitor(log)

		err = session.Start(ctx, func(sess cloud.Session, status cloud.Status) {
			monitor.OnStatus(sess, status)
			if metrics != nil {
				for _, condition := range status.Conditions() {
					metrics.WriteCloudEvent(condition)
				}
			}
		})
		if err != nil {
			return fmt.Errorf("starting cloud session: %w", err)
		}
		defer func() {
			log.Info("stopping cloud session")
			if stopErr := session.Stop(); stopErr != nil {
				log.Error("error stopping cloud session", "error", stopErr)
			}
		}()

		err = session.Provision(ctx,
			cfg.Cloud.Endpoint,
			cfg.Cloud.AuthCode,
			cfg.Cloud.SubjectID,
			cfg.Cloud.Provider,
		)
		if err != nil {
			// Registration can catch up once the broker path recovers.
			log.Warn("provisioning request failed", "error", err)
		}
	}

	bridge := scheduler.InstallSignals(loop, log)
	defer bridge.Stop()

	log.Info("cloudlight running",
		"device", cfg.Device.Name,
		"resources", len(lightURIs),
		"cloud_endpoint", cfg.Cloud.Endpoint,
	)

	loop.Run()

	log.Info("shutdown complete")
	return nil
}

// registerLight registers one light resource: reads and writes go through
// the dispatcher against the resource's own state instance, and every
// applied write triggers the change notifier.
func registerLight(eng *engine.Engine, d *resource.Dispatcher, uri string, notify func(string, resource.State)) error {
	state := resource.NewState()

	_, err := eng.Register(engine.ResourceOptions{
		URI:              uri,
		Name:             "Light",
		Types:            []string{"core.light"},
		Interfaces:       []resource.Interface{resource.InterfaceRW, resource.InterfaceBaseline},
		DefaultInterface: resource.InterfaceRW,
		Discoverable:     true,
		Observable:       true,
		OnGet: func(iface resource.Interface, baseline resource.BaselineSource) (resource.Representation, resource.Status) {
			return d.Read(state, iface, baseline)
		},
		OnPost: func(rep resource.Representation) resource.Status {
			status := d.Write(state, rep)
			if status == resource.StatusChanged && notify != nil {
				notify(uri, *state)
			}
			return status
		},
	})
	return err
}

// publishLightState publishes the retained state document for one light.
func publishLightState(broker *mqtt.Client, log *logging.Logger, uri string, s resource.State) {
	rep := resource.Representation{
		resource.Bool("state", s.SwitchOn),
		resource.Int("power", s.Level),
	}
	payload, err := rep.EncodeCBOR()
	if err != nil {
		log.Error("encoding light state failed", "uri", uri, "error", err)
		return
	}
	if err := broker.PublishRetained(mqtt.Topics{}.ResourceState(uri), payload); err != nil {
		log.Warn("publishing light state failed", "uri", uri, "error", err)
	}
}

// subscribeResourceWrites routes inbound write payloads to the engine.
//
// Broker handlers run on paho goroutines; the dispatch itself is posted
// through the deadline queue so resource state is only ever touched on the
// scheduler goroutine.
func subscribeResourceWrites(broker *mqtt.Client, eng *engine.Engine, log *logging.Logger, qos byte) error {
	for _, uri := range lightURIs {
		topic := mqtt.Topics{}.ResourceSet(uri)
		if err := broker.Subscribe(topic, qos, func(_ string, payload []byte) error {
			eng.Schedule(time.Now(), func() {
				resp, err := eng.Dispatch(engine.MethodPost, engine.Request{URI: uri, Payload: payload})
				if err != nil {
					log.Error("resource write dispatch failed", "uri", uri, "error", err)
					return
				}
				log.Debug("resource write dispatched", "uri", uri, "status", resp.Status.String())
			})
			return nil
		}); err != nil {
			return err
		}
	}
	return nil
}

// subscribeFirmwareCommands routes firmware update commands to the gateway,
// again via the scheduler goroutine.
func subscribeFirmwareCommands(broker *mqtt.Client, eng *engine.Engine, gateway *fota.Gateway, log *logging.Logger, deviceID string, qos byte) error {
	topic := mqtt.Topics{}.FOTACommand(deviceID)
	return broker.Subscribe(topic, qos, func(_ string, payload []byte) error {
		name := strings.TrimSpace(string(payload))
		cmd, ok := fota.ParseCommand(name)
		if !ok {
			return fmt.Errorf("unknown firmware command %q", name)
		}
		eng.Schedule(time.Now(), func() {
			confirmed, err := gateway.Handle(cmd)
			if err != nil {
				log.Error("firmware command dropped", "command", cmd.String(), "error", err)
				return
			}
			if !confirmed {
				log.Warn("firmware command declined", "command", cmd.String())
			}
		})
		return nil
	})
}

// getConfigPath returns the configuration file path, honouring the
// CLOUDLIGHT_CONFIG environment variable.
func getConfigPath() string {
	if path := os.Getenv("CLOUDLIGHT_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
