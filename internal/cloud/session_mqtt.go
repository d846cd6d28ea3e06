package cloud

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/hongtianjun/cloudlight/internal/infrastructure/logging"
	"github.com/hongtianjun/cloudlight/internal/infrastructure/mqtt"
)

// Broker is the slice of the MQTT client the session needs. Satisfied by
// *mqtt.Client; tests substitute a fake.
type Broker interface {
	Publish(topic string, payload []byte, qos byte, retained bool) error
	Subscribe(topic string, qos byte, handler mqtt.MessageHandler) error
	Unsubscribe(topic string) error
}

// statusMessage is the CBOR payload of a cloud status notification.
type statusMessage struct {
	Status       uint32 `cbor:"status"`
	TokenExpiryS int64  `cbor:"token_expiry_s,omitempty"`
}

// provisionMessage is the CBOR payload of a provisioning request.
type provisionMessage struct {
	DeviceID  string `cbor:"device_id"`
	Endpoint  string `cbor:"endpoint"`
	AuthCode  string `cbor:"auth_code"`
	SubjectID string `cbor:"subject_id"`
	Provider  string `cbor:"provider"`
}

// MQTTSession carries the cloud session over the broker: status
// notifications arrive on the device's status topic, provisioning requests
// leave on its provision topic. Connection retry and backoff belong to the
// broker client, not here.
type MQTTSession struct {
	broker   Broker
	deviceID string
	qos      byte
	log      *logging.Logger

	mu      sync.RWMutex
	cb      StatusCallback
	expiry  time.Duration
	started bool
}

// NewMQTTSession creates a session for the given device id.
func NewMQTTSession(broker Broker, deviceID string, qos byte, log *logging.Logger) *MQTTSession {
	return &MQTTSession{
		broker:   broker,
		deviceID: deviceID,
		qos:      qos,
		log:      log.With("component", "cloud-session"),
	}
}

// Start subscribes to the status topic and begins delivering notifications
// to cb. Notifications run on the broker's goroutines.
func (s *MQTTSession) Start(_ context.Context, cb StatusCallback) error {
	if cb == nil {
		return fmt.Errorf("cloud: status callback is required")
	}

	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return fmt.Errorf("cloud: session already started")
	}
	s.cb = cb
	s.started = true
	s.mu.Unlock()

	topic := mqtt.Topics{}.CloudStatus(s.deviceID)
	if err := s.broker.Subscribe(topic, s.qos, s.onStatusMessage); err != nil {
		s.mu.Lock()
		s.started = false
		s.cb = nil
		s.mu.Unlock()
		return fmt.Errorf("subscribing to cloud status: %w", err)
	}

	s.log.Info("cloud session started", "topic", topic)
	return nil
}

// onStatusMessage decodes one status notification and hands it to the
// callback.
func (s *MQTTSession) onStatusMessage(_ string, payload []byte) error {
	var msg statusMessage
	if err := cbor.Unmarshal(payload, &msg); err != nil {
		return fmt.Errorf("decoding cloud status: %w", err)
	}

	status := Status(msg.Status)

	s.mu.Lock()
	if status.Has(StatusTokenExpiry) {
		s.expiry = time.Duration(msg.TokenExpiryS) * time.Second
	}
	cb := s.cb
	s.mu.Unlock()

	if cb != nil {
		cb(s, status)
	}
	return nil
}

// Stop unsubscribes from the status topic and stops delivery.
func (s *MQTTSession) Stop() error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = false
	s.cb = nil
	s.mu.Unlock()

	topic := mqtt.Topics{}.CloudStatus(s.deviceID)
	if err := s.broker.Unsubscribe(topic); err != nil {
		return fmt.Errorf("unsubscribing from cloud status: %w", err)
	}

	s.log.Info("cloud session stopped")
	return nil
}

// TokenExpiry returns the expiry carried by the most recent token-expiry
// notification.
func (s *MQTTSession) TokenExpiry() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiry
}

// Provision submits the registration-service coordinates for this device.
func (s *MQTTSession) Provision(_ context.Context, endpoint, authCode, subjectID, provider string) error {
	payload, err := cbor.Marshal(provisionMessage{
		DeviceID:  s.deviceID,
		Endpoint:  endpoint,
		AuthCode:  authCode,
		SubjectID: subjectID,
		Provider:  provider,
	})
	if err != nil {
		return fmt.Errorf("encoding provision request: %w", err)
	}

	topic := mqtt.Topics{}.CloudProvision(s.deviceID)
	if err := s.broker.Publish(topic, payload, s.qos, false); err != nil {
		return fmt.Errorf("publishing provision request: %w", err)
	}

	s.log.Info("provision request published",
		"endpoint", endpoint,
		"subject_id", subjectID,
	)
	return nil
}
