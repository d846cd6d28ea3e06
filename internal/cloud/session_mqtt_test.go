package cloud

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/hongtianjun/cloudlight/internal/infrastructure/logging"
	"github.com/hongtianjun/cloudlight/internal/infrastructure/mqtt"
)

// fakeBroker records publishes and lets tests inject incoming messages.
type fakeBroker struct {
	mu        sync.Mutex
	published map[string][][]byte
	handlers  map[string]mqtt.MessageHandler
}

func newFakeBroker() *fakeBroker {
	return &fakeBroker{
		published: make(map[string][][]byte),
		handlers:  make(map[string]mqtt.MessageHandler),
	}
}

func (b *fakeBroker) Publish(topic string, payload []byte, _ byte, _ bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published[topic] = append(b.published[topic], payload)
	return nil
}

func (b *fakeBroker) Subscribe(topic string, _ byte, handler mqtt.MessageHandler) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = handler
	return nil
}

func (b *fakeBroker) Unsubscribe(topic string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.handlers, topic)
	return nil
}

// deliver injects a message as if the broker received it.
func (b *fakeBroker) deliver(t *testing.T, topic string, payload []byte) {
	t.Helper()
	b.mu.Lock()
	handler := b.handlers[topic]
	b.mu.Unlock()
	if handler == nil {
		t.Fatalf("no handler subscribed on %s", topic)
	}
	if err := handler(topic, payload); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func statusPayload(t *testing.T, status Status, expiryS int64) []byte {
	t.Helper()
	data, err := cbor.Marshal(statusMessage{Status: uint32(status), TokenExpiryS: expiryS})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data
}

func TestMQTTSession_StartDeliversStatus(t *testing.T) {
	broker := newFakeBroker()
	sess := NewMQTTSession(broker, "dev-01", 1, logging.Default())

	var got Status
	var gotSess Session
	err := sess.Start(context.Background(), func(s Session, status Status) {
		gotSess = s
		got = status
	})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	topic := mqtt.Topics{}.CloudStatus("dev-01")
	broker.deliver(t, topic, statusPayload(t, StatusRegistered|StatusLoggedIn, 0))

	if got != StatusRegistered|StatusLoggedIn {
		t.Errorf("callback status = %v", got)
	}
	if gotSess == nil {
		t.Error("callback session = nil")
	}
}

func TestMQTTSession_TokenExpiryStored(t *testing.T) {
	broker := newFakeBroker()
	sess := NewMQTTSession(broker, "dev-01", 1, logging.Default())

	if err := sess.Start(context.Background(), func(Session, Status) {}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	topic := mqtt.Topics{}.CloudStatus("dev-01")
	broker.deliver(t, topic, statusPayload(t, StatusTokenExpiry, 120))

	if want := 120 * time.Second; sess.TokenExpiry() != want {
		t.Errorf("TokenExpiry() = %v, want %v", sess.TokenExpiry(), want)
	}
}

func TestMQTTSession_StartTwiceFails(t *testing.T) {
	sess := NewMQTTSession(newFakeBroker(), "dev-01", 1, logging.Default())
	cb := func(Session, Status) {}

	if err := sess.Start(context.Background(), cb); err != nil {
		t.Fatalf("first Start() error = %v", err)
	}
	if err := sess.Start(context.Background(), cb); err == nil {
		t.Error("second Start() expected error")
	}
}

func TestMQTTSession_StopUnsubscribes(t *testing.T) {
	broker := newFakeBroker()
	sess := NewMQTTSession(broker, "dev-01", 1, logging.Default())

	if err := sess.Start(context.Background(), func(Session, Status) {}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := sess.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if err := sess.Stop(); err != nil {
		t.Errorf("second Stop() error = %v, want nil", err)
	}

	broker.mu.Lock()
	defer broker.mu.Unlock()
	if len(broker.handlers) != 0 {
		t.Error("Stop() left a subscription behind")
	}
}

func TestMQTTSession_Provision(t *testing.T) {
	broker := newFakeBroker()
	sess := NewMQTTSession(broker, "dev-01", 1, logging.Default())

	err := sess.Provision(context.Background(),
		"coap+tcp://127.0.0.1:5683", "auth", "subject", "provider")
	if err != nil {
		t.Fatalf("Provision() error = %v", err)
	}

	topic := mqtt.Topics{}.CloudProvision("dev-01")
	broker.mu.Lock()
	payloads := broker.published[topic]
	broker.mu.Unlock()
	if len(payloads) != 1 {
		t.Fatalf("published %d provision messages, want 1", len(payloads))
	}

	var msg provisionMessage
	if err := cbor.Unmarshal(payloads[0], &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Endpoint != "coap+tcp://127.0.0.1:5683" || msg.SubjectID != "subject" {
		t.Errorf("provision message = %+v", msg)
	}
}

func TestMQTTSession_BadStatusPayload(t *testing.T) {
	broker := newFakeBroker()
	sess := NewMQTTSession(broker, "dev-01", 1, logging.Default())

	called := false
	if err := sess.Start(context.Background(), func(Session, Status) { called = true }); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	topic := mqtt.Topics{}.CloudStatus("dev-01")
	broker.mu.Lock()
	handler := broker.handlers[topic]
	broker.mu.Unlock()

	if err := handler(topic, []byte{0xff}); err == nil {
		t.Error("handler accepted garbage payload")
	}
	if called {
		t.Error("callback invoked for undecodable payload")
	}
}
