package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hongtianjun/cloudlight/internal/infrastructure/config"
)

func TestApplyArgs_AllPositions(t *testing.T) {
	cfg := config.Default()
	applyArgs(cfg, []string{"kitchen", "code-1", "coap+tcp://cloud.example.com:5684", "sid-1", "plgd"})

	if cfg.Device.Name != "kitchen" {
		t.Errorf("Device.Name = %q", cfg.Device.Name)
	}
	if cfg.Cloud.AuthCode != "code-1" {
		t.Errorf("Cloud.AuthCode = %q", cfg.Cloud.AuthCode)
	}
	if cfg.Cloud.Endpoint != "coap+tcp://cloud.example.com:5684" {
		t.Errorf("Cloud.Endpoint = %q", cfg.Cloud.Endpoint)
	}
	if cfg.Cloud.SubjectID != "sid-1" {
		t.Errorf("Cloud.SubjectID = %q", cfg.Cloud.SubjectID)
	}
	if cfg.Cloud.Provider != "plgd" {
		t.Errorf("Cloud.Provider = %q", cfg.Cloud.Provider)
	}
}

func TestApplyArgs_PartialKeepsDefaults(t *testing.T) {
	cfg := config.Default()
	want := cfg.Cloud

	applyArgs(cfg, []string{"kitchen", "code-1"})

	if cfg.Device.Name != "kitchen" || cfg.Cloud.AuthCode != "code-1" {
		t.Errorf("overridden values not applied: %q %q", cfg.Device.Name, cfg.Cloud.AuthCode)
	}
	if cfg.Cloud.Endpoint != want.Endpoint {
		t.Errorf("Cloud.Endpoint = %q, want default %q", cfg.Cloud.Endpoint, want.Endpoint)
	}
	if cfg.Cloud.SubjectID != want.SubjectID {
		t.Errorf("Cloud.SubjectID = %q, want default %q", cfg.Cloud.SubjectID, want.SubjectID)
	}
	if cfg.Cloud.Provider != want.Provider {
		t.Errorf("Cloud.Provider = %q, want default %q", cfg.Cloud.Provider, want.Provider)
	}
}

func TestApplyArgs_Empty(t *testing.T) {
	cfg := config.Default()
	want := *cfg

	applyArgs(cfg, nil)

	if cfg.Device.Name != want.Device.Name || cfg.Cloud != want.Cloud {
		t.Errorf("no-arg apply changed config: %+v", cfg)
	}
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	printUsage(&buf, config.Default())

	out := buf.String()
	for _, want := range []string{"device-name", "auth-code", "endpoint", "subject-id", "provider"} {
		if !strings.Contains(out, want) {
			t.Errorf("usage output missing %q:\n%s", want, out)
		}
	}
}
