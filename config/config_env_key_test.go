package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"presence": map[string]any{
			"onlineWindow": "60s",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PRESENCE_ONLINEWINDOW", want: "presence.onlineWindow"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestPresenceConfig_WithDefaults(t *testing.T) {
	cfg := (*PresenceConfig)(nil).withDefaults()

	if cfg.TTL != 15*time.Minute {
		t.Fatalf("TTL = %v, want 15m", cfg.TTL)
	}
	if cfg.OnlineWindow != time.Minute {
		t.Fatalf("OnlineWindow = %v, want 1m", cfg.OnlineWindow)
	}
	if cfg.EventFeedSize != 6 {
		t.Fatalf("EventFeedSize = %d, want 6", cfg.EventFeedSize)
	}
}

func TestPresenceConfig_WithDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := (&PresenceConfig{TTL: time.Hour, MaxStatusLength: 40}).withDefaults()

	if cfg.TTL != time.Hour {
		t.Fatalf("TTL = %v, want 1h", cfg.TTL)
	}
	if cfg.MaxStatusLength != 40 {
		t.Fatalf("MaxStatusLength = %d, want 40", cfg.MaxStatusLength)
	}
	if cfg.MaxAccuracy != 250 {
		t.Fatalf("MaxAccuracy = %v, want default 250", cfg.MaxAccuracy)
	}
}
