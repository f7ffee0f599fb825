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
		"auth": map[string]any{
			"lockoutDuration": "2h",
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
		{envKey: "AUTH_LOCKOUTDURATION", want: "auth.lockoutDuration"},
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

func TestApplyAuthDefaults(t *testing.T) {
	cfg := &Config{}
	applyAuthDefaults(cfg)

	if cfg.Auth == nil {
		t.Fatal("expected auth config to be populated")
	}
	if cfg.Auth.MaxFailedLogins != 5 {
		t.Fatalf("MaxFailedLogins = %d, want 5", cfg.Auth.MaxFailedLogins)
	}
	if cfg.Auth.LockoutDuration != 2*time.Hour {
		t.Fatalf("LockoutDuration = %s, want 2h", cfg.Auth.LockoutDuration)
	}
	if cfg.Auth.AccessTokenTTL != 24*time.Hour {
		t.Fatalf("AccessTokenTTL = %s, want 24h", cfg.Auth.AccessTokenTTL)
	}
}

func TestApplyAuthDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth: &AuthConfig{
			MaxFailedLogins: 3,
			LockoutDuration: 30 * time.Minute,
			AccessTokenTTL:  time.Hour,
		},
	}
	applyAuthDefaults(cfg)

	if cfg.Auth.MaxFailedLogins != 3 {
		t.Fatalf("MaxFailedLogins = %d, want 3", cfg.Auth.MaxFailedLogins)
	}
	if cfg.Auth.LockoutDuration != 30*time.Minute {
		t.Fatalf("LockoutDuration = %s, want 30m", cfg.Auth.LockoutDuration)
	}
	if cfg.Auth.AccessTokenTTL != time.Hour {
		t.Fatalf("AccessTokenTTL = %s, want 1h", cfg.Auth.AccessTokenTTL)
	}
}
