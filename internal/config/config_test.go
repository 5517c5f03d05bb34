package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.EARThreshold != 0.22 {
		t.Errorf("EARThreshold = %v, want 0.22", cfg.EARThreshold)
	}
	if cfg.ConsecFrames != 20 {
		t.Errorf("ConsecFrames = %d, want 20", cfg.ConsecFrames)
	}
	if cfg.SMSCooldown != 60*time.Second {
		t.Errorf("SMSCooldown = %v, want 60s", cfg.SMSCooldown)
	}
	if cfg.BeepInterval != 250*time.Millisecond {
		t.Errorf("BeepInterval = %v, want 250ms", cfg.BeepInterval)
	}
	if cfg.SMSEnabled() {
		t.Error("SMS must be disabled without Twilio credentials")
	}
}

func TestProfileOverridesThresholds(t *testing.T) {
	t.Setenv("DETECTION_PROFILE", "sensitive")
	t.Setenv("EAR_THRESHOLD", "0.10")

	cfg := LoadConfig()
	if cfg.EARThreshold != 0.25 || cfg.ConsecFrames != 12 {
		t.Errorf("sensitive profile not applied: ear=%v frames=%d", cfg.EARThreshold, cfg.ConsecFrames)
	}
}

func TestUnknownProfileKeepsExplicitThresholds(t *testing.T) {
	t.Setenv("DETECTION_PROFILE", "nonsense")
	t.Setenv("EAR_THRESHOLD", "0.30")
	t.Setenv("EAR_CONSEC_FRAMES", "5")

	cfg := LoadConfig()
	if cfg.EARThreshold != 0.30 || cfg.ConsecFrames != 5 {
		t.Errorf("explicit thresholds lost: ear=%v frames=%d", cfg.EARThreshold, cfg.ConsecFrames)
	}
}

func TestEnvDurationMilliseconds(t *testing.T) {
	t.Setenv("SMS_COOLDOWN_MS", "30000")
	t.Setenv("BEEP_INTERVAL_MS", "100")

	cfg := LoadConfig()
	if cfg.SMSCooldown != 30*time.Second {
		t.Errorf("SMSCooldown = %v, want 30s", cfg.SMSCooldown)
	}
	if cfg.BeepInterval != 100*time.Millisecond {
		t.Errorf("BeepInterval = %v, want 100ms", cfg.BeepInterval)
	}
}

func TestDSNForLogHidesPassword(t *testing.T) {
	t.Setenv("DB_PASSWORD", "hunter2")

	cfg := LoadConfig()
	if got := cfg.DSNForLog(); got == cfg.DSN() {
		t.Error("DSNForLog must not equal the full DSN")
	}
}
