package cli

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Relation != "iso" {
		t.Errorf("Relation = %q, want %q", cfg.Relation, "iso")
	}
	if cfg.timeout().Seconds() != 30 {
		t.Errorf("timeout() = %v, want 30s", cfg.timeout())
	}
}

func TestConfig_TimeoutFallsBackOnMalformedValue(t *testing.T) {
	cfg := config{Timeout: "not-a-duration"}
	if cfg.timeout().Seconds() != 30 {
		t.Errorf("timeout() = %v, want the 30s fallback", cfg.timeout())
	}
}
