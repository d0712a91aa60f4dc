package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("PORT", "9090")
	t.Setenv("SEND_DELAY", "250ms")
	t.Setenv("VERIFY_DELAY", "soon")
	t.Setenv("PROFANITY_WORDS", "rascal, ,scoundrel")

	cfg := LoadConfig()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.SendDelay != 250*time.Millisecond {
		t.Errorf("SendDelay = %s", cfg.SendDelay)
	}
	if cfg.VerifyDelay != 1500*time.Millisecond {
		t.Errorf("VerifyDelay = %s, want fallback", cfg.VerifyDelay)
	}
	if len(cfg.ProfanityWords) != 2 || cfg.ProfanityWords[1] != "scoundrel" {
		t.Errorf("ProfanityWords = %q", cfg.ProfanityWords)
	}
	if cfg.TokenTTL != 72*time.Hour {
		t.Errorf("TokenTTL = %s", cfg.TokenTTL)
	}
}
