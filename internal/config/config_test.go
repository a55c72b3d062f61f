package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "LOG_LEVEL", "HISTORY_SIZE", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		t.Setenv(key, "")
	}
}

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("expected default log level, got %s", cfg.LogLevel)
	}
	if cfg.HistorySize != 100 {
		t.Fatalf("expected default history size, got %d", cfg.HistorySize)
	}
	if cfg.ShutdownGracePeriod != 10*time.Second {
		t.Fatalf("unexpected shutdown grace period: %s", cfg.ShutdownGracePeriod)
	}
	if cfg.RateLimitRPS != defaultRateLimitRPS || cfg.RateLimitBurst != defaultRateLimitBurst {
		t.Fatalf("unexpected rate limit %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HISTORY_SIZE", "25")
	t.Setenv("RATE_LIMIT_RPS", "0")

	cfg, err := Load(&CLIOverrides{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Fatalf("expected overridden port, got %s", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug log level, got %s", cfg.LogLevel)
	}
	if cfg.HistorySize != 25 {
		t.Fatalf("expected history size 25, got %d", cfg.HistorySize)
	}
	if cfg.RateLimitRPS != 0 {
		t.Fatalf("expected rate limit disabled, got %v", cfg.RateLimitRPS)
	}
}

func TestLoadYAMLOverridesEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")

	path := writeConfigFile(t, `
port: "7070"
history_size: 5
write_timeout: 3s
enable_request_logging: false
rate_limit:
  rps: 2.5
`)

	cfg, err := Load(&CLIOverrides{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "7070" {
		t.Fatalf("expected YAML port, got %s", cfg.Port)
	}
	if cfg.HistorySize != 5 {
		t.Fatalf("expected history size 5, got %d", cfg.HistorySize)
	}
	if cfg.WriteTimeout != 3*time.Second {
		t.Fatalf("expected write timeout 3s, got %s", cfg.WriteTimeout)
	}
	if cfg.EnableRequestLogging {
		t.Fatalf("expected request logging disabled")
	}
	if cfg.RateLimitRPS != 2.5 {
		t.Fatalf("expected rps 2.5, got %v", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != defaultRateLimitBurst {
		t.Fatalf("expected burst to keep its default, got %d", cfg.RateLimitBurst)
	}
}

func TestLoadCLIOverridesEverything(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")

	path := writeConfigFile(t, "port: \"7070\"\nlog_level: warn\n")
	port := "6060"
	level := "error"
	history := 3
	burst := 0

	cfg, err := Load(&CLIOverrides{
		ConfigFile:     path,
		Port:           &port,
		LogLevel:       &level,
		HistorySize:    &history,
		RateLimitBurst: &burst,
	})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "6060" || cfg.LogLevel != "error" || cfg.HistorySize != 3 || cfg.RateLimitBurst != 0 {
		t.Fatalf("CLI overrides not applied: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "absent.yaml")}); err == nil {
			t.Fatalf("expected error for missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfigFile(t, "port: [unterminated")
		if _, err := Load(&CLIOverrides{ConfigFile: path}); err == nil {
			t.Fatalf("expected parse error")
		}
	})

	t.Run("bad duration", func(t *testing.T) {
		path := writeConfigFile(t, "idle_timeout: soon\n")
		if _, err := Load(&CLIOverrides{ConfigFile: path}); err == nil {
			t.Fatalf("expected duration error")
		}
	})

	t.Run("invalid history size", func(t *testing.T) {
		path := writeConfigFile(t, "history_size: 0\n")
		if _, err := Load(&CLIOverrides{ConfigFile: path}); err == nil {
			t.Fatalf("expected history size error")
		}
	})

	t.Run("invalid log level", func(t *testing.T) {
		level := "verbose"
		if _, err := Load(&CLIOverrides{LogLevel: &level}); err == nil {
			t.Fatalf("expected log level error")
		}
	})

	t.Run("negative rate limit", func(t *testing.T) {
		path := writeConfigFile(t, "rate_limit:\n  rps: -1\n")
		if _, err := Load(&CLIOverrides{ConfigFile: path}); err == nil {
			t.Fatalf("expected rate limit error")
		}
	})
}
