package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Analytics.BaseURL != "http://localhost:8000" {
		t.Errorf("unexpected base url %q", c.Analytics.BaseURL)
	}
	if c.Server.Port != 8080 {
		t.Errorf("unexpected port %d", c.Server.Port)
	}
	if c.Analytics.Timeout != 15*time.Second {
		t.Errorf("unexpected timeout %v", c.Analytics.Timeout)
	}
	if c.Cache.Enabled || c.Kafka.Enabled {
		t.Error("cache and kafka should be off by default")
	}
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := "environment: production\nserver:\n  port: 9090\n  cors: false\nanalytics:\n  base_url: http://analytics:8000\n"
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Environment != "production" || c.Server.Port != 9090 || c.Server.CORS {
		t.Errorf("yaml not applied: %+v", c.Server)
	}
	if c.Analytics.BaseURL != "http://analytics:8000" {
		t.Errorf("unexpected base url %q", c.Analytics.BaseURL)
	}
	if c.Log.Level != "info" {
		t.Errorf("default log level lost: %q", c.Log.Level)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("analytics:\n  base_url: not a url\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadWithEnv_Overrides(t *testing.T) {
	t.Setenv("ANALYTICS_API_URL", "http://remote:9000")
	t.Setenv("PORT", "7070")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	c, err := LoadWithEnv(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Analytics.BaseURL != "http://remote:9000" {
		t.Errorf("unexpected base url %q", c.Analytics.BaseURL)
	}
	if c.Server.Port != 7070 {
		t.Errorf("unexpected port %d", c.Server.Port)
	}
	if !c.Kafka.Enabled || len(c.Kafka.Brokers) != 2 {
		t.Errorf("unexpected kafka config %+v", c.Kafka)
	}
}

func TestValidate_KafkaNeedsBrokers(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	c.Kafka.Enabled = true
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for kafka without brokers")
	}
}

func TestLoadWithEnv_OverrideFixesInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("cache:\n  enabled: true\n  backend: memcached\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected Load to reject the yaml backend")
	}

	t.Setenv("CACHE_BACKEND", "redis")
	c, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("env override not applied before validation: %v", err)
	}
	if c.Cache.Backend != "redis" {
		t.Errorf("unexpected backend %q", c.Cache.Backend)
	}
}
