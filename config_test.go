package netreactor

import (
	"testing"
)

func TestLoadConfig(t *testing.T) {
	yamlConfig := LoadConfig("./cmd/config.yaml")
	if yamlConfig.Reactor.Name != "MainReactor" {
		t.Fatalf("yaml reactor name: %q", yamlConfig.Reactor.Name)
	}
	if ms := yamlConfig.Reactor.Interval().Milliseconds(); ms != 100 {
		t.Fatalf("yaml poll timeout: %d", ms)
	}
	tomlConfig := LoadConfig("./cmd/config.toml")
	if !tomlConfig.Reactor.LockOsThread {
		t.Fatalf("toml config: %+v", tomlConfig.Reactor)
	}
	if tomlConfig.Reactor.MaxOpenFiles != 4096 {
		t.Fatalf("toml max open files: %d", tomlConfig.Reactor.MaxOpenFiles)
	}
}

func TestValidateConfigDefaults(t *testing.T) {
	config := &Config{}
	validateConfig(config)
	if config.Reactor.Name == "" {
		t.Fatal("no default reactor name")
	}
	if ms := config.Reactor.Interval().Milliseconds(); ms != 100 {
		t.Fatalf("default poll timeout: %d", ms)
	}
}

func TestImmediateWinsOverSeconds(t *testing.T) {
	pc := PollingConfig{IntervalSec: 2, Immediate: true}
	if ms := pc.Interval().Milliseconds(); ms != 0 {
		t.Fatalf("immediate config polls with timeout %d", ms)
	}
}
