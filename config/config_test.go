package config

import "testing"

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.ServerPort != 8080 {
		t.Fatalf("ServerPort = %d, want 8080", cfg.ServerPort)
	}
	if cfg.UserStore != UserStoreMemory {
		t.Fatalf("UserStore = %q, want %q", cfg.UserStore, UserStoreMemory)
	}
	if cfg.Artifacts.Backend != ArtifactsLocal || cfg.Artifacts.Dir == "" {
		t.Fatalf("unexpected artifacts config: %+v", cfg.Artifacts)
	}
	if cfg.MQ.Backend != MQNone {
		t.Fatalf("MQ.Backend = %q, want %q", cfg.MQ.Backend, MQNone)
	}
	if cfg.PredictionLogPath != "investor_data.csv" {
		t.Fatalf("PredictionLogPath = %q", cfg.PredictionLogPath)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("USER_STORE", UserStorePostgres)
	t.Setenv("MQ_BACKEND", MQRabbitMQ)
	t.Setenv("DB_USE_SSL", "true")

	cfg := LoadConfig()
	if cfg.ServerPort != 9090 {
		t.Fatalf("ServerPort = %d, want 9090", cfg.ServerPort)
	}
	if cfg.UserStore != UserStorePostgres {
		t.Fatalf("UserStore = %q, want %q", cfg.UserStore, UserStorePostgres)
	}
	if cfg.MQ.Backend != MQRabbitMQ {
		t.Fatalf("MQ.Backend = %q, want %q", cfg.MQ.Backend, MQRabbitMQ)
	}
	if !cfg.Database.UseSSL {
		t.Fatalf("Database.UseSSL = false, want true")
	}
}
