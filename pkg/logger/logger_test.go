package logger

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/soukly/api/config"
)

func TestInitLogger(t *testing.T) {
	logsPath := t.TempDir()
	t.Setenv("LOGS_PATH", logsPath)

	cfg := &config.Config{}
	cfg.App.Environment = "development"

	if err := InitLogger(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	if GetLogger() == nil {
		t.Fatal("expected a logger after init")
	}

	GetLogger().Info("startup check", zap.String("component", "logger"))
	LogRequest("GET", "/api/health", 200, 3, "127.0.0.1", "test-agent")
	Sync()

	for _, name := range []string{"app.log", "error.log"} {
		if _, err := os.Stat(filepath.Join(logsPath, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestSetLogger(t *testing.T) {
	replacement := zap.NewNop()
	SetLogger(replacement)

	if GetLogger() != replacement {
		t.Error("expected the replacement logger")
	}
	if GetSugarLogger() == nil {
		t.Error("expected a sugared logger alongside")
	}
}
