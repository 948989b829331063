package app

import (
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/heartmarshall/verbnet-reader/internal/config"
)

func fixtureRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(file), "..", "corpus", "testdata", "verbnet")
}

func testConfig(t *testing.T, mode string) config.Config {
	t.Helper()
	return config.Config{
		Corpus: config.CorpusConfig{
			Source:    config.SourceFiles,
			Root:      fixtureRoot(t),
			IndexMode: mode,
			CacheSize: 8,
		},
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            8080,
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			IdleTimeout:     time.Second,
			ShutdownTimeout: time.Second,
			MaxFrames:       10,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,OPTIONS",
			AllowedHeaders: "Content-Type",
		},
		Log: config.LogConfig{Level: "error", Format: "json"},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
