package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"JITTER_PORT", "PORT", "JITTER_LOG_LEVEL", "JITTER_LOG_FORMAT", "JITTER_STORE",
		"JITTER_DB_PATH", "SUPABASE_URL", "SUPABASE_KEY", "JITTER_CORS_ORIGINS", "JITTER_RECENT_LIMIT",
		"JITTER_TRUST_PROXY",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.Store.Backend != BackendSQLite {
		t.Errorf("backend = %q, want sqlite", cfg.Store.Backend)
	}
	if cfg.Store.DBPath != "jitter.db" {
		t.Errorf("db path = %q, want jitter.db", cfg.Store.DBPath)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:5173" {
		t.Errorf("cors origins = %v, want [http://localhost:5173]", cfg.CORSOrigins)
	}
	if cfg.RecentLimit != 50 {
		t.Errorf("recent limit = %d, want 50", cfg.RecentLimit)
	}
	if cfg.TrustProxy {
		t.Error("trust proxy should default to false")
	}
}

func TestLoadPortFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("port = %q, want 9000", cfg.Port)
	}
}

func TestLoadSupabaseMissing(t *testing.T) {
	clearEnv(t)
	t.Setenv("JITTER_STORE", "supabase")
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")

	_, err := Load()
	if !errors.Is(err, ErrMissingConfiguration) {
		t.Fatalf("expected ErrMissingConfiguration, got %v", err)
	}
}

func TestLoadSupabase(t *testing.T) {
	clearEnv(t)
	t.Setenv("JITTER_STORE", "Supabase")
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_KEY", "anon-key")
	t.Setenv("JITTER_CORS_ORIGINS", "https://jitter.example.com, http://localhost:5173")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store.Backend != BackendSupabase {
		t.Errorf("backend = %q, want supabase", cfg.Store.Backend)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "https://jitter.example.com" {
		t.Errorf("cors origins = %v", cfg.CORSOrigins)
	}
}

func TestLoadUnknownBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("JITTER_STORE", "mongo")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestLoadTrustProxy(t *testing.T) {
	clearEnv(t)
	t.Setenv("JITTER_TRUST_PROXY", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.TrustProxy {
		t.Error("expected trust proxy to be enabled")
	}

	t.Setenv("JITTER_TRUST_PROXY", "sometimes")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-boolean JITTER_TRUST_PROXY")
	}
}

func TestLoadBadRecentLimit(t *testing.T) {
	clearEnv(t)
	t.Setenv("JITTER_RECENT_LIMIT", "lots")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric limit")
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("JITTER_DB_PATH")
	t.Setenv("JITTER_PORT", "7000")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("JITTER_DB_PATH=from-dotenv.db\nJITTER_PORT=1234\n"), 0600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("JITTER_DB_PATH") })

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store.DBPath != "from-dotenv.db" {
		t.Errorf("db path = %q, want from-dotenv.db", cfg.Store.DBPath)
	}
	if cfg.Port != "7000" {
		t.Errorf("port = %q, want existing env to win", cfg.Port)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}
}
