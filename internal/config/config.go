package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrMissingConfiguration means a required store connection setting is absent.
var ErrMissingConfiguration = errors.New("missing configuration")

const (
	BackendSQLite   = "sqlite"
	BackendSupabase = "supabase"
)

type Config struct {
	Port        string
	LogLevel    string
	LogFormat   string
	Store       StoreConfig
	CORSOrigins []string
	RecentLimit int
	TrustProxy  bool
}

type StoreConfig struct {
	Backend     string
	DBPath      string
	SupabaseURL string
	SupabaseKey string
}

// LoadDotEnv reads KEY=VALUE pairs from the given files (default ".env") into
// the environment without overriding variables that are already set. Missing
// files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load builds a Config from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:      firstNonEmpty(os.Getenv("JITTER_PORT"), os.Getenv("PORT"), "8080"),
		LogLevel:  firstNonEmpty(os.Getenv("JITTER_LOG_LEVEL"), "info"),
		LogFormat: firstNonEmpty(os.Getenv("JITTER_LOG_FORMAT"), "text"),
		Store: StoreConfig{
			Backend:     strings.ToLower(firstNonEmpty(os.Getenv("JITTER_STORE"), BackendSQLite)),
			DBPath:      firstNonEmpty(os.Getenv("JITTER_DB_PATH"), "jitter.db"),
			SupabaseURL: strings.TrimSpace(os.Getenv("SUPABASE_URL")),
			SupabaseKey: strings.TrimSpace(os.Getenv("SUPABASE_KEY")),
		},
		CORSOrigins: splitList(firstNonEmpty(os.Getenv("JITTER_CORS_ORIGINS"), "http://localhost:5173")),
	}

	limit := 50
	if v := strings.TrimSpace(os.Getenv("JITTER_RECENT_LIMIT")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("JITTER_RECENT_LIMIT must be a positive integer, got %q", v)
		}
		limit = n
	}
	cfg.RecentLimit = limit

	if v := strings.TrimSpace(os.Getenv("JITTER_TRUST_PROXY")); v != "" {
		trust, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("JITTER_TRUST_PROXY must be a boolean, got %q", v)
		}
		cfg.TrustProxy = trust
	}

	if err := cfg.Store.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (s StoreConfig) validate() error {
	switch s.Backend {
	case BackendSQLite:
		if strings.TrimSpace(s.DBPath) == "" {
			return fmt.Errorf("JITTER_DB_PATH: %w", ErrMissingConfiguration)
		}
	case BackendSupabase:
		var missing []string
		if s.SupabaseURL == "" {
			missing = append(missing, "SUPABASE_URL")
		}
		if s.SupabaseKey == "" {
			missing = append(missing, "SUPABASE_KEY")
		}
		if len(missing) > 0 {
			return fmt.Errorf("%s: %w", strings.Join(missing, ", "), ErrMissingConfiguration)
		}
	default:
		return fmt.Errorf("unknown JITTER_STORE %q (want %s or %s)", s.Backend, BackendSQLite, BackendSupabase)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
