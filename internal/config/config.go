package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultCollections is the canonical set of collection names. A
// collections file may add names but these four are always served.
var DefaultCollections = []string{"vods", "highlights", "clips", "rplay"}

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request handler timeout

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	DataDir         string   // parent directory holding one subdirectory per collection
	CollectionsFile string   // optional YAML file listing extra collections
	Collections     []string // resolved collection names, canonical four first
}

func Load() (*Config, error) {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("CATALOGD_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("CATALOGD_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("CATALOGD_REQUEST_TIMEOUT", 2*time.Second),

		// Logging
		LogLevel:  getenv("CATALOGD_LOG_LEVEL", "info"),
		PrettyLog: mustBool("CATALOGD_PRETTY_LOG", true),

		// Catalog
		DataDir:         getenv("CATALOGD_DATA_DIR", "."),
		CollectionsFile: getenv("CATALOGD_COLLECTIONS_FILE", ""),
	}

	collections, err := resolveCollections(cfg.CollectionsFile)
	if err != nil {
		return nil, err
	}
	cfg.Collections = collections

	return cfg, nil
}

// collectionsFile is the shape of the optional CATALOGD_COLLECTIONS_FILE.
type collectionsFile struct {
	Collections []string `yaml:"collections"`
}

// resolveCollections merges the optional collections file with the
// canonical set. The canonical names always come first and are always
// present; the file can only add.
func resolveCollections(path string) ([]string, error) {
	names := make([]string, 0, len(DefaultCollections))
	seen := make(map[string]bool, len(DefaultCollections))
	for _, name := range DefaultCollections {
		names = append(names, name)
		seen[name] = true
	}

	if path == "" {
		return names, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read collections file: %w", err)
	}

	var file collectionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse collections yaml: %w", err)
	}

	for _, name := range file.Collections {
		if name == "" || seen[name] {
			continue
		}
		names = append(names, name)
		seen[name] = true
	}

	return names, nil
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
