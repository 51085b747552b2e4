// Package config provides environment-driven configuration for friendgraph.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/persistorai/friendgraph/internal/graph"
	"github.com/persistorai/friendgraph/internal/models"
)

// Config holds all application configuration values.
type Config struct {
	DataFile      string
	IDColumn      int
	FriendsColumn int
	SourceNode    string
	DedupeEdges   bool
	KeepEmptyIDs  bool
	LogLevel      string
	LogFormat     string
	Port          string
	ListenHost    string
	CORSOrigins   []string
}

// Lookup returns the raw value of a configuration key and whether it is set.
type Lookup func(key string) (string, bool)

// Layered returns a Lookup that consults each source in order and returns the
// first non-empty value.
func Layered(sources ...Lookup) Lookup {
	return func(key string) (string, bool) {
		for _, src := range sources {
			if v, ok := src(key); ok && v != "" {
				return v, true
			}
		}

		return "", false
	}
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	return LoadFrom(os.LookupEnv)
}

// LoadFrom reads configuration through lookup, falling back to defaults.
func LoadFrom(lookup Lookup) (*Config, error) {
	envOrDefault := func(key, fallback string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}

		return fallback
	}

	cfg := &Config{
		DataFile:   envOrDefault("DATA_FILE", "data.csv"),
		SourceNode: strings.TrimSpace(envOrDefault("SOURCE_NODE", "")),
		LogLevel:   envOrDefault("LOG_LEVEL", "info"),
		LogFormat:  envOrDefault("LOG_FORMAT", "text"),
		Port:       envOrDefault("PORT", "3040"),
		ListenHost: envOrDefault("LISTEN_HOST", "127.0.0.1"),
	}

	dedupe, err := strconv.ParseBool(envOrDefault("DEDUPE_EDGES", "false"))
	if err != nil {
		return nil, fmt.Errorf("DEDUPE_EDGES must be a valid boolean: %w", err)
	}
	cfg.DedupeEdges = dedupe

	keepEmpty, err := strconv.ParseBool(envOrDefault("KEEP_EMPTY_IDS", "false"))
	if err != nil {
		return nil, fmt.Errorf("KEEP_EMPTY_IDS must be a valid boolean: %w", err)
	}
	cfg.KeepEmptyIDs = keepEmpty

	idColumn, err := strconv.Atoi(envOrDefault("ID_COLUMN", strconv.Itoa(models.DefaultIDColumn)))
	if err != nil {
		return nil, fmt.Errorf("ID_COLUMN must be a valid integer: %w", err)
	}
	cfg.IDColumn = idColumn

	friendsColumn, err := strconv.Atoi(envOrDefault("FRIENDS_COLUMN", strconv.Itoa(models.DefaultFriendsColumn)))
	if err != nil {
		return nil, fmt.Errorf("FRIENDS_COLUMN must be a valid integer: %w", err)
	}
	cfg.FriendsColumn = friendsColumn

	origins := envOrDefault("CORS_ORIGINS", "http://localhost:3002")
	cfg.CORSOrigins = strings.Split(origins, ",")

	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.ListenHost, c.Port)
}

// Schema returns the column layout used to parse the data file.
func (c *Config) Schema() models.Schema {
	return models.Schema{IDColumn: c.IDColumn, FriendsColumn: c.FriendsColumn}
}

// BuildOptions returns the graph construction options.
func (c *Config) BuildOptions() graph.BuildOptions {
	return graph.BuildOptions{DedupeEdges: c.DedupeEdges, KeepEmptyIDs: c.KeepEmptyIDs}
}
