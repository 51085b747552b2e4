package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/persistorai/friendgraph/internal/config"
	"github.com/persistorai/friendgraph/internal/graph"
	"github.com/persistorai/friendgraph/internal/logging"
	"github.com/persistorai/friendgraph/internal/models"
	"github.com/persistorai/friendgraph/internal/service"
)

// configFile is the YAML overlay read from --config or ~/.friendgraph/config.yaml.
type configFile struct {
	DataFile     string         `yaml:"data_file"`
	Schema       *models.Schema `yaml:"schema"`
	SourceNode   string         `yaml:"source_node"`
	DedupeEdges  *bool          `yaml:"dedupe_edges"`
	KeepEmptyIDs *bool          `yaml:"keep_empty_ids"`
	LogLevel     string         `yaml:"log_level"`
	LogFormat    string         `yaml:"log_format"`
	ListenHost   string         `yaml:"listen_host"`
	Port         int            `yaml:"port"`
	CORSOrigins  []string       `yaml:"cors_origins"`
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".friendgraph", "config.yaml")
}

// readConfigFile parses path. A missing file is only an error when the user
// named it explicitly.
func readConfigFile(path string, explicit bool) (*configFile, error) {
	cfg := &configFile{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, nil
}

// lookup exposes the file under the same keys as the environment.
func (f *configFile) lookup(key string) (string, bool) {
	var v string

	switch key {
	case "DATA_FILE":
		v = f.DataFile
	case "ID_COLUMN":
		if f.Schema != nil {
			v = strconv.Itoa(f.Schema.IDColumn)
		}
	case "FRIENDS_COLUMN":
		if f.Schema != nil {
			v = strconv.Itoa(f.Schema.FriendsColumn)
		}
	case "SOURCE_NODE":
		v = f.SourceNode
	case "DEDUPE_EDGES":
		if f.DedupeEdges != nil {
			v = strconv.FormatBool(*f.DedupeEdges)
		}
	case "KEEP_EMPTY_IDS":
		if f.KeepEmptyIDs != nil {
			v = strconv.FormatBool(*f.KeepEmptyIDs)
		}
	case "LOG_LEVEL":
		v = f.LogLevel
	case "LOG_FORMAT":
		v = f.LogFormat
	case "LISTEN_HOST":
		v = f.ListenHost
	case "PORT":
		if f.Port != 0 {
			v = strconv.Itoa(f.Port)
		}
	case "CORS_ORIGINS":
		v = strings.Join(f.CORSOrigins, ",")
	}

	return v, v != ""
}

// resolveConfig layers settings: flag > env > config file > default.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	path, explicit := flagConfig, flagConfig != ""
	if !explicit {
		path = defaultConfigPath()
	}

	file, err := readConfigFile(path, explicit)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadFrom(config.Layered(os.LookupEnv, file.lookup))
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataFile = flagData
	}
	if flags.Changed("id-column") {
		cfg.IDColumn = flagIDColumn
	}
	if flags.Changed("friends-column") {
		cfg.FriendsColumn = flagFriendsColumn
	}
	if flags.Changed("dedupe") {
		cfg.DedupeEdges = flagDedupe
	}
	if flags.Changed("keep-empty") {
		cfg.KeepEmptyIDs = flagKeepEmpty
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// app carries what every subcommand needs after configuration is resolved.
type app struct {
	cfg *config.Config
	log *logrus.Logger
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, err := logging.NewWithOutput(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, log: log}, nil
}

func (a *app) loadGraph(cmd *cobra.Command) (*graph.Graph, error) {
	return service.NewLoader(a.log).Load(cmd.Context(), a.cfg.DataFile, a.cfg.Schema(), a.cfg.BuildOptions())
}

func (a *app) analysis(cmd *cobra.Command) (*service.AnalysisService, error) {
	g, err := a.loadGraph(cmd)
	if err != nil {
		return nil, err
	}

	return service.NewAnalysisService(g, a.log), nil
}
