package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"image-labeler/internal/labeling"
	"image-labeler/internal/logger"
)

const (
	DefaultConfigFile = "labeler.yaml"
	DefaultThemeFile  = "theme.json"
	envPrefix         = "LABELER_"
)

// Config pre-fills the setup screen and tunes the labeling screen.
type Config struct {
	InputDir        string   `yaml:"input_dir"`
	Mode            string   `yaml:"mode"`
	LabelsFile      string   `yaml:"labels_file"`
	Labels          []string `yaml:"labels"`
	AutoAdvance     bool     `yaml:"auto_advance"`
	GenerateXLSX    bool     `yaml:"generate_xlsx"`
	GenerateParquet bool     `yaml:"generate_parquet"`
	ThemePath       string   `yaml:"theme"`
	LogLevel        string   `yaml:"log_level"`
	JSONLogs        bool     `yaml:"json_logs"`
}

func Default() *Config {
	return &Config{
		Mode:      string(labeling.DefaultMode),
		ThemePath: DefaultThemeFile,
		LogLevel:  "info",
	}
}

// Load layers defaults, the YAML file at path and LABELER_* environment
// variables (a .env file in the working directory is honoured). A missing
// file is fine unless it was asked for explicitly.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	if err := cfg.mergeFile(path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if err := cfg.mergeEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	setString := func(key string, dst *string) {
		if v := os.Getenv(envPrefix + key); v != "" {
			*dst = v
		}
	}
	setBool := func(key string, dst *bool) error {
		v := os.Getenv(envPrefix + key)
		if v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s%s: %w", envPrefix, key, err)
		}
		*dst = b
		return nil
	}

	setString("INPUT_DIR", &c.InputDir)
	setString("MODE", &c.Mode)
	setString("LABELS_FILE", &c.LabelsFile)
	setString("THEME", &c.ThemePath)
	setString("LOG_LEVEL", &c.LogLevel)

	if v := os.Getenv(envPrefix + "LABELS"); v != "" {
		c.Labels = splitLabels(v)
	}

	for key, dst := range map[string]*bool{
		"AUTO_ADVANCE":     &c.AutoAdvance,
		"GENERATE_XLSX":    &c.GenerateXLSX,
		"GENERATE_PARQUET": &c.GenerateParquet,
		"JSON_LOGS":        &c.JSONLogs,
	} {
		if err := setBool(key, dst); err != nil {
			return err
		}
	}
	return nil
}

// splitLabels reads a comma-separated label list, trimming each entry and
// dropping empty ones.
func splitLabels(v string) []string {
	var labels []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			labels = append(labels, part)
		}
	}
	return labels
}

func (c *Config) Validate() error {
	if _, err := labeling.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ParsedMode is only meaningful after Validate succeeded.
func (c *Config) ParsedMode() labeling.Mode {
	mode, _ := labeling.ParseMode(c.Mode)
	return mode
}
