package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"yashubustudio/retailsample/categorizer"
	"yashubustudio/retailsample/internal/acquire"
)

const (
	DefaultURL          = "https://archive.ics.uci.edu/ml/machine-learning-databases/00352/Online%20Retail.xlsx"
	defaultDestDir      = "sample-datasets"
	defaultWorkbookName = "uci-online-retail.xlsx"
	defaultCSVName      = "uci-online-retail.csv"
	defaultCacheSize    = 4096
)

// Config aggregates runtime settings. Every field has a default, so the
// zero config plus ApplyDefaults reproduces the stock pipeline.
type Config struct {
	URL               string `yaml:"url"`
	DestDir           string `yaml:"destDir"`
	WorkbookName      string `yaml:"workbookName"`
	CSVName           string `yaml:"csvName"`
	Sheet             string `yaml:"sheet"`
	DescriptionColumn string `yaml:"descriptionColumn"`
	// CacheSize bounds the classification memo; negative disables it.
	CacheSize    int   `yaml:"cacheSize"`
	KeepWorkbook bool  `yaml:"keepWorkbook"`
	Progress     *bool `yaml:"progress"`
	// MetricsFile, when set, receives a Prometheus textfile summary.
	MetricsFile string `yaml:"metricsFile"`

	HTTP acquire.HTTPConfig `yaml:"http"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	var cfg Config
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults populates zero values.
func (c *Config) ApplyDefaults() {
	c.URL = strings.TrimSpace(c.URL)
	if c.URL == "" {
		c.URL = DefaultURL
	}
	if strings.TrimSpace(c.DestDir) == "" {
		c.DestDir = defaultDestDir
	}
	if strings.TrimSpace(c.WorkbookName) == "" {
		c.WorkbookName = defaultWorkbookName
	}
	if strings.TrimSpace(c.CSVName) == "" {
		c.CSVName = defaultCSVName
	}
	if strings.TrimSpace(c.DescriptionColumn) == "" {
		c.DescriptionColumn = categorizer.DefaultDescriptionColumn
	}
	if c.CacheSize == 0 {
		c.CacheSize = defaultCacheSize
	}
	if c.Progress == nil {
		on := true
		c.Progress = &on
	}
	c.MetricsFile = strings.TrimSpace(c.MetricsFile)
	c.HTTP.ApplyDefaults()
}

// WorkbookPath is where the downloaded spreadsheet is stored.
func (c Config) WorkbookPath() string {
	return filepath.Join(c.DestDir, c.WorkbookName)
}

// CSVPath is where the converted and enriched table is stored.
func (c Config) CSVPath() string {
	return filepath.Join(c.DestDir, c.CSVName)
}

// ShowProgress reports whether a download progress bar is rendered.
func (c Config) ShowProgress() bool {
	return c.Progress == nil || *c.Progress
}

// LoadConfig reads a YAML config. An empty path or a missing file yields
// the defaults.
func LoadConfig(path string) (Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, &categorizer.OpError{Op: "config.load", Kind: categorizer.KindIO, Path: path, Err: err}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &categorizer.OpError{Op: "config.load", Kind: categorizer.KindInvalidConfig, Path: path, Err: err}
	}
	cfg.ApplyDefaults()
	return cfg, nil
}
