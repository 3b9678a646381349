// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultDataPath is the dataset read when the config names none.
	defaultDataPath = "data/fight-songs-updated.csv"
	// defaultOutputDir receives the rendered HTML pages.
	defaultOutputDir = "site"
	// defaultLogFile is the log written next to the working directory.
	defaultLogFile = "fightsongs.log"
	// defaultChartWidth and defaultChartHeight size HTML charts in pixels.
	defaultChartWidth  = 900
	defaultChartHeight = 560
)

// Config represents the top-level application configuration.
type Config struct {
	DataPath      string `json:"dataPath,omitempty"`
	OutputDir     string `json:"outputDir,omitempty"`
	LogFile       string `json:"logFile,omitempty"`
	Debug         bool   `json:"debug"`
	StrictNumbers bool   `json:"strictNumbers"`
	ChartWidth    int    `json:"chartWidth,omitempty"`
	ChartHeight   int    `json:"chartHeight,omitempty"`
	ConfigPath    string `json:"-"`
}

// DataFilePath returns the dataset path, applying a default if not set.
func (c Config) DataFilePath() string {
	if path := strings.TrimSpace(c.DataPath); path != "" {
		return path
	}
	return defaultDataPath
}

// OutputPath returns the directory for rendered pages, applying a default if not set.
func (c Config) OutputPath() string {
	if dir := strings.TrimSpace(c.OutputDir); dir != "" {
		return dir
	}
	return defaultOutputDir
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := strings.TrimSpace(c.LogFile); path != "" {
		return path
	}
	return defaultLogFile
}

// Width returns the HTML chart width in pixels.
func (c Config) Width() int {
	if c.ChartWidth <= 0 {
		return defaultChartWidth
	}
	return c.ChartWidth
}

// Height returns the HTML chart height in pixels.
func (c Config) Height() int {
	if c.ChartHeight <= 0 {
		return defaultChartHeight
	}
	return c.ChartHeight
}

// Load reads and validates the configuration at path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("no configuration file found at %q: %w", path, err)
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := Validate(data); err != nil {
		return Config{}, fmt.Errorf("invalid config file %q: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("could not parse config file %q: %w", path, err)
	}
	config.ConfigPath = path
	return config, nil
}
