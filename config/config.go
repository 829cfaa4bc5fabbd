package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the scraper and output settings.
type Config struct {
	Scraper struct {
		BaseURL      string  `yaml:"base_url"`
		TargetYears  []int   `yaml:"target_years"`
		RequestDelay float64 `yaml:"request_delay"` // seconds between requests
		Workers      int     `yaml:"workers"`
		Timeout      float64 `yaml:"timeout"` // per-request timeout, seconds
		UseBrowser   bool    `yaml:"use_browser"`
	} `yaml:"scraper"`
	Output struct {
		Dir       string `yaml:"dir"`
		CSVFile   string `yaml:"csv_file"`
		JSONFile  string `yaml:"json_file"`
		ReportDir string `yaml:"report_dir"`
	} `yaml:"output"`
}

// LoadConfig loads configuration from a YAML file, filling unset fields
// with defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := GetDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

// GetDefaultConfig returns the default configuration: the eight most
// recent election years, a two second delay and five workers.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	cfg.Scraper.BaseURL = "https://www.270towin.com"
	cfg.Scraper.TargetYears = []int{1996, 2000, 2004, 2008, 2012, 2016, 2020, 2024}
	cfg.Scraper.RequestDelay = 2.0
	cfg.Scraper.Workers = 5
	cfg.Scraper.Timeout = 10.0
	cfg.Scraper.UseBrowser = false
	cfg.Output.Dir = "output"
	cfg.Output.CSVFile = "election_results.csv"
	cfg.Output.JSONFile = "election_results.json"
	cfg.Output.ReportDir = "analysis_report"
	return cfg
}

// Normalize deduplicates and sorts the target years and clamps the worker
// count and delay to sane values.
func (c *Config) Normalize() {
	seen := make(map[int]bool)
	years := c.Scraper.TargetYears[:0]
	for _, y := range c.Scraper.TargetYears {
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Ints(years)
	c.Scraper.TargetYears = years

	if c.Scraper.Workers <= 0 {
		c.Scraper.Workers = 5
	}
	if c.Scraper.RequestDelay < 0 {
		c.Scraper.RequestDelay = 0
	}
	if c.Scraper.Timeout <= 0 {
		c.Scraper.Timeout = 10.0
	}
}

// Delay returns the inter-request delay as a duration.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.Scraper.RequestDelay * float64(time.Second))
}

// RequestTimeout returns the per-request timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Scraper.Timeout * float64(time.Second))
}
