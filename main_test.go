package main

import (
	"reflect"
	"testing"

	"github.com/NinoBendianishvili/DataScraping-Midterm/config"
)

func bptr(b bool) *bool { return &b }

func TestApplyFlags(t *testing.T) {
	t.Run("browser forced off over config", func(t *testing.T) {
		cfg := config.GetDefaultConfig()
		cfg.Scraper.UseBrowser = true
		applyFlags(cfg, "", -1, 0, "", bptr(false))
		if cfg.Scraper.UseBrowser {
			t.Error("UseBrowser = true, want flag override to false")
		}
	})

	t.Run("browser forced on", func(t *testing.T) {
		cfg := config.GetDefaultConfig()
		applyFlags(cfg, "", -1, 0, "", bptr(true))
		if !cfg.Scraper.UseBrowser {
			t.Error("UseBrowser = false, want flag override to true")
		}
	})

	t.Run("absent browser flag keeps config", func(t *testing.T) {
		cfg := config.GetDefaultConfig()
		cfg.Scraper.UseBrowser = true
		applyFlags(cfg, "", -1, 0, "", nil)
		if !cfg.Scraper.UseBrowser {
			t.Error("UseBrowser = false, want config value kept")
		}
	})

	t.Run("years override deduplicated and sorted", func(t *testing.T) {
		cfg := config.GetDefaultConfig()
		applyFlags(cfg, "2024, 2020,2020", -1, 0, "", nil)
		want := []int{2020, 2024}
		if !reflect.DeepEqual(cfg.Scraper.TargetYears, want) {
			t.Errorf("TargetYears = %v, want %v", cfg.Scraper.TargetYears, want)
		}
	})

	t.Run("sentinel values keep config", func(t *testing.T) {
		cfg := config.GetDefaultConfig()
		applyFlags(cfg, "", -1, 0, "", nil)
		if cfg.Scraper.RequestDelay != 2.0 || cfg.Scraper.Workers != 5 || cfg.Output.Dir != "output" {
			t.Errorf("config changed by sentinel flags: %+v", cfg)
		}
	})

	t.Run("overrides applied", func(t *testing.T) {
		cfg := config.GetDefaultConfig()
		applyFlags(cfg, "", 0.5, 3, "elsewhere", nil)
		if cfg.Scraper.RequestDelay != 0.5 {
			t.Errorf("RequestDelay = %v, want 0.5", cfg.Scraper.RequestDelay)
		}
		if cfg.Scraper.Workers != 3 {
			t.Errorf("Workers = %d, want 3", cfg.Scraper.Workers)
		}
		if cfg.Output.Dir != "elsewhere" {
			t.Errorf("Dir = %q, want elsewhere", cfg.Output.Dir)
		}
	})
}

func TestParseYears(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []int
		wantErr bool
	}{
		{"single year", "2020", []int{2020}, false},
		{"multiple with spaces", "2016, 2020 ,2024", []int{2016, 2020, 2024}, false},
		{"trailing comma", "2020,", []int{2020}, false},
		{"not a number", "2020,soon", nil, true},
		{"empty", "", nil, true},
		{"commas only", ",,", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseYears(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseYears(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseYears(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
