package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/NinoBendianishvili/DataScraping-Midterm/config"
	"github.com/NinoBendianishvili/DataScraping-Midterm/export"
	"github.com/NinoBendianishvili/DataScraping-Midterm/fetcher"
	"github.com/NinoBendianishvili/DataScraping-Midterm/models"
	"github.com/NinoBendianishvili/DataScraping-Midterm/parser"
	"github.com/NinoBendianishvili/DataScraping-Midterm/report"
	"github.com/NinoBendianishvili/DataScraping-Midterm/scraper"
)

func main() {
	// Parse command line arguments
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	years := flag.String("years", "", "Comma-separated election years to scrape (overrides config)")
	delay := flag.Float64("delay", -1, "Delay between requests in seconds (overrides config)")
	workers := flag.Int("workers", 0, "Number of concurrent state workers (overrides config)")
	outDir := flag.String("out", "", "Output directory (overrides config)")
	useBrowser := flag.Bool("browser", false, "Use a headless browser instead of plain HTTP (true or false overrides config)")
	flag.Parse()

	// The browser override works both ways, so it only applies when the
	// flag was actually given.
	var browserOverride *bool
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "browser" {
			browserOverride = useBrowser
		}
	})

	cfg := loadConfig(*configPath)
	applyFlags(cfg, *years, *delay, *workers, *outDir, browserOverride)

	results, err := scrapeElections(cfg)
	if err != nil {
		log.Fatalf("Scraping failed: %v\n", err)
	}

	fmt.Printf("Collected %d state-year results\n", len(results))
	if len(results) == 0 {
		fmt.Println("Nothing to export.")
		return
	}

	// Exports are ordered by state name, then year.
	sort.Slice(results, func(i, j int) bool {
		if results[i].State.Name != results[j].State.Name {
			return results[i].State.Name < results[j].State.Name
		}
		return results[i].Year.Year < results[j].Year.Year
	})

	csvPath := filepath.Join(cfg.Output.Dir, cfg.Output.CSVFile)
	if err := export.WriteCSV(results, csvPath); err != nil {
		log.Fatalf("Failed to write CSV: %v\n", err)
	}
	fmt.Printf("Wrote %s\n", csvPath)

	jsonPath := filepath.Join(cfg.Output.Dir, cfg.Output.JSONFile)
	if err := export.WriteJSON(results, jsonPath); err != nil {
		log.Fatalf("Failed to write JSON: %v\n", err)
	}
	fmt.Printf("Wrote %s\n", jsonPath)

	reportDir := filepath.Join(cfg.Output.Dir, cfg.Output.ReportDir)
	chartsPath := filepath.Join(reportDir, "analysis_report.html")
	if err := report.WriteBarChartReport(results, chartsPath); err != nil {
		log.Printf("Warning: Failed to write analysis report: %v\n", err)
	} else {
		fmt.Printf("Wrote %s\n", chartsPath)
	}

	mapsPath := filepath.Join(reportDir, "election_maps.html")
	if err := report.WriteChoroplethReport(results, mapsPath); err != nil {
		log.Printf("Warning: Failed to write election maps: %v\n", err)
	} else {
		fmt.Printf("Wrote %s\n", mapsPath)
	}
}

// scrapeElections wires the fetcher, national-page scraper, and state
// collector together and runs the full scrape.
func scrapeElections(cfg *config.Config) ([]models.ElectionResult, error) {
	var f fetcher.Fetcher

	if cfg.Scraper.UseBrowser {
		browserFetcher, err := fetcher.NewBrowserFetcher(cfg.Delay())
		if err != nil {
			return nil, fmt.Errorf("failed to create browser fetcher: %w", err)
		}
		defer func() {
			if err := browserFetcher.Close(); err != nil {
				log.Printf("Warning: Failed to close browser: %v\n", err)
			}
		}()
		f = browserFetcher
	} else {
		sessionFetcher, err := fetcher.NewSessionFetcher(cfg.Delay(), cfg.RequestTimeout(), cfg.Scraper.Workers)
		if err != nil {
			return nil, fmt.Errorf("failed to create fetcher: %w", err)
		}
		f = sessionFetcher
	}

	national := parser.NewYearScraper(cfg.Scraper.BaseURL, cfg.RequestTimeout())
	collector := scraper.NewCollector(f, national, cfg.Scraper.BaseURL, cfg.Scraper.TargetYears, cfg.Scraper.Workers)

	fmt.Printf("Scraping %d election years with %d workers\n", len(cfg.Scraper.TargetYears), cfg.Scraper.Workers)
	return collector.ScrapeAllStates(), nil
}

// loadConfig loads configuration from file or returns defaults
func loadConfig(configPath string) *config.Config {
	var cfg *config.Config
	if _, err := os.Stat(configPath); err == nil {
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			log.Printf("Warning: Failed to load config file: %v. Using defaults.\n", err)
			cfg = config.GetDefaultConfig()
		}
	} else {
		log.Println("Config file not found. Using default configuration.")
		cfg = config.GetDefaultConfig()
	}
	return cfg
}

// applyFlags overlays command-line overrides onto the loaded config.
// Zero/empty flag values mean "keep the config value"; useBrowser is nil
// when the flag was not given.
func applyFlags(cfg *config.Config, years string, delay float64, workers int, outDir string, useBrowser *bool) {
	if years != "" {
		parsed, err := parseYears(years)
		if err != nil {
			log.Fatalf("Invalid -years value: %v\n", err)
		}
		cfg.Scraper.TargetYears = parsed
	}
	if delay >= 0 {
		cfg.Scraper.RequestDelay = delay
	}
	if workers > 0 {
		cfg.Scraper.Workers = workers
	}
	if outDir != "" {
		cfg.Output.Dir = outDir
	}
	if useBrowser != nil {
		cfg.Scraper.UseBrowser = *useBrowser
	}
	cfg.Normalize()
}

// parseYears parses a comma-separated list like "2016,2020,2024".
func parseYears(s string) ([]int, error) {
	var years []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		year, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%q is not a year", part)
		}
		years = append(years, year)
	}
	if len(years) == 0 {
		return nil, fmt.Errorf("no years given")
	}
	return years, nil
}
