// cmd/pairscraper/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dverbeek/PairScraper/internal/config"
	"github.com/dverbeek/PairScraper/internal/monitoring"
	"github.com/dverbeek/PairScraper/internal/output"
	"github.com/dverbeek/PairScraper/internal/runner"
	"github.com/dverbeek/PairScraper/internal/utils"
)

// Version information (set by build flags)
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

// main handles CLI arguments and routes to the appropriate command
func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "run":
		if len(os.Args) < 3 {
			fmt.Fprintf(os.Stderr, "Error: config file required\n")
			fmt.Fprintf(os.Stderr, "Usage: pairscraper run <config.yaml>\n")
			os.Exit(1)
		}
		if err := runScrape(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "validate":
		if len(os.Args) < 3 {
			fmt.Fprintf(os.Stderr, "Error: config file required\n")
			fmt.Fprintf(os.Stderr, "Usage: pairscraper validate <config.yaml>\n")
			os.Exit(1)
		}
		if err := validateConfig(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Configuration file '%s' is valid\n", os.Args[2])

	case "template":
		if err := printTemplate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "version", "--version":
		printVersion()

	case "help", "--help", "-h":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command '%s'\n", command)
		printUsage()
		os.Exit(1)
	}
}

// runScrape loads the configuration and drives a full extraction run.
func runScrape(configFile string) error {
	cfg, err := config.LoadFromFile(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := utils.NewLoggerWithLevel(utils.ParseLevel(cfg.LogLevel))
	logger.Infof("Configuration loaded: %s (%d selector pairs)", cfg.Name, len(cfg.SelectorPairs))

	manager, err := output.NewManager(cfg.Output)
	if err != nil {
		return fmt.Errorf("failed to create output manager: %w", err)
	}
	writer, err := manager.NewWriter()
	if err != nil {
		return fmt.Errorf("failed to open output: %w", err)
	}
	defer writer.Close()

	var metrics *monitoring.Metrics
	if cfg.Metrics.Enabled {
		metrics = monitoring.NewMetrics()
		server := monitoring.NewServer(cfg.Metrics.Address, metrics)
		go func() {
			if err := server.Start(); err != nil {
				logger.Errorf("Metrics server failed: %v", err)
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			server.Shutdown(ctx)
		}()
		logger.Infof("Metrics available at %s/metrics", cfg.Metrics.Address)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// During long polling runs, pick up config edits by restarting the run.
	// A restart builds a fresh engine, so its dedup state starts over.
	reloads := make(chan *config.ScrapeConfig, 1)
	if cfg.Polling.Interval > 0 {
		watcher, err := config.NewWatcher(configFile)
		if err != nil {
			logger.Warnf("Config watching disabled: %v", err)
		} else {
			defer watcher.Close()
			watcher.OnChange(func(next *config.ScrapeConfig) {
				select {
				case reloads <- next:
				default:
				}
			})
		}
	}

	for {
		runCtx, cancelRun := context.WithCancel(ctx)
		done := make(chan runOutcome, 1)
		go func() {
			summary, err := runner.New(cfg, writer, metrics, logger).Run(runCtx)
			done <- runOutcome{summary, err}
		}()

		select {
		case outcome := <-done:
			cancelRun()
			return reportRun(outcome, logger)

		case next := <-reloads:
			logger.Info("Configuration changed, restarting run")
			cancelRun()
			<-done
			cfg = next
		}
	}
}

type runOutcome struct {
	summary *runner.Summary
	err     error
}

// reportRun logs the run summary. Interruption by signal is not a failure.
func reportRun(outcome runOutcome, logger utils.Logger) error {
	if outcome.err != nil {
		if errors.Is(outcome.err, context.Canceled) && outcome.summary != nil {
			logger.Warnf("Run interrupted after %d passes, %d new rows",
				outcome.summary.Passes, outcome.summary.NewRows)
			return nil
		}
		return fmt.Errorf("scraping failed: %w", outcome.err)
	}

	if !outcome.summary.Applicable {
		logger.Warn("Target was not applicable for pair extraction")
		return nil
	}

	logger.Infof("Finished: %d passes, %d new rows, %d duplicates suppressed",
		outcome.summary.Passes, outcome.summary.NewRows, outcome.summary.Suppressed)
	return nil
}

// validateConfig loads the configuration, which validates it.
func validateConfig(configFile string) error {
	cfg, err := config.LoadFromFile(configFile)
	if err != nil {
		return err
	}

	fmt.Printf("  Name: %s\n", cfg.Name)
	fmt.Printf("  Target URL: %s\n", cfg.Target.URL)
	fmt.Printf("  Selector pairs: %d\n", len(cfg.SelectorPairs))
	fmt.Printf("  Output format: %s\n", cfg.Output.Format)
	return nil
}

// printTemplate writes a starter configuration to stdout.
func printTemplate(args []string) error {
	templateType := "basic"
	if len(args) > 1 && args[0] == "--type" {
		templateType = args[1]
	}

	template := config.GenerateTemplate(templateType)
	return config.SaveToWriter(&template, os.Stdout)
}

// printUsage displays help information
func printUsage() {
	fmt.Println("PairScraper - Selector-pair tabular extraction")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  pairscraper run <config.yaml>        Run extraction with configuration file")
	fmt.Println("  pairscraper validate <config.yaml>   Validate configuration file")
	fmt.Println("  pairscraper template [--type <type>] Generate configuration template")
	fmt.Println("  pairscraper version                  Show version information")
	fmt.Println("  pairscraper help                     Show this help message")
	fmt.Println()
	fmt.Println("Template types:")
	fmt.Println("  basic     Single-pass extraction from a static page (default)")
	fmt.Println("  listing   Polled extraction of a paginated listing")
	fmt.Println("  live      Headless-browser extraction of a dynamic page")
}

// printVersion displays version information
func printVersion() {
	fmt.Printf("PairScraper %s\n", version)
	fmt.Printf("Build time: %s\n", buildTime)
	fmt.Printf("Git commit: %s\n", gitCommit)
}
