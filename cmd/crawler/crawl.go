package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"casecrawler/internal/config"
	"casecrawler/internal/crawler"
	"casecrawler/internal/formatter"
	"casecrawler/internal/logger"
)

const (
	defaultConfigPath = "configs/crawler.yaml"
	previewWidth      = 100
)

type crawlOptions struct {
	configPath string
	outputDir  string
	file       string
	logLevel   string
	keepRaw    bool
	preview    bool
}

func newCrawlCmd() *cobra.Command {
	opts := &crawlOptions{}

	cmd := &cobra.Command{
		Use:   "crawl <case-url>",
		Short: "Fetch a case and write its report",
		Long: `Fetches the case document behind an Oyez case page URL such as
https://www.oyez.org/cases/1971/70-18 and writes case_<term>_<docket>.txt
to the output directory. URLs that do not address a case are ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrawl(cmd, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "Path to YAML configuration file (default: "+defaultConfigPath+" if present)")
	flags.StringVar(&opts.outputDir, "output-dir", "", "Output directory (overrides config)")
	flags.StringVar(&opts.file, "file", "", "Read the case document from a local JSON file instead of the API")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	flags.BoolVar(&opts.keepRaw, "keep-raw", false, "Keep the fetched JSON next to the report")
	flags.BoolVar(&opts.preview, "preview", false, "Print a table of the extracted pairs")

	return cmd
}

// loadConfig resolves configuration: defaults, YAML, environment, then flags.
func loadConfig(opts *crawlOptions) (*config.Config, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, err
	}

	path := opts.configPath
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.outputDir != "" {
		cfg.Output.BasePath = opts.outputDir
	}

	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	if opts.keepRaw {
		cfg.Output.KeepRaw = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func runCrawl(cmd *cobra.Command, rawURL string, opts *crawlOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	log := logger.NewLogger(cfg.Logging.Level).With("run_id", uuid.NewString())
	defer log.Sync() //nolint:errcheck

	log.Debug("Configuration loaded", "config", cfg.String())

	var client *crawler.Client
	if opts.file != "" {
		client, err = crawler.NewClientWithDeps(cfg, crawler.FileFetcher{Path: opts.file}, log)
	} else {
		client, err = crawler.NewClient(cfg, log)
	}

	if err != nil {
		return err
	}

	result, err := client.CrawlCase(ctx, rawURL)
	if errors.Is(err, crawler.ErrInvalidReference) {
		return nil
	}

	if err != nil {
		log.Error("Crawl failed", "reference", rawURL, "error", err)

		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "✅ Report written: %s\n", result.Report.Path)

	if result.RawPath != "" {
		fmt.Fprintf(out, "📦 Raw document: %s\n", result.RawPath)
	}

	if opts.preview {
		fmt.Fprintln(out)
		fmt.Fprint(out, formatter.Preview(result.Record, previewWidth))
	}

	return nil
}
