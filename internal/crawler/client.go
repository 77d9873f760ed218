package crawler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"casecrawler/internal/config"
	"casecrawler/internal/formatter"
	"casecrawler/internal/logger"
	"casecrawler/internal/models"
	"casecrawler/internal/normalizer"
	"casecrawler/pkg/metadata"
)

// Pipeline errors.
var (
	ErrFetchFailed = errors.New("fetch failed")
	ErrWriteFailed = errors.New("write failed")
)

// Result describes one successful crawl.
type Result struct {
	Reference models.CaseReference
	Record    *models.CaseRecord
	Report    *metadata.Metadata
	RawPath   string
}

// Client runs the crawl pipeline: reference, fetch, extract, serialize, write.
type Client struct {
	cfg       *config.Config
	fetcher   Fetcher
	processor *normalizer.Processor
	writer    *Writer
	log       *logger.Logger
	now       func() time.Time
}

// NewClient creates a client that fetches from the configured API.
func NewClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	return NewClientWithDeps(cfg, NewScraper(cfg.Source), log)
}

// NewClientWithDeps creates a client with an injected fetcher.
func NewClientWithDeps(cfg *config.Config, fetcher Fetcher, log *logger.Logger) (*Client, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.NewNop()
	}

	processor := normalizer.NewProcessor(normalizer.Options{
		Location:     loc,
		CitationBase: cfg.Links.CitationBase,
		AdvocateBase: cfg.Links.AdvocateBase,
	})

	return &Client{
		cfg:       cfg,
		fetcher:   fetcher,
		processor: processor,
		writer:    NewWriter(),
		log:       log,
		now:       time.Now,
	}, nil
}

// CrawlCase turns a case page URL into a report file. A URL that does not
// address a case returns ErrInvalidReference without touching the network
// or the output directory.
func (c *Client) CrawlCase(ctx context.Context, rawURL string) (*Result, error) {
	ref, err := ParseReference(rawURL, c.cfg.Source.SiteHost)
	if err != nil {
		c.log.Debug("Ignoring reference", "reference", rawURL)

		return nil, err
	}

	log := c.log.With("case", ref.String())

	body, err := c.fetcher.Fetch(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	log.Debug("Fetched case document", "bytes", len(body))

	doc, err := models.DecodeCaseDocument(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	record, err := c.processor.Process(ref, doc)
	if err != nil {
		return nil, err
	}

	content := formatter.FormatRecord(record)
	reportPath := c.cfg.GetReportPath(ref.Term, ref.Docket)

	if err := c.writer.WriteFile(reportPath, []byte(content)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	result := &Result{
		Reference: ref,
		Record:    record,
		Report:    metadata.Describe(reportPath, content, c.now()),
	}

	if c.cfg.Output.KeepRaw {
		rawPath := c.cfg.GetRawPath(ref.Term, ref.Docket)

		if err := c.writer.WriteFile(rawPath, body); err != nil {
			// no partial output
			if rmErr := os.Remove(reportPath); rmErr != nil {
				log.Warn("Failed to remove report", "path", reportPath, "error", rmErr)
			}

			return nil, fmt.Errorf("%w: %w", ErrWriteFailed, err)
		}

		result.RawPath = rawPath
	}

	log.Info("Report written",
		"path", reportPath,
		"pairs", len(record.Fields),
		"bytes", result.Report.Bytes,
		"sha256", result.Report.Hash,
	)

	return result, nil
}
