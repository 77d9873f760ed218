package crawler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"casecrawler/internal/config"
	"casecrawler/internal/models"
	"casecrawler/pkg/utils"
)

// Fetch errors.
var (
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	ErrCaseNotFound         = errors.New("case not found")
	ErrResponseTooLarge     = errors.New("response exceeds buffer size")
)

// Fetcher resolves a case reference to its raw document bytes.
type Fetcher interface {
	Fetch(ctx context.Context, ref models.CaseReference) ([]byte, error)
}

// Scraper fetches case documents from the Oyez API. It makes a single attempt per call.
type Scraper struct {
	client       *http.Client
	source       config.SourceConfig
	headers      http.Header
	bufferSizeKb int
}

// NewScraper creates a new scraper for the configured source.
func NewScraper(source config.SourceConfig) *Scraper {
	return NewScraperWithClient(source, &http.Client{Timeout: source.GetTimeout()})
}

// NewScraperWithClient creates a scraper around an existing HTTP client.
func NewScraperWithClient(source config.SourceConfig, client *http.Client) *Scraper {
	helper := utils.NewHTTPHelper(source.UserAgent)

	return &Scraper{
		client:       client,
		source:       source,
		headers:      helper.BuildHeaders(map[string]string{"Accept": "application/json"}),
		bufferSizeKb: source.BufferSizeKb,
	}
}

// Fetch implements Fetcher.
func (s *Scraper) Fetch(ctx context.Context, ref models.CaseReference) ([]byte, error) {
	body, _, _, err := s.FetchWithMetrics(ctx, ref)

	return body, err
}

// FetchWithMetrics returns (body, statusCode, duration, error).
func (s *Scraper) FetchWithMetrics(ctx context.Context, ref models.CaseReference) ([]byte, int, time.Duration, error) {
	startTime := time.Now()
	target := s.source.CaseURL(ref.Term, ref.Docket)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, 0, time.Since(startTime), fmt.Errorf("failed to create request: %w", err)
	}

	req.Header = s.headers.Clone()

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, time.Since(startTime), fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, resp.StatusCode, time.Since(startTime), fmt.Errorf("%w: %s", ErrCaseNotFound, ref)
	case resp.StatusCode != http.StatusOK:
		return nil, resp.StatusCode, time.Since(startTime), fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	// bufferSizeKb is in KB; read one byte past it to detect overflow
	limit := int64(s.bufferSizeKb) * 1024

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, resp.StatusCode, time.Since(startTime), fmt.Errorf("failed to read response body: %w", err)
	}

	if int64(len(body)) > limit {
		return nil, resp.StatusCode, time.Since(startTime), fmt.Errorf("%w: %d KB", ErrResponseTooLarge, s.bufferSizeKb)
	}

	return body, resp.StatusCode, time.Since(startTime), nil
}

// FileFetcher reads a previously downloaded case document from disk.
type FileFetcher struct {
	Path string
}

// Fetch implements Fetcher. The reference only names the case; the path decides the content.
func (f FileFetcher) Fetch(_ context.Context, _ models.CaseReference) ([]byte, error) {
	content, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read local file %s: %w", f.Path, err)
	}

	return content, nil
}
