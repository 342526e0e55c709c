package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// DefaultTimeout is the HTTP request timeout for URL ingestion.
const DefaultTimeout = 30 * time.Second

// userAgent identifies the scorer to job boards that reject anonymous
// clients.
const userAgent = "Mozilla/5.0 (compatible; ResumeScorer/1.0)"

// maxFetchBytes caps the response body read during URL ingestion.
const maxFetchBytes = 4 << 20

// ReadDocument loads a document from a file, converts it from HTML when it
// looks like markup, and returns cleaned text.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document %s: %w", path, err)
	}
	return PrepareDocument(string(data))
}

// PrepareDocument converts raw document content into cleaned plain text,
// stripping markup when the content looks like HTML.
func PrepareDocument(content string) (string, error) {
	if LooksLikeHTML(content) {
		text, err := HTMLToText(content)
		if err != nil {
			return "", err
		}
		return text, nil
	}
	return CleanText(content), nil
}

// FetchJobPosting retrieves a job posting from a URL and returns its cleaned
// main text.
func FetchJobPosting(ctx context.Context, urlStr string) (string, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid job posting URL %q", urlStr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for %s: %w", urlStr, err)
	}
	req.Header.Set("User-Agent", userAgent)

	client := &http.Client{Timeout: DefaultTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", urlStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: HTTP status %d", urlStr, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read response from %s: %w", urlStr, err)
	}

	content := string(body)
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") || LooksLikeHTML(content) {
		return HTMLToText(content)
	}
	return CleanText(content), nil
}
