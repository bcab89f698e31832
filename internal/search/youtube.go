package search

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/ytget/spotify-dl/internal/errs"
)

// Defaults for the YouTube provider
const (
	DefaultResultsURL     = "https://www.youtube.com/results"
	DefaultRequestTimeout = 30 * time.Second
)

// videoIDPattern matches 11-character video identifiers on a search
// results page. Screen scraping is best-effort: there is no contract with
// the page layout, and zero candidates is a documented failure mode.
var videoIDPattern = regexp.MustCompile(`watch\?v=(\S{11})`)

// Provider finds candidate video IDs for a free-text query, in ranked
// order. Implementations are best-effort; an empty result means nothing
// usable was found.
type Provider interface {
	Search(ctx context.Context, query string) ([]string, error)
}

// YouTubeProvider scrapes the YouTube search results page for candidate
// video IDs.
type YouTubeProvider struct {
	resultsURL string
	httpClient *http.Client
}

// NewYouTubeProvider creates a provider targeting the public results page.
func NewYouTubeProvider() *YouTubeProvider {
	return &YouTubeProvider{
		resultsURL: DefaultResultsURL,
		httpClient: &http.Client{Timeout: DefaultRequestTimeout},
	}
}

// SetResultsURL overrides the results page endpoint. Used by tests.
func (p *YouTubeProvider) SetResultsURL(u string) {
	p.resultsURL = u
}

// Search queries the results page and extracts candidate video IDs in
// the order they appear, with duplicates removed.
func (p *YouTubeProvider) Search(ctx context.Context, query string) ([]string, error) {
	searchURL := fmt.Sprintf("%s?search_query=%s", p.resultsURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("search returned status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	ids := extractVideoIDs(string(body))
	if len(ids) == 0 {
		slog.Warn("search yielded no candidates", "query", query)
		return nil, errs.ErrNoCandidates
	}

	return ids, nil
}

// extractVideoIDs returns all distinct video IDs in appearance order.
func extractVideoIDs(page string) []string {
	matches := videoIDPattern.FindAllStringSubmatch(page, -1)

	seen := make(map[string]struct{}, len(matches))
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		id := m[1]
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
