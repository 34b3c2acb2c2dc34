package feed

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed"
)

// Fetch queries the feed for the newest submissions across the configured
// categories and returns them in feed order, most recent first.
func (s *implSource) Fetch(ctx context.Context, maxResults int) ([]Paper, error) {
	queryURL, err := s.buildQueryURL(maxResults)
	if err != nil {
		return nil, fmt.Errorf("build feed query: %w", err)
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	s.logger.Debug(ctx, "Querying feed: %s", queryURL)

	parser := gofeed.NewParser()
	parser.Client = s.client

	parsed, err := parser.ParseURLWithContext(queryURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	papers := make([]Paper, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		papers = append(papers, Paper{
			ID:     item.GUID,
			Title:  strings.TrimSpace(item.Title),
			AbsURL: absURL(item),
		})
	}

	s.logger.Info(ctx, "Feed returned %d candidate(s)", len(papers))
	return papers, nil
}

func (s *implSource) buildQueryURL(maxResults int) (string, error) {
	base, err := url.Parse(s.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %s: %w", s.endpoint, err)
	}

	terms := make([]string, 0, len(s.categories))
	for _, cat := range s.categories {
		terms = append(terms, "cat:"+cat)
	}

	query := base.Query()
	query.Set("search_query", strings.Join(terms, " OR "))
	query.Set("start", "0")
	query.Set("max_results", strconv.Itoa(maxResults))
	query.Set("sortBy", "submittedDate")
	query.Set("sortOrder", "descending")
	base.RawQuery = query.Encode()

	return base.String(), nil
}

// absURL prefers the Atom entry id, which for arXiv is the abstract page
// URL, and falls back to the alternate link.
func absURL(item *gofeed.Item) string {
	if item.GUID != "" {
		return item.GUID
	}
	return item.Link
}
