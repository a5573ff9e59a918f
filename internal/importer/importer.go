// Package importer fetches habit candidates from the remote feed.
//
// The feed is an untrusted HTTP endpoint expected to return a JSON
// array of objects with optional name, description and is_active
// fields. Anything else is a fetch failure.
package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/thenoetrevino/rutina/internal/models"
)

// DefaultTitle is assigned to feed records that arrive without a usable name.
const DefaultTitle = "Thói quen không tên"

var (
	// ErrBadStatus indicates a non-2xx response from the feed
	ErrBadStatus = errors.New("feed returned non-success status")

	// ErrNotArray indicates a response body that is not a JSON array
	ErrNotArray = errors.New("feed payload is not a JSON array")
)

// Client fetches habit candidates from a configured feed URL.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a feed client for the given URL.
func NewClient(url string) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// feedRecord mirrors one element of the feed array. Fields are typed
// `any` so a record with an unexpected shape degrades per-field instead
// of failing the whole decode.
type feedRecord struct {
	Name        any `json:"name"`
	Description any `json:"description"`
	IsActive    any `json:"is_active"`
}

// Fetch retrieves the feed and maps each record to a HabitCandidate.
// Title falls back to DefaultTitle when name is missing, empty, or not
// a string; description falls back to empty; active is true only when
// is_active is the literal JSON boolean true.
func (c *Client) Fetch(ctx context.Context) ([]models.HabitCandidate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed body: %w", err)
	}

	var records []feedRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotArray, err)
	}

	candidates := make([]models.HabitCandidate, 0, len(records))
	for _, rec := range records {
		candidates = append(candidates, mapRecord(rec))
	}

	return candidates, nil
}

func mapRecord(rec feedRecord) models.HabitCandidate {
	candidate := models.HabitCandidate{
		Title: DefaultTitle,
	}

	if name, ok := rec.Name.(string); ok && name != "" {
		candidate.Title = name
	}
	if description, ok := rec.Description.(string); ok {
		candidate.Description = description
	}
	// Strict coercion: "true", 1 and friends stay inactive.
	if active, ok := rec.IsActive.(bool); ok {
		candidate.Active = active
	}

	return candidate
}
