// Package statsapi is the HTTP client for the dealer's stats API. It is
// what the dashboard and the stats command use to read a running dealer's
// numbers without joining a match.
package statsapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hadari24/blackjack-network/pkg/stats"
)

// ErrNotFound is returned when the dealer has no record of the requested
// match.
var ErrNotFound = errors.New("statsapi: not found")

// Client talks to a dealer's stats server.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient creates a Client targeting the given base URL, for example
// "http://192.168.1.10:8080".
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Healthy probes the dealer's liveness endpoint.
func (c *Client) Healthy() error {
	var status map[string]string
	return c.getJSON("/healthz", &status)
}

// Summary fetches the dealer's aggregate numbers.
func (c *Client) Summary() (stats.Summary, error) {
	var sum stats.Summary
	err := c.getJSON("/api/v1/stats", &sum)
	return sum, err
}

// Session fetches the match being played right now. Returns ErrNotFound
// when the table is idle.
func (c *Client) Session() (stats.ActiveMatch, error) {
	var active stats.ActiveMatch
	err := c.getJSON("/api/v1/session", &active)
	return active, err
}

// Matches fetches up to limit recent match records, newest first.
// limit <= 0 uses the server default.
func (c *Client) Matches(limit int) ([]stats.MatchRecord, error) {
	path := "/api/v1/matches"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var recs []stats.MatchRecord
	err := c.getJSON(path, &recs)
	return recs, err
}

// Match fetches a single match record by id. Returns ErrNotFound if the
// dealer has no such match.
func (c *Client) Match(id string) (stats.MatchRecord, error) {
	var rec stats.MatchRecord
	err := c.getJSON("/api/v1/matches/"+url.PathEscape(id), &rec)
	return rec, err
}

// getJSON fetches path and decodes the JSON response into v.
func (c *Client) getJSON(path string, v interface{}) error {
	resp, err := c.HTTP.Get(c.BaseURL + path)
	if err != nil {
		return fmt.Errorf("statsapi: get %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("statsapi: get %s: unexpected status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("statsapi: decode %s: %w", path, err)
	}
	return nil
}
