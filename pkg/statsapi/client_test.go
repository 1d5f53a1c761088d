package statsapi

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hadari24/blackjack-network/pkg/httpapi"
	"github.com/hadari24/blackjack-network/pkg/stats"
)

// testServer runs the real stats API over httptest so the client is
// exercised against the handlers it will meet in production.
func testServer(t *testing.T) (*Client, *stats.Registry) {
	t.Helper()
	reg := stats.NewRegistry("Bossi")
	ts := httptest.NewServer(httpapi.NewServer(reg, httpapi.DefaultOptions()).Handler())
	t.Cleanup(ts.Close)
	return NewClient(ts.URL), reg
}

func TestClientSummary(t *testing.T) {
	c, reg := testServer(t)
	now := time.Now()
	reg.MatchEnded(stats.MatchRecord{
		ID: "m1", ClientName: "Alice", Requested: 3,
		Wins: 2, Ties: 1,
		StartedAt: now.Add(-time.Minute), EndedAt: now,
	})

	if err := c.Healthy(); err != nil {
		t.Fatalf("Healthy: %v", err)
	}

	sum, err := c.Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.DealerName != "Bossi" || sum.Matches != 1 || sum.PlayerWins != 2 {
		t.Errorf("summary = %+v, want Bossi with 1 match, 2 wins", sum)
	}
}

func TestClientMatches(t *testing.T) {
	c, reg := testServer(t)
	for _, name := range []string{"one", "two", "three"} {
		reg.MatchEnded(stats.MatchRecord{ID: name, ClientName: name, Wins: 1})
	}

	recs, err := c.Matches(2)
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if len(recs) != 2 || recs[0].ClientName != "three" {
		t.Errorf("recs = %+v, want three,two", recs)
	}

	rec, err := c.Match("two")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if rec.ClientName != "two" {
		t.Errorf("ClientName = %q, want two", rec.ClientName)
	}
}

func TestClientSession(t *testing.T) {
	c, reg := testServer(t)

	if _, err := c.Session(); !errors.Is(err, ErrNotFound) {
		t.Errorf("idle err = %v, want ErrNotFound", err)
	}

	reg.MatchStarted("m7", "10.0.0.5:6000")
	active, err := c.Session()
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if active.ID != "m7" || active.Player != "10.0.0.5:6000" {
		t.Errorf("active = %+v, want m7 by 10.0.0.5:6000", active)
	}
}

func TestClientNotFound(t *testing.T) {
	c, _ := testServer(t)

	_, err := c.Match("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestClientRefusedConnection(t *testing.T) {
	c := NewClient("http://127.0.0.1:1")

	if _, err := c.Summary(); err == nil {
		t.Error("Summary against a dead server returned no error")
	}
}
