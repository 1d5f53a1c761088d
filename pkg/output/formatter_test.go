package output

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/hadari24/blackjack-network/pkg/stats"
)

func sampleRecords() []stats.MatchRecord {
	started, _ := time.Parse(time.RFC3339, "2026-03-01T12:00:00Z")
	return []stats.MatchRecord{
		{
			ID: "m1", ClientName: "Alice", Requested: 3,
			Wins: 2, Losses: 1,
			StartedAt: started, EndedAt: started.Add(time.Minute),
		},
		{
			ID: "m2", ClientName: "Bob", Requested: 1,
			Losses: 1, Fault: "connection closed",
			StartedAt: started.Add(time.Hour), EndedAt: started.Add(time.Hour + time.Second),
		},
	}
}

func TestTableFormatsRecords(t *testing.T) {
	out := NewFormatter("table").Format(sampleRecords())

	if !strings.Contains(out, "CLIENTNAME") {
		t.Errorf("missing header row:\n%s", out)
	}
	if !strings.Contains(out, "Alice") || !strings.Contains(out, "Bob") {
		t.Errorf("missing rows:\n%s", out)
	}
	if !strings.Contains(out, "2026-03-01T12:00:00Z") {
		t.Errorf("timestamp not rendered as RFC3339:\n%s", out)
	}
}

func TestTableFormatsStruct(t *testing.T) {
	sum := stats.Summary{DealerName: "Bossi", Matches: 4, PlayerWins: 7}
	out := NewFormatter("table").Format(sum)

	if !strings.Contains(out, "DealerName:") || !strings.Contains(out, "Bossi") {
		t.Errorf("missing dealer name:\n%s", out)
	}
	if !strings.Contains(out, "StartedAt:") || !strings.Contains(out, "-") {
		t.Errorf("zero timestamp not dashed:\n%s", out)
	}
}

func TestTableEmptySlice(t *testing.T) {
	out := NewFormatter("table").Format([]stats.MatchRecord{})
	if out != "No matches recorded.\n" {
		t.Errorf("out = %q", out)
	}
}

func TestJSONRoundTrips(t *testing.T) {
	out := NewFormatter("json").Format(sampleRecords())

	var recs []stats.MatchRecord
	if err := json.Unmarshal([]byte(out), &recs); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(recs) != 2 || recs[1].Fault != "connection closed" {
		t.Errorf("recs = %+v", recs)
	}
}

func TestYAMLFormat(t *testing.T) {
	out := NewFormatter("yaml").Format(stats.Summary{DealerName: "Bossi"})
	if !strings.Contains(out, "dealer_name: Bossi") {
		t.Errorf("out = %q", out)
	}
}

func TestDefaultIsTable(t *testing.T) {
	if _, ok := NewFormatter("nonsense").(*TableFormatter); !ok {
		t.Error("unknown format did not fall back to table")
	}
}
