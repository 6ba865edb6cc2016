package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSideResult(t *testing.T) {
	tests := []struct {
		name   string
		isHome bool
		home   int
		away   int
		want   Result
	}{
		{name: "home_wins_as_home", isHome: true, home: 110, away: 102, want: ResultWin},
		{name: "away_wins_as_away", isHome: false, home: 99, away: 104, want: ResultWin},
		{name: "home_wins_as_away", isHome: false, home: 110, away: 102, want: ResultLoss},
		{name: "away_wins_as_home", isHome: true, home: 99, away: 104, want: ResultLoss},
		{name: "level_is_not_a_win", isHome: true, home: 0, away: 0, want: ResultLoss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SideResult(tt.isHome, tt.home, tt.away); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseSport(t *testing.T) {
	if s, ok := ParseSport(" NBA "); !ok || s != SportNBA {
		t.Fatalf("expected nba, got %q %v", s, ok)
	}
	if s, ok := ParseSport("Football"); !ok || s != SportSoccer {
		t.Fatalf("expected soccer, got %q %v", s, ok)
	}
	if _, ok := ParseSport("curling"); ok {
		t.Fatal("expected curling to be rejected")
	}
}

func TestOddsPayloadSummaries(t *testing.T) {
	payload := OddsPayload{
		json.RawMessage(`{"id":"abc","home_team":"Los Angeles Lakers","away_team":"Boston Celtics","commence_time":"2026-10-20T23:30:00Z","bookmakers":[]}`),
		json.RawMessage(`{"message":"not an event"}`),
		json.RawMessage(`[1,2,3]`),
	}

	got := payload.Summaries()
	if len(got) != 1 {
		t.Fatalf("expected one summary, got %d", len(got))
	}
	if got[0].HomeTeam != "Los Angeles Lakers" || got[0].AwayTeam != "Boston Celtics" {
		t.Fatalf("unexpected summary: %+v", got[0])
	}
	if !got[0].CommenceTime.Equal(time.Date(2026, 10, 20, 23, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected commence time: %v", got[0].CommenceTime)
	}
}

func TestScoreString(t *testing.T) {
	if got := (Score{Home: 2, Away: 1}).String(); got != "2-1" {
		t.Fatalf("expected 2-1, got %s", got)
	}
}

func TestBookmakerTitle(t *testing.T) {
	tests := map[string]string{
		"":             "FanDuel",
		"fanduel":      "FanDuel",
		" DraftKings ": "DraftKings",
		"williamhill":  "Williamhill",
		"élite":        "Élite",
	}
	for in, want := range tests {
		if got := BookmakerTitle(in); got != want {
			t.Fatalf("BookmakerTitle(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOddsPayloadSummariesMarkets(t *testing.T) {
	payload := OddsPayload{
		json.RawMessage(`{
			"id":"e1","home_team":"Los Angeles Lakers","away_team":"Boston Celtics","commence_time":"2026-10-20T23:30:00Z",
			"bookmakers":[{"key":"fanduel","title":"FanDuel","markets":[
				{"key":"h2h","outcomes":[{"name":"Los Angeles Lakers","price":1.65},{"name":"Boston Celtics","price":2.3}]},
				{"key":"totals","outcomes":[{"name":"Over","price":1.91,"point":221.5},{"name":"Under","price":1.91,"point":221.5}]}
			]}]
		}`),
	}

	got := payload.Summaries()
	if len(got) != 1 {
		t.Fatalf("expected one summary, got %d", len(got))
	}
	ev := got[0]
	if ev.Bookmaker != "FanDuel" || len(ev.Markets) != 2 {
		t.Fatalf("unexpected bookmaker markets: %+v", ev)
	}
	h2h := ev.Markets[0]
	if h2h.Key != "h2h" || len(h2h.Outcomes) != 2 || h2h.Outcomes[0].Price != 1.65 || h2h.Outcomes[0].Point != nil {
		t.Fatalf("unexpected h2h market: %+v", h2h)
	}
	over := ev.Markets[1].Outcomes[0]
	if over.Name != "Over" || over.Point == nil || *over.Point != 221.5 {
		t.Fatalf("unexpected totals outcome: %+v", over)
	}
}
