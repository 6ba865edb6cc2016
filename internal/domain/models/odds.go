package models

import (
	"encoding/json"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

var bookmakerTitles = map[string]string{
	"fanduel":    "FanDuel",
	"draftkings": "DraftKings",
	"betmgm":     "BetMGM",
	"betrivers":  "BetRivers",
	"pinnacle":   "Pinnacle",
	"bovada":     "Bovada",
}

// OddsPayload holds the odds provider records verbatim.
type OddsPayload []json.RawMessage

type OddsEventSummary struct {
	ID           string
	HomeTeam     string
	AwayTeam     string
	CommenceTime time.Time
	Bookmaker    string
	Markets      []OddsMarket
}

type OddsMarket struct {
	Key      string
	Outcomes []OddsOutcome
}

// OddsOutcome is one priced line. Point is set for spreads and totals.
type OddsOutcome struct {
	Name  string
	Price float64
	Point *float64
}

type oddsEvent struct {
	ID           string    `json:"id"`
	HomeTeam     string    `json:"home_team"`
	AwayTeam     string    `json:"away_team"`
	CommenceTime time.Time `json:"commence_time"`
	Bookmakers   []struct {
		Key     string `json:"key"`
		Title   string `json:"title"`
		Markets []struct {
			Key      string `json:"key"`
			Outcomes []struct {
				Name  string   `json:"name"`
				Price float64  `json:"price"`
				Point *float64 `json:"point"`
			} `json:"outcomes"`
		} `json:"markets"`
	} `json:"bookmakers"`
}

// Summaries peeks at the event header and the first bookmaker's markets for
// display. Records that do not look like events are skipped.
func (p OddsPayload) Summaries() []OddsEventSummary {
	out := make([]OddsEventSummary, 0, len(p))
	for _, raw := range p {
		var ev oddsEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			continue
		}
		if ev.HomeTeam == "" && ev.AwayTeam == "" {
			continue
		}

		summary := OddsEventSummary{
			ID:           ev.ID,
			HomeTeam:     ev.HomeTeam,
			AwayTeam:     ev.AwayTeam,
			CommenceTime: ev.CommenceTime,
		}
		if len(ev.Bookmakers) > 0 {
			bm := ev.Bookmakers[0]
			summary.Bookmaker = bm.Title
			if summary.Bookmaker == "" {
				summary.Bookmaker = BookmakerTitle(bm.Key)
			}
			for _, m := range bm.Markets {
				market := OddsMarket{Key: m.Key, Outcomes: make([]OddsOutcome, 0, len(m.Outcomes))}
				for _, o := range m.Outcomes {
					market.Outcomes = append(market.Outcomes, OddsOutcome{Name: o.Name, Price: o.Price, Point: o.Point})
				}
				summary.Markets = append(summary.Markets, market)
			}
		}
		out = append(out, summary)
	}
	return out
}

// BookmakerTitle turns an odds provider bookmaker key into a display name.
// An empty key means the default bookmaker, FanDuel.
func BookmakerTitle(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return bookmakerTitles["fanduel"]
	}
	if title, ok := bookmakerTitles[key]; ok {
		return title
	}
	first, size := utf8.DecodeRuneInString(key)
	return string(unicode.ToUpper(first)) + key[size:]
}
