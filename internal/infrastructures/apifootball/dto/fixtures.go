package dto

import (
	"bytes"
	"encoding/json"
)

type FixturesQuery struct {
	TeamID   int64
	LeagueID int64
	Last     int
}

type HeadToHeadQuery struct {
	TeamID     int64
	OpponentID int64
	Last       int
}

type FixturesResponse struct {
	Errors   json.RawMessage `json:"errors"`
	Results  int             `json:"results"`
	Response []Fixture       `json:"response"`
}

// ProviderErrors returns the provider's in-body error report. The field is an
// empty array on success and an object keyed by error kind on failure.
func (r FixturesResponse) ProviderErrors() string {
	raw := bytes.TrimSpace(r.Errors)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) || bytes.Equal(raw, []byte("[]")) || bytes.Equal(raw, []byte("{}")) {
		return ""
	}
	return string(raw)
}

type Fixture struct {
	Fixture FixtureInfo `json:"fixture"`
	League  LeagueInfo  `json:"league"`
	Teams   Teams       `json:"teams"`
	Goals   Goals       `json:"goals"`
	Score   Score       `json:"score"`
}

type FixtureInfo struct {
	ID     int64  `json:"id"`
	Date   string `json:"date"`
	Status Status `json:"status"`
}

type Status struct {
	Long  string `json:"long"`
	Short string `json:"short"`
}

type LeagueInfo struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Season int    `json:"season"`
}

type Teams struct {
	Home Team `json:"home"`
	Away Team `json:"away"`
}

type Team struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Winner *bool  `json:"winner"`
}

type Goals struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type Score struct {
	Halftime Goals `json:"halftime"`
	Fulltime Goals `json:"fulltime"`
}
