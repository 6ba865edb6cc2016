package models

import "strings"

type Sport string

const (
	SportNBA    Sport = "nba"
	SportSoccer Sport = "soccer"
)

func ParseSport(value string) (Sport, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "nba", "basketball":
		return SportNBA, true
	case "soccer", "football":
		return SportSoccer, true
	default:
		return "", false
	}
}

func (s Sport) Title() string {
	switch s {
	case SportNBA:
		return "NBA"
	case SportSoccer:
		return "Soccer"
	default:
		return string(s)
	}
}

type TeamIdentity struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type League struct {
	ID           int64  `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	OddsSportKey string `json:"odds_sport_key" yaml:"odds_sport_key"`
}
