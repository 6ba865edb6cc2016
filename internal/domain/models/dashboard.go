package models

import "time"

type Suggestion struct {
	Text    string  `json:"text"`
	WinRate float64 `json:"win_rate"`
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
}

type SuggestionRecord struct {
	ID         int64      `json:"id"`
	Sport      Sport      `json:"sport"`
	TeamID     int64      `json:"team_id"`
	TeamName   string     `json:"team_name"`
	Suggestion Suggestion `json:"suggestion"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Diagnostic reports a failed provider call. StatusCode is zero when no response arrived.
type Diagnostic struct {
	Source     string `json:"source"`
	StatusCode int    `json:"status_code,omitempty"`
	Message    string `json:"message"`
}

type Selection struct {
	Sport    Sport
	Team     string
	Opponent string
	League   string
	LastN    int
}

type Dashboard struct {
	Sport       Sport        `json:"sport"`
	Team        TeamIdentity `json:"team"`
	Opponent    TeamIdentity `json:"opponent"`
	League      *League      `json:"league,omitempty"`
	LastN       int          `json:"last_n"`
	Bookmaker   string       `json:"bookmaker"`
	Records     []GameRecord `json:"records"`
	HeadToHead  []GameRecord `json:"head_to_head"`
	Odds        OddsPayload  `json:"odds"`
	Suggestion  Suggestion   `json:"suggestion"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}
