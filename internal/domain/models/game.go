package models

import (
	"fmt"
	"time"
)

type Result string

const (
	ResultWin  Result = "Win"
	ResultLoss Result = "Loss"
	ResultDraw Result = "Draw"
)

type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

func (s Score) String() string {
	return fmt.Sprintf("%d-%d", s.Home, s.Away)
}

type GameRecord struct {
	Date     time.Time `json:"date"`
	Opponent string    `json:"opponent"`
	Result   Result    `json:"result"`
	Score    Score     `json:"score"`
}

// SideResult decides the outcome for the queried team given which side it played.
// Equal scores are a Loss here; callers that know a draw is possible check for it first.
func SideResult(isHome bool, home, away int) Result {
	if isHome && home > away {
		return ResultWin
	}
	if !isHome && away > home {
		return ResultWin
	}
	return ResultLoss
}
