package catalog

import (
	"fmt"
	"strconv"
	"strings"

	derr "github.com/ozzus/bet-tracker/internal/domain/errors"
	"github.com/ozzus/bet-tracker/internal/domain/models"
)

const NBAOddsSportKey = "basketball_nba"

// Catalog maps display names to provider ids. It is built once at startup and
// read-only afterwards.
type Catalog struct {
	NBATeams    []models.TeamIdentity `json:"nba_teams"`
	SoccerTeams []models.TeamIdentity `json:"soccer_teams"`
	Leagues     []models.League       `json:"leagues"`
}

func Default() Catalog {
	return Catalog{
		NBATeams: []models.TeamIdentity{
			{ID: 14, Name: "Lakers"},
			{ID: 10, Name: "Warriors"},
			{ID: 2, Name: "Celtics"},
			{ID: 5, Name: "Bulls"},
		},
		SoccerTeams: []models.TeamIdentity{
			{ID: 541, Name: "Real Madrid"},
			{ID: 33, Name: "Manchester United"},
			{ID: 529, Name: "Barcelona"},
			{ID: 40, Name: "Liverpool"},
		},
		Leagues: []models.League{
			{ID: 39, Name: "Premier League", OddsSportKey: "soccer_epl"},
			{ID: 140, Name: "La Liga", OddsSportKey: "soccer_spain_la_liga"},
			{ID: 78, Name: "Bundesliga", OddsSportKey: "soccer_germany_bundesliga"},
		},
	}
}

// With returns a copy of c with extra entries appended.
func (c Catalog) With(nba, soccer []models.TeamIdentity, leagues []models.League) Catalog {
	out := Catalog{
		NBATeams:    append(append([]models.TeamIdentity{}, c.NBATeams...), nba...),
		SoccerTeams: append(append([]models.TeamIdentity{}, c.SoccerTeams...), soccer...),
		Leagues:     append(append([]models.League{}, c.Leagues...), leagues...),
	}
	return out
}

func (c Catalog) Validate() error {
	if err := validateTeams("nba", c.NBATeams); err != nil {
		return err
	}
	if err := validateTeams("soccer", c.SoccerTeams); err != nil {
		return err
	}

	ids := make(map[int64]struct{}, len(c.Leagues))
	names := make(map[string]struct{}, len(c.Leagues))
	for _, l := range c.Leagues {
		if l.ID <= 0 {
			return fmt.Errorf("league %q: id must be positive, got %d", l.Name, l.ID)
		}
		name := normalize(l.Name)
		if name == "" {
			return fmt.Errorf("league %d: name is empty", l.ID)
		}
		if strings.TrimSpace(l.OddsSportKey) == "" {
			return fmt.Errorf("league %q: odds sport key is empty", l.Name)
		}
		if _, ok := ids[l.ID]; ok {
			return fmt.Errorf("league id %d is duplicated", l.ID)
		}
		if _, ok := names[name]; ok {
			return fmt.Errorf("league name %q is duplicated", l.Name)
		}
		ids[l.ID] = struct{}{}
		names[name] = struct{}{}
	}

	return nil
}

func validateTeams(table string, teams []models.TeamIdentity) error {
	ids := make(map[int64]struct{}, len(teams))
	names := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		if t.ID <= 0 {
			return fmt.Errorf("%s team %q: id must be positive, got %d", table, t.Name, t.ID)
		}
		name := normalize(t.Name)
		if name == "" {
			return fmt.Errorf("%s team %d: name is empty", table, t.ID)
		}
		if _, ok := ids[t.ID]; ok {
			return fmt.Errorf("%s team id %d is duplicated", table, t.ID)
		}
		if _, ok := names[name]; ok {
			return fmt.Errorf("%s team name %q is duplicated", table, t.Name)
		}
		ids[t.ID] = struct{}{}
		names[name] = struct{}{}
	}
	return nil
}

func (c Catalog) Teams(sport models.Sport) ([]models.TeamIdentity, error) {
	switch sport {
	case models.SportNBA:
		return c.NBATeams, nil
	case models.SportSoccer:
		return c.SoccerTeams, nil
	default:
		return nil, fmt.Errorf("%w: %q", derr.ErrUnknownSport, sport)
	}
}

// Team resolves a display name (case-insensitive) or numeric id.
func (c Catalog) Team(sport models.Sport, query string) (models.TeamIdentity, error) {
	teams, err := c.Teams(sport)
	if err != nil {
		return models.TeamIdentity{}, err
	}

	id, isID := parseID(query)
	name := normalize(query)
	for _, t := range teams {
		if (isID && t.ID == id) || normalize(t.Name) == name {
			return t, nil
		}
	}

	return models.TeamIdentity{}, fmt.Errorf("%w: %s %q", derr.ErrUnknownTeam, sport, query)
}

func (c Catalog) League(query string) (models.League, error) {
	id, isID := parseID(query)
	name := normalize(query)
	for _, l := range c.Leagues {
		if (isID && l.ID == id) || normalize(l.Name) == name {
			return l, nil
		}
	}

	return models.League{}, fmt.Errorf("%w: %q", derr.ErrUnknownLeague, query)
}

func parseID(value string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func normalize(value string) string {
	return strings.ToLower(strings.Join(strings.Fields(value), " "))
}
