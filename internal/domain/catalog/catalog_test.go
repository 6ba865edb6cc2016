package catalog

import (
	"testing"

	derr "github.com/ozzus/bet-tracker/internal/domain/errors"
	"github.com/ozzus/bet-tracker/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidateRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
	}{
		{
			name:    "non_positive_team_id",
			catalog: Default().With([]models.TeamIdentity{{ID: 0, Name: "Knicks"}}, nil, nil),
		},
		{
			name:    "duplicate_team_id",
			catalog: Default().With([]models.TeamIdentity{{ID: 14, Name: "Clippers"}}, nil, nil),
		},
		{
			name:    "duplicate_team_name",
			catalog: Default().With(nil, []models.TeamIdentity{{ID: 50, Name: "  real   madrid "}}, nil),
		},
		{
			name:    "empty_team_name",
			catalog: Default().With(nil, []models.TeamIdentity{{ID: 50, Name: " "}}, nil),
		},
		{
			name:    "league_without_odds_key",
			catalog: Default().With(nil, nil, []models.League{{ID: 135, Name: "Serie A"}}),
		},
		{
			name:    "duplicate_league_id",
			catalog: Default().With(nil, nil, []models.League{{ID: 39, Name: "EPL", OddsSportKey: "soccer_epl"}}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.catalog.Validate())
		})
	}
}

func TestWithDoesNotMutateReceiver(t *testing.T) {
	base := Default()
	extended := base.With([]models.TeamIdentity{{ID: 20, Name: "Knicks"}}, nil, nil)

	assert.Len(t, base.NBATeams, 4)
	assert.Len(t, extended.NBATeams, 5)
	require.NoError(t, extended.Validate())
}

func TestTeamLookup(t *testing.T) {
	c := Default()

	team, err := c.Team(models.SportNBA, "lakers")
	require.NoError(t, err)
	assert.Equal(t, models.TeamIdentity{ID: 14, Name: "Lakers"}, team)

	team, err = c.Team(models.SportSoccer, "529")
	require.NoError(t, err)
	assert.Equal(t, "Barcelona", team.Name)

	_, err = c.Team(models.SportNBA, "Real Madrid")
	assert.ErrorIs(t, err, derr.ErrUnknownTeam)

	_, err = c.Team(models.Sport("hockey"), "Lakers")
	assert.ErrorIs(t, err, derr.ErrUnknownSport)
}

func TestLeagueLookup(t *testing.T) {
	c := Default()

	league, err := c.League("la liga")
	require.NoError(t, err)
	assert.Equal(t, "soccer_spain_la_liga", league.OddsSportKey)

	league, err = c.League("78")
	require.NoError(t, err)
	assert.Equal(t, "soccer_germany_bundesliga", league.OddsSportKey)

	_, err = c.League("Serie A")
	assert.ErrorIs(t, err, derr.ErrUnknownLeague)
}
