package handlers

import (
	"net/http"

	"github.com/ozzus/bet-tracker/internal/domain/catalog"
	"github.com/ozzus/bet-tracker/internal/domain/models"
)

type CatalogHandler struct {
	catalog catalog.Catalog
}

type catalogResponse struct {
	Sports  []sportResponse `json:"sports"`
	Leagues []models.League `json:"leagues"`
}

type sportResponse struct {
	Sport models.Sport          `json:"sport"`
	Title string                `json:"title"`
	Teams []models.TeamIdentity `json:"teams"`
}

func NewCatalogHandler(cat catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	resp := catalogResponse{
		Sports: []sportResponse{
			{Sport: models.SportNBA, Title: models.SportNBA.Title(), Teams: nonNil(h.catalog.NBATeams)},
			{Sport: models.SportSoccer, Title: models.SportSoccer.Title(), Teams: nonNil(h.catalog.SoccerTeams)},
		},
		Leagues: h.catalog.Leagues,
	}
	if resp.Leagues == nil {
		resp.Leagues = []models.League{}
	}

	writeJSON(w, http.StatusOK, resp)
}

func nonNil(teams []models.TeamIdentity) []models.TeamIdentity {
	if teams == nil {
		return []models.TeamIdentity{}
	}
	return teams
}
