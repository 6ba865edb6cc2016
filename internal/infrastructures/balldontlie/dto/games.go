package dto

type GamesQuery struct {
	TeamIDs []int64
	Seasons []int
	PerPage int
}

type GamesResponse struct {
	Data []Game `json:"data"`
	Meta Meta   `json:"meta"`
}

type Meta struct {
	NextCursor int `json:"next_cursor"`
	PerPage    int `json:"per_page"`
}

type Game struct {
	ID               int64  `json:"id"`
	Date             string `json:"date"`
	DateTime         string `json:"datetime"`
	Season           int    `json:"season"`
	Status           string `json:"status"`
	HomeTeam         Team   `json:"home_team"`
	VisitorTeam      Team   `json:"visitor_team"`
	HomeTeamScore    int    `json:"home_team_score"`
	VisitorTeamScore int    `json:"visitor_team_score"`
}

type Team struct {
	ID           int64  `json:"id"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Name         string `json:"name"`
	FullName     string `json:"full_name"`
}
