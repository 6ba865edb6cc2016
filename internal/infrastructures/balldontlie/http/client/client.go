package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ozzus/bet-tracker/internal/infrastructures/balldontlie/dto"
	"github.com/ozzus/bet-tracker/internal/infrastructures/providerhttp"
)

const (
	ProviderName   = "balldontlie"
	DefaultBaseURL = "https://api.balldontlie.io"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = providerhttp.NewHTTPClient(0)
	}

	return &Client{
		baseURL:    providerhttp.NormalizeBaseURL(baseURL, DefaultBaseURL),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

func (c *Client) GetGames(ctx context.Context, query dto.GamesQuery) (dto.GamesResponse, error) {
	reqURL, err := c.buildGamesURL(query)
	if err != nil {
		return dto.GamesResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return dto.GamesResponse{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json")

	var resp dto.GamesResponse
	if err := providerhttp.DoJSON(c.httpClient, req, ProviderName, &resp); err != nil {
		return dto.GamesResponse{}, err
	}

	return resp, nil
}

func (c *Client) buildGamesURL(query dto.GamesQuery) (string, error) {
	u, err := url.Parse(c.baseURL + "/v1/games")
	if err != nil {
		return "", fmt.Errorf("parse balldontlie base url: %w", err)
	}

	q := u.Query()
	for _, id := range query.TeamIDs {
		q.Add("team_ids[]", strconv.FormatInt(id, 10))
	}
	for _, season := range query.Seasons {
		q.Add("seasons[]", strconv.Itoa(season))
	}
	if query.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(query.PerPage))
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}
