package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	derr "github.com/ozzus/bet-tracker/internal/domain/errors"
	"github.com/ozzus/bet-tracker/internal/infrastructures/apifootball/dto"
	"github.com/ozzus/bet-tracker/internal/infrastructures/providerhttp"
)

const (
	ProviderName   = "api-football"
	DefaultBaseURL = "https://v3.football.api-sports.io"
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

func (c *Client) GetFixtures(ctx context.Context, query dto.FixturesQuery) (dto.FixturesResponse, error) {
	params := url.Values{}
	params.Set("team", strconv.FormatInt(query.TeamID, 10))
	params.Set("league", strconv.FormatInt(query.LeagueID, 10))
	if query.Last > 0 {
		params.Set("last", strconv.Itoa(query.Last))
	}

	return c.get(ctx, "/fixtures", params)
}

func (c *Client) GetHeadToHead(ctx context.Context, query dto.HeadToHeadQuery) (dto.FixturesResponse, error) {
	params := url.Values{}
	params.Set("h2h", fmt.Sprintf("%d-%d", query.TeamID, query.OpponentID))
	if query.Last > 0 {
		params.Set("last", strconv.Itoa(query.Last))
	}

	return c.get(ctx, "/fixtures/headtohead", params)
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (dto.FixturesResponse, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return dto.FixturesResponse{}, fmt.Errorf("parse api-football base url: %w", err)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return dto.FixturesResponse{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-apisports-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	var resp dto.FixturesResponse
	if err := providerhttp.DoJSON(c.httpClient, req, ProviderName, &resp); err != nil {
		return dto.FixturesResponse{}, err
	}

	// api-football reports bad keys and plan limits with a 200 and an errors object.
	if msg := resp.ProviderErrors(); msg != "" {
		return dto.FixturesResponse{}, derr.NewStatusError(ProviderName, http.StatusOK, msg)
	}

	return resp, nil
}
