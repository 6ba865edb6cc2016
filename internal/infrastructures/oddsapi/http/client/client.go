package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	derr "github.com/ozzus/bet-tracker/internal/domain/errors"
	"github.com/ozzus/bet-tracker/internal/domain/models"
	"github.com/ozzus/bet-tracker/internal/infrastructures/providerhttp"
)

const (
	ProviderName     = "the-odds-api"
	DefaultBaseURL   = "https://api.the-odds-api.com"
	DefaultRegions   = "us"
	DefaultBookmaker = "fanduel"
	markets          = "h2h,spreads,totals"
)

type Client struct {
	baseURL    string
	apiKey     string
	regions    string
	bookmaker  string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, regions, bookmaker string, httpClient *http.Client) *Client {
	if strings.TrimSpace(regions) == "" {
		regions = DefaultRegions
	}
	if strings.TrimSpace(bookmaker) == "" {
		bookmaker = DefaultBookmaker
	}
	if httpClient == nil {
		httpClient = providerhttp.NewHTTPClient(0)
	}

	return &Client{
		baseURL:    providerhttp.NormalizeBaseURL(baseURL, DefaultBaseURL),
		apiKey:     apiKey,
		regions:    strings.TrimSpace(regions),
		bookmaker:  strings.ToLower(strings.TrimSpace(bookmaker)),
		httpClient: httpClient,
	}
}

// FetchOdds returns the events for sportKey with odds from the configured
// bookmaker only. Records are kept verbatim.
func (c *Client) FetchOdds(ctx context.Context, sportKey string) (models.OddsPayload, error) {
	sportKey = strings.TrimSpace(sportKey)
	if sportKey == "" {
		return nil, fmt.Errorf("%w: empty sport key", derr.ErrUnknownSport)
	}

	u, err := url.Parse(c.baseURL + "/v4/sports/" + url.PathEscape(sportKey) + "/odds")
	if err != nil {
		return nil, fmt.Errorf("parse odds api base url: %w", err)
	}

	q := u.Query()
	q.Set("apiKey", c.apiKey)
	q.Set("regions", c.regions)
	q.Set("markets", markets)
	q.Set("bookmakers", c.bookmaker)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var payload models.OddsPayload
	if err := providerhttp.DoJSON(c.httpClient, req, ProviderName, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		payload = models.OddsPayload{}
	}

	return payload, nil
}

func (c *Client) Bookmaker() string {
	return c.bookmaker
}
