// Package omdb wraps the OMDb HTTP api. Responses are parsed defensively:
// missing keys, "N/A" sentinels in any casing and numeric-as-string ratings
// are normalized into nil optionals instead of zero values.
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"movie_catalog/model"
)

type IClient interface {
	Search(ctx context.Context, query string) ([]model.CandidateSummary, error)
	FetchDetails(ctx context.Context, externalId string) (*model.MovieDetails, error)
}

// HTTPDoer describes the HTTP client used to reach the OMDb api.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseUrl string
	apiKey  string
	client  HTTPDoer
}

func NewClient(baseUrl string, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseUrl: strings.TrimRight(strings.TrimSpace(baseUrl), "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

func NewClientWithDoer(baseUrl string, apiKey string, client HTTPDoer) *Client {
	return &Client{
		baseUrl: strings.TrimRight(strings.TrimSpace(baseUrl), "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

//------------------------------------------
//------------------------------------------

type searchResponse struct {
	Search       []searchItem `json:"Search"`
	TotalResults string       `json:"totalResults"`
	Response     string       `json:"Response"`
	Error        string       `json:"Error"`
}

type searchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbId string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

type detailsResponse struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Director   string `json:"Director"`
	Poster     string `json:"Poster"`
	ImdbRating string `json:"imdbRating"`
	ImdbId     string `json:"imdbID"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

//------------------------------------------
//------------------------------------------

// Search returns candidate movies matching the query. An empty slice means
// zero matches, which is distinct from a transport error.
func (c *Client) Search(ctx context.Context, query string) ([]model.CandidateSummary, error) {
	reqUrl := fmt.Sprintf("%s/?apikey=%s&type=movie&s=%s",
		c.baseUrl, url.QueryEscape(c.apiKey), url.QueryEscape(query))

	body, err := c.get(ctx, reqUrl)
	if err != nil {
		return nil, err
	}

	var res searchResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("%w: malformed search response: %v", model.ErrMetadataUnavailable, err)
	}

	if !strings.EqualFold(res.Response, "true") {
		// OMDb reports zero matches as Response=False + Error="Movie not found!"
		if strings.Contains(strings.ToLower(res.Error), "not found") {
			return []model.CandidateSummary{}, nil
		}
		return nil, fmt.Errorf("%w: %s", model.ErrMetadataUnavailable, res.Error)
	}

	candidates := make([]model.CandidateSummary, 0, len(res.Search))
	for i := range res.Search {
		if isMissing(res.Search[i].ImdbId) || isMissing(res.Search[i].Title) {
			continue
		}
		candidates = append(candidates, model.CandidateSummary{
			ExternalId: strings.TrimSpace(res.Search[i].ImdbId),
			Title:      strings.TrimSpace(res.Search[i].Title),
			Year:       parseYear(res.Search[i].Year),
			PosterUrl:  parseOptional(res.Search[i].Poster),
		})
	}
	return candidates, nil
}

// FetchDetails returns the full normalized metadata record for an external id.
func (c *Client) FetchDetails(ctx context.Context, externalId string) (*model.MovieDetails, error) {
	reqUrl := fmt.Sprintf("%s/?apikey=%s&plot=short&i=%s",
		c.baseUrl, url.QueryEscape(c.apiKey), url.QueryEscape(externalId))

	body, err := c.get(ctx, reqUrl)
	if err != nil {
		return nil, err
	}

	var res detailsResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("%w: malformed details response: %v", model.ErrMetadataUnavailable, err)
	}

	if !strings.EqualFold(res.Response, "true") {
		if strings.Contains(strings.ToLower(res.Error), "not found") ||
			strings.Contains(strings.ToLower(res.Error), "incorrect imdb id") {
			return nil, model.ErrMetadataNotFound
		}
		return nil, fmt.Errorf("%w: %s", model.ErrMetadataUnavailable, res.Error)
	}
	if isMissing(res.Title) {
		// a record without a title cannot become a catalog movie
		return nil, model.ErrMetadataNotFound
	}

	details := &model.MovieDetails{
		ExternalId:     strings.TrimSpace(res.ImdbId),
		Title:          strings.TrimSpace(res.Title),
		Year:           parseYear(res.Year),
		Director:       parseOptional(res.Director),
		PosterUrl:      parseOptional(res.Poster),
		ExternalRating: parseRating(res.ImdbRating),
	}
	if details.ExternalId == "" {
		details.ExternalId = externalId
	}
	return details, nil
}

func (c *Client) get(ctx context.Context, reqUrl string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqUrl, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMetadataUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: omdb returned status %d", model.ErrMetadataUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMetadataUnavailable, err)
	}
	return body, nil
}
