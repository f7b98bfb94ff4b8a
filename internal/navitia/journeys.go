package navitia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/Nathalie1962/recenseur-backend/internal/metrics"
)

const (
	defaultBaseURL     = "https://api.navitia.io/v1"
	defaultCoverage    = "fr-idf"
	defaultMaxJourneys = 3
	defaultTimeout     = 20 * time.Second

	// departureHour/Minute fix the requested departure at 07:30 on the
	// current calendar date, a representative weekday commute.
	departureHour   = 7
	departureMinute = 30
)

// JourneysClient implements JourneyPlanner using the Navitia v1 journeys
// API. The API key is sent as the basic-auth username with an empty
// password.
type JourneysClient struct {
	key         string
	baseURL     string
	coverage    string
	maxJourneys int
	client      *http.Client
	limiter     *rate.Limiter
	nowFunc     func() time.Time
}

// JourneysOption configures the JourneysClient.
type JourneysOption func(*JourneysClient)

// WithBaseURL overrides the default Navitia endpoint.
func WithBaseURL(u string) JourneysOption {
	return func(c *JourneysClient) {
		c.baseURL = u
	}
}

// WithCoverage overrides the default coverage region.
func WithCoverage(region string) JourneysOption {
	return func(c *JourneysClient) {
		c.coverage = region
	}
}

// WithMaxJourneys overrides how many journey candidates are requested.
func WithMaxJourneys(n int) JourneysOption {
	return func(c *JourneysClient) {
		c.maxJourneys = n
	}
}

// WithTimeout overrides the default HTTP client timeout.
func WithTimeout(d time.Duration) JourneysOption {
	return func(c *JourneysClient) {
		c.client.Timeout = d
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) JourneysOption {
	return func(c *JourneysClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a limiter that paces API calls. When set, every
// Journeys() call goes through Wait() first.
func WithRateLimiter(l *rate.Limiter) JourneysOption {
	return func(c *JourneysClient) {
		c.limiter = l
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) JourneysOption {
	return func(c *JourneysClient) {
		c.nowFunc = f
	}
}

// NewJourneysClient creates a new Navitia journeys client.
func NewJourneysClient(key string, opts ...JourneysOption) *JourneysClient {
	c := &JourneysClient{
		key:         key,
		baseURL:     defaultBaseURL,
		coverage:    defaultCoverage,
		maxJourneys: defaultMaxJourneys,
		client:      &http.Client{Timeout: defaultTimeout},
		nowFunc:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type journeysAPIResponse struct {
	Journeys []struct {
		Duration int `json:"duration"`
	} `json:"journeys"`
}

// Journeys implements JourneyPlanner by querying the Navitia journeys API
// for departures at 07:30 on the current calendar date. A single attempt
// is made; there is no retry.
func (c *JourneysClient) Journeys(
	ctx context.Context,
	req JourneyRequest,
) ([]Journey, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	metrics.NavitiaCallsTotal.Inc()

	u := c.buildJourneysURL(req)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	httpReq.SetBasicAuth(c.key, "")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		metrics.NavitiaErrorsTotal.Inc()
		return nil, fmt.Errorf("executing journeys request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.NavitiaErrorsTotal.Inc()
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.NavitiaErrorsTotal.Inc()
		return nil, fmt.Errorf(
			"navitia API error (status %d): %s",
			resp.StatusCode,
			string(body),
		)
	}

	var apiResp journeysAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		metrics.NavitiaErrorsTotal.Inc()
		return nil, fmt.Errorf("parsing journeys response: %w", err)
	}

	journeys := make([]Journey, 0, len(apiResp.Journeys))
	for _, j := range apiResp.Journeys {
		journeys = append(journeys, Journey{DurationSeconds: j.Duration})
	}

	return journeys, nil
}

func (c *JourneysClient) buildJourneysURL(req JourneyRequest) string {
	now := c.nowFunc()
	departure := time.Date(
		now.Year(), now.Month(), now.Day(),
		departureHour, departureMinute, 0, 0,
		now.Location(),
	)

	params := url.Values{}
	params.Set("from", req.From)
	params.Set("to", req.To)
	params.Set("datetime_represents", "departure")
	params.Set("datetime", departure.Format("20060102T150405"))
	params.Set("max_nb_journeys", strconv.Itoa(c.maxJourneys))

	return fmt.Sprintf(
		"%s/coverage/%s/journeys?%s",
		c.baseURL, c.coverage, params.Encode(),
	)
}
