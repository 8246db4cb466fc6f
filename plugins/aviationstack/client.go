package aviationstack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/firebase/genkit/go/genkit"
	"github.com/va6996/flightdesk/log"
	"github.com/va6996/flightdesk/tools"
)

const (
	// DefaultBaseURL is the aviationstack API root (free tier is HTTP only)
	DefaultBaseURL = "http://api.aviationstack.com/v1"

	// cacheTTL bounds how long an identical route search reuses the last
	// provider response. The API is paid and metered.
	cacheTTL = 60 * time.Second
)

// Client handles aviationstack API requests
type Client struct {
	AccessKey  string
	BaseURL    string
	HTTPClient *http.Client
	Limit      int
	Cache      *RouteCache

	FlightTool *SearchFlightsTool
}

// NewClient creates a new aviationstack client and registers its tools.
// An empty baseURL falls back to DefaultBaseURL.
func NewClient(accessKey, baseURL string, gk *genkit.Genkit, registry *tools.Registry, timeout, limit int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		AccessKey:  accessKey,
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		Limit:      limit,
		Cache:      NewRouteCache(),
	}

	c.initTools(gk, registry)

	return c
}

// initTools registers all aviationstack tools
func (c *Client) initTools(gk *genkit.Genkit, registry *tools.Registry) {
	if gk == nil || registry == nil {
		return
	}

	c.FlightTool = NewSearchFlightsTool(c, gk, registry)
}

// SearchFlights issues one GET to the provider for the given route.
// No retries are performed; every failure comes back as a *SearchError
// so the caller can render one fixed message per kind. A nil error with
// an empty slice is a valid outcome (no flights on the route).
func (c *Client) SearchFlights(ctx context.Context, departure, arrival string) ([]Flight, error) {
	if cached, found := c.Cache.Get(departure, arrival, c.Limit); found {
		log.Debugf(ctx, "SearchFlights: cache hit for %s-%s", departure, arrival)
		return cached, nil
	}

	params := url.Values{}
	params.Set("access_key", c.AccessKey)
	params.Set("dep_iata", departure)
	params.Set("arr_iata", arrival)
	params.Set("limit", strconv.Itoa(c.Limit))

	endpoint := fmt.Sprintf("%s/flights?%s", c.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	log.Debugf(ctx, "SearchFlights: searching flights from %s to %s", departure, arrival)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() || errors.Is(err, context.DeadlineExceeded) {
			log.Errorf(ctx, "SearchFlights: request timed out: %v", err)
			return nil, &SearchError{Kind: ErrorKindTimeout, Err: err}
		}
		log.Errorf(ctx, "SearchFlights: request failed: %v", err)
		return nil, &SearchError{Kind: ErrorKindNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Errorf(ctx, "SearchFlights: API returned status %s", resp.Status)
		return nil, &SearchError{Kind: ErrorKindHTTPStatus, StatusCode: resp.StatusCode}
	}

	var result FlightsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Errorf(ctx, "SearchFlights: failed to decode response: %v", err)
		return nil, &SearchError{Kind: ErrorKindNetwork, Err: err}
	}

	// A 200 status does not guarantee success: the provider reports
	// request-level failures inside the body. Checked before Data.
	if result.Error != nil {
		log.Errorf(ctx, "SearchFlights: API returned error in body: code=%s info=%s", result.Error.Code, result.Error.Info)
		info := result.Error.Info
		if info == "" {
			info = result.Error.Message
		}
		return nil, &SearchError{Kind: ErrorKindAPI, Code: result.Error.Code, Info: info}
	}

	c.Cache.Set(departure, arrival, c.Limit, result.Data, cacheTTL)

	log.Debugf(ctx, "SearchFlights: found %d flights for %s-%s", len(result.Data), departure, arrival)
	return result.Data, nil
}
