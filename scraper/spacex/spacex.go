package spacex

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-resty/resty/v2"

	"spacex-scraper/models"
	"spacex-scraper/utils"
)

// DefaultBaseURL is the SpaceX v4 REST API root.
const DefaultBaseURL = "https://api.spacexdata.com/v4"

// Launch is one entry of the primary listing, decoded down to the fields
// the pipeline consumes.
type Launch struct {
	Rocket       string             `json:"rocket"`
	Payloads     []string           `json:"payloads"`
	Launchpad    string             `json:"launchpad"`
	Cores        []models.CoreUsage `json:"cores"`
	FlightNumber int                `json:"flight_number"`
	DateUTC      string             `json:"date_utc"`
}

// Rocket is the slice of the rocket detail response the enricher consumes.
type Rocket struct {
	Name *string `json:"name"`
}

// Payload is the slice of the payload detail response the enricher consumes.
type Payload struct {
	MassKg *float64 `json:"mass_kg"`
	Orbit  *string  `json:"orbit"`
}

// Launchpad is the slice of the launchpad detail response the enricher consumes.
type Launchpad struct {
	Name      *string  `json:"name"`
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}

// Core is the slice of the core detail response the enricher consumes.
type Core struct {
	Block      *int    `json:"block"`
	ReuseCount *int    `json:"reuse_count"`
	Serial     *string `json:"serial"`
}

// Client fetches launch data from the SpaceX REST API.
//
// Detail look-ups follow an absent-on-failure contract: any transport
// error, non-2xx status or undecodable body is logged and surfaces as a
// nil result, never as an error. Only the primary listing fetch returns an
// error, because without it there is no pipeline run. Responses are
// memoized for the lifetime of the client, so parallel enrichment workers
// asking for the same rocket or launchpad hit the network once.
type Client struct {
	http   *resty.Client
	logger *utils.Logger

	mu    sync.RWMutex
	cache map[string][]byte
}

// NewClient creates a Client against the given API root.
func NewClient(baseURL string, logger *utils.Logger) *Client {
	http := resty.New()
	http.SetBaseURL(baseURL)

	return &Client{
		http:   http,
		logger: logger,
		cache:  make(map[string][]byte),
	}
}

// Launches fetches the primary listing of past launches. A failed fetch
// here aborts the whole API pipeline, so it is the one call that errors.
func (c *Client) Launches() ([]Launch, error) {
	body, ok := c.get("/launches/past")
	if !ok {
		return nil, fmt.Errorf("spacex: fetch primary launch listing")
	}

	var launches []Launch
	if err := json.Unmarshal(body, &launches); err != nil {
		return nil, fmt.Errorf("spacex: decode primary launch listing: %w", err)
	}
	return launches, nil
}

// Rocket looks up a rocket by id. Returns nil when the id is missing or
// the look-up failed.
func (c *Client) Rocket(id string) *Rocket {
	if id == "" {
		return nil
	}
	body, ok := c.get("/rockets/" + id)
	if !ok {
		return nil
	}
	return decode[Rocket](c, body)
}

// Payload looks up a payload by id. Returns nil when the id is missing or
// the look-up failed.
func (c *Client) Payload(id string) *Payload {
	if id == "" {
		return nil
	}
	body, ok := c.get("/payloads/" + id)
	if !ok {
		return nil
	}
	return decode[Payload](c, body)
}

// Launchpad looks up a launch site by id. Returns nil when the id is
// missing or the look-up failed.
func (c *Client) Launchpad(id string) *Launchpad {
	if id == "" {
		return nil
	}
	body, ok := c.get("/launchpads/" + id)
	if !ok {
		return nil
	}
	return decode[Launchpad](c, body)
}

// Core looks up a first-stage core by id. Returns nil when the id is
// missing or the look-up failed.
func (c *Client) Core(id string) *Core {
	if id == "" {
		return nil
	}
	body, ok := c.get("/cores/" + id)
	if !ok {
		return nil
	}
	return decode[Core](c, body)
}

// get performs a single GET with no retry. The second return value is
// false when the resource is absent for any reason.
func (c *Client) get(path string) ([]byte, bool) {
	c.mu.RLock()
	body, hit := c.cache[path]
	c.mu.RUnlock()
	if hit {
		return body, true
	}

	res, err := c.http.R().Get(path)
	if err != nil {
		c.logger.Error("[spacex] GET %s failed: %v", path, err)
		return nil, false
	}
	if res.IsError() {
		c.logger.Error("[spacex] GET %s returned status %d", path, res.StatusCode())
		return nil, false
	}

	body = res.Body()
	c.mu.Lock()
	c.cache[path] = body
	c.mu.Unlock()
	return body, true
}

func decode[T any](c *Client, body []byte) *T {
	v := new(T)
	if err := json.Unmarshal(body, v); err != nil {
		c.logger.Error("[spacex] decode response: %v", err)
		return nil
	}
	return v
}
