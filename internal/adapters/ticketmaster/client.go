package ticketmaster

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"eventscout/internal/domain"
)

// DefaultBaseURL is the Discovery v2 events endpoint.
const DefaultBaseURL = "https://app.ticketmaster.com/discovery/v2"

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient returns a CatalogClient that calls the Ticketmaster Discovery API.
func NewClient(httpClient *http.Client, baseURL, apiKey string) domain.CatalogClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &client{httpClient: httpClient, baseURL: baseURL, apiKey: apiKey}
}

func (c *client) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	params := url.Values{}
	params.Set("id", eventID)
	params.Set("locale", "*")
	events, err := c.fetch(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, domain.ErrNotFound
	}
	return events[0], nil
}

func (c *client) SearchEvents(ctx context.Context, filters domain.SearchFilters) ([]*domain.Event, error) {
	params := url.Values{}
	if filters.CountryCode != "" {
		params.Set("countryCode", filters.CountryCode)
	}
	if filters.City != "" {
		params.Set("city", filters.City)
	}
	if filters.Category != "" {
		params.Set("classificationName", filters.Category)
	}
	if filters.Keyword != "" {
		params.Set("keyword", filters.Keyword)
	}
	if filters.Size > 0 {
		params.Set("size", strconv.Itoa(filters.Size))
	}
	if filters.Sort != "" {
		params.Set("sort", filters.Sort)
	}
	return c.fetch(ctx, params)
}

func (c *client) fetch(ctx context.Context, params url.Values) ([]*domain.Event, error) {
	params.Set("apikey", c.apiKey)
	reqURL := fmt.Sprintf("%s/events.json?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog api returned status: %d", resp.StatusCode)
	}

	var data searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	events := make([]*domain.Event, 0, len(data.Embedded.Events))
	for _, raw := range data.Embedded.Events {
		ev, err := mapEvent(raw)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

// searchResponse is the slice of the Discovery payload this client consumes.
type searchResponse struct {
	Embedded struct {
		Events []rawEvent `json:"events"`
	} `json:"_embedded"`
}

type rawEvent struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	URL   string `json:"url"`
	Info  string `json:"info"`
	Dates struct {
		Start struct {
			LocalDate string `json:"localDate"`
			LocalTime string `json:"localTime"`
		} `json:"start"`
	} `json:"dates"`
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
	PriceRanges []struct {
		Min      float64 `json:"min"`
		Max      float64 `json:"max"`
		Currency string  `json:"currency"`
	} `json:"priceRanges"`
	Classifications []struct {
		Segment struct {
			Name string `json:"name"`
		} `json:"segment"`
	} `json:"classifications"`
	Embedded struct {
		Venues []struct {
			Name string `json:"name"`
			City struct {
				Name string `json:"name"`
			} `json:"city"`
			Address struct {
				Line1 string `json:"line1"`
			} `json:"address"`
			Location struct {
				Latitude  string `json:"latitude"`
				Longitude string `json:"longitude"`
			} `json:"location"`
		} `json:"venues"`
	} `json:"_embedded"`
}

// mapEvent converts a raw Discovery event into the internal Event. Missing
// required fields surface ErrBadCatalogPayload instead of rendering empty.
func mapEvent(raw rawEvent) (*domain.Event, error) {
	if raw.ID == "" {
		return nil, fmt.Errorf("%w: event without id", domain.ErrBadCatalogPayload)
	}
	if raw.Name == "" {
		return nil, fmt.Errorf("%w: event %s without name", domain.ErrBadCatalogPayload, raw.ID)
	}
	if raw.Dates.Start.LocalDate == "" {
		return nil, fmt.Errorf("%w: event %s without start date", domain.ErrBadCatalogPayload, raw.ID)
	}
	localDate, err := time.Parse("2006-01-02", raw.Dates.Start.LocalDate)
	if err != nil {
		return nil, fmt.Errorf("%w: event %s has invalid start date %q", domain.ErrBadCatalogPayload, raw.ID, raw.Dates.Start.LocalDate)
	}

	ev := &domain.Event{
		ID:        raw.ID,
		Name:      raw.Name,
		LocalDate: localDate,
		LocalTime: raw.Dates.Start.LocalTime,
		Info:      raw.Info,
		URL:       raw.URL,
	}

	ev.ImageURLs = make([]string, 0, len(raw.Images))
	for _, img := range raw.Images {
		if img.URL != "" {
			ev.ImageURLs = append(ev.ImageURLs, img.URL)
		}
	}

	ev.Venues = make([]domain.Venue, 0, len(raw.Embedded.Venues))
	for _, v := range raw.Embedded.Venues {
		venue := domain.Venue{
			Name:    v.Name,
			City:    v.City.Name,
			Address: v.Address.Line1,
		}
		// Coordinates arrive as strings; venues without parseable ones keep nil.
		if lat, err := strconv.ParseFloat(v.Location.Latitude, 64); err == nil {
			if lng, err := strconv.ParseFloat(v.Location.Longitude, 64); err == nil {
				venue.Latitude = &lat
				venue.Longitude = &lng
			}
		}
		ev.Venues = append(ev.Venues, venue)
	}

	for _, pr := range raw.PriceRanges {
		ev.PriceRanges = append(ev.PriceRanges, domain.PriceRange{Min: pr.Min, Max: pr.Max, Currency: pr.Currency})
	}
	for _, cl := range raw.Classifications {
		if cl.Segment.Name != "" {
			ev.Segments = append(ev.Segments, cl.Segment.Name)
		}
	}
	return ev, nil
}
