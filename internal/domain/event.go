package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors shared across the catalog and store layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrBadCatalogPayload = errors.New("malformed catalog payload")
)

// Venue is a place where a catalog event takes place.
type Venue struct {
	Name      string   `json:"name"`
	City      string   `json:"city,omitempty"`
	Address   string   `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// PriceRange is a min/max ticket price band in a single currency.
type PriceRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// Event is an event from the external catalog. It is not owned by this
// system: it is refetched per request and treated as immutable.
// swagger:model Event
type Event struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	LocalDate   time.Time    `json:"local_date"`
	LocalTime   string       `json:"local_time,omitempty"`
	ImageURLs   []string     `json:"image_urls"`
	Venues      []Venue      `json:"venues"`
	PriceRanges []PriceRange `json:"price_ranges,omitempty"`
	Segments    []string     `json:"segments,omitempty"`
	Info        string       `json:"info,omitempty"`
	URL         string       `json:"url,omitempty"`
}

// PrimaryImageURL returns the first image URL, or "" if the event has none.
func (e *Event) PrimaryImageURL() string {
	if len(e.ImageURLs) == 0 {
		return ""
	}
	return e.ImageURLs[0]
}

// PrimaryVenueName returns the first venue's name, with the city appended
// when known, or "" if the event has no venues.
func (e *Event) PrimaryVenueName() string {
	if len(e.Venues) == 0 {
		return ""
	}
	v := e.Venues[0]
	if v.City != "" {
		return v.Name + ", " + v.City
	}
	return v.Name
}

// SearchFilters are the catalog-side query parameters for a list fetch.
// Zero values are omitted from the upstream request.
type SearchFilters struct {
	CountryCode string
	City        string
	Category    string
	Keyword     string
	Size        int
	Sort        string
}

// CatalogClient fetches events from the external catalog API.
type CatalogClient interface {
	// GetEvent looks up a single event by catalog ID. Returns ErrNotFound
	// when the catalog has no event with that ID.
	GetEvent(ctx context.Context, eventID string) (*Event, error)
	// SearchEvents fetches a bounded list of events matching the filters.
	SearchEvents(ctx context.Context, filters SearchFilters) ([]*Event, error)
}

// CatalogService combines the one-shot catalog fetch with the in-memory
// query/category filter applied on top of it.
type CatalogService interface {
	// Browse fetches events with the given upstream filters, then narrows the
	// result by query (case-insensitive substring of the name) and category
	// (exact segment match, "all" matches everything).
	Browse(ctx context.Context, filters SearchFilters, query, category string) ([]*Event, error)
	// GetEvent looks up a single event by catalog ID.
	GetEvent(ctx context.Context, eventID string) (*Event, error)
}
