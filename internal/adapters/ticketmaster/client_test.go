package ticketmaster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"eventscout/internal/domain"
)

const eventPayload = `{
	"_embedded": {
		"events": [
			{
				"id": "evt-1",
				"name": "Rock Night",
				"url": "https://example.com/evt-1",
				"info": "Doors at 19:00",
				"dates": {"start": {"localDate": "2025-06-10", "localTime": "20:00:00"}},
				"images": [{"url": "https://img.example.com/1.jpg"}],
				"priceRanges": [{"min": 25, "max": 90, "currency": "USD"}],
				"classifications": [{"segment": {"name": "Music"}}],
				"_embedded": {
					"venues": [
						{
							"name": "Grand Hall",
							"city": {"name": "Istanbul"},
							"address": {"line1": "Main St 1"},
							"location": {"latitude": "41.01", "longitude": "28.95"}
						}
					]
				}
			}
		]
	}
}`

func TestClient_GetEvent(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		check   func(t *testing.T, ev *domain.Event)
	}{
		{
			name:   "success maps all consumed fields",
			status: http.StatusOK,
			body:   eventPayload,
			check: func(t *testing.T, ev *domain.Event) {
				require.Equal(t, "evt-1", ev.ID)
				require.Equal(t, "Rock Night", ev.Name)
				require.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), ev.LocalDate)
				require.Equal(t, "20:00:00", ev.LocalTime)
				require.Equal(t, []string{"https://img.example.com/1.jpg"}, ev.ImageURLs)
				require.Equal(t, []string{"Music"}, ev.Segments)
				require.Len(t, ev.Venues, 1)
				require.Equal(t, "Grand Hall", ev.Venues[0].Name)
				require.Equal(t, "Istanbul", ev.Venues[0].City)
				require.NotNil(t, ev.Venues[0].Latitude)
				require.InDelta(t, 41.01, *ev.Venues[0].Latitude, 0.001)
				require.Len(t, ev.PriceRanges, 1)
				require.Equal(t, "USD", ev.PriceRanges[0].Currency)
				require.Equal(t, "Grand Hall, Istanbul", ev.PrimaryVenueName())
			},
		},
		{
			name:    "empty embedded list is not found",
			status:  http.StatusOK,
			body:    `{}`,
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "upstream 404 is not found",
			status:  http.StatusNotFound,
			body:    `{}`,
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "missing start date is a bad payload",
			status:  http.StatusOK,
			body:    `{"_embedded":{"events":[{"id":"evt-2","name":"No Date","dates":{"start":{}}}]}}`,
			wantErr: domain.ErrBadCatalogPayload,
		},
		{
			name:    "missing name is a bad payload",
			status:  http.StatusOK,
			body:    `{"_embedded":{"events":[{"id":"evt-3","dates":{"start":{"localDate":"2025-01-01"}}}]}}`,
			wantErr: domain.ErrBadCatalogPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/events.json", r.URL.Path)
				require.Equal(t, "test-key", r.URL.Query().Get("apikey"))
				require.Equal(t, "evt-1", r.URL.Query().Get("id"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.Client(), srv.URL, "test-key")
			ev, err := c.GetEvent(ctx, "evt-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, ev)
		})
	}
}

func TestClient_SearchEvents(t *testing.T) {
	ctx := context.Background()

	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		_, _ = w.Write([]byte(eventPayload))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, "test-key")
	events, err := c.SearchEvents(ctx, domain.SearchFilters{
		CountryCode: "TR",
		City:        "Istanbul",
		Category:    "Music",
		Size:        100,
		Sort:        "date,asc",
	})
	require.NoError(t, err)
	require.Len(t, events, 1)

	require.Equal(t, "TR", gotQuery["countryCode"])
	require.Equal(t, "Istanbul", gotQuery["city"])
	require.Equal(t, "Music", gotQuery["classificationName"])
	require.Equal(t, "100", gotQuery["size"])
	require.Equal(t, "date,asc", gotQuery["sort"])
	require.Equal(t, "test-key", gotQuery["apikey"])
	_, hasKeyword := gotQuery["keyword"]
	require.False(t, hasKeyword)
}

func TestClient_SearchEvents_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"page":{"totalElements":0}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, "test-key")
	events, err := c.SearchEvents(context.Background(), domain.SearchFilters{CountryCode: "US"})
	require.NoError(t, err)
	require.Empty(t, events)
}
