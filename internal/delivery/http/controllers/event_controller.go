package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	h "eventscout/internal/delivery/http/helpers"
	"eventscout/internal/delivery/http/middleware"
	"eventscout/internal/domain"
)

// ReviewRequest is the request body for POST /events/{eventID}/reviews
type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Validate implements Validator.
func (r ReviewRequest) Validate() []string {
	var errs []string
	if r.Rating < domain.MinRating || r.Rating > domain.MaxRating {
		errs = append(errs, "rating must be between 1 and 5")
	}
	if len(strings.TrimSpace(r.Comment)) < domain.MinCommentLength {
		errs = append(errs, "comment must be at least 3 characters")
	}
	return errs
}

type EventController struct {
	Logger       *slog.Logger
	Catalog      domain.CatalogService
	Reviews      domain.ReviewService
	Interactions domain.InteractionService
	Users        domain.UserRepository
}

func NewEventController(
	logger *slog.Logger,
	catalog domain.CatalogService,
	reviews domain.ReviewService,
	interactions domain.InteractionService,
	users domain.UserRepository,
) *EventController {
	return &EventController{
		Logger:       logger,
		Catalog:      catalog,
		Reviews:      reviews,
		Interactions: interactions,
		Users:        users,
	}
}

// Browse godoc
// @Summary Browse catalog events
// @Description Fetch events from the catalog, optionally narrowed by a name query and a category (segment). Category "all" matches everything.
// @Tags events
// @Produce json
// @Param countryCode query string false "ISO country code"
// @Param city query string false "City name"
// @Param category query string false "Segment filter, or \"all\""
// @Param q query string false "Case-insensitive name substring"
// @Param size query int false "Upstream fetch size"
// @Param sort query string false "Upstream sort key"
// @Success 200 {object} helpers.APIResponse "data contains the event list"
// @Failure 502 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) Browse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := domain.SearchFilters{
		CountryCode: q.Get("countryCode"),
		City:        q.Get("city"),
		Category:    q.Get("category"),
		Keyword:     q.Get("q"),
		Sort:        q.Get("sort"),
	}
	if s := q.Get("size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			filters.Size = v
		}
	}

	events, err := c.Catalog.Browse(r.Context(), filters, q.Get("q"), q.Get("category"))
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get a single event
// @Tags events
// @Produce json
// @Param eventID path string true "Catalog event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	event, err := c.Catalog.GetEvent(r.Context(), eventID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, event)
}

// Status godoc
// @Summary Get the caller's interaction status for an event
// @Description Reports whether the event is favorited, attended, and reminder-set. Probe failures degrade to absent.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Catalog event ID"
// @Success 200 {object} helpers.APIResponse "data contains the interaction status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /events/{eventID}/status [get]
func (c *EventController) Status(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	status := c.Interactions.Status(r.Context(), userID, r.PathValue("eventID"))
	h.WriteJSONSuccess(w, http.StatusOK, status)
}

// ListReviews godoc
// @Summary List reviews for an event
// @Description Returns the event's reviews newest first, plus the arithmetic-mean average rating.
// @Tags reviews
// @Produce json
// @Param eventID path string true "Catalog event ID"
// @Success 200 {object} helpers.APIResponse "data contains reviews and average_rating"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/reviews [get]
func (c *EventController) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := c.Reviews.ListByEvent(r.Context(), r.PathValue("eventID"))
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, reviews)
}

// CreateReview godoc
// @Summary Submit a review for an event
// @Description Appends a review with rating 1-5 and a comment of at least 3 characters. Reviews are never updated or deduplicated.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Catalog event ID"
// @Param body body ReviewRequest true "Review data"
// @Success 201 {object} helpers.APIResponse "data contains the created review"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /events/{eventID}/reviews [post]
func (c *EventController) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	var req ReviewRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}

	userName := ""
	if user, err := c.Users.GetByID(r.Context(), userID); err == nil {
		userName = strings.TrimSpace(user.FirstName + " " + user.LastName)
	}

	review, err := c.Reviews.Submit(r.Context(), r.PathValue("eventID"), userID, userName, req.Rating, req.Comment)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, review)
}
