package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/njprem/discover-zimbabwe/internal/service"
	"github.com/njprem/discover-zimbabwe/internal/util"
)

type ReviewHandler struct {
	reviews *service.ReviewService
	catalog *service.CatalogService
	metrics *Metrics
}

// ratingValue accepts both 4 and "4"; the page posts select values as strings.
type ratingValue string

func (r *ratingValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = ratingValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*r = ratingValue(n.String())
	return nil
}

type reviewRequest struct {
	Rating  ratingValue `json:"rating"`
	Comment string      `json:"comment"`
}

func RegisterReviews(e *echo.Echo, reviews *service.ReviewService, catalog *service.CatalogService, metrics *Metrics) {
	handler := &ReviewHandler{
		reviews: reviews,
		catalog: catalog,
		metrics: metrics,
	}

	g := e.Group("/api/v1/destinations/:destination_id/reviews")
	g.GET("", handler.listReviews)
	g.POST("", handler.createReview)
}

func (h *ReviewHandler) listReviews(c echo.Context) error {
	id, err := parseDestinationID(c, "destination_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	if !h.catalog.Exists(id) {
		return c.JSON(http.StatusNotFound, util.Error("destination not found"))
	}

	ctx := c.Request().Context()
	reviews, err := h.reviews.List(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("could not load reviews"))
	}
	summary, err := h.reviews.Summary(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("could not load reviews"))
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"destination_id": id,
		"reviews":        reviews,
		"summary":        summary,
	})
}

func (h *ReviewHandler) createReview(c echo.Context) error {
	id, err := parseDestinationID(c, "destination_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	var req reviewRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	rating, err := service.ParseRating(string(req.Rating))
	if err != nil {
		// -1 is out of range, so Submit reports it after the session and
		// completeness checks.
		rating = -1
	}

	ctx := c.Request().Context()
	review, err := h.reviews.Submit(ctx, id, service.ReviewInput{Rating: rating, Comment: req.Comment})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewsLoginRequired):
			h.metrics.ledger("reviews", outcomeRejected)
			return c.JSON(http.StatusUnauthorized, util.Error(service.NoticeReviewsLoginRequired))
		case errors.Is(err, service.ErrReviewIncomplete):
			h.metrics.ledger("reviews", outcomeRejected)
			return c.JSON(http.StatusBadRequest, util.Error(service.NoticeFillAllFields))
		case errors.Is(err, service.ErrReviewValidation):
			h.metrics.ledger("reviews", outcomeRejected)
			return c.JSON(http.StatusBadRequest, util.Error("rating must be a whole number between 1 and 5"))
		case errors.Is(err, service.ErrDestinationNotFound):
			h.metrics.ledger("reviews", outcomeRejected)
			return c.JSON(http.StatusNotFound, util.Error("destination not found"))
		default:
			h.metrics.ledger("reviews", outcomeError)
			return c.JSON(http.StatusInternalServerError, util.Error("could not save review"))
		}
	}
	h.metrics.ledger("reviews", outcomeOK)

	summary, err := h.reviews.Summary(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("could not load reviews"))
	}
	c.Response().Header().Set(echo.HeaderLocation, "/api/v1/destinations/"+strconv.Itoa(id)+"/reviews")
	return c.JSON(http.StatusCreated, util.Data("review", review).
		With("summary", summary).
		With("message", "Review added"))
}
