package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/njprem/discover-zimbabwe/internal/service"
	"github.com/njprem/discover-zimbabwe/internal/util"
)

type DestinationHandler struct {
	catalog   *service.CatalogService
	favorites *service.FavoriteService
	reviews   *service.ReviewService
}

func RegisterDestinations(e *echo.Echo, catalog *service.CatalogService, favorites *service.FavoriteService, reviews *service.ReviewService) {
	handler := &DestinationHandler{
		catalog:   catalog,
		favorites: favorites,
		reviews:   reviews,
	}

	api := e.Group("/api/v1")
	api.GET("/categories", handler.listCategories)
	api.GET("/destinations", handler.listDestinations)
	api.GET("/destinations/:id", handler.getDestination)
}

func (h *DestinationHandler) listCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, util.Data("categories", h.catalog.Categories()))
}

func (h *DestinationHandler) listDestinations(c echo.Context) error {
	criteria, err := service.ParseCriteria(c.QueryParam("category"), c.QueryParam("query"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("unknown category"))
	}

	destinations := h.catalog.List(criteria)
	return c.JSON(http.StatusOK, util.Envelope{
		"destinations": destinations,
		"total":        len(destinations),
		"category":     criteria.Category,
		"query":        criteria.Search,
	})
}

func (h *DestinationHandler) getDestination(c echo.Context) error {
	id, err := parseDestinationID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	dest, err := h.catalog.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrDestinationNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("destination not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("could not load destination"))
	}

	ctx := c.Request().Context()
	favorited, err := h.favorites.Contains(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("could not load favorites"))
	}
	reviews, err := h.reviews.List(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("could not load reviews"))
	}
	summary, err := h.reviews.Summary(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("could not load reviews"))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"destination": dest,
		"favorited":   favorited,
		"reviews":     reviews,
		"summary":     summary,
	})
}

var errInvalidDestinationID = errors.New("destination id must be a positive integer")

func parseDestinationID(c echo.Context, param string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Param(param)))
	if err != nil || id <= 0 {
		return 0, errInvalidDestinationID
	}
	return id, nil
}
