package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/discover-zimbabwe/internal/domain"
	"github.com/njprem/discover-zimbabwe/internal/service"
	"github.com/njprem/discover-zimbabwe/internal/util"
)

type FavoriteHandler struct {
	favorites *service.FavoriteService
	catalog   *service.CatalogService
	metrics   *Metrics
}

func RegisterFavorites(e *echo.Echo, favorites *service.FavoriteService, catalog *service.CatalogService, metrics *Metrics) {
	handler := &FavoriteHandler{
		favorites: favorites,
		catalog:   catalog,
		metrics:   metrics,
	}

	g := e.Group("/api/v1/favorites")
	g.GET("", handler.listFavorites)
	g.POST("/:destination_id/toggle", handler.toggleFavorite)
}

func (h *FavoriteHandler) listFavorites(c echo.Context) error {
	ids, err := h.favorites.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("could not load favorites"))
	}

	// Stale IDs from an older catalog stay in the set but are not expanded.
	destinations := make([]domain.Destination, 0, len(ids))
	for _, id := range ids {
		if dest, err := h.catalog.Get(id); err == nil {
			destinations = append(destinations, *dest)
		}
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"favorites":    ids,
		"destinations": destinations,
	})
}

func (h *FavoriteHandler) toggleFavorite(c echo.Context) error {
	id, err := parseDestinationID(c, "destination_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	ctx := c.Request().Context()
	favorited, err := h.favorites.Toggle(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFavoritesLoginRequired):
			h.metrics.ledger("favorites", outcomeRejected)
			return c.JSON(http.StatusUnauthorized, util.Error(service.NoticeFavoritesLoginRequired))
		case errors.Is(err, service.ErrDestinationNotFound):
			h.metrics.ledger("favorites", outcomeRejected)
			return c.JSON(http.StatusNotFound, util.Error("destination not found"))
		default:
			h.metrics.ledger("favorites", outcomeError)
			return c.JSON(http.StatusInternalServerError, util.Error("could not update favorites"))
		}
	}
	h.metrics.ledger("favorites", outcomeOK)

	ids, err := h.favorites.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("could not load favorites"))
	}

	message := "Destination removed from Favorites"
	if favorited {
		message = "Destination saved to Favorites"
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"destination_id": id,
		"favorited":      favorited,
		"favorites":      ids,
		"message":        message,
	})
}
