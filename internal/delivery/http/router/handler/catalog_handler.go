package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"cashreap/internal/delivery/http/response"
	"cashreap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultNearbyRadiusKm is used when the nearby query omits a radius.
const defaultNearbyRadiusKm = 10.0

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC        usecase.CatalogUsecase
	RecommendationUC usecase.RecommendationUsecase
	Logger           *slog.Logger
}

// CatalogHandler serves the public card, category and store catalog.
type CatalogHandler struct {
	catalogUC        usecase.CatalogUsecase
	recommendationUC usecase.RecommendationUsecase
	logger           *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC:        params.CatalogUC,
		recommendationUC: params.RecommendationUC,
		logger:           params.Logger,
	}
}

// ListCards returns the active card catalog.
func (h *CatalogHandler) ListCards(c echo.Context) error {
	cards, err := h.catalogUC.ListCards(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cards, "Cards retrieved successfully")
}

// GetCard returns a single card by its catalog ID.
func (h *CatalogHandler) GetCard(c echo.Context) error {
	card, err := h.catalogUC.GetCard(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, card, "Card retrieved successfully")
}

// ListCategories returns every merchant category.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// ListStores returns the whole store catalog.
func (h *CatalogHandler) ListStores(c echo.Context) error {
	stores, err := h.catalogUC.ListStores(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "Stores retrieved successfully")
}

// GetStore returns a store with its merchant category.
func (h *CatalogHandler) GetStore(c echo.Context) error {
	store, err := h.catalogUC.GetStore(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store retrieved successfully")
}

// SearchStores matches stores by name and annotates each hit with its card
// recommendations.
func (h *CatalogHandler) SearchStores(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "Query parameter 'q' is required")
	}

	hits, err := h.catalogUC.SearchStores(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, hits, "Stores searched successfully")
}

// NearbyStores returns stores within the requested radius of a point,
// nearest first.
func (h *CatalogHandler) NearbyStores(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Query parameter 'lat' must be a number")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Query parameter 'lng' must be a number")
	}

	radiusKm := defaultNearbyRadiusKm
	if raw := c.QueryParam("radius"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusKm <= 0 {
			return response.BadRequest(c, "VALIDATION_ERROR", "Query parameter 'radius' must be a positive number")
		}
	}

	stores, err := h.catalogUC.NearbyStores(c.Request().Context(), lat, lng, radiusKm)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "Nearby stores retrieved successfully")
}

// StoreRecommendations returns the best cards for a store's category.
func (h *CatalogHandler) StoreRecommendations(c echo.Context) error {
	output, err := h.recommendationUC.RecommendForStore(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Recommendations retrieved successfully")
}

// CategoryRecommendations returns the best cards for a merchant category.
func (h *CatalogHandler) CategoryRecommendations(c echo.Context) error {
	output, err := h.recommendationUC.RecommendForCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Recommendations retrieved successfully")
}
