package handler

import (
	"log/slog"
	"net/http"

	"cashreap/internal/delivery/http/middleware"
	"cashreap/internal/delivery/http/response"
	"cashreap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SavedCardHandlerParams holds dependencies for SavedCardHandler, injected by Fx.
type SavedCardHandlerParams struct {
	fx.In

	SavedCardUC usecase.SavedCardUsecase
	HistoryUC   usecase.SearchHistoryUsecase
	Logger      *slog.Logger
}

// SavedCardHandler serves the user's wallet and search history.
type SavedCardHandler struct {
	savedCardUC usecase.SavedCardUsecase
	historyUC   usecase.SearchHistoryUsecase
	logger      *slog.Logger
}

// NewSavedCardHandler is the constructor for SavedCardHandler.
func NewSavedCardHandler(params SavedCardHandlerParams) *SavedCardHandler {
	return &SavedCardHandler{
		savedCardUC: params.SavedCardUC,
		historyUC:   params.HistoryUC,
		logger:      params.Logger,
	}
}

// SaveCardRequest represents the request body for saving a card.
type SaveCardRequest struct {
	CardID string `json:"card_id" validate:"required,notblank"`
}

// RecordSearchRequest represents the request body for recording a store
// lookup.
type RecordSearchRequest struct {
	StoreID string `json:"store_id" validate:"required,notblank"`
}

// ListSaved returns the user's saved cards with their catalog rows.
func (h *SavedCardHandler) ListSaved(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	cards, err := h.savedCardUC.ListSaved(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cards, "Saved cards retrieved successfully")
}

// SaveCard adds a card to the user's wallet. Saving a card twice succeeds
// with the existing row.
func (h *SavedCardHandler) SaveCard(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SaveCardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid save card input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	saved, err := h.savedCardUC.SaveCard(c.Request().Context(), userID, req.CardID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, saved, "Card saved successfully")
}

// UnsaveCard removes a card from the user's wallet.
func (h *SavedCardHandler) UnsaveCard(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.savedCardUC.UnsaveCard(c.Request().Context(), userID, c.Param("cardId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Card removed"}, "Card removed successfully")
}

// ListEarnings projects each saved card's annual value from the user's
// spending profile.
func (h *SavedCardHandler) ListEarnings(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	earnings, err := h.savedCardUC.ListEarnings(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, earnings, "Earnings retrieved successfully")
}

// ListHistory returns the user's store lookups, most recent first.
func (h *SavedCardHandler) ListHistory(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	history, err := h.historyUC.ListHistory(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, history, "Search history retrieved successfully")
}

// RecordSearch records a store lookup in the user's history.
func (h *SavedCardHandler) RecordSearch(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RecordSearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search history input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	entry, err := h.historyUC.RecordSearch(c.Request().Context(), userID, req.StoreID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, entry, "Search recorded successfully")
}
