package handler

import (
	"log/slog"
	"net/http"
	"time"

	"cashreap/internal/delivery/http/middleware"
	"cashreap/internal/delivery/http/response"
	"cashreap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BonusHandlerParams holds dependencies for BonusHandler, injected by Fx.
type BonusHandlerParams struct {
	fx.In

	BonusUC usecase.BonusUsecase
	Logger  *slog.Logger
}

// BonusHandler serves welcome bonus spending trackers.
type BonusHandler struct {
	bonusUC usecase.BonusUsecase
	logger  *slog.Logger
}

// NewBonusHandler is the constructor for BonusHandler.
func NewBonusHandler(params BonusHandlerParams) *BonusHandler {
	return &BonusHandler{
		bonusUC: params.BonusUC,
		logger:  params.Logger,
	}
}

// CreateTrackingRequest represents the request body for starting a welcome
// bonus tracker.
type CreateTrackingRequest struct {
	CardID                string     `json:"card_id" validate:"required,notblank"`
	RequiredSpendingCents int64      `json:"required_spending_cents" validate:"required,gt=0"`
	TimeframeMonths       int        `json:"timeframe_months" validate:"gte=0,lte=24"`
	StartDate             *time.Time `json:"start_date"`
}

// UpdateSpendingRequest represents the request body for recording spend
// progress.
type UpdateSpendingRequest struct {
	CurrentSpendingCents int64 `json:"current_spending_cents" validate:"gte=0"`
}

// ListTracking returns the user's trackers with computed progress.
func (h *BonusHandler) ListTracking(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	tracking, err := h.bonusUC.ListTracking(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tracking, "Bonus tracking retrieved successfully")
}

// CreateTracking starts a welcome bonus tracker for a card.
func (h *BonusHandler) CreateTracking(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateTrackingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bonus tracking input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.CreateBonusTrackingInput{
		CardID:                req.CardID,
		RequiredSpendingCents: req.RequiredSpendingCents,
		TimeframeMonths:       req.TimeframeMonths,
	}
	if req.StartDate != nil {
		input.StartDate = *req.StartDate
	}

	tracking, err := h.bonusUC.CreateTracking(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, tracking, "Bonus tracking created successfully")
}

// UpdateSpending records the current spend toward a tracker's threshold.
func (h *BonusHandler) UpdateSpending(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	trackingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid tracking ID")
	}

	var req UpdateSpendingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bonus tracking input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	tracking, err := h.bonusUC.UpdateSpending(c.Request().Context(), userID, trackingID, req.CurrentSpendingCents)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tracking, "Bonus tracking updated successfully")
}
