package handler

import (
	"log/slog"
	"net/http"

	"cashreap/internal/delivery/http/middleware"
	"cashreap/internal/delivery/http/response"
	"cashreap/internal/domain/entity"
	"cashreap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SpendingHandlerParams holds dependencies for SpendingHandler, injected by Fx.
type SpendingHandlerParams struct {
	fx.In

	SpendingUC    usecase.SpendingUsecase
	PreferencesUC usecase.PreferencesUsecase
	Logger        *slog.Logger
}

// SpendingHandler serves spending profiles, analysis and preferences.
type SpendingHandler struct {
	spendingUC    usecase.SpendingUsecase
	preferencesUC usecase.PreferencesUsecase
	logger        *slog.Logger
}

// NewSpendingHandler is the constructor for SpendingHandler.
func NewSpendingHandler(params SpendingHandlerParams) *SpendingHandler {
	return &SpendingHandler{
		spendingUC:    params.SpendingUC,
		preferencesUC: params.PreferencesUC,
		logger:        params.Logger,
	}
}

// UpsertProfileRequest represents the request body for setting one
// category's monthly spend.
type UpsertProfileRequest struct {
	CategoryID           string `json:"category_id" validate:"required,notblank"`
	MonthlySpendingCents int64  `json:"monthly_spending_cents" validate:"gte=0"`
}

// UpdatePreferencesRequest represents the request body for updating the
// user's catalog filtering defaults.
type UpdatePreferencesRequest struct {
	CreditScoreRange     string `json:"credit_score_range" validate:"omitempty,max=20"`
	MaxAnnualFeeCents    int64  `json:"max_annual_fee_cents" validate:"gte=0"`
	PreferredIssuers     string `json:"preferred_issuers" validate:"omitempty,max=500"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
}

// ListProfiles returns the user's per-category monthly spend.
func (h *SpendingHandler) ListProfiles(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profiles, err := h.spendingUC.ListProfiles(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profiles, "Spending profiles retrieved successfully")
}

// UpsertProfile creates or replaces one category's monthly spend.
func (h *SpendingHandler) UpsertProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpsertProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid spending profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	profile, err := h.spendingUC.UpsertProfile(c.Request().Context(), userID, usecase.UpsertSpendingProfileInput{
		CategoryID:           req.CategoryID,
		MonthlySpendingCents: req.MonthlySpendingCents,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Spending profile saved successfully")
}

// Analyze returns per-category card advice derived from the user's
// spending profile.
func (h *SpendingHandler) Analyze(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	analysis, err := h.spendingUC.Analyze(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, analysis, "Spending analysis retrieved successfully")
}

// GetPreferences returns the user's preferences, or defaults when none
// were ever saved.
func (h *SpendingHandler) GetPreferences(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	prefs, err := h.preferencesUC.GetPreferences(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prefs, "Preferences retrieved successfully")
}

// UpdatePreferences replaces the user's preferences.
func (h *SpendingHandler) UpdatePreferences(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	prefs, err := h.preferencesUC.UpdatePreferences(c.Request().Context(), &entity.UserPreferences{
		UserID:               userID,
		CreditScoreRange:     req.CreditScoreRange,
		MaxAnnualFeeCents:    req.MaxAnnualFeeCents,
		PreferredIssuers:     req.PreferredIssuers,
		NotificationsEnabled: req.NotificationsEnabled,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prefs, "Preferences updated successfully")
}
