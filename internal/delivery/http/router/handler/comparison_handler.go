package handler

import (
	"log/slog"
	"net/http"

	"cashreap/internal/delivery/http/middleware"
	"cashreap/internal/delivery/http/response"
	"cashreap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ComparisonHandlerParams holds dependencies for ComparisonHandler, injected by Fx.
type ComparisonHandlerParams struct {
	fx.In

	ComparisonUC usecase.ComparisonUsecase
	Logger       *slog.Logger
}

// ComparisonHandler serves saved card comparisons and their share codes.
type ComparisonHandler struct {
	comparisonUC usecase.ComparisonUsecase
	logger       *slog.Logger
}

// NewComparisonHandler is the constructor for ComparisonHandler.
func NewComparisonHandler(params ComparisonHandlerParams) *ComparisonHandler {
	return &ComparisonHandler{
		comparisonUC: params.ComparisonUC,
		logger:       params.Logger,
	}
}

// CreateComparisonRequest represents the request body for saving a
// comparison. At least two distinct cards are required.
type CreateComparisonRequest struct {
	CardIDs        []string `json:"card_ids" validate:"required,min=2,dive,notblank"`
	ComparisonName string   `json:"comparison_name" validate:"omitempty,max=200"`
}

// ListComparisons returns the user's comparisons with resolved cards.
func (h *ComparisonHandler) ListComparisons(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	comparisons, err := h.comparisonUC.ListComparisons(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comparisons, "Comparisons retrieved successfully")
}

// CreateComparison saves a new card comparison.
func (h *ComparisonHandler) CreateComparison(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateComparisonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comparison input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	comparison, err := h.comparisonUC.CreateComparison(c.Request().Context(), userID, usecase.CreateComparisonInput{
		CardIDs:        req.CardIDs,
		ComparisonName: req.ComparisonName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comparison, "Comparison created successfully")
}

// ShareQR renders the comparison's share URL as a QR code PNG.
func (h *ComparisonHandler) ShareQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	comparisonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid comparison ID")
	}

	png, err := h.comparisonUC.GenerateShareQR(c.Request().Context(), userID, comparisonID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
