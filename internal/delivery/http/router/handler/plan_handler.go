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

// PlanHandlerParams holds dependencies for PlanHandler, injected by Fx.
type PlanHandlerParams struct {
	fx.In

	PlanUC usecase.PlanUsecase
	Logger *slog.Logger
}

// PlanHandler serves purchase plans and their card advice.
type PlanHandler struct {
	planUC usecase.PlanUsecase
	logger *slog.Logger
}

// NewPlanHandler is the constructor for PlanHandler.
func NewPlanHandler(params PlanHandlerParams) *PlanHandler {
	return &PlanHandler{
		planUC: params.PlanUC,
		logger: params.Logger,
	}
}

// CreatePlanRequest represents the request body for creating a plan.
type CreatePlanRequest struct {
	Title       string     `json:"title" validate:"required,notblank,max=200"`
	AmountCents int64      `json:"amount_cents" validate:"required,gt=0"`
	StoreID     *string    `json:"store_id"`
	CategoryID  *string    `json:"category_id"`
	TargetDate  *time.Time `json:"target_date"`
}

// UpdatePlanRequest patches a plan; absent fields stay unchanged.
type UpdatePlanRequest struct {
	Title       *string    `json:"title" validate:"omitempty,notblank,max=200"`
	AmountCents *int64     `json:"amount_cents" validate:"omitempty,gt=0"`
	StoreID     *string    `json:"store_id"`
	CategoryID  *string    `json:"category_id"`
	TargetDate  *time.Time `json:"target_date"`
	IsCompleted *bool      `json:"is_completed"`
}

// ListPlans returns the user's plans annotated with recommendations.
func (h *PlanHandler) ListPlans(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	plans, err := h.planUC.ListPlans(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plans, "Purchase plans retrieved successfully")
}

// CreatePlan creates a new purchase plan.
func (h *PlanHandler) CreatePlan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreatePlanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase plan input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	plan, err := h.planUC.CreatePlan(c.Request().Context(), userID, usecase.CreatePlanInput{
		Title:       req.Title,
		AmountCents: req.AmountCents,
		StoreID:     req.StoreID,
		CategoryID:  req.CategoryID,
		TargetDate:  req.TargetDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, plan, "Purchase plan created successfully")
}

// UpdatePlan patches an existing plan owned by the user.
func (h *PlanHandler) UpdatePlan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid plan ID")
	}

	var req UpdatePlanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase plan input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	plan, err := h.planUC.UpdatePlan(c.Request().Context(), userID, planID, usecase.UpdatePlanInput{
		Title:       req.Title,
		AmountCents: req.AmountCents,
		StoreID:     req.StoreID,
		CategoryID:  req.CategoryID,
		TargetDate:  req.TargetDate,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, "Purchase plan updated successfully")
}

// DeletePlan removes a plan owned by the user.
func (h *PlanHandler) DeletePlan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid plan ID")
	}

	if err := h.planUC.DeletePlan(c.Request().Context(), userID, planID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Plan deleted"}, "Purchase plan deleted successfully")
}
