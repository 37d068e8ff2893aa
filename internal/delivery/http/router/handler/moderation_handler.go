package handler

import (
	"context"
	"net/http"

	deliverycontext "eats/internal/delivery/context"
	"eats/internal/delivery/http/response"
	"eats/internal/domain/entity"
	"eats/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ModerationHandlerParams holds dependencies for ModerationHandler, injected by Fx.
type ModerationHandlerParams struct {
	fx.In

	ReportUC    usecase.ReportUsecase
	AnalyticsUC usecase.AnalyticsUsecase
}

// ModerationHandler serves report review and analytics to owners.
type ModerationHandler struct {
	reportUC    usecase.ReportUsecase
	analyticsUC usecase.AnalyticsUsecase
}

// NewModerationHandler is the constructor for ModerationHandler
func NewModerationHandler(params ModerationHandlerParams) *ModerationHandler {
	return &ModerationHandler{
		reportUC:    params.ReportUC,
		analyticsUC: params.AnalyticsUC,
	}
}

// ListReports returns reports filtered by ?status= plus the pending count.
func (h *ModerationHandler) ListReports(c echo.Context) error {
	list, err := h.reportUC.List(c.Request().Context(), c.Param("id"), c.QueryParam("status"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list, "")
}

// ApproveReport accepts a pending report.
func (h *ModerationHandler) ApproveReport(c echo.Context) error {
	return h.resolve(c, h.reportUC.Approve, "Report approved")
}

// RejectReport dismisses a pending report.
func (h *ModerationHandler) RejectReport(c echo.Context) error {
	return h.resolve(c, h.reportUC.Reject, "Report rejected")
}

type resolveFunc func(ctx context.Context, restaurantID string, reportID, ownerID uuid.UUID) (*entity.Report, error)

func (h *ModerationHandler) resolve(c echo.Context, fn resolveFunc, message string) error {
	reportID, err := uuid.Parse(c.Param("reportId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid report ID")
	}

	owner := deliverycontext.GetOwner(c)
	if owner == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Owner information missing")
	}

	report, err := fn(c.Request().Context(), c.Param("id"), reportID, owner.OwnerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, message)
}

// GetAnalytics returns the engagement summary for ?period=day|week|month.
func (h *ModerationHandler) GetAnalytics(c echo.Context) error {
	period := entity.Period(c.QueryParam("period"))

	summary, err := h.analyticsUC.Summary(c.Request().Context(), c.Param("id"), period)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "")
}
