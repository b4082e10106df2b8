package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"interaction-tracking-service/internal/reporting/core/domain"
	"interaction-tracking-service/internal/reporting/core/usecase"
)

type BuildDashboardUseCase interface {
	Execute(ctx context.Context, date string) (*domain.Dashboard, error)
}

type BuildRangeReportUseCase interface {
	Execute(ctx context.Context, startDate, endDate string) (*domain.RangeReport, error)
}

type ReportingHandler struct {
	dashboardUC BuildDashboardUseCase
	rangeUC     BuildRangeReportUseCase
	logger      *zap.Logger
}

func NewReportingHandler(dashboardUC BuildDashboardUseCase, rangeUC BuildRangeReportUseCase, logger *zap.Logger) *ReportingHandler {
	return &ReportingHandler{dashboardUC: dashboardUC, rangeUC: rangeUC, logger: logger}
}

// GetDashboard godoc
// @Summary Daily analytics dashboard
// @Description Returns all per-day aggregations plus summary totals and top lists
// @Tags Reporting
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} DashboardResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/dashboard [get]
func (h *ReportingHandler) GetDashboard(c *fiber.Ctx) error {
	date := c.Query("date", "")

	d, err := h.dashboardUC.Execute(c.UserContext(), date)
	if err != nil {
		h.logger.Error("dashboard build failed", zap.String("date", date), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(toDashboardResponse(d))
}

// BuildRangeReport godoc
// @Summary Date-range interaction report
// @Description Returns raw interactions in the range plus a day-bucketed time series
// @Tags Reporting
// @Accept json
// @Produce json
// @Param request body RangeReportRequest true "Date range"
// @Success 200 {object} RangeReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/dashboard/range [post]
func (h *ReportingHandler) BuildRangeReport(c *fiber.Ctx) error {
	var req RangeReportRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid JSON payload",
		})
	}

	r, err := h.rangeUC.Execute(c.UserContext(), req.StartDate, req.EndDate)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingDateRange) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "start_date and end_date are required",
			})
		}
		h.logger.Error("range report failed",
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(toRangeReportResponse(r))
}

func toDashboardResponse(d *domain.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		Success: true,
		Date:    d.Date,
		Summary: SummaryResponse{
			TotalInteractions: d.Summary.TotalInteractions,
			ActiveUsers:       d.Summary.ActiveUsers,
			Departments:       d.Summary.Departments,
			SystemSections:    d.Summary.SystemSections,
		},
		UserStats:          make([]UserStatResponse, 0, len(d.UserStats)),
		DepartmentStats:    make([]DepartmentStatResponse, 0, len(d.DepartmentStats)),
		SystemSectionStats: make([]SectionStatResponse, 0, len(d.SystemSectionStats)),
		FunctionStats:      toFunctionStatResponses(d.FunctionStats),
		RecentInteractions: toInteractionResponses(d.RecentInteractions),
		UserProductivity:   toProductivityResponses(d.UserProductivity),
		HourlyActivity:     make([]HourlyActivityResponse, 0, len(d.HourlyActivity)),
		TopUsers:           toProductivityResponses(d.TopUsers),
		TopFunctions:       toFunctionStatResponses(d.TopFunctions),
	}

	for _, s := range d.UserStats {
		resp.UserStats = append(resp.UserStats, UserStatResponse{
			UserUID:             s.UserUID,
			UserDepartment:      s.UserDepartment,
			TotalInteractions:   s.TotalInteractions,
			UniqueFunctionsUsed: s.UniqueFunctionsUsed,
			Date:                s.Date,
		})
	}
	for _, s := range d.DepartmentStats {
		resp.DepartmentStats = append(resp.DepartmentStats, DepartmentStatResponse{
			UserDepartment:    s.UserDepartment,
			TotalInteractions: s.TotalInteractions,
			ActiveUsers:       s.ActiveUsers,
			Date:              s.Date,
		})
	}
	for _, s := range d.SystemSectionStats {
		resp.SystemSectionStats = append(resp.SystemSectionStats, SectionStatResponse{
			SystemSection:     s.SystemSection,
			TotalInteractions: s.TotalInteractions,
			UniqueUsers:       s.UniqueUsers,
			Date:              s.Date,
		})
	}
	for _, s := range d.HourlyActivity {
		resp.HourlyActivity = append(resp.HourlyActivity, HourlyActivityResponse{
			Hour:             s.Hour,
			InteractionCount: s.InteractionCount,
		})
	}

	return resp
}

func toRangeReportResponse(r *domain.RangeReport) RangeReportResponse {
	resp := RangeReportResponse{
		Success: true,
		DateRange: DateRangeResponse{
			StartDate: r.StartDate,
			EndDate:   r.EndDate,
		},
		TotalInteractions: r.TotalInteractions,
		TimeSeries:        make([]DailyBucketResponse, 0, len(r.TimeSeries)),
		RawInteractions:   toInteractionResponses(r.RawInteractions),
	}

	for _, b := range r.TimeSeries {
		resp.TimeSeries = append(resp.TimeSeries, DailyBucketResponse{
			Date:              b.Date,
			TotalInteractions: b.TotalInteractions,
			UniqueUsers:       b.UniqueUsers,
			Departments:       b.Departments,
			SystemSections:    b.SystemSections,
		})
	}

	return resp
}

func toFunctionStatResponses(list []domain.FunctionStat) []FunctionStatResponse {
	out := make([]FunctionStatResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FunctionStatResponse{
			SystemFunction: s.SystemFunction,
			SystemSection:  s.SystemSection,
			UsageCount:     s.UsageCount,
			UniqueUsers:    s.UniqueUsers,
			Date:           s.Date,
		})
	}
	return out
}

func toProductivityResponses(list []domain.UserProductivity) []UserProductivityResponse {
	out := make([]UserProductivityResponse, 0, len(list))
	for _, s := range list {
		out = append(out, UserProductivityResponse{
			UserUID:             s.UserUID,
			UserName:            s.UserName,
			UserDepartment:      s.UserDepartment,
			QuotationsGenerated: s.QuotationsGenerated,
			ReportsWritten:      s.ReportsWritten,
			TotalInteractions:   s.TotalInteractions,
			Date:                s.Date,
		})
	}
	return out
}

func toInteractionResponses(list []domain.InteractionDetail) []InteractionResponse {
	out := make([]InteractionResponse, 0, len(list))
	for _, d := range list {
		out = append(out, InteractionResponse{
			ID:             d.ID,
			UserUID:        d.UserUID,
			UserName:       d.UserName,
			UserDepartment: d.UserDepartment,
			SystemSection:  d.SystemSection,
			SystemFunction: d.SystemFunction,
			SessionID:      d.SessionID,
			IPAddress:      d.IPAddress,
			UserAgent:      d.UserAgent,
			RecordDate:     d.RecordDate.UTC().Format(time.RFC3339),
		})
	}
	return out
}
