package fiber

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"interaction-tracking-service/internal/tracking/core/usecase"
)

type RecordInteractionUseCase interface {
	Execute(ctx context.Context, in usecase.RecordInteractionInput) (usecase.RecordInteractionResult, error)
}

type SyncUsersUseCase interface {
	Execute(ctx context.Context, in usecase.SyncUsersInput) (usecase.SyncUsersResult, error)
}

type TrackingHandler struct {
	recordUC RecordInteractionUseCase
	syncUC   SyncUsersUseCase
	logger   *zap.Logger
}

func NewTrackingHandler(recordUC RecordInteractionUseCase, syncUC SyncUsersUseCase, logger *zap.Logger) *TrackingHandler {
	return &TrackingHandler{recordUC: recordUC, syncUC: syncUC, logger: logger}
}

// TrackInteraction godoc
// @Summary Record one user interaction
// @Description Appends an interaction record; requires the shared API token
// @Tags Tracking
// @Accept json
// @Produce json
// @Param request body TrackInteractionRequest true "Interaction payload"
// @Success 200 {object} TrackInteractionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/track [post]
func (h *TrackingHandler) TrackInteraction(c *fiber.Ctx) error {
	var req TrackInteractionRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid JSON payload",
		})
	}

	input := usecase.RecordInteractionInput{
		APIToken:       req.APIToken,
		UserUID:        req.UserUID,
		UserDepartment: req.UserDepartment,
		SystemSection:  req.SystemSection,
		SystemFunction: req.SystemFunction,
		SessionID:      req.SessionID,
		IPAddress:      clientIP(c),
		UserAgent:      c.Get(fiber.HeaderUserAgent),
	}

	res, err := h.recordUC.Execute(c.UserContext(), input)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(TrackInteractionResponse{
		Success:       true,
		Message:       "Interaction tracked successfully",
		InteractionID: res.ID,
		Timestamp:     res.RecordedAt.UTC().Format(time.RFC3339),
	})
}

// SyncUsers godoc
// @Summary Bulk sync the user directory
// @Description Upserts users best-effort; one bad entry never aborts the batch
// @Tags Tracking
// @Accept json
// @Produce json
// @Param request body SyncUsersRequest true "User sync payload"
// @Success 200 {object} SyncUsersResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/sync-users [post]
func (h *TrackingHandler) SyncUsers(c *fiber.Ctx) error {
	var req SyncUsersRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid JSON payload",
		})
	}

	items := make([]usecase.SyncUserItem, len(req.Users))
	for i, u := range req.Users {
		items[i] = usecase.SyncUserItem{
			UID:        u.UID,
			Name:       u.Name,
			Department: u.Department,
		}
	}

	input := usecase.SyncUsersInput{APIToken: req.APIToken}
	if req.Users != nil {
		input.Users = items
	}

	res, err := h.syncUC.Execute(c.UserContext(), input)
	if err != nil {
		return h.writeError(c, err)
	}

	h.logger.Info("user sync completed",
		zap.String("batch_id", res.BatchID),
		zap.Int("successful", res.Successful),
		zap.Int("failed", res.Failed),
	)

	return c.Status(http.StatusOK).JSON(SyncUsersResponse{
		Success: true,
		Message: fmt.Sprintf("User sync completed: %d successful, %d errors", res.Successful, res.Failed),
		BatchID: res.BatchID,
		Stats: SyncUsersStats{
			TotalUsers: res.Total,
			Successful: res.Successful,
			Errors:     res.Failed,
		},
		Errors: res.Errors,
	})
}

// TrackUsage describes the track endpoint for GET callers.
func (h *TrackingHandler) TrackUsage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":         "Interaction Tracking API - Track Endpoint",
		"usage":           "POST /api/track",
		"required_fields": []string{"api_token", "user_uid", "user_department", "system_section", "system_function"},
		"optional_fields": []string{"session_id"},
	})
}

// SyncUsersUsage describes the sync endpoint for GET callers.
func (h *TrackingHandler) SyncUsersUsage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":         "Interaction Tracking API - Sync Users Endpoint",
		"usage":           "POST /api/sync-users",
		"required_fields": []string{"api_token", "users"},
		"user_format": fiber.Map{
			"uid":        "string (required)",
			"name":       "string (required)",
			"department": "string (required)",
		},
	})
}

func (h *TrackingHandler) writeError(c *fiber.Ctx, err error) error {
	var valErr *usecase.ValidationError

	switch {
	case errors.Is(err, usecase.ErrInvalidToken):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Message: "Invalid API token",
		})
	case errors.Is(err, usecase.ErrUsersRequired):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Users array is required",
		})
	case errors.As(err, &valErr):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: valErr.Error(),
		})
	default:
		h.logger.Error("ingestion failed", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
		})
	}
}

// clientIP prefers proxy-forwarded headers and falls back to the peer address.
func clientIP(c *fiber.Ctx) string {
	if ip := c.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := c.Get("X-Real-Ip"); ip != "" {
		return ip
	}
	return c.IP()
}
