package usecase

import (
	"context"
	"strings"
	"time"

	"interaction-tracking-service/internal/tracking/core/domain"
	"interaction-tracking-service/internal/tracking/core/ports"
)

// ValidationError names the required fields missing from an ingestion call.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

type RecordInteractionUseCase struct {
	guard *TokenGuard
	repo  ports.InteractionRepositoryPort
}

func NewRecordInteractionUseCase(guard *TokenGuard, repo ports.InteractionRepositoryPort) *RecordInteractionUseCase {
	return &RecordInteractionUseCase{guard: guard, repo: repo}
}

type RecordInteractionInput struct {
	APIToken       string
	UserUID        string
	UserDepartment string
	SystemSection  string
	SystemFunction string
	SessionID      string
	IPAddress      string
	UserAgent      string
}

type RecordInteractionResult struct {
	ID         int64
	RecordedAt time.Time
}

func (uc *RecordInteractionUseCase) Execute(ctx context.Context, in RecordInteractionInput) (RecordInteractionResult, error) {
	var res RecordInteractionResult

	if err := uc.guard.Check(in.APIToken); err != nil {
		return res, err
	}

	if err := validateInteraction(in); err != nil {
		return res, err
	}

	rec := &domain.Interaction{
		UserUID:        in.UserUID,
		UserDepartment: in.UserDepartment,
		SystemSection:  in.SystemSection,
		SystemFunction: in.SystemFunction,
		SessionID:      in.SessionID,
		IPAddress:      in.IPAddress,
		UserAgent:      in.UserAgent,
		RecordDate:     time.Now().UTC(),
	}

	id, err := uc.repo.InsertInteraction(ctx, rec)
	if err != nil {
		return res, err
	}

	res.ID = id
	res.RecordedAt = rec.RecordDate
	return res, nil
}

func validateInteraction(in RecordInteractionInput) error {
	var missing []string

	if in.UserUID == "" {
		missing = append(missing, "user_uid")
	}
	if in.UserDepartment == "" {
		missing = append(missing, "user_department")
	}
	if in.SystemSection == "" {
		missing = append(missing, "system_section")
	}
	if in.SystemFunction == "" {
		missing = append(missing, "system_function")
	}

	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
