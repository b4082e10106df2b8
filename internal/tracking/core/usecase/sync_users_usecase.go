package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"interaction-tracking-service/internal/tracking/core/domain"
	"interaction-tracking-service/internal/tracking/core/ports"
)

var ErrUsersRequired = errors.New("users array is required")

type SyncUsersUseCase struct {
	guard *TokenGuard
	repo  ports.UserRepositoryPort
}

func NewSyncUsersUseCase(guard *TokenGuard, repo ports.UserRepositoryPort) *SyncUsersUseCase {
	return &SyncUsersUseCase{guard: guard, repo: repo}
}

type SyncUserItem struct {
	UID        string
	Name       string
	Department string
}

type SyncUsersInput struct {
	APIToken string
	Users    []SyncUserItem
}

type SyncUsersResult struct {
	BatchID    string
	Total      int
	Successful int
	Failed     int
	Errors     []string
}

// Execute processes the batch best-effort: each entry is validated and
// upserted independently, bad entries are accumulated into Errors and never
// abort the rest. Upsert is idempotent per uid, so processing order does not
// affect final state.
func (uc *SyncUsersUseCase) Execute(ctx context.Context, in SyncUsersInput) (SyncUsersResult, error) {
	var res SyncUsersResult

	if err := uc.guard.Check(in.APIToken); err != nil {
		return res, err
	}

	if in.Users == nil {
		return res, ErrUsersRequired
	}

	res.BatchID = uuid.NewString()
	res.Total = len(in.Users)

	for _, u := range in.Users {
		if u.UID == "" || u.Name == "" || u.Department == "" {
			res.Errors = append(res.Errors, fmt.Sprintf("missing required fields for user: uid=%q name=%q department=%q", u.UID, u.Name, u.Department))
			res.Failed++
			continue
		}

		user := domain.User{UID: u.UID, Name: u.Name, Department: u.Department}
		if err := uc.repo.UpsertUser(ctx, user); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("error processing user %s: %v", u.UID, err))
			res.Failed++
			continue
		}

		res.Successful++
	}

	return res, nil
}
