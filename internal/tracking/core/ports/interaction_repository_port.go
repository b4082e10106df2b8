package ports

import (
	"context"

	"interaction-tracking-service/internal/tracking/core/domain"
)

type InteractionRepositoryPort interface {
	// InsertInteraction appends one interaction and returns the
	// store-assigned id. Ids are strictly increasing across appends.
	InsertInteraction(ctx context.Context, rec *domain.Interaction) (int64, error)
}

type UserRepositoryPort interface {
	// UpsertUser creates or refreshes a directory entry. Idempotent per uid:
	// created_at is preserved, name/department/updated_at are refreshed.
	UpsertUser(ctx context.Context, user domain.User) error
}
