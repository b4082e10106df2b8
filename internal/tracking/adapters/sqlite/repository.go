package sqlite

import (
	"context"

	"interaction-tracking-service/internal/tracking/core/domain"
	"interaction-tracking-service/internal/tracking/core/ports"
)

type TrackingRepository struct {
	db DB
}

func NewTrackingRepository(db DB) *TrackingRepository {
	return &TrackingRepository{db: db}
}

var _ ports.InteractionRepositoryPort = (*TrackingRepository)(nil)
var _ ports.UserRepositoryPort = (*TrackingRepository)(nil)

// SQL templates
const insertInteractionSQL = `
INSERT INTO user_interactions (
    user_uid,
    user_department,
    system_section,
    system_function,
    session_id,
    ip_address,
    user_agent,
    record_date
) VALUES (?, ?, ?, ?, ?, ?, ?, ?);
`

const upsertUserSQL = `
INSERT INTO users (uid, name, department)
VALUES (?, ?, ?)
ON CONFLICT (uid) DO UPDATE SET
    name       = excluded.name,
    department = excluded.department,
    updated_at = CURRENT_TIMESTAMP;
`

func (r *TrackingRepository) InsertInteraction(ctx context.Context, rec *domain.Interaction) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertInteractionSQL,
		rec.UserUID,
		rec.UserDepartment,
		rec.SystemSection,
		rec.SystemFunction,
		nullIfEmpty(rec.SessionID),
		nullIfEmpty(rec.IPAddress),
		nullIfEmpty(rec.UserAgent),
		rec.RecordDate,
	)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *TrackingRepository) UpsertUser(ctx context.Context, user domain.User) error {
	_, err := r.db.ExecContext(ctx, upsertUserSQL, user.UID, user.Name, user.Department)
	return err
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
