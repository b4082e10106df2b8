package ports

import (
	"context"

	"interaction-tracking-service/internal/reporting/core/domain"
)

// StatsReaderPort exposes the aggregation queries over the interaction log.
// Every single-date query takes a YYYY-MM-DD date (UTC calendar day) and
// returns an empty slice for a date with no interactions, never an error.
type StatsReaderPort interface {
	UserStats(ctx context.Context, date string) ([]domain.UserStat, error)
	DepartmentStats(ctx context.Context, date string) ([]domain.DepartmentStat, error)
	SectionStats(ctx context.Context, date string) ([]domain.SectionStat, error)
	FunctionStats(ctx context.Context, date string) ([]domain.FunctionStat, error)
	UserProductivity(ctx context.Context, date string) ([]domain.UserProductivity, error)
	HourlyActivity(ctx context.Context, date string) ([]domain.HourlyActivity, error)
	RecentInteractions(ctx context.Context, limit int) ([]domain.InteractionDetail, error)
	InteractionsInRange(ctx context.Context, startDate, endDate string) ([]domain.InteractionDetail, error)
}
