package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"interaction-tracking-service/internal/reporting/core/domain"
	"interaction-tracking-service/internal/reporting/core/ports"
)

const (
	recentInteractionsLimit = 50
	topListSize             = 10
)

type BuildDashboardUseCase struct {
	reader ports.StatsReaderPort
}

func NewBuildDashboardUseCase(reader ports.StatsReaderPort) *BuildDashboardUseCase {
	return &BuildDashboardUseCase{reader: reader}
}

// Execute fans out all single-date aggregations plus the recent-interactions
// lookup concurrently and joins them into one payload. Any sub-error fails
// the whole call; a partial dashboard is never returned. The sub-results are
// independent reads with no transaction across them, so under concurrent
// writes the payload may reflect a slightly inconsistent snapshot.
func (uc *BuildDashboardUseCase) Execute(ctx context.Context, date string) (*domain.Dashboard, error) {
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	var (
		userStats        []domain.UserStat
		departmentStats  []domain.DepartmentStat
		sectionStats     []domain.SectionStat
		functionStats    []domain.FunctionStat
		recent           []domain.InteractionDetail
		userProductivity []domain.UserProductivity
		hourlyActivity   []domain.HourlyActivity
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		userStats, err = uc.reader.UserStats(gctx, date)
		return err
	})
	g.Go(func() error {
		var err error
		departmentStats, err = uc.reader.DepartmentStats(gctx, date)
		return err
	})
	g.Go(func() error {
		var err error
		sectionStats, err = uc.reader.SectionStats(gctx, date)
		return err
	})
	g.Go(func() error {
		var err error
		functionStats, err = uc.reader.FunctionStats(gctx, date)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = uc.reader.RecentInteractions(gctx, recentInteractionsLimit)
		return err
	})
	g.Go(func() error {
		var err error
		userProductivity, err = uc.reader.UserProductivity(gctx, date)
		return err
	})
	g.Go(func() error {
		var err error
		hourlyActivity, err = uc.reader.HourlyActivity(gctx, date)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var totalInteractions int64
	for _, u := range userStats {
		totalInteractions += u.TotalInteractions
	}

	d := &domain.Dashboard{
		Date: date,
		Summary: domain.DashboardSummary{
			TotalInteractions: totalInteractions,
			ActiveUsers:       int64(len(userStats)),
			Departments:       int64(len(departmentStats)),
			SystemSections:    int64(len(sectionStats)),
		},
		UserStats:          userStats,
		DepartmentStats:    departmentStats,
		SystemSectionStats: sectionStats,
		FunctionStats:      functionStats,
		RecentInteractions: recent,
		UserProductivity:   userProductivity,
		HourlyActivity:     hourlyActivity,
		TopUsers:           topProductivity(userProductivity),
		TopFunctions:       topFunctions(functionStats),
	}

	return d, nil
}

// topProductivity slices the head of the already-sorted productivity list.
func topProductivity(list []domain.UserProductivity) []domain.UserProductivity {
	if len(list) > topListSize {
		return list[:topListSize]
	}
	return list
}

// topFunctions slices the head of the already-sorted function stats.
func topFunctions(list []domain.FunctionStat) []domain.FunctionStat {
	if len(list) > topListSize {
		return list[:topListSize]
	}
	return list
}
