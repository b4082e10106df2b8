package usecase

import (
	"context"
	"errors"
	"sort"

	"interaction-tracking-service/internal/reporting/core/domain"
	"interaction-tracking-service/internal/reporting/core/ports"
)

var ErrMissingDateRange = errors.New("start_date and end_date are required")

type BuildRangeReportUseCase struct {
	reader ports.StatsReaderPort
}

func NewBuildRangeReportUseCase(reader ports.StatsReaderPort) *BuildRangeReportUseCase {
	return &BuildRangeReportUseCase{reader: reader}
}

// Execute fetches all raw interactions in the closed range and buckets them
// client-side by UTC calendar date. Uniqueness within a bucket is set
// cardinality over that day only, never cumulative across days.
func (uc *BuildRangeReportUseCase) Execute(ctx context.Context, startDate, endDate string) (*domain.RangeReport, error) {
	if startDate == "" || endDate == "" {
		return nil, ErrMissingDateRange
	}

	interactions, err := uc.reader.InteractionsInRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	type daySets struct {
		total    int64
		users    map[string]struct{}
		depts    map[string]struct{}
		sections map[string]struct{}
	}

	buckets := make(map[string]*daySets)

	for _, it := range interactions {
		day := it.RecordDate.UTC().Format("2006-01-02")
		b, ok := buckets[day]
		if !ok {
			b = &daySets{
				users:    make(map[string]struct{}),
				depts:    make(map[string]struct{}),
				sections: make(map[string]struct{}),
			}
			buckets[day] = b
		}
		b.total++
		b.users[it.UserUID] = struct{}{}
		b.depts[it.UserDepartment] = struct{}{}
		b.sections[it.SystemSection] = struct{}{}
	}

	series := make([]domain.DailyBucket, 0, len(buckets))
	for day, b := range buckets {
		series = append(series, domain.DailyBucket{
			Date:              day,
			TotalInteractions: b.total,
			UniqueUsers:       int64(len(b.users)),
			Departments:       int64(len(b.depts)),
			SystemSections:    int64(len(b.sections)),
		})
	}

	// Deterministic output: ascending by calendar date.
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })

	return &domain.RangeReport{
		StartDate:         startDate,
		EndDate:           endDate,
		TotalInteractions: int64(len(interactions)),
		TimeSeries:        series,
		RawInteractions:   interactions,
	}, nil
}
