package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"interaction-tracking-service/internal/reporting/core/domain"
	"interaction-tracking-service/internal/reporting/core/usecase"
)

// fakeStatsReader implements StatsReaderPort with overridable methods.
type fakeStatsReader struct {
	UserStatsFn           func(ctx context.Context, date string) ([]domain.UserStat, error)
	DepartmentStatsFn     func(ctx context.Context, date string) ([]domain.DepartmentStat, error)
	SectionStatsFn        func(ctx context.Context, date string) ([]domain.SectionStat, error)
	FunctionStatsFn       func(ctx context.Context, date string) ([]domain.FunctionStat, error)
	UserProductivityFn    func(ctx context.Context, date string) ([]domain.UserProductivity, error)
	HourlyActivityFn      func(ctx context.Context, date string) ([]domain.HourlyActivity, error)
	RecentInteractionsFn  func(ctx context.Context, limit int) ([]domain.InteractionDetail, error)
	InteractionsInRangeFn func(ctx context.Context, start, end string) ([]domain.InteractionDetail, error)
}

func (f *fakeStatsReader) UserStats(ctx context.Context, date string) ([]domain.UserStat, error) {
	if f.UserStatsFn != nil {
		return f.UserStatsFn(ctx, date)
	}
	return []domain.UserStat{}, nil
}

func (f *fakeStatsReader) DepartmentStats(ctx context.Context, date string) ([]domain.DepartmentStat, error) {
	if f.DepartmentStatsFn != nil {
		return f.DepartmentStatsFn(ctx, date)
	}
	return []domain.DepartmentStat{}, nil
}

func (f *fakeStatsReader) SectionStats(ctx context.Context, date string) ([]domain.SectionStat, error) {
	if f.SectionStatsFn != nil {
		return f.SectionStatsFn(ctx, date)
	}
	return []domain.SectionStat{}, nil
}

func (f *fakeStatsReader) FunctionStats(ctx context.Context, date string) ([]domain.FunctionStat, error) {
	if f.FunctionStatsFn != nil {
		return f.FunctionStatsFn(ctx, date)
	}
	return []domain.FunctionStat{}, nil
}

func (f *fakeStatsReader) UserProductivity(ctx context.Context, date string) ([]domain.UserProductivity, error) {
	if f.UserProductivityFn != nil {
		return f.UserProductivityFn(ctx, date)
	}
	return []domain.UserProductivity{}, nil
}

func (f *fakeStatsReader) HourlyActivity(ctx context.Context, date string) ([]domain.HourlyActivity, error) {
	if f.HourlyActivityFn != nil {
		return f.HourlyActivityFn(ctx, date)
	}
	return []domain.HourlyActivity{}, nil
}

func (f *fakeStatsReader) RecentInteractions(ctx context.Context, limit int) ([]domain.InteractionDetail, error) {
	if f.RecentInteractionsFn != nil {
		return f.RecentInteractionsFn(ctx, limit)
	}
	return []domain.InteractionDetail{}, nil
}

func (f *fakeStatsReader) InteractionsInRange(ctx context.Context, start, end string) ([]domain.InteractionDetail, error) {
	if f.InteractionsInRangeFn != nil {
		return f.InteractionsInRangeFn(ctx, start, end)
	}
	return []domain.InteractionDetail{}, nil
}

func TestBuildDashboard_SummaryDerivation(t *testing.T) {
	reader := &fakeStatsReader{
		UserStatsFn: func(ctx context.Context, date string) ([]domain.UserStat, error) {
			return []domain.UserStat{
				{UserUID: "u1", UserDepartment: "sales", TotalInteractions: 2, UniqueFunctionsUsed: 2, Date: date},
				{UserUID: "u2", UserDepartment: "finance", TotalInteractions: 1, UniqueFunctionsUsed: 1, Date: date},
			}, nil
		},
		DepartmentStatsFn: func(ctx context.Context, date string) ([]domain.DepartmentStat, error) {
			return []domain.DepartmentStat{
				{UserDepartment: "finance", TotalInteractions: 1, ActiveUsers: 1, Date: date},
				{UserDepartment: "sales", TotalInteractions: 2, ActiveUsers: 1, Date: date},
			}, nil
		},
		SectionStatsFn: func(ctx context.Context, date string) ([]domain.SectionStat, error) {
			return []domain.SectionStat{
				{SystemSection: "sales_system", TotalInteractions: 3, UniqueUsers: 2, Date: date},
			}, nil
		},
	}

	uc := usecase.NewBuildDashboardUseCase(reader)

	d, err := uc.Execute(context.Background(), "2026-08-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.Summary.TotalInteractions != 3 {
		t.Errorf("expected total_interactions=3, got %d", d.Summary.TotalInteractions)
	}
	if d.Summary.ActiveUsers != 2 {
		t.Errorf("expected active_users=2, got %d", d.Summary.ActiveUsers)
	}
	if d.Summary.Departments != 2 {
		t.Errorf("expected departments=2, got %d", d.Summary.Departments)
	}
	if d.Summary.SystemSections != 1 {
		t.Errorf("expected system_sections=1, got %d", d.Summary.SystemSections)
	}
}

func TestBuildDashboard_TopListsSliced(t *testing.T) {
	reader := &fakeStatsReader{
		UserProductivityFn: func(ctx context.Context, date string) ([]domain.UserProductivity, error) {
			list := make([]domain.UserProductivity, 12)
			for i := range list {
				list[i] = domain.UserProductivity{
					UserUID:           fmt.Sprintf("u%02d", i),
					TotalInteractions: int64(100 - i),
				}
			}
			return list, nil
		},
		FunctionStatsFn: func(ctx context.Context, date string) ([]domain.FunctionStat, error) {
			list := make([]domain.FunctionStat, 11)
			for i := range list {
				list[i] = domain.FunctionStat{
					SystemFunction: fmt.Sprintf("f%02d", i),
					UsageCount:     int64(50 - i),
				}
			}
			return list, nil
		},
	}

	uc := usecase.NewBuildDashboardUseCase(reader)

	d, err := uc.Execute(context.Background(), "2026-08-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(d.TopUsers) != 10 {
		t.Fatalf("expected top 10 users, got %d", len(d.TopUsers))
	}
	if d.TopUsers[0].UserUID != "u00" {
		t.Errorf("expected head of sorted list first, got %s", d.TopUsers[0].UserUID)
	}
	if len(d.TopFunctions) != 10 {
		t.Fatalf("expected top 10 functions, got %d", len(d.TopFunctions))
	}
	if len(d.UserProductivity) != 12 {
		t.Errorf("full productivity list must stay intact, got %d", len(d.UserProductivity))
	}
}

func TestBuildDashboard_EmptyDayIsAllZero(t *testing.T) {
	uc := usecase.NewBuildDashboardUseCase(&fakeStatsReader{})

	d, err := uc.Execute(context.Background(), "2026-08-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.Summary != (domain.DashboardSummary{}) {
		t.Errorf("expected zero summary, got %+v", d.Summary)
	}
	if len(d.UserStats) != 0 || len(d.HourlyActivity) != 0 || len(d.TopUsers) != 0 {
		t.Errorf("expected empty collections for an empty day")
	}
}

func TestBuildDashboard_DateDefaultsToToday(t *testing.T) {
	var seen string
	reader := &fakeStatsReader{
		UserStatsFn: func(ctx context.Context, date string) ([]domain.UserStat, error) {
			seen = date
			return []domain.UserStat{}, nil
		},
	}

	uc := usecase.NewBuildDashboardUseCase(reader)

	d, err := uc.Execute(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	today := time.Now().UTC().Format("2006-01-02")
	if seen != today {
		t.Errorf("expected reader called with %s, got %s", today, seen)
	}
	if d.Date != today {
		t.Errorf("expected payload date %s, got %s", today, d.Date)
	}
}

// Fail-together: any sub-aggregation error fails the whole facade call.
func TestBuildDashboard_FailTogether(t *testing.T) {
	readErr := errors.New("query failed")
	reader := &fakeStatsReader{
		HourlyActivityFn: func(ctx context.Context, date string) ([]domain.HourlyActivity, error) {
			return nil, readErr
		},
	}

	uc := usecase.NewBuildDashboardUseCase(reader)

	d, err := uc.Execute(context.Background(), "2026-08-01")
	if !errors.Is(err, readErr) {
		t.Fatalf("expected read error, got %v", err)
	}
	if d != nil {
		t.Fatalf("expected no partial payload, got %+v", d)
	}
}
