package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"
)

// fakeRowScanner implements RowScanner for tests.
type fakeRowScanner struct {
	rows   []fakeRow
	i      int
	err    error
	closed bool
}

type fakeRow struct {
	values []any
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row.values) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *int64:
			v, ok := row.values[i].(int64)
			if !ok {
				return errors.New("type assertion to int64 failed")
			}
			*d = v
		case *string:
			v, ok := row.values[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = v
		case *sql.NullString:
			if row.values[i] == nil {
				*d = sql.NullString{}
				continue
			}
			v, ok := row.values[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = sql.NullString{String: v, Valid: true}
		case *time.Time:
			v, ok := row.values[i].(time.Time)
			if !ok {
				return errors.New("type assertion to time.Time failed")
			}
			*d = v
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	f.closed = true
	return nil
}

// fakeQueryDB implements the DB interface for tests.
type fakeQueryDB struct {
	QueryFn   func(ctx context.Context, query string, args ...any) (RowScanner, error)
	lastQuery string
	lastArgs  []any
}

func (f *fakeQueryDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.lastQuery = query
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return &fakeRowScanner{}, nil
}

func TestUserStats_Scan(t *testing.T) {
	db := &fakeQueryDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "COUNT(DISTINCT system_function)") {
				t.Fatalf("unexpected query: %s", query)
			}
			return &fakeRowScanner{rows: []fakeRow{
				{values: []any{"u1", "sales", int64(2), int64(2), "2026-08-01"}},
				{values: []any{"u2", "finance", int64(1), int64(1), "2026-08-01"}},
			}}, nil
		},
	}

	repo := NewStatsRepository(db, nil)

	stats, err := repo.UserStats(context.Background(), "2026-08-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(stats))
	}
	if stats[0].UserUID != "u1" || stats[0].TotalInteractions != 2 || stats[0].UniqueFunctionsUsed != 2 {
		t.Fatalf("unexpected first row: %+v", stats[0])
	}
	if db.lastArgs[0] != "2026-08-01" {
		t.Fatalf("expected date arg, got %v", db.lastArgs)
	}
}

func TestUserStats_EmptyDay(t *testing.T) {
	repo := NewStatsRepository(&fakeQueryDB{}, nil)

	stats, err := repo.UserStats(context.Background(), "2026-08-01")
	if err != nil {
		t.Fatalf("empty day must not error: %v", err)
	}
	if stats == nil || len(stats) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", stats)
	}
}

func TestDepartmentStats_Scan(t *testing.T) {
	db := &fakeQueryDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: []fakeRow{
				{values: []any{"finance", int64(1), int64(1), "2026-08-01"}},
				{values: []any{"sales", int64(2), int64(1), "2026-08-01"}},
			}}, nil
		},
	}

	repo := NewStatsRepository(db, nil)

	stats, err := repo.DepartmentStats(context.Background(), "2026-08-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(stats))
	}
	if stats[1].UserDepartment != "sales" || stats[1].TotalInteractions != 2 || stats[1].ActiveUsers != 1 {
		t.Fatalf("unexpected sales row: %+v", stats[1])
	}
}

func TestFunctionStats_Scan(t *testing.T) {
	db := &fakeQueryDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "ORDER BY usage_count DESC") {
				t.Fatalf("expected descending order, query: %s", query)
			}
			return &fakeRowScanner{rows: []fakeRow{
				{values: []any{"generate_proposal", "sales_system", int64(5), int64(2), "2026-08-01"}},
				{values: []any{"search_customer", "sales_system", int64(3), int64(3), "2026-08-01"}},
			}}, nil
		},
	}

	repo := NewStatsRepository(db, nil)

	stats, err := repo.FunctionStats(context.Background(), "2026-08-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats) != 2 || stats[0].UsageCount != 5 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestUserProductivity_ClassifiesAndSorts(t *testing.T) {
	db := &fakeQueryDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: []fakeRow{
				{values: []any{"u1", "John Doe", "sales", "generate_proposal"}},
				{values: []any{"u1", "John Doe", "sales", "search_customer"}},
				{values: []any{"u2", nil, "finance", "write_report"}},
				{values: []any{"u1", "John Doe", "sales", "create_quotation"}},
			}}, nil
		},
	}

	repo := NewStatsRepository(db, nil)

	stats, err := repo.UserProductivity(context.Background(), "2026-08-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 users, got %d", len(stats))
	}

	// u1 has 3 interactions and sorts first.
	u1 := stats[0]
	if u1.UserUID != "u1" {
		t.Fatalf("expected u1 first, got %s", u1.UserUID)
	}
	if u1.QuotationsGenerated != 2 {
		t.Errorf("expected 2 quotations for u1, got %d", u1.QuotationsGenerated)
	}
	if u1.ReportsWritten != 0 {
		t.Errorf("expected 0 reports for u1, got %d", u1.ReportsWritten)
	}
	if u1.TotalInteractions != 3 {
		t.Errorf("expected 3 total for u1, got %d", u1.TotalInteractions)
	}
	if u1.UserName != "John Doe" {
		t.Errorf("expected resolved name, got %q", u1.UserName)
	}

	// u2 has no directory entry: name falls back to empty.
	u2 := stats[1]
	if u2.UserName != "" {
		t.Errorf("expected empty name for unknown user, got %q", u2.UserName)
	}
	if u2.ReportsWritten != 1 || u2.QuotationsGenerated != 0 {
		t.Errorf("unexpected u2 counts: %+v", u2)
	}
}

func TestUserProductivity_TieBreaksByUID(t *testing.T) {
	db := &fakeQueryDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: []fakeRow{
				{values: []any{"zz", nil, "sales", "search_customer"}},
				{values: []any{"aa", nil, "sales", "search_customer"}},
			}}, nil
		},
	}

	repo := NewStatsRepository(db, nil)

	stats, err := repo.UserProductivity(context.Background(), "2026-08-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats[0].UserUID != "aa" || stats[1].UserUID != "zz" {
		t.Fatalf("expected deterministic uid tiebreak, got %s then %s", stats[0].UserUID, stats[1].UserUID)
	}
}

func TestUserProductivity_GroupsByUserAndDepartment(t *testing.T) {
	db := &fakeQueryDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: []fakeRow{
				{values: []any{"u1", "John Doe", "sales", "generate_proposal"}},
				{values: []any{"u1", "John Doe", "finance", "write_report"}},
			}}, nil
		},
	}

	repo := NewStatsRepository(db, nil)

	stats, err := repo.UserProductivity(context.Background(), "2026-08-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same uid under two departments on one day must not collapse.
	if len(stats) != 2 {
		t.Fatalf("expected one row per (uid, department), got %d: %+v", len(stats), stats)
	}
	if stats[0].UserDepartment != "finance" || stats[1].UserDepartment != "sales" {
		t.Fatalf("expected department tiebreak finance then sales, got %+v", stats)
	}
	if stats[0].ReportsWritten != 1 || stats[0].QuotationsGenerated != 0 || stats[0].TotalInteractions != 1 {
		t.Errorf("unexpected finance counts: %+v", stats[0])
	}
	if stats[1].QuotationsGenerated != 1 || stats[1].ReportsWritten != 0 || stats[1].TotalInteractions != 1 {
		t.Errorf("unexpected sales counts: %+v", stats[1])
	}
}

func TestHourlyActivity_Scan(t *testing.T) {
	db := &fakeQueryDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "strftime('%H', record_date)") {
				t.Fatalf("unexpected query: %s", query)
			}
			return &fakeRowScanner{rows: []fakeRow{
				{values: []any{"09", int64(4)}},
				{values: []any{"14", int64(7)}},
			}}, nil
		},
	}

	repo := NewStatsRepository(db, nil)

	stats, err := repo.HourlyActivity(context.Background(), "2026-08-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats) != 2 || stats[0].Hour != "09" || stats[1].InteractionCount != 7 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestRecentInteractions_Scan(t *testing.T) {
	recorded := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)
	db := &fakeQueryDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "LEFT JOIN users") {
				t.Fatalf("expected outer join, query: %s", query)
			}
			return &fakeRowScanner{rows: []fakeRow{
				{values: []any{int64(3), "u1", "John Doe", "sales", "sales_system", "generate_proposal", "sess_1", "10.0.0.1", "erp-client/1.0", recorded}},
				{values: []any{int64(2), "u9", nil, "ops", "inventory", "adjust_stock", nil, nil, nil, recorded}},
			}}, nil
		},
	}

	repo := NewStatsRepository(db, nil)

	list, err := repo.RecentInteractions(context.Background(), 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(list))
	}
	if db.lastArgs[0] != 50 {
		t.Fatalf("expected limit arg 50, got %v", db.lastArgs)
	}
	if list[0].UserName != "John Doe" || list[0].SessionID != "sess_1" {
		t.Fatalf("unexpected first row: %+v", list[0])
	}
	if list[1].UserName != "" || list[1].SessionID != "" {
		t.Fatalf("expected empty optionals for second row: %+v", list[1])
	}
}

func TestInteractionsInRange_Scan(t *testing.T) {
	recorded := time.Date(2026, 8, 2, 11, 0, 0, 0, time.UTC)
	db := &fakeQueryDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "BETWEEN ? AND ?") {
				t.Fatalf("expected closed range, query: %s", query)
			}
			return &fakeRowScanner{rows: []fakeRow{
				{values: []any{int64(1), "u1", "sales", "sales_system", "generate_proposal", nil, nil, nil, recorded}},
			}}, nil
		},
	}

	repo := NewStatsRepository(db, nil)

	list, err := repo.InteractionsInRange(context.Background(), "2026-08-01", "2026-08-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || !list[0].RecordDate.Equal(recorded) {
		t.Fatalf("unexpected rows: %+v", list)
	}
	if db.lastArgs[0] != "2026-08-01" || db.lastArgs[1] != "2026-08-03" {
		t.Fatalf("unexpected args: %v", db.lastArgs)
	}
}

func TestQueryError_Propagates(t *testing.T) {
	dbErr := errors.New("database is locked")
	db := &fakeQueryDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return nil, dbErr
		},
	}

	repo := NewStatsRepository(db, nil)

	if _, err := repo.SectionStats(context.Background(), "2026-08-01"); !errors.Is(err, dbErr) {
		t.Fatalf("expected db error, got %v", err)
	}
	if _, err := repo.UserProductivity(context.Background(), "2026-08-01"); !errors.Is(err, dbErr) {
		t.Fatalf("expected db error, got %v", err)
	}
}
