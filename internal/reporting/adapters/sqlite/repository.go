package sqlite

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"interaction-tracking-service/internal/reporting/core/domain"
	"interaction-tracking-service/internal/reporting/core/ports"
)

// StatsRepository runs the aggregation queries over the interaction log.
// Grouping happens in SQL except for productivity, which is aggregated in
// one Go-side scan so the injected classifier stays swappable and the
// substring match keeps its case-sensitivity (SQLite LIKE would not).
type StatsRepository struct {
	db       DB
	classify domain.Classifier
}

func NewStatsRepository(db DB, classify domain.Classifier) *StatsRepository {
	if classify == nil {
		classify = domain.ClassifyFunction
	}
	return &StatsRepository{db: db, classify: classify}
}

var _ ports.StatsReaderPort = (*StatsRepository)(nil)

const userStatsSQL = `
SELECT
    user_uid,
    user_department,
    COUNT(*) AS total_interactions,
    COUNT(DISTINCT system_function) AS unique_functions_used,
    DATE(record_date) AS date
FROM user_interactions
WHERE DATE(record_date) = ?
GROUP BY user_uid, user_department, DATE(record_date)
ORDER BY user_uid`

func (r *StatsRepository) UserStats(ctx context.Context, date string) ([]domain.UserStat, error) {
	rows, err := r.db.QueryContext(ctx, userStatsSQL, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []domain.UserStat{}
	for rows.Next() {
		var s domain.UserStat
		if err := rows.Scan(&s.UserUID, &s.UserDepartment, &s.TotalInteractions, &s.UniqueFunctionsUsed, &s.Date); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

const departmentStatsSQL = `
SELECT
    user_department,
    COUNT(*) AS total_interactions,
    COUNT(DISTINCT user_uid) AS active_users,
    DATE(record_date) AS date
FROM user_interactions
WHERE DATE(record_date) = ?
GROUP BY user_department, DATE(record_date)
ORDER BY user_department`

func (r *StatsRepository) DepartmentStats(ctx context.Context, date string) ([]domain.DepartmentStat, error) {
	rows, err := r.db.QueryContext(ctx, departmentStatsSQL, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []domain.DepartmentStat{}
	for rows.Next() {
		var s domain.DepartmentStat
		if err := rows.Scan(&s.UserDepartment, &s.TotalInteractions, &s.ActiveUsers, &s.Date); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

const sectionStatsSQL = `
SELECT
    system_section,
    COUNT(*) AS total_interactions,
    COUNT(DISTINCT user_uid) AS unique_users,
    DATE(record_date) AS date
FROM user_interactions
WHERE DATE(record_date) = ?
GROUP BY system_section, DATE(record_date)
ORDER BY system_section`

func (r *StatsRepository) SectionStats(ctx context.Context, date string) ([]domain.SectionStat, error) {
	rows, err := r.db.QueryContext(ctx, sectionStatsSQL, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []domain.SectionStat{}
	for rows.Next() {
		var s domain.SectionStat
		if err := rows.Scan(&s.SystemSection, &s.TotalInteractions, &s.UniqueUsers, &s.Date); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

const functionStatsSQL = `
SELECT
    system_function,
    system_section,
    COUNT(*) AS usage_count,
    COUNT(DISTINCT user_uid) AS unique_users,
    DATE(record_date) AS date
FROM user_interactions
WHERE DATE(record_date) = ?
GROUP BY system_function, system_section, DATE(record_date)
ORDER BY usage_count DESC, system_function`

func (r *StatsRepository) FunctionStats(ctx context.Context, date string) ([]domain.FunctionStat, error) {
	rows, err := r.db.QueryContext(ctx, functionStatsSQL, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []domain.FunctionStat{}
	for rows.Next() {
		var s domain.FunctionStat
		if err := rows.Scan(&s.SystemFunction, &s.SystemSection, &s.UsageCount, &s.UniqueUsers, &s.Date); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

const productivityRowsSQL = `
SELECT
    ui.user_uid,
    u.name AS user_name,
    ui.user_department,
    ui.system_function
FROM user_interactions ui
LEFT JOIN users u ON ui.user_uid = u.uid
WHERE DATE(ui.record_date) = ?`

func (r *StatsRepository) UserProductivity(ctx context.Context, date string) ([]domain.UserProductivity, error) {
	rows, err := r.db.QueryContext(ctx, productivityRowsSQL, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Department is denormalized per interaction, so the group key is the
	// (uid, department) pair, not the uid alone.
	type userDept struct {
		uid  string
		dept string
	}
	byGroup := map[userDept]*domain.UserProductivity{}

	for rows.Next() {
		var (
			uid      string
			name     sql.NullString
			dept     string
			function string
		)
		if err := rows.Scan(&uid, &name, &dept, &function); err != nil {
			return nil, err
		}

		key := userDept{uid: uid, dept: dept}
		p, ok := byGroup[key]
		if !ok {
			p = &domain.UserProductivity{
				UserUID:        uid,
				UserName:       name.String,
				UserDepartment: dept,
				Date:           date,
			}
			byGroup[key] = p
		}

		class := r.classify(function)
		if class.Quotation {
			p.QuotationsGenerated++
		}
		if class.Report {
			p.ReportsWritten++
		}
		p.TotalInteractions++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	stats := make([]domain.UserProductivity, 0, len(byGroup))
	for _, p := range byGroup {
		stats = append(stats, *p)
	}

	// Descending by total, then uid and department ascending as the
	// deterministic tiebreak.
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalInteractions != stats[j].TotalInteractions {
			return stats[i].TotalInteractions > stats[j].TotalInteractions
		}
		if stats[i].UserUID != stats[j].UserUID {
			return stats[i].UserUID < stats[j].UserUID
		}
		return stats[i].UserDepartment < stats[j].UserDepartment
	})

	return stats, nil
}

const hourlyActivitySQL = `
SELECT
    strftime('%H', record_date) AS hour,
    COUNT(*) AS interaction_count
FROM user_interactions
WHERE DATE(record_date) = ?
GROUP BY strftime('%H', record_date)
ORDER BY hour`

func (r *StatsRepository) HourlyActivity(ctx context.Context, date string) ([]domain.HourlyActivity, error) {
	rows, err := r.db.QueryContext(ctx, hourlyActivitySQL, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []domain.HourlyActivity{}
	for rows.Next() {
		var s domain.HourlyActivity
		if err := rows.Scan(&s.Hour, &s.InteractionCount); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

const recentInteractionsSQL = `
SELECT
    ui.id,
    ui.user_uid,
    u.name AS user_name,
    ui.user_department,
    ui.system_section,
    ui.system_function,
    ui.session_id,
    ui.ip_address,
    ui.user_agent,
    ui.record_date
FROM user_interactions ui
LEFT JOIN users u ON ui.user_uid = u.uid
ORDER BY ui.record_date DESC
LIMIT ?`

func (r *StatsRepository) RecentInteractions(ctx context.Context, limit int) ([]domain.InteractionDetail, error) {
	rows, err := r.db.QueryContext(ctx, recentInteractionsSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInteractionDetails(rows, true)
}

const interactionsInRangeSQL = `
SELECT
    id,
    user_uid,
    user_department,
    system_section,
    system_function,
    session_id,
    ip_address,
    user_agent,
    record_date
FROM user_interactions
WHERE DATE(record_date) BETWEEN ? AND ?
ORDER BY record_date DESC`

func (r *StatsRepository) InteractionsInRange(ctx context.Context, startDate, endDate string) ([]domain.InteractionDetail, error) {
	rows, err := r.db.QueryContext(ctx, interactionsInRangeSQL, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInteractionDetails(rows, false)
}

func scanInteractionDetails(rows RowScanner, withName bool) ([]domain.InteractionDetail, error) {
	list := []domain.InteractionDetail{}

	for rows.Next() {
		var (
			d         domain.InteractionDetail
			name      sql.NullString
			sessionID sql.NullString
			ipAddress sql.NullString
			userAgent sql.NullString
			recorded  time.Time
		)

		var err error
		if withName {
			err = rows.Scan(&d.ID, &d.UserUID, &name, &d.UserDepartment, &d.SystemSection,
				&d.SystemFunction, &sessionID, &ipAddress, &userAgent, &recorded)
		} else {
			err = rows.Scan(&d.ID, &d.UserUID, &d.UserDepartment, &d.SystemSection,
				&d.SystemFunction, &sessionID, &ipAddress, &userAgent, &recorded)
		}
		if err != nil {
			return nil, err
		}

		d.UserName = name.String
		d.SessionID = sessionID.String
		d.IPAddress = ipAddress.String
		d.UserAgent = userAgent.String
		d.RecordDate = recorded

		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}
