package domain

import "time"

// UserStat is the per-user activity summary for one day.
type UserStat struct {
	UserUID             string
	UserDepartment      string
	TotalInteractions   int64
	UniqueFunctionsUsed int64
	Date                string
}

// DepartmentStat is the per-department activity summary for one day.
type DepartmentStat struct {
	UserDepartment    string
	TotalInteractions int64
	ActiveUsers       int64
	Date              string
}

// SectionStat is the per-section usage summary for one day.
type SectionStat struct {
	SystemSection     string
	TotalInteractions int64
	UniqueUsers       int64
	Date              string
}

// FunctionStat is the per-function usage summary for one day,
// sorted descending by usage count.
type FunctionStat struct {
	SystemFunction string
	SystemSection  string
	UsageCount     int64
	UniqueUsers    int64
	Date           string
}

// UserProductivity buckets one (user, department) group's daily interactions
// into heuristic output categories, sorted descending by total interactions.
type UserProductivity struct {
	UserUID             string
	UserName            string
	UserDepartment      string
	QuotationsGenerated int64
	ReportsWritten      int64
	TotalInteractions   int64
	Date                string
}

// HourlyActivity is the interaction count for one hour of the day.
// Hour is the two-digit 24h bucket ("00".."23"), sorted ascending.
type HourlyActivity struct {
	Hour             string
	InteractionCount int64
}

// InteractionDetail is a raw interaction row with the user name resolved
// via outer join (empty when the uid has no directory entry).
type InteractionDetail struct {
	ID             int64
	UserUID        string
	UserName       string
	UserDepartment string
	SystemSection  string
	SystemFunction string
	SessionID      string
	IPAddress      string
	UserAgent      string
	RecordDate     time.Time
}

// DailyBucket is one point of the range-report time series: totals and
// set cardinalities for a single calendar date.
type DailyBucket struct {
	Date              string
	TotalInteractions int64
	UniqueUsers       int64
	Departments       int64
	SystemSections    int64
}

// DashboardSummary carries the headline totals derived from the per-user,
// per-department and per-section aggregations of one day.
type DashboardSummary struct {
	TotalInteractions int64
	ActiveUsers       int64
	Departments       int64
	SystemSections    int64
}

// Dashboard is the full pre-aggregated analytics payload for one day.
type Dashboard struct {
	Date               string
	Summary            DashboardSummary
	UserStats          []UserStat
	DepartmentStats    []DepartmentStat
	SystemSectionStats []SectionStat
	FunctionStats      []FunctionStat
	RecentInteractions []InteractionDetail
	UserProductivity   []UserProductivity
	HourlyActivity     []HourlyActivity
	TopUsers           []UserProductivity
	TopFunctions       []FunctionStat
}

// RangeReport is the raw rows plus day-bucketed time series for a closed
// date range.
type RangeReport struct {
	StartDate         string
	EndDate           string
	TotalInteractions int64
	TimeSeries        []DailyBucket
	RawInteractions   []InteractionDetail
}
