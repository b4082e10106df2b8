package fiber

type SummaryResponse struct {
	TotalInteractions int64 `json:"total_interactions"`
	ActiveUsers       int64 `json:"active_users"`
	Departments       int64 `json:"departments"`
	SystemSections    int64 `json:"system_sections"`
}

type UserStatResponse struct {
	UserUID             string `json:"user_uid"`
	UserDepartment      string `json:"user_department"`
	TotalInteractions   int64  `json:"total_interactions"`
	UniqueFunctionsUsed int64  `json:"unique_functions_used"`
	Date                string `json:"date"`
}

type DepartmentStatResponse struct {
	UserDepartment    string `json:"user_department"`
	TotalInteractions int64  `json:"total_interactions"`
	ActiveUsers       int64  `json:"active_users"`
	Date              string `json:"date"`
}

type SectionStatResponse struct {
	SystemSection     string `json:"system_section"`
	TotalInteractions int64  `json:"total_interactions"`
	UniqueUsers       int64  `json:"unique_users"`
	Date              string `json:"date"`
}

type FunctionStatResponse struct {
	SystemFunction string `json:"system_function"`
	SystemSection  string `json:"system_section"`
	UsageCount     int64  `json:"usage_count"`
	UniqueUsers    int64  `json:"unique_users"`
	Date           string `json:"date"`
}

type UserProductivityResponse struct {
	UserUID             string `json:"user_uid"`
	UserName            string `json:"user_name,omitempty"`
	UserDepartment      string `json:"user_department"`
	QuotationsGenerated int64  `json:"quotations_generated"`
	ReportsWritten      int64  `json:"reports_written"`
	TotalInteractions   int64  `json:"total_interactions"`
	Date                string `json:"date"`
}

type HourlyActivityResponse struct {
	Hour             string `json:"hour"`
	InteractionCount int64  `json:"interaction_count"`
}

type InteractionResponse struct {
	ID             int64  `json:"id"`
	UserUID        string `json:"user_uid"`
	UserName       string `json:"user_name,omitempty"`
	UserDepartment string `json:"user_department"`
	SystemSection  string `json:"system_section"`
	SystemFunction string `json:"system_function"`
	SessionID      string `json:"session_id,omitempty"`
	IPAddress      string `json:"ip_address,omitempty"`
	UserAgent      string `json:"user_agent,omitempty"`
	RecordDate     string `json:"record_date"`
}

type DashboardResponse struct {
	Success            bool                       `json:"success"`
	Date               string                     `json:"date"`
	Summary            SummaryResponse            `json:"summary"`
	UserStats          []UserStatResponse         `json:"user_stats"`
	DepartmentStats    []DepartmentStatResponse   `json:"department_stats"`
	SystemSectionStats []SectionStatResponse      `json:"system_section_stats"`
	FunctionStats      []FunctionStatResponse     `json:"function_stats"`
	RecentInteractions []InteractionResponse      `json:"recent_interactions"`
	UserProductivity   []UserProductivityResponse `json:"user_productivity"`
	HourlyActivity     []HourlyActivityResponse   `json:"hourly_activity"`
	TopUsers           []UserProductivityResponse `json:"top_users"`
	TopFunctions       []FunctionStatResponse     `json:"top_functions"`
}

type RangeReportRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type DateRangeResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type DailyBucketResponse struct {
	Date              string `json:"date"`
	TotalInteractions int64  `json:"total_interactions"`
	UniqueUsers       int64  `json:"unique_users"`
	Departments       int64  `json:"departments"`
	SystemSections    int64  `json:"system_sections"`
}

type RangeReportResponse struct {
	Success           bool                  `json:"success"`
	DateRange         DateRangeResponse     `json:"date_range"`
	TotalInteractions int64                 `json:"total_interactions"`
	TimeSeries        []DailyBucketResponse `json:"time_series"`
	RawInteractions   []InteractionResponse `json:"raw_interactions"`
}

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"start_date and end_date are required"`
}
