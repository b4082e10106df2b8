package fiber

// TrackInteractionRequest represents the interaction tracking payload
// @Description Interaction tracking DTO
type TrackInteractionRequest struct {
	APIToken       string `json:"api_token"`
	UserUID        string `json:"user_uid"`
	UserDepartment string `json:"user_department"`
	SystemSection  string `json:"system_section"`
	SystemFunction string `json:"system_function"`
	SessionID      string `json:"session_id"`
}

type TrackInteractionResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	InteractionID int64  `json:"interaction_id"`
	Timestamp     string `json:"timestamp"`
}

type SyncUsersRequest struct {
	APIToken string         `json:"api_token"`
	Users    []syncUserItem `json:"users"`
}

type syncUserItem struct {
	UID        string `json:"uid"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

type SyncUsersStats struct {
	TotalUsers int `json:"total_users"`
	Successful int `json:"successful"`
	Errors     int `json:"errors"`
}

type SyncUsersResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	BatchID string         `json:"batch_id"`
	Stats   SyncUsersStats `json:"stats"`
	Errors  []string       `json:"errors,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Invalid API token"`
}
