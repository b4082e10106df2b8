package domain

import "time"

// Interaction is one recorded user action against a named system
// section/function. Append-only: interactions are never updated or deleted.
type Interaction struct {
	ID             int64
	UserUID        string
	UserDepartment string
	SystemSection  string
	SystemFunction string
	SessionID      string
	IPAddress      string
	UserAgent      string
	RecordDate     time.Time
}

// User is a directory entry synced from the external ERP. UserDepartment on
// an Interaction is captured at event time and is never reconciled with the
// user's current department.
type User struct {
	UID        string
	Name       string
	Department string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
