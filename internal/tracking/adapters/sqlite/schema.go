package sqlite

import (
	"context"
	"database/sql"
)

// Schema mirrors the ERP tracking store: a user directory, an append-only
// interaction log, and a daily rollup table reserved for incremental
// aggregation. The rollup table is not written by any current code path;
// aggregates are computed live.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
    uid        TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    department TEXT NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`,
	`CREATE TABLE IF NOT EXISTS user_interactions (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    user_uid        TEXT NOT NULL,
    user_department TEXT NOT NULL,
    system_section  TEXT NOT NULL,
    system_function TEXT NOT NULL,
    session_id      TEXT,
    ip_address      TEXT,
    user_agent      TEXT,
    record_date     DATETIME DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (user_uid) REFERENCES users(uid)
);`,
	`CREATE TABLE IF NOT EXISTS daily_user_stats (
    id                     INTEGER PRIMARY KEY AUTOINCREMENT,
    date                   DATE NOT NULL,
    user_uid               TEXT NOT NULL,
    user_department        TEXT NOT NULL,
    system_section         TEXT NOT NULL,
    total_interactions     INTEGER DEFAULT 0,
    unique_functions_used  INTEGER DEFAULT 0,
    most_used_function     TEXT,
    first_interaction_time TIME,
    last_interaction_time  TIME,
    UNIQUE(date, user_uid, system_section)
);`,
	`CREATE INDEX IF NOT EXISTS idx_user_interactions_user_uid ON user_interactions(user_uid);`,
	`CREATE INDEX IF NOT EXISTS idx_user_interactions_date ON user_interactions(record_date);`,
	`CREATE INDEX IF NOT EXISTS idx_user_interactions_system_section ON user_interactions(system_section);`,
	`CREATE INDEX IF NOT EXISTS idx_user_interactions_department ON user_interactions(user_department);`,
	`CREATE INDEX IF NOT EXISTS idx_daily_stats_date_user ON daily_user_stats(date, user_uid);`,
}

// EnsureSchema creates tables and indexes if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
