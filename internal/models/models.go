package models

import (
	"database/sql"
	"time"
)

type Account struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Task struct {
	ID          int64        `json:"id"`
	OwnerID     int64        `json:"owner_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    int          `json:"priority"`
	Category    string       `json:"category"`
	Done        bool         `json:"done"`
	CreatedAt   time.Time    `json:"created_at"`
	CompletedAt sql.NullTime `json:"completed_at"`
}
