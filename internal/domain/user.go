package domain

import "time"

// User represents a registered blog author.
type User struct {
	ID        int64
	Username  string
	Password  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserUpdate carries the mutable fields of a User.
type UserUpdate struct {
	Password string
}
