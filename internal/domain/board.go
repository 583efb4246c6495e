package domain

import "time"

// Board is a blog post owned by a single user.
type Board struct {
	ID        int64
	Title     string
	Content   string
	User      *User
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BoardUpdate carries the fields of a Board its owner may change.
type BoardUpdate struct {
	Title   string
	Content string
}

// UserID returns the owner's id, or 0 when no owner is attached.
func (b *Board) UserID() int64 {
	if b == nil || b.User == nil {
		return 0
	}
	return b.User.ID
}
