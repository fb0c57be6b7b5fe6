package domain

import "time"

// Answer is a reply to a contest. Once created it is never mutated.
type Answer struct {
	ID        uint
	ContestID uint
	AuthorID  uint
	Author    User
	Content   string
	CreatedAt time.Time
}
