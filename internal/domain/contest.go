package domain

import "time"

// Contest is a posted competition. NumReads and NumAnswers only ever grow;
// Author is set once at creation.
type Contest struct {
	ID           uint
	Title        string
	Content      string
	Tags         []string
	Sponsor      string
	Intro        string
	Details      string
	Start        string
	End          string
	Category     string
	File         string
	Host         string
	Contact      string
	ContactEmail string
	NumReads     int
	NumAnswers   int
	AuthorID     uint
	Author       User
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ContestPage is one page of a listing or search result.
type ContestPage struct {
	Contests   []Contest
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

func (p ContestPage) HasPrev() bool {
	return p.Page > 1
}

func (p ContestPage) HasNext() bool {
	return p.Page < p.TotalPages
}

func (p ContestPage) PrevPage() int {
	return p.Page - 1
}

func (p ContestPage) NextPage() int {
	return p.Page + 1
}
