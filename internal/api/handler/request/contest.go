package request

import (
	"strings"

	"contestboard/internal/domain"
)

// ContestForm carries the full editable field set. Create and update both
// consume it verbatim; fields left blank in the form come through empty.
type ContestForm struct {
	Title        string `form:"title"`
	Content      string `form:"content"`
	Tags         string `form:"tags"`
	Sponsor      string `form:"sponsor"`
	Intro        string `form:"intro"`
	Details      string `form:"details"`
	Start        string `form:"start"`
	End          string `form:"end"`
	Category     string `form:"category"`
	File         string `form:"file"`
	Host         string `form:"host"`
	Contact      string `form:"contact"`
	ContactEmail string `form:"contact_email"`
}

func (f *ContestForm) Contest() domain.Contest {
	return domain.Contest{
		Title:        f.Title,
		Content:      f.Content,
		Tags:         splitTags(f.Tags),
		Sponsor:      f.Sponsor,
		Intro:        f.Intro,
		Details:      f.Details,
		Start:        f.Start,
		End:          f.End,
		Category:     f.Category,
		File:         f.File,
		Host:         f.Host,
		Contact:      f.Contact,
		ContactEmail: f.ContactEmail,
	}
}

func splitTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	return tags
}

type AnswerForm struct {
	Content string `form:"content"`
}
