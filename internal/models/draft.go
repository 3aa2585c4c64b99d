package models

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// dateLayouts are tried in order when normalizing a non-canonical date string.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	"02/01/2006",
	"2006/01/02",
}

// NormalizeDate coerces a date string into YYYY-MM-DD. Strings already in
// canonical form pass through; other layouts are parsed best-effort; anything
// unparseable yields "".
func NormalizeDate(s string) string {
	if s == "" {
		return ""
	}
	if isoDateRe.MatchString(s) {
		return s
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// Today returns the current date in canonical form.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// Draft is a possibly-incomplete in-progress edit of a Post. It shares the
// Post shape but enforces required fields only at publish time.
type Draft struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	Category string   `json:"category"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Image    string   `json:"image"`
	Video    string   `json:"video"`
	Gallery  []string `json:"gallery"`
}

// NewDraft returns an empty draft with a fresh ID, today's date, and the
// default category.
func NewDraft() Draft {
	return Draft{
		ID:       NewPostID(),
		Date:     Today(),
		Category: CategoryUpcoming,
		Gallery:  []string{},
	}
}

// DraftFromPost seeds a draft from an existing post, normalizing the date.
func DraftFromPost(p Post) Draft {
	c := p.Clone()
	g := c.Gallery
	if g == nil {
		g = []string{}
	}
	return Draft{
		ID:       c.ID,
		Title:    c.Title,
		Date:     NormalizeDate(c.Date),
		Category: c.Category,
		Excerpt:  c.Excerpt,
		Content:  c.Content,
		Image:    c.Image,
		Video:    c.Video,
		Gallery:  g,
	}
}

// Validate enforces the publish-time required fields.
func (d Draft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.Required),
		validation.Field(&d.Date, validation.Required),
		validation.Field(&d.Excerpt, validation.Required),
		validation.Field(&d.Content, validation.Required),
		validation.Field(&d.Category, validation.In(CategoryUpcoming, CategoryOutreach, CategoryHealthTip)),
	)
}

// Finalize converts the draft into a publishable Post, defaulting any
// optional field left unset.
func (d Draft) Finalize() Post {
	p := Post{
		ID:       d.ID,
		Title:    d.Title,
		Date:     d.Date,
		Category: d.Category,
		Excerpt:  d.Excerpt,
		Content:  d.Content,
		Image:    d.Image,
		Video:    d.Video,
		Gallery:  d.Gallery,
	}
	if p.ID == "" {
		p.ID = NewPostID()
	}
	if p.Title == "" {
		p.Title = "Untitled Story"
	}
	if p.Date == "" {
		p.Date = Today()
	}
	if p.Category == "" {
		p.Category = CategoryUpcoming
	}
	if p.Gallery == nil {
		p.Gallery = []string{}
	}
	return p
}
