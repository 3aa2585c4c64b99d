// Package models defines the domain types for the Smiles of Hope CMS.
package models

import (
	"strconv"
	"sync"
	"time"
)

// Post categories form a closed set.
const (
	CategoryUpcoming  = "Upcoming"
	CategoryOutreach  = "Outreach"
	CategoryHealthTip = "Health Tip"
)

// Categories lists every valid post category.
func Categories() []string {
	return []string{CategoryUpcoming, CategoryOutreach, CategoryHealthTip}
}

// ValidCategory reports whether c belongs to the closed category set.
func ValidCategory(c string) bool {
	return c == CategoryUpcoming || c == CategoryOutreach || c == CategoryHealthTip
}

// Post is a single mission story. IDs are opaque, unique, and assigned once
// at creation time. Gallery order is display order; when the gallery is
// empty the cover image stands in as the only slide.
type Post struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Date     string   `json:"date"` // YYYY-MM-DD
	Category string   `json:"category"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content,omitempty"`
	Image    string   `json:"image"`
	Video    string   `json:"video,omitempty"`
	Gallery  []string `json:"gallery,omitempty"`
}

// Clone returns a deep copy of the post.
func (p Post) Clone() Post {
	out := p
	if p.Gallery != nil {
		out.Gallery = make([]string, len(p.Gallery))
		copy(out.Gallery, p.Gallery)
	}
	return out
}

// Body returns the long-form text, falling back to the excerpt when absent.
func (p Post) Body() string {
	if p.Content != "" {
		return p.Content
	}
	return p.Excerpt
}

// Slides returns the gallery, or the cover image as the only slide when the
// gallery is empty.
func (p Post) Slides() []string {
	if len(p.Gallery) > 0 {
		return p.Gallery
	}
	if p.Image != "" {
		return []string{p.Image}
	}
	return nil
}

var idMu sync.Mutex
var lastID int64

// NewPostID returns a fresh timestamp-derived identifier. Consecutive calls
// within the same millisecond are bumped to keep IDs unique.
func NewPostID() string {
	idMu.Lock()
	defer idMu.Unlock()
	now := time.Now().UnixMilli()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now
	return strconv.FormatInt(now, 10)
}
