// Package views models the site's navigation state: the closed set of views,
// their shareable address fragments, and the fallback rules for unrecognized
// fragments.
package views

// View identifies one renderable page.
type View string

const (
	Home          View = "home"
	About         View = "about"
	Programs      View = "programs"
	Missions      View = "missions"
	MissionDetail View = "mission-detail"
	Donate        View = "donate"
	Join          View = "join"
	Contact       View = "contact"
	Admin         View = "admin"
)

// All lists every valid view.
func All() []View {
	return []View{Home, About, Programs, Missions, MissionDetail, Donate, Join, Contact, Admin}
}

// Valid reports whether v belongs to the view set.
func Valid(v View) bool {
	switch v {
	case Home, About, Programs, Missions, MissionDetail, Donate, Join, Contact, Admin:
		return true
	}
	return false
}

// ParseFragment derives a view from an address fragment (without the leading
// "#"). Empty and unrecognized fragments fall back to Home.
func ParseFragment(fragment string) View {
	v := View(fragment)
	if fragment == "" || !Valid(v) {
		return Home
	}
	return v
}

// Fragment returns the shareable address fragment for the view.
// MissionDetail deliberately has none: detail pages are reached through the
// missions list and are not independently bookmarkable.
func (v View) Fragment() string {
	if v == MissionDetail {
		return ""
	}
	return string(v)
}

// State is the process-wide navigation state, derived from and kept in sync
// with the address fragment. It is not persisted across sessions.
type State struct {
	Current    View
	SelectedID string
}

// NewState derives the initial state from the fragment at load.
func NewState(fragment string) State {
	return State{Current: ParseFragment(fragment)}
}

// Navigate moves to the given view, recording the selected post id for
// MissionDetail. It returns the fragment the address bar should show;
// an empty fragment means the address bar is left untouched.
func (s *State) Navigate(v View, selectedID string) string {
	if !Valid(v) {
		v = Home
	}
	if selectedID != "" {
		s.SelectedID = selectedID
	}
	s.Current = v
	return v.Fragment()
}

// Sync re-derives the current view from an externally changed fragment
// (back/forward navigation or a typed URL).
func (s *State) Sync(fragment string) {
	s.Current = ParseFragment(fragment)
}
