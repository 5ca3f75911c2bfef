package domain

import "time"

// Session is one user's in-progress traversal of the graph.
// Path always starts with the root id and is never empty.
type Session struct {
	ID string `json:"id"`

	// Path is the ordered list of visited node ids. The last element is the current node.
	Path []string `json:"path"`

	// UpdatedAt is stamped by the session manager when the session is persisted.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// NewSession creates a session positioned at the root node.
func NewSession(id, root string) *Session {
	return &Session{
		ID:   id,
		Path: []string{root},
	}
}

// Current returns the id of the current node.
func (s *Session) Current() string {
	if len(s.Path) == 0 {
		return ""
	}
	return s.Path[len(s.Path)-1]
}

// Clone returns a deep copy so callers can derive a new session without mutating s.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	next := *s
	next.Path = append(make([]string, 0, len(s.Path)+1), s.Path...)
	return &next
}
