package domain

// SessionDiff represents the changes between two snapshots of a session.
// It is designed to be serialized to JSON for partial updates on a client.
type SessionDiff struct {
	SessionID string `json:"session_id"`

	CurrentNodeID *string `json:"current_node_id,omitempty"`

	// Appended contains the ids added to the end of the path.
	Appended []string `json:"appended,omitempty"`

	// Reset is set when the new path is not an extension of the old one.
	// In that case Path carries the whole new path.
	Reset bool     `json:"reset,omitempty"`
	Path  []string `json:"path,omitempty"`
}

// Diff calculates the difference between oldSession and newSession.
// If oldSession is nil, it returns a diff representing the entire newSession.
// It returns nil when nothing changed.
func Diff(oldSession, newSession *Session) *SessionDiff {
	if newSession == nil {
		return nil
	}

	diff := &SessionDiff{SessionID: newSession.ID}

	if oldSession == nil || oldSession.Current() != newSession.Current() {
		current := newSession.Current()
		diff.CurrentNodeID = &current
	}

	switch {
	case oldSession == nil:
		diff.Appended = append([]string(nil), newSession.Path...)
	case isPrefix(oldSession.Path, newSession.Path):
		if len(newSession.Path) > len(oldSession.Path) {
			diff.Appended = append([]string(nil), newSession.Path[len(oldSession.Path):]...)
		}
	default:
		diff.Reset = true
		diff.Path = append([]string(nil), newSession.Path...)
	}

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

// IsEmpty checks if the diff contains any actionable changes.
func (d *SessionDiff) IsEmpty() bool {
	return d.CurrentNodeID == nil && len(d.Appended) == 0 && !d.Reset
}

func isPrefix(prefix, full []string) bool {
	if len(prefix) > len(full) {
		return false
	}
	for i := range prefix {
		if prefix[i] != full[i] {
			return false
		}
	}
	return true
}
