package interact

// Selection tracks the highlighted atom. The zero value is idle.
type Selection struct {
	index       int
	highlighted bool
}

// OnPick applies a pick event and reports whether the state changed. A hit
// highlights the atom, a miss clears the highlight.
func (s *Selection) OnPick(p Pick) bool {
	if !p.Hit {
		return s.Clear()
	}
	if s.highlighted && s.index == p.Index {
		return false
	}
	s.index, s.highlighted = p.Index, true
	return true
}

// Clear returns to idle and reports whether anything was highlighted.
func (s *Selection) Clear() bool {
	changed := s.highlighted
	s.index, s.highlighted = 0, false
	return changed
}

// Highlighted returns the highlighted atom index.
func (s *Selection) Highlighted() (int, bool) {
	return s.index, s.highlighted
}

// Idle reports whether nothing is highlighted.
func (s *Selection) Idle() bool { return !s.highlighted }
