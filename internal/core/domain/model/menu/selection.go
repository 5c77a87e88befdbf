package menu

// Selection captures a customer's variant choices for one catalog item.
// It is transient: constructed per add-to-cart action and discarded once
// the priced line has been built.
//
// Single-mode choices overwrite each other per group. Multiple-mode choices
// accumulate and preserve insertion order, which determines the order of the
// resulting variant snapshots on the order line.
type Selection struct {
	single   map[string]string
	multiple map[string][]string
}

// NewSelection creates an empty Selection.
func NewSelection() *Selection {
	return &Selection{
		single:   make(map[string]string),
		multiple: make(map[string][]string),
	}
}

// Choose records the single-mode choice for a group, replacing any
// previous choice for that group.
func (s *Selection) Choose(groupID string, variantID string) {
	s.single[groupID] = variantID
}

// Add appends a multiple-mode choice for a group. Adding the same
// variant twice is a no-op; the first insertion position wins.
func (s *Selection) Add(groupID string, variantID string) {
	for _, id := range s.multiple[groupID] {
		if id == variantID {
			return
		}
	}
	s.multiple[groupID] = append(s.multiple[groupID], variantID)
}

// Remove drops a previously added multiple-mode choice.
// Unknown ids are ignored.
func (s *Selection) Remove(groupID string, variantID string) {
	current := s.multiple[groupID]
	for i, id := range current {
		if id == variantID {
			s.multiple[groupID] = append(current[:i], current[i+1:]...)
			return
		}
	}
}

// SingleChoice returns the single-mode choice for a group, if any.
func (s *Selection) SingleChoice(groupID string) (string, bool) {
	id, ok := s.single[groupID]
	return id, ok
}

// MultiChoices returns the multiple-mode choices for a group in
// insertion order. The returned slice is a copy.
func (s *Selection) MultiChoices(groupID string) []string {
	current := s.multiple[groupID]
	out := make([]string, len(current))
	copy(out, current)
	return out
}

// IsEmpty reports whether no choices have been recorded.
func (s *Selection) IsEmpty() bool {
	return len(s.single) == 0 && len(s.multiple) == 0
}
