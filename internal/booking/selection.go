package booking

import "github.com/Veraticus/skiphire/internal/model"

// Selection holds at most one chosen skip option. The zero value is an
// empty selection.
type Selection struct {
	option *model.SkipOption
}

// Select makes opt the current choice, replacing any earlier one. Disabled
// options are ignored and Select reports false. Selecting the current
// choice again keeps it selected.
func (s *Selection) Select(opt model.SkipOption) bool {
	if IsDisabled(opt) {
		return false
	}
	s.option = &opt
	return true
}

// Selected returns the chosen option, if any.
func (s Selection) Selected() (model.SkipOption, bool) {
	if s.option == nil {
		return model.SkipOption{}, false
	}
	return *s.option, true
}

// IsSelected reports whether the option with the given ID is the current choice.
func (s Selection) IsSelected(id int) bool {
	return s.option != nil && s.option.ID == id
}

// IsEmpty reports whether nothing has been chosen yet.
func (s Selection) IsEmpty() bool {
	return s.option == nil
}

// Reconcile drops the choice when a reload no longer offers an option with
// the same ID; otherwise the choice is rebound to the freshly fetched value.
func (s *Selection) Reconcile(options []model.SkipOption) {
	if s.option == nil {
		return
	}
	for _, opt := range options {
		if opt.ID == s.option.ID && !IsDisabled(opt) {
			s.option = &opt
			return
		}
	}
	s.option = nil
}
