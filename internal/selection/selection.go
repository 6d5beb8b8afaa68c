// Package selection holds the multi-select state of a media list.
//
// State is a value: every transition returns a new State and leaves the
// receiver untouched. Selection mode is on exactly when at least one id is
// selected, so emptying the set leaves selection mode.
package selection

import (
	"maps"
	"slices"
)

// State is the selection of one screen.
type State struct {
	ids map[int64]struct{}
}

// Active reports whether selection mode is on.
func (s State) Active() bool {
	return len(s.ids) > 0
}

// Contains reports whether id is selected.
func (s State) Contains(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected ids.
func (s State) Len() int {
	return len(s.ids)
}

// IDs returns the selected ids in ascending order.
func (s State) IDs() []int64 {
	return slices.Sorted(maps.Keys(s.ids))
}

// Enter turns selection mode on with id selected. Entering while already
// active adds id to the selection.
func (s State) Enter(id int64) State {
	next := s.clone()
	next.ids[id] = struct{}{}
	return next
}

// Toggle adds id when absent and removes it when present.
func (s State) Toggle(id int64) State {
	next := s.clone()
	if _, ok := next.ids[id]; ok {
		delete(next.ids, id)
	} else {
		next.ids[id] = struct{}{}
	}
	return next.normalize()
}

// SelectAll selects every id in all.
func (s State) SelectAll(all []int64) State {
	next := s.clone()
	for _, id := range all {
		next.ids[id] = struct{}{}
	}
	return next.normalize()
}

// ToggleAll selects every id in all, or clears the selection when all of
// them are already selected.
func (s State) ToggleAll(all []int64) State {
	if len(all) > 0 && s.containsAll(all) {
		return Clear()
	}
	return s.SelectAll(all)
}

// Retain drops selected ids that are not in present.
func (s State) Retain(present []int64) State {
	keep := make(map[int64]struct{}, len(present))
	for _, id := range present {
		keep[id] = struct{}{}
	}
	next := s.clone()
	maps.DeleteFunc(next.ids, func(id int64, _ struct{}) bool {
		_, ok := keep[id]
		return !ok
	})
	return next.normalize()
}

// Clear returns the empty selection with selection mode off.
func Clear() State {
	return State{}
}

func (s State) containsAll(all []int64) bool {
	for _, id := range all {
		if !s.Contains(id) {
			return false
		}
	}
	return true
}

func (s State) clone() State {
	ids := make(map[int64]struct{}, len(s.ids)+1)
	maps.Copy(ids, s.ids)
	return State{ids: ids}
}

func (s State) normalize() State {
	if len(s.ids) == 0 {
		return State{}
	}
	return s
}
