// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package subnetdetail

import (
	"github.com/canonical/maas-netview/core/netmodel"
)

const noRange netmodel.IPRangeID = -1

// RangeSelection tracks which IP range, if any, is being edited or
// deleted. At most one range can be in either mode, and entering one
// mode clears the other. The zero value is not valid; use
// NewRangeSelection.
type RangeSelection struct {
	editing  netmodel.IPRangeID
	deleting netmodel.IPRangeID
}

// NewRangeSelection returns a selection with nothing in progress.
func NewRangeSelection() *RangeSelection {
	return &RangeSelection{editing: noRange, deleting: noRange}
}

// ToggleEdit puts the range in edit mode, or takes it out again if it
// was already being edited. Any delete in progress is abandoned.
func (s *RangeSelection) ToggleEdit(id netmodel.IPRangeID) {
	s.deleting = noRange
	if s.editing == id {
		s.editing = noRange
		return
	}
	s.editing = id
}

// StartDelete puts the range in delete mode, abandoning any edit in
// progress.
func (s *RangeSelection) StartDelete(id netmodel.IPRangeID) {
	s.editing = noRange
	s.deleting = id
}

// Clear abandons both modes.
func (s *RangeSelection) Clear() {
	s.editing = noRange
	s.deleting = noRange
}

// Editing returns the range currently in edit mode.
func (s *RangeSelection) Editing() (netmodel.IPRangeID, bool) {
	return s.editing, s.editing != noRange
}

// Deleting returns the range currently in delete mode.
func (s *RangeSelection) Deleting() (netmodel.IPRangeID, bool) {
	return s.deleting, s.deleting != noRange
}

// InEditMode reports whether the given range is being edited.
func (s *RangeSelection) InEditMode(id netmodel.IPRangeID) bool {
	return s.editing == id
}

// InDeleteMode reports whether the given range is being deleted.
func (s *RangeSelection) InDeleteMode(id netmodel.IPRangeID) bool {
	return s.deleting == id
}
