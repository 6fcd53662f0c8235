// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package netview

// Tab selects which of the two tables the list view displays.
type Tab string

const (
	TabFabrics Tab = "fabrics"
	TabSpaces  Tab = "spaces"
)

// Valid reports whether t names a known tab.
func (t Tab) Valid() bool {
	switch t {
	case TabFabrics, TabSpaces:
		return true
	}
	return false
}

// Title returns the page title shown for the tab.
func (t Tab) Title() string {
	switch t {
	case TabSpaces:
		return "Spaces"
	default:
		return "Fabrics"
	}
}
