// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package netmodel

import (
	"sort"
)

// FabricID identifies a fabric on the region controller.
type FabricID int

// VLANID identifies a VLAN. This is the database row identifier,
// not the 802.1Q tag (see VLAN.VID for that).
type VLANID int

// SpaceID identifies a space.
type SpaceID int

// SubnetID identifies a subnet.
type SubnetID int

// IPRangeID identifies a reserved or dynamic IP range within a subnet.
type IPRangeID int

// ZoneID identifies an availability zone.
type ZoneID int

// NodeEventID identifies an event recorded against a node.
type NodeEventID int

// IDSet represents the classic "set" data structure over any of the
// typed identifiers above. It is used as a typed version to prevent
// int -> ID -> int conversion when tracking seen identifiers.
type IDSet[T ~int] map[T]struct{}

// MakeIDSet creates and initializes an IDSet and populates it with
// initial values as specified in the parameters.
func MakeIDSet[T ~int](values ...T) IDSet[T] {
	set := make(map[T]struct{}, len(values))
	for _, id := range values {
		set[id] = struct{}{}
	}
	return set
}

// Add puts a value into the set.
func (s IDSet[T]) Add(value T) {
	s[value] = struct{}{}
}

// Size returns the number of elements in the set.
func (s IDSet[T]) Size() int {
	return len(s)
}

// IsEmpty is true for empty or uninitialized sets.
func (s IDSet[T]) IsEmpty() bool {
	return len(s) == 0
}

// Contains returns true if the value is in the set, and false otherwise.
func (s IDSet[T]) Contains(id T) bool {
	_, exists := s[id]
	return exists
}

// Values returns an unordered slice containing all the values in the set.
func (s IDSet[T]) Values() []T {
	result := make([]T, len(s))
	i := 0
	for key := range s {
		result[i] = key
		i++
	}
	return result
}

// SortedValues returns an ordered slice containing all the values in
// the set.
func (s IDSet[T]) SortedValues() []T {
	values := s.Values()
	sort.Slice(values, func(i, j int) bool {
		return values[i] < values[j]
	})
	return values
}
