// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package viewmodel

import (
	"regexp"
	"sync"
	"time"

	"github.com/juju/clock"
	"github.com/juju/errors"

	"github.com/canonical/maas-netview/core/netmodel"
)

// MAAS system IDs are short lower-case alphanumeric strings.
var systemIDPattern = regexp.MustCompile(`^[0-9a-z]+$`)

// NodeStore is the slice of the cache the node events page needs.
type NodeStore interface {
	Node(systemID string) (netmodel.Node, bool)
	NodeEvents(systemID string) []netmodel.NodeEvent
}

// EventRow is one rendered line of the events table.
type EventRow struct {
	netmodel.NodeEvent
	Age time.Duration
}

// NodeEvents is the view model for a node's event log page.
type NodeEvents struct {
	store    NodeStore
	reporter Reporter
	clock    clock.Clock

	mu     sync.Mutex
	node   netmodel.Node
	loaded bool
}

// NewNodeEvents returns an unloaded view model. A nil clk selects the
// wall clock.
func NewNodeEvents(store NodeStore, reporter Reporter, clk clock.Clock) *NodeEvents {
	if clk == nil {
		clk = clock.WallClock
	}
	return &NodeEvents{
		store:    store,
		reporter: reporter,
		clock:    clk,
	}
}

// Load resolves the route's system ID to a node. A malformed ID is
// rejected before the store is consulted; failures are raised on the
// reporter and leave the model not-loaded.
func (m *NodeEvents) Load(systemID string) {
	if !systemIDPattern.MatchString(systemID) {
		m.reporter.RaiseError(errors.NotValidf("system ID %q", systemID))
		return
	}

	node, ok := m.store.Node(systemID)
	if !ok {
		m.reporter.RaiseError(errors.NotFoundf("node %q", systemID))
		return
	}

	m.mu.Lock()
	m.node = node
	m.loaded = true
	m.mu.Unlock()
}

// Loaded reports whether the node resolved.
func (m *NodeEvents) Loaded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loaded
}

// Title returns the page title, "<hostname> events".
func (m *NodeEvents) Title() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.loaded {
		return ""
	}
	return m.node.Hostname + " events"
}

// Events returns the node's events with their age at call time.
func (m *NodeEvents) Events() []EventRow {
	m.mu.Lock()
	node, loaded := m.node, m.loaded
	m.mu.Unlock()

	if !loaded {
		return nil
	}
	now := m.clock.Now()
	events := m.store.NodeEvents(node.SystemID)
	rows := make([]EventRow, len(events))
	for i, event := range events {
		rows[i] = EventRow{
			NodeEvent: event,
			Age:       now.Sub(event.CreatedAt),
		}
	}
	return rows
}
