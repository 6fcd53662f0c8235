// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package viewmodel

import (
	"sync"

	"github.com/juju/errors"

	"github.com/canonical/maas-netview/core/netmodel"
	"github.com/canonical/maas-netview/core/netview"
)

// TopologyStore provides ordered snapshots of the four collections
// the fabric and space tables are computed from.
type TopologyStore interface {
	Fabrics() []netmodel.Fabric
	VLANs() []netmodel.VLAN
	Spaces() []netmodel.Space
	Subnets() []netmodel.Subnet
}

// Subnets is the view model for the fabrics/spaces list page. It
// holds the active tab and the most recently computed tables; Refresh
// rebuilds both tables wholesale from the current store snapshots.
type Subnets struct {
	store TopologyStore

	mu         sync.Mutex
	tab        netview.Tab
	fabricRows []netview.FabricRow
	spaceRows  []netview.SpaceRow
}

// NewSubnets returns the view model with the fabrics tab active and
// tables computed from the store's current contents.
func NewSubnets(store TopologyStore) *Subnets {
	s := &Subnets{
		store: store,
		tab:   netview.TabFabrics,
	}
	s.Refresh()
	return s
}

// Refresh recomputes both tables from the store. It is invoked by the
// caller whenever it observes that any input collection changed; a
// single call covers any number of coalesced mutations.
func (s *Subnets) Refresh() {
	fabrics := s.store.Fabrics()
	vlans := s.store.VLANs()
	spaces := s.store.Spaces()
	subnets := s.store.Subnets()

	fabricRows := netview.ComputeFabricTable(fabrics, vlans, spaces, subnets)
	spaceRows := netview.ComputeSpaceTable(fabrics, vlans, spaces, subnets)

	s.mu.Lock()
	s.fabricRows = fabricRows
	s.spaceRows = spaceRows
	s.mu.Unlock()
}

// SelectTab switches the active tab.
func (s *Subnets) SelectTab(tab netview.Tab) error {
	if !tab.Valid() {
		return errors.NotValidf("tab %q", tab)
	}
	s.mu.Lock()
	s.tab = tab
	s.mu.Unlock()
	return nil
}

// ActiveTab returns the currently displayed tab.
func (s *Subnets) ActiveTab() netview.Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tab
}

// Title returns the page title for the active tab.
func (s *Subnets) Title() string {
	return s.ActiveTab().Title()
}

// FabricTable returns the by-fabric table from the last Refresh.
func (s *Subnets) FabricTable() []netview.FabricRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fabricRows
}

// SpaceTable returns the by-space table from the last Refresh.
func (s *Subnets) SpaceTable() []netview.SpaceRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spaceRows
}
