// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package viewmodel

import (
	"sort"
	"strconv"
	"sync"

	"github.com/juju/errors"

	"github.com/canonical/maas-netview/core/netmodel"
	"github.com/canonical/maas-netview/core/subnetdetail"
)

// SubnetStore is the slice of the cache the subnet detail page needs.
type SubnetStore interface {
	SetActiveSubnet(netmodel.SubnetID) (netmodel.Subnet, error)
	IPRanges(netmodel.SubnetID) []netmodel.IPRange
}

// SubnetDetail is the view model for a single subnet's page. A failed
// load is reported and leaves the model not-loaded; the caller may
// trigger another load, but the model itself never retries.
type SubnetDetail struct {
	store    SubnetStore
	reporter Reporter

	// Ranges tracks which IP range is being edited or deleted.
	Ranges *subnetdetail.RangeSelection

	mu     sync.Mutex
	subnet netmodel.Subnet
	loaded bool
}

// NewSubnetDetail returns an unloaded view model.
func NewSubnetDetail(store SubnetStore, reporter Reporter) *SubnetDetail {
	return &SubnetDetail{
		store:    store,
		reporter: reporter,
		Ranges:   subnetdetail.NewRangeSelection(),
	}
}

// Load resolves the route identifier and activates the subnet. A
// non-numeric identifier is rejected before any store call is made;
// both that and an activation failure are raised on the reporter.
func (d *SubnetDetail) Load(idText string) {
	id, err := strconv.Atoi(idText)
	if err != nil {
		d.reporter.RaiseError(errors.NotValidf("subnet identifier %q", idText))
		return
	}

	subnet, err := d.store.SetActiveSubnet(netmodel.SubnetID(id))
	if err != nil {
		d.reporter.RaiseError(err)
		return
	}

	d.mu.Lock()
	d.subnet = subnet
	d.loaded = true
	d.mu.Unlock()
}

// Loaded reports whether a subnet has been activated.
func (d *SubnetDetail) Loaded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loaded
}

// Subnet returns the active subnet.
func (d *SubnetDetail) Subnet() (netmodel.Subnet, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.subnet, d.loaded
}

// IPRanges returns the active subnet's reserved and dynamic ranges.
func (d *SubnetDetail) IPRanges() []netmodel.IPRange {
	d.mu.Lock()
	subnet, loaded := d.subnet, d.loaded
	d.mu.Unlock()

	if !loaded {
		return nil
	}
	return d.store.IPRanges(subnet.ID)
}

// SortedAddressRows renders the used-addresses table, ordered
// numerically by IP.
func (d *SubnetDetail) SortedAddressRows(addrs []netmodel.StaticIPAddress) []subnetdetail.AddressRow {
	sorted := make([]netmodel.StaticIPAddress, len(addrs))
	copy(sorted, addrs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return subnetdetail.IPSortKey(sorted[i].IP).Less(subnetdetail.IPSortKey(sorted[j].IP))
	})

	rows := make([]subnetdetail.AddressRow, len(sorted))
	for i, addr := range sorted {
		rows[i] = subnetdetail.RenderAddress(addr)
	}
	return rows
}
