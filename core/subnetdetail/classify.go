// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package subnetdetail holds the presentation helpers for a single
// subnet's detail view: label derivation for the used-addresses table
// and the exclusive selection state for editing IP ranges.
package subnetdetail

import (
	"github.com/canonical/maas-netview/core/netmodel"
)

// UnknownLabel is shown for any classification code outside the known
// sets.
const UnknownLabel = "Unknown"

// DefaultOwner is shown when an address has no recorded owner, which
// means the region controller itself assigned it.
const DefaultOwner = "MAAS"

var allocTypeLabels = map[int]string{
	0: "Automatic",
	1: "Static",
	4: "User reserved",
	5: "DHCP",
	6: "Observed",
}

var nodeTypeLabels = map[int]string{
	0: "Machine",
	1: "Device",
	2: "Rack controller",
	3: "Region controller",
	4: "Rack and region controller",
	5: "Chassis",
}

// AllocTypeLabel maps an address allocation-type code to its display
// label.
func AllocTypeLabel(code int) string {
	if label, ok := allocTypeLabels[code]; ok {
		return label
	}
	return UnknownLabel
}

// NodeTypeLabel maps a node-type code to its display label.
func NodeTypeLabel(code int) string {
	if label, ok := nodeTypeLabels[code]; ok {
		return label
	}
	return UnknownLabel
}

// OwnerLabel returns the address owner, falling back to DefaultOwner
// for addresses with no recorded owner.
func OwnerLabel(owner string) string {
	if owner == "" {
		return DefaultOwner
	}
	return owner
}

// IPKey is a total-order sort key for the used-addresses table.
// Unparseable addresses sort before everything else.
type IPKey struct {
	valid    bool
	msb, lsb uint64
}

// IPSortKey derives the sort key for the given address string.
func IPSortKey(ip string) IPKey {
	addr, err := netmodel.ParseIPAddress(ip)
	if err != nil {
		return IPKey{}
	}
	msb, lsb := addr.AsInts()
	return IPKey{valid: true, msb: msb, lsb: lsb}
}

// Less orders keys numerically, invalid first.
func (k IPKey) Less(other IPKey) bool {
	if k.valid != other.valid {
		return !k.valid
	}
	if k.msb != other.msb {
		return k.msb < other.msb
	}
	return k.lsb < other.lsb
}

// AddressRow is one rendered line of the used-addresses table.
type AddressRow struct {
	IP        string
	AllocType string
	Owner     string
	Node      string
	NodeType  string
}

// RenderAddress applies the label helpers to one static address.
func RenderAddress(addr netmodel.StaticIPAddress) AddressRow {
	row := AddressRow{
		IP:        addr.IP,
		AllocType: AllocTypeLabel(addr.AllocType),
		Owner:     OwnerLabel(addr.User),
	}
	if addr.Node != nil {
		row.Node = addr.Node.Hostname
		row.NodeType = NodeTypeLabel(addr.Node.NodeType)
	}
	return row
}
