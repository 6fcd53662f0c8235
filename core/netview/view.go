// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package netview builds the denormalised presentation tables for the
// fabrics/spaces list view. The compute functions are pure: they read
// the four input snapshots, resolve foreign keys, and return freshly
// built rows. Unresolvable references degrade to nil entries rather
// than errors, since the input collections load independently and may
// be transiently inconsistent.
package netview

import (
	"github.com/canonical/maas-netview/core/netmodel"
)

// FabricRowEntry is one line under a fabric: a VLAN, the space and
// subnet resolved for it. Space and Subnet are nil when no subnet
// references the VLAN.
type FabricRowEntry struct {
	VLAN   *netmodel.VLAN
	Space  *netmodel.Space
	Subnet *netmodel.Subnet
}

// FabricRow groups the entries belonging to one fabric. Rows is empty
// for a fabric that owns no VLANs.
type FabricRow struct {
	Fabric netmodel.Fabric
	Rows   []FabricRowEntry
}

// SpaceRowEntry is one line under a space: a subnet together with its
// owning VLAN and that VLAN's fabric. Fabric and VLAN are nil when
// the subnet's VLAN reference does not resolve.
type SpaceRowEntry struct {
	Fabric *netmodel.Fabric
	VLAN   *netmodel.VLAN
	Subnet *netmodel.Subnet
}

// SpaceRow groups the entries belonging to one space. Rows is empty
// for a space no subnet references.
type SpaceRow struct {
	Space netmodel.Space
	Rows  []SpaceRowEntry
}

// ComputeFabricTable builds the by-fabric table. Every fabric appears
// exactly once, in input order. Each VLAN contributes one entry per
// subnet referencing it, or a single subnet-less entry when none do.
// VLANs whose fabric reference does not resolve are omitted.
func ComputeFabricTable(
	fabrics []netmodel.Fabric,
	vlans []netmodel.VLAN,
	spaces []netmodel.Space,
	subnets []netmodel.Subnet,
) []FabricRow {
	rows := make([]FabricRow, len(fabrics))
	rowIndex := make(map[netmodel.FabricID]int, len(fabrics))
	for i, fabric := range fabrics {
		rows[i] = FabricRow{Fabric: fabric, Rows: []FabricRowEntry{}}
		rowIndex[fabric.ID] = i
	}

	spacesByID := indexSpaces(spaces)

	for _, vlan := range vlans {
		i, known := rowIndex[vlan.Fabric]
		if !known {
			continue
		}
		vlan := vlan
		haveSubnet := false
		for _, subnet := range subnets {
			if subnet.VLAN != vlan.ID {
				continue
			}
			haveSubnet = true
			subnet := subnet
			rows[i].Rows = append(rows[i].Rows, FabricRowEntry{
				VLAN:   &vlan,
				Space:  lookupSpace(spacesByID, subnet.Space),
				Subnet: &subnet,
			})
		}
		if !haveSubnet {
			rows[i].Rows = append(rows[i].Rows, FabricRowEntry{VLAN: &vlan})
		}
	}
	return rows
}

// ComputeSpaceTable builds the by-space table. Every space appears
// exactly once, in input order. Entries come from subnets whose own
// space field matches; the VLAN and fabric are resolved per subnet and
// degrade to nil. Subnets without a known space appear in no row.
func ComputeSpaceTable(
	fabrics []netmodel.Fabric,
	vlans []netmodel.VLAN,
	spaces []netmodel.Space,
	subnets []netmodel.Subnet,
) []SpaceRow {
	rows := make([]SpaceRow, len(spaces))
	rowIndex := make(map[netmodel.SpaceID]int, len(spaces))
	for i, space := range spaces {
		rows[i] = SpaceRow{Space: space, Rows: []SpaceRowEntry{}}
		rowIndex[space.ID] = i
	}

	fabricsByID := make(map[netmodel.FabricID]netmodel.Fabric, len(fabrics))
	for _, fabric := range fabrics {
		fabricsByID[fabric.ID] = fabric
	}
	vlansByID := make(map[netmodel.VLANID]netmodel.VLAN, len(vlans))
	for _, vlan := range vlans {
		vlansByID[vlan.ID] = vlan
	}

	for _, subnet := range subnets {
		if subnet.Space == nil {
			continue
		}
		i, known := rowIndex[*subnet.Space]
		if !known {
			continue
		}
		subnet := subnet
		entry := SpaceRowEntry{Subnet: &subnet}
		if vlan, ok := vlansByID[subnet.VLAN]; ok {
			entry.VLAN = &vlan
			if fabric, ok := fabricsByID[vlan.Fabric]; ok {
				entry.Fabric = &fabric
			}
		}
		rows[i].Rows = append(rows[i].Rows, entry)
	}
	return rows
}

func indexSpaces(spaces []netmodel.Space) map[netmodel.SpaceID]netmodel.Space {
	byID := make(map[netmodel.SpaceID]netmodel.Space, len(spaces))
	for _, space := range spaces {
		byID[space.ID] = space
	}
	return byID
}

func lookupSpace(byID map[netmodel.SpaceID]netmodel.Space, id *netmodel.SpaceID) *netmodel.Space {
	if id == nil {
		return nil
	}
	space, ok := byID[*id]
	if !ok {
		return nil
	}
	return &space
}
