// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package netview_test

import (
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/canonical/maas-netview/core/netmodel"
	"github.com/canonical/maas-netview/core/netview"
)

type viewSuite struct {
	fabrics []netmodel.Fabric
	vlans   []netmodel.VLAN
	spaces  []netmodel.Space
	subnets []netmodel.Subnet
}

var _ = gc.Suite(&viewSuite{})

func spaceRef(id netmodel.SpaceID) *netmodel.SpaceID {
	return &id
}

// SetUpTest starts every test from the same small topology: one
// fabric owning one VLAN, one space, one subnet tying them together.
func (s *viewSuite) SetUpTest(c *gc.C) {
	s.fabrics = []netmodel.Fabric{{ID: 0, Name: "fabric-0"}}
	s.vlans = []netmodel.VLAN{{ID: 1, Fabric: 0, VID: 0, Name: "untagged"}}
	s.spaces = []netmodel.Space{{ID: 0, Name: "space-0"}}
	s.subnets = []netmodel.Subnet{{
		ID:    0,
		Name:  "10.20.0.0/16",
		CIDR:  "10.20.0.0/16",
		VLAN:  1,
		Space: spaceRef(0),
	}}
}

func (s *viewSuite) fabricTable() []netview.FabricRow {
	return netview.ComputeFabricTable(s.fabrics, s.vlans, s.spaces, s.subnets)
}

func (s *viewSuite) spaceTable() []netview.SpaceRow {
	return netview.ComputeSpaceTable(s.fabrics, s.vlans, s.spaces, s.subnets)
}

func (s *viewSuite) TestOneRowPerFabric(c *gc.C) {
	table := s.fabricTable()
	c.Assert(table, gc.HasLen, 1)
	c.Check(table[0].Fabric, jc.DeepEquals, s.fabrics[0])
	c.Assert(table[0].Rows, gc.HasLen, 1)

	entry := table[0].Rows[0]
	c.Check(entry.VLAN, jc.DeepEquals, &s.vlans[0])
	c.Check(entry.Space, jc.DeepEquals, &s.spaces[0])
	c.Check(entry.Subnet, jc.DeepEquals, &s.subnets[0])
}

func (s *viewSuite) TestOneRowPerSpace(c *gc.C) {
	table := s.spaceTable()
	c.Assert(table, gc.HasLen, 1)
	c.Check(table[0].Space, jc.DeepEquals, s.spaces[0])
	c.Assert(table[0].Rows, gc.HasLen, 1)

	entry := table[0].Rows[0]
	c.Check(entry.Fabric, jc.DeepEquals, &s.fabrics[0])
	c.Check(entry.VLAN, jc.DeepEquals, &s.vlans[0])
	c.Check(entry.Subnet, jc.DeepEquals, &s.subnets[0])
}

func (s *viewSuite) TestFabricWithoutVLANsGetsEmptyRow(c *gc.C) {
	before := s.fabricTable()

	s.fabrics = append(s.fabrics, netmodel.Fabric{ID: 1, Name: "fabric-1"})
	after := s.fabricTable()

	c.Assert(after, gc.HasLen, 2)
	// The pre-existing row is untouched.
	c.Check(after[0], jc.DeepEquals, before[0])
	c.Check(after[1].Fabric.ID, gc.Equals, netmodel.FabricID(1))
	c.Check(after[1].Rows, gc.HasLen, 0)
}

func (s *viewSuite) TestVLANWithoutSubnet(c *gc.C) {
	spacesBefore := s.spaceTable()

	s.vlans = append(s.vlans, netmodel.VLAN{ID: 2, Fabric: 0, VID: 20})
	table := s.fabricTable()

	c.Assert(table, gc.HasLen, 1)
	c.Assert(table[0].Rows, gc.HasLen, 2)
	entry := table[0].Rows[1]
	c.Check(entry.VLAN.ID, gc.Equals, netmodel.VLANID(2))
	c.Check(entry.Space, gc.IsNil)
	c.Check(entry.Subnet, gc.IsNil)

	// The space table is unaffected by a subnet-less VLAN.
	c.Check(s.spaceTable(), jc.DeepEquals, spacesBefore)
}

func (s *viewSuite) TestSecondSubnetOnSameVLAN(c *gc.C) {
	s.fabrics = append(s.fabrics, netmodel.Fabric{ID: 1, Name: "fabric-1"})
	s.spaces = append(s.spaces, netmodel.Space{ID: 1, Name: "space-1"})
	s.subnets = append(s.subnets, netmodel.Subnet{
		ID:    1,
		Name:  "10.99.34.0/24",
		CIDR:  "10.99.34.0/24",
		VLAN:  1,
		Space: spaceRef(0),
	})

	fabricTable := s.fabricTable()
	c.Assert(fabricTable, gc.HasLen, 2)
	// Both subnets appear under the owning VLAN, in subnet input order.
	c.Assert(fabricTable[0].Rows, gc.HasLen, 2)
	c.Check(fabricTable[0].Rows[0].Subnet.ID, gc.Equals, netmodel.SubnetID(0))
	c.Check(fabricTable[0].Rows[1].Subnet.ID, gc.Equals, netmodel.SubnetID(1))
	c.Check(fabricTable[0].Rows[1].VLAN.ID, gc.Equals, netmodel.VLANID(1))
	// The unrelated fabric is untouched.
	c.Check(fabricTable[1].Rows, gc.HasLen, 0)

	spaceTable := s.spaceTable()
	c.Assert(spaceTable, gc.HasLen, 2)
	c.Assert(spaceTable[0].Rows, gc.HasLen, 2)
	c.Check(spaceTable[0].Rows[1].Subnet.ID, gc.Equals, netmodel.SubnetID(1))
	// The unrelated space is untouched.
	c.Check(spaceTable[1].Rows, gc.HasLen, 0)
}

func (s *viewSuite) TestVLANWithUnknownFabricOmitted(c *gc.C) {
	s.vlans = append(s.vlans, netmodel.VLAN{ID: 3, Fabric: 42, VID: 30})

	table := s.fabricTable()
	c.Assert(table, gc.HasLen, 1)
	c.Check(table[0].Rows, gc.HasLen, 1)
	for _, entry := range table[0].Rows {
		c.Check(entry.VLAN.ID, gc.Not(gc.Equals), netmodel.VLANID(3))
	}
}

func (s *viewSuite) TestSpaceEntryWithUnknownVLAN(c *gc.C) {
	s.subnets = append(s.subnets, netmodel.Subnet{
		ID:    5,
		Name:  "172.16.0.0/24",
		CIDR:  "172.16.0.0/24",
		VLAN:  999,
		Space: spaceRef(0),
	})

	table := s.spaceTable()
	c.Assert(table, gc.HasLen, 1)
	c.Assert(table[0].Rows, gc.HasLen, 2)

	entry := table[0].Rows[1]
	c.Check(entry.Subnet.ID, gc.Equals, netmodel.SubnetID(5))
	c.Check(entry.VLAN, gc.IsNil)
	c.Check(entry.Fabric, gc.IsNil)
}

func (s *viewSuite) TestSubnetWithoutSpaceOnlyInFabricTable(c *gc.C) {
	s.subnets = append(s.subnets, netmodel.Subnet{
		ID:   6,
		Name: "192.168.0.0/24",
		CIDR: "192.168.0.0/24",
		VLAN: 1,
	})

	spaceTable := s.spaceTable()
	c.Assert(spaceTable, gc.HasLen, 1)
	c.Check(spaceTable[0].Rows, gc.HasLen, 1)

	fabricTable := s.fabricTable()
	c.Assert(fabricTable[0].Rows, gc.HasLen, 2)
	entry := fabricTable[0].Rows[1]
	c.Check(entry.Subnet.ID, gc.Equals, netmodel.SubnetID(6))
	c.Check(entry.Space, gc.IsNil)
}

func (s *viewSuite) TestSubnetWithUnknownSpaceOmittedFromSpaceTable(c *gc.C) {
	s.subnets = append(s.subnets, netmodel.Subnet{
		ID:    7,
		Name:  "192.168.5.0/24",
		CIDR:  "192.168.5.0/24",
		VLAN:  1,
		Space: spaceRef(41),
	})

	table := s.spaceTable()
	c.Assert(table, gc.HasLen, 1)
	c.Check(table[0].Rows, gc.HasLen, 1)
}

func (s *viewSuite) TestRowOrderFollowsVLANThenSubnetOrder(c *gc.C) {
	s.vlans = append(s.vlans, netmodel.VLAN{ID: 2, Fabric: 0, VID: 20})
	s.subnets = append(s.subnets,
		netmodel.Subnet{ID: 8, CIDR: "10.30.0.0/24", VLAN: 2},
		netmodel.Subnet{ID: 9, CIDR: "10.40.0.0/24", VLAN: 1},
	)

	table := s.fabricTable()
	c.Assert(table[0].Rows, gc.HasLen, 3)
	// VLAN 1 entries first, in subnet input order, then VLAN 2.
	c.Check(table[0].Rows[0].Subnet.ID, gc.Equals, netmodel.SubnetID(0))
	c.Check(table[0].Rows[1].Subnet.ID, gc.Equals, netmodel.SubnetID(9))
	c.Check(table[0].Rows[2].Subnet.ID, gc.Equals, netmodel.SubnetID(8))
}

func (s *viewSuite) TestComputeIsPure(c *gc.C) {
	first := s.fabricTable()
	second := s.fabricTable()
	c.Check(first, jc.DeepEquals, second)

	firstSpaces := s.spaceTable()
	secondSpaces := s.spaceTable()
	c.Check(firstSpaces, jc.DeepEquals, secondSpaces)
}

func (s *viewSuite) TestEmptyInputs(c *gc.C) {
	fabricTable := netview.ComputeFabricTable(nil, nil, nil, nil)
	c.Check(fabricTable, gc.HasLen, 0)
	spaceTable := netview.ComputeSpaceTable(nil, nil, nil, nil)
	c.Check(spaceTable, gc.HasLen, 0)
}
