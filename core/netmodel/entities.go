// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package netmodel holds the read-only entity types synchronised from
// the region controller. The collections that own them live in
// core/cache; everything here is plain data related by numeric
// foreign keys.
package netmodel

import (
	"time"
)

// Fabric is a logical grouping of one or more VLANs representing a
// physically or administratively distinct network fabric.
type Fabric struct {
	ID   FabricID `json:"id"`
	Name string   `json:"name"`
}

// VLAN is a virtual LAN segment belonging to exactly one fabric.
type VLAN struct {
	ID     VLANID   `json:"id"`
	Fabric FabricID `json:"fabric_id"`
	VID    int      `json:"vid"`
	Name   string   `json:"name,omitempty"`
}

// Space is a logical grouping of subnets for address management
// purposes, independent of physical topology.
type Space struct {
	ID   SpaceID `json:"id"`
	Name string  `json:"name"`
}

// Subnet is an IP address block associated with one VLAN and
// optionally one space.
//
// Space is carried on the subnet itself rather than derived through
// the VLAN chain; the region controller maintains both and they are
// preserved here exactly as given.
type Subnet struct {
	ID    SubnetID `json:"id"`
	Name  string   `json:"name"`
	CIDR  string   `json:"cidr"`
	VLAN  VLANID   `json:"vlan_id"`
	Space *SpaceID `json:"space_id"`
}

// IPRangeType discriminates reserved from dynamic ranges.
type IPRangeType string

const (
	IPRangeReserved IPRangeType = "reserved"
	IPRangeDynamic  IPRangeType = "dynamic"
)

// IPRange is a reserved or dynamic sub-block of addresses within a
// subnet.
type IPRange struct {
	ID      IPRangeID   `json:"id"`
	Subnet  SubnetID    `json:"subnet_id"`
	Type    IPRangeType `json:"type"`
	StartIP string      `json:"start_ip"`
	EndIP   string      `json:"end_ip"`
	Comment string      `json:"comment,omitempty"`
	User    string      `json:"user,omitempty"`
}

// Zone is an availability zone nodes and subnets can be placed in.
type Zone struct {
	ID          ZoneID `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Node is the slim node representation needed by the event view:
// enough to resolve a system ID to a display name.
type Node struct {
	SystemID string `json:"system_id"`
	Hostname string `json:"hostname"`
	FQDN     string `json:"fqdn,omitempty"`
}

// NodeEvent is one event recorded against a node.
type NodeEvent struct {
	ID           NodeEventID `json:"id"`
	NodeSystemID string      `json:"node_system_id"`
	Type         string      `json:"type"`
	Description  string      `json:"description,omitempty"`
	CreatedAt    time.Time   `json:"created"`
}

// NodeSummary identifies the node holding a static IP assignment.
type NodeSummary struct {
	SystemID string `json:"system_id"`
	Hostname string `json:"hostname"`
	NodeType int    `json:"node_type"`
}

// StaticIPAddress is one row of a subnet's used-addresses table.
type StaticIPAddress struct {
	IP        string       `json:"ip"`
	AllocType int          `json:"alloc_type"`
	User      string       `json:"user,omitempty"`
	Node      *NodeSummary `json:"node_summary,omitempty"`
}

// User is a console user account, as shown on the preferences page.
type User struct {
	Username    string `json:"username"`
	Email       string `json:"email,omitempty"`
	IsSuperuser bool   `json:"is_superuser"`
}
