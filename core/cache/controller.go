// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package cache holds the client-side collections synchronised from
// the region controller. The cache is fed through the Update/Remove
// mutators and read through ordered snapshots; every mutation is
// published on a per-collection topic so watchers can invalidate
// derived views.
package cache

import (
	"context"
	"sync"

	"github.com/juju/collections/set"
	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/juju/pubsub/v2"

	"github.com/canonical/maas-netview/core/netmodel"
)

var logger = loggo.GetLogger("maasnetview.cache")

const noActiveSubnet netmodel.SubnetID = -1

// Controller is the top level cache holding every synchronised
// collection. It is safe for concurrent use.
type Controller struct {
	hub *pubsub.SimpleHub

	mu       sync.Mutex
	fabrics  *collection[netmodel.FabricID, netmodel.Fabric]
	vlans    *collection[netmodel.VLANID, netmodel.VLAN]
	spaces   *collection[netmodel.SpaceID, netmodel.Space]
	subnets  *collection[netmodel.SubnetID, netmodel.Subnet]
	zones    *collection[netmodel.ZoneID, netmodel.Zone]
	nodes    *collection[string, netmodel.Node]
	events   *collection[netmodel.NodeEventID, netmodel.NodeEvent]
	ipranges *collection[netmodel.IPRangeID, netmodel.IPRange]
	users    *collection[string, netmodel.User]

	loaded       set.Strings
	activeSubnet netmodel.SubnetID
}

// NewController returns an empty cache.
func NewController() *Controller {
	return &Controller{
		hub:          pubsub.NewSimpleHub(nil),
		fabrics:      newCollection(func(f netmodel.Fabric) netmodel.FabricID { return f.ID }),
		vlans:        newCollection(func(v netmodel.VLAN) netmodel.VLANID { return v.ID }),
		spaces:       newCollection(func(s netmodel.Space) netmodel.SpaceID { return s.ID }),
		subnets:      newCollection(func(s netmodel.Subnet) netmodel.SubnetID { return s.ID }),
		zones:        newCollection(func(z netmodel.Zone) netmodel.ZoneID { return z.ID }),
		nodes:        newCollection(func(n netmodel.Node) string { return n.SystemID }),
		events:       newCollection(func(e netmodel.NodeEvent) netmodel.NodeEventID { return e.ID }),
		ipranges:     newCollection(func(r netmodel.IPRange) netmodel.IPRangeID { return r.ID }),
		users:        newCollection(func(u netmodel.User) string { return u.Username }),
		loaded:       set.NewStrings(),
		activeSubnet: noActiveSubnet,
	}
}

func (c *Controller) publish(kind Kind, removed bool) {
	_ = c.hub.Publish(topicFor(kind), Change{Kind: kind, Removed: removed})
}

// UpdateFabric adds or replaces a fabric.
func (c *Controller) UpdateFabric(fabric netmodel.Fabric) {
	c.mu.Lock()
	c.fabrics.upsert(fabric)
	c.mu.Unlock()
	c.publish(KindFabric, false)
}

// RemoveFabric removes the fabric if present.
func (c *Controller) RemoveFabric(id netmodel.FabricID) {
	c.mu.Lock()
	removed := c.fabrics.remove(id)
	c.mu.Unlock()
	if removed {
		c.publish(KindFabric, true)
	}
}

// Fabrics returns a snapshot of the fabrics in insertion order.
func (c *Controller) Fabrics() []netmodel.Fabric {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fabrics.snapshot()
}

// Fabric looks a fabric up by ID.
func (c *Controller) Fabric(id netmodel.FabricID) (netmodel.Fabric, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fabrics.get(id)
}

// UpdateVLAN adds or replaces a VLAN.
func (c *Controller) UpdateVLAN(vlan netmodel.VLAN) {
	c.mu.Lock()
	c.vlans.upsert(vlan)
	c.mu.Unlock()
	c.publish(KindVLAN, false)
}

// RemoveVLAN removes the VLAN if present.
func (c *Controller) RemoveVLAN(id netmodel.VLANID) {
	c.mu.Lock()
	removed := c.vlans.remove(id)
	c.mu.Unlock()
	if removed {
		c.publish(KindVLAN, true)
	}
}

// VLANs returns a snapshot of the VLANs in insertion order.
func (c *Controller) VLANs() []netmodel.VLAN {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vlans.snapshot()
}

// VLAN looks a VLAN up by ID.
func (c *Controller) VLAN(id netmodel.VLANID) (netmodel.VLAN, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vlans.get(id)
}

// UpdateSpace adds or replaces a space.
func (c *Controller) UpdateSpace(space netmodel.Space) {
	c.mu.Lock()
	c.spaces.upsert(space)
	c.mu.Unlock()
	c.publish(KindSpace, false)
}

// RemoveSpace removes the space if present.
func (c *Controller) RemoveSpace(id netmodel.SpaceID) {
	c.mu.Lock()
	removed := c.spaces.remove(id)
	c.mu.Unlock()
	if removed {
		c.publish(KindSpace, true)
	}
}

// Spaces returns a snapshot of the spaces in insertion order.
func (c *Controller) Spaces() []netmodel.Space {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.spaces.snapshot()
}

// Space looks a space up by ID.
func (c *Controller) Space(id netmodel.SpaceID) (netmodel.Space, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.spaces.get(id)
}

// UpdateSubnet adds or replaces a subnet.
func (c *Controller) UpdateSubnet(subnet netmodel.Subnet) {
	c.mu.Lock()
	c.subnets.upsert(subnet)
	c.mu.Unlock()
	c.publish(KindSubnet, false)
}

// RemoveSubnet removes the subnet if present. If it was the active
// subnet the active selection is cleared.
func (c *Controller) RemoveSubnet(id netmodel.SubnetID) {
	c.mu.Lock()
	removed := c.subnets.remove(id)
	if removed && c.activeSubnet == id {
		c.activeSubnet = noActiveSubnet
	}
	c.mu.Unlock()
	if removed {
		c.publish(KindSubnet, true)
	}
}

// Subnets returns a snapshot of the subnets in insertion order.
func (c *Controller) Subnets() []netmodel.Subnet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subnets.snapshot()
}

// Subnet looks a subnet up by ID.
func (c *Controller) Subnet(id netmodel.SubnetID) (netmodel.Subnet, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subnets.get(id)
}

// SetActiveSubnet marks the subnet as the one being viewed in detail
// and returns it. Unknown subnets are a NotFound failure and leave
// the previous selection in place.
func (c *Controller) SetActiveSubnet(id netmodel.SubnetID) (netmodel.Subnet, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	subnet, ok := c.subnets.get(id)
	if !ok {
		return netmodel.Subnet{}, errors.NotFoundf("subnet %d", id)
	}
	c.activeSubnet = id
	return subnet, nil
}

// ActiveSubnet returns the subnet selected with SetActiveSubnet.
func (c *Controller) ActiveSubnet() (netmodel.Subnet, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.activeSubnet == noActiveSubnet {
		return netmodel.Subnet{}, false
	}
	return c.subnets.get(c.activeSubnet)
}

// UpdateZone adds or replaces a zone.
func (c *Controller) UpdateZone(zone netmodel.Zone) {
	c.mu.Lock()
	c.zones.upsert(zone)
	c.mu.Unlock()
	c.publish(KindZone, false)
}

// Zones returns a snapshot of the zones in insertion order.
func (c *Controller) Zones() []netmodel.Zone {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zones.snapshot()
}

// UpdateNode adds or replaces a node.
func (c *Controller) UpdateNode(node netmodel.Node) {
	c.mu.Lock()
	c.nodes.upsert(node)
	c.mu.Unlock()
	c.publish(KindNode, false)
}

// Node looks a node up by system ID.
func (c *Controller) Node(systemID string) (netmodel.Node, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nodes.get(systemID)
}

// UpdateNodeEvent adds or replaces a node event.
func (c *Controller) UpdateNodeEvent(event netmodel.NodeEvent) {
	c.mu.Lock()
	c.events.upsert(event)
	c.mu.Unlock()
	c.publish(KindNodeEvent, false)
}

// NodeEvents returns the events recorded against one node, in
// insertion order.
func (c *Controller) NodeEvents(systemID string) []netmodel.NodeEvent {
	c.mu.Lock()
	defer c.mu.Unlock()

	var result []netmodel.NodeEvent
	for _, event := range c.events.snapshot() {
		if event.NodeSystemID == systemID {
			result = append(result, event)
		}
	}
	return result
}

// UpdateIPRange adds or replaces an IP range.
func (c *Controller) UpdateIPRange(r netmodel.IPRange) {
	c.mu.Lock()
	c.ipranges.upsert(r)
	c.mu.Unlock()
	c.publish(KindIPRange, false)
}

// RemoveIPRange removes the IP range if present.
func (c *Controller) RemoveIPRange(id netmodel.IPRangeID) {
	c.mu.Lock()
	removed := c.ipranges.remove(id)
	c.mu.Unlock()
	if removed {
		c.publish(KindIPRange, true)
	}
}

// IPRanges returns the ranges within one subnet, in insertion order.
func (c *Controller) IPRanges(subnet netmodel.SubnetID) []netmodel.IPRange {
	c.mu.Lock()
	defer c.mu.Unlock()

	var result []netmodel.IPRange
	for _, r := range c.ipranges.snapshot() {
		if r.Subnet == subnet {
			result = append(result, r)
		}
	}
	return result
}

// UpdateUser adds or replaces a user.
func (c *Controller) UpdateUser(user netmodel.User) {
	c.mu.Lock()
	c.users.upsert(user)
	c.mu.Unlock()
	c.publish(KindUser, false)
}

// User looks a user up by username.
func (c *Controller) User(username string) (netmodel.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.users.get(username)
}

// MarkLoaded records that the collection completed its initial
// synchronisation and wakes any WaitLoaded callers.
func (c *Controller) MarkLoaded(kind Kind) {
	c.mu.Lock()
	c.loaded.Add(string(kind))
	c.mu.Unlock()
	_ = c.hub.Publish(loadedTopic, Change{Kind: kind})
}

// IsLoaded reports whether the collection completed its initial
// synchronisation.
func (c *Controller) IsLoaded(kind Kind) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded.Contains(string(kind))
}

// WaitLoaded blocks until every requested collection has completed
// its initial synchronisation, or the context is cancelled.
func (c *Controller) WaitLoaded(ctx context.Context, kinds ...Kind) error {
	woken := make(chan struct{}, 1)
	unsub := c.hub.Subscribe(loadedTopic, func(string, interface{}) {
		select {
		case woken <- struct{}{}:
		default:
		}
	})
	defer unsub()

	for {
		if c.allLoaded(kinds) {
			return nil
		}
		select {
		case <-ctx.Done():
			return errors.Annotatef(ctx.Err(), "waiting for %v to load", kinds)
		case <-woken:
		}
	}
}

func (c *Controller) allLoaded(kinds []Kind) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, kind := range kinds {
		if !c.loaded.Contains(string(kind)) {
			return false
		}
	}
	return true
}

// WatchKind returns a watcher signalling changes to one collection.
// Callers own the watcher and must stop it.
func (c *Controller) WatchKind(kind Kind) *CollectionWatcher {
	return newCollectionWatcher(c.hub, topicFor(kind))
}

// WatchTopology returns a watcher signalling changes to any of the
// four collections the fabric and space tables derive from.
func (c *Controller) WatchTopology() *CollectionWatcher {
	topics := make([]string, 0, 4)
	for _, kind := range TopologyKinds() {
		topics = append(topics, topicFor(kind))
	}
	return newCollectionWatcher(c.hub, topics...)
}
