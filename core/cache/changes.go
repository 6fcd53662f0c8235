// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package cache

// Kind names one of the collections synchronised from the region
// controller.
type Kind string

const (
	KindFabric    Kind = "fabric"
	KindVLAN      Kind = "vlan"
	KindSpace     Kind = "space"
	KindSubnet    Kind = "subnet"
	KindZone      Kind = "zone"
	KindNode      Kind = "node"
	KindNodeEvent Kind = "node-event"
	KindIPRange   Kind = "iprange"
	KindUser      Kind = "user"
)

// TopologyKinds returns the collections the fabric and space tables
// are derived from. A change to any of them invalidates both tables.
func TopologyKinds() []Kind {
	return []Kind{KindFabric, KindVLAN, KindSpace, KindSubnet}
}

// Change is published on a kind's topic whenever an item in that
// collection is added, updated or removed.
type Change struct {
	Kind    Kind
	Removed bool
}

const topicPrefix = "collection."

// loadedTopic carries notifications that a collection completed its
// initial synchronisation.
const loadedTopic = topicPrefix + "loaded"

func topicFor(kind Kind) string {
	return topicPrefix + string(kind)
}
