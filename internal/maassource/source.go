// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package maassource seeds the cache from a MAAS region controller
// over the 2.0 API. It performs a one-shot fetch: fabrics carry their
// VLANs, spaces carry their subnets, and both references arrive as
// names, so the fetch resolves them to IDs while loading. Failures
// are returned to the caller; there are no retries.
package maassource

import (
	"github.com/juju/errors"
	"github.com/juju/gomaasapi/v2"
	"github.com/juju/loggo"

	"github.com/canonical/maas-netview/core/cache"
	"github.com/canonical/maas-netview/core/netmodel"
)

var logger = loggo.GetLogger("maasnetview.maassource")

// Client is the slice of the gomaasapi controller the seeder uses.
type Client interface {
	Fabrics() ([]gomaasapi.Fabric, error)
	Spaces() ([]gomaasapi.Space, error)
	Zones() ([]gomaasapi.Zone, error)
}

// Connect opens an authenticated connection to a region controller.
func Connect(baseURL, apiKey string) (gomaasapi.Controller, error) {
	controller, err := gomaasapi.NewController(gomaasapi.ControllerArgs{
		BaseURL: baseURL,
		APIKey:  apiKey,
	})
	if err != nil {
		return nil, errors.Annotatef(err, "connecting to %q", baseURL)
	}
	return controller, nil
}

// Seed fetches the network topology and zones and loads them into the
// store, marking each collection loaded as it completes.
func Seed(store *cache.Controller, client Client) error {
	fabricIDs, err := seedFabrics(store, client)
	if err != nil {
		return errors.Trace(err)
	}
	if err := seedSpaces(store, client, fabricIDs); err != nil {
		return errors.Trace(err)
	}
	if err := seedZones(store, client); err != nil {
		return errors.Trace(err)
	}
	return nil
}

func seedFabrics(store *cache.Controller, client Client) (map[string]netmodel.FabricID, error) {
	fabrics, err := client.Fabrics()
	if err != nil {
		return nil, errors.Annotate(err, "fetching fabrics")
	}

	fabricIDs := make(map[string]netmodel.FabricID, len(fabrics))
	for _, fabric := range fabrics {
		id := netmodel.FabricID(fabric.ID())
		fabricIDs[fabric.Name()] = id
		store.UpdateFabric(netmodel.Fabric{
			ID:   id,
			Name: fabric.Name(),
		})
		for _, vlan := range fabric.VLANs() {
			store.UpdateVLAN(netmodel.VLAN{
				ID:     netmodel.VLANID(vlan.ID()),
				Fabric: id,
				VID:    vlan.VID(),
				Name:   vlan.Name(),
			})
		}
	}
	store.MarkLoaded(cache.KindFabric)
	store.MarkLoaded(cache.KindVLAN)
	logger.Debugf("loaded %d fabrics", len(fabrics))
	return fabricIDs, nil
}

func seedSpaces(store *cache.Controller, client Client, fabricIDs map[string]netmodel.FabricID) error {
	spaces, err := client.Spaces()
	if err != nil {
		return errors.Annotate(err, "fetching spaces")
	}

	for _, space := range spaces {
		spaceID := netmodel.SpaceID(space.ID())
		store.UpdateSpace(netmodel.Space{
			ID:   spaceID,
			Name: space.Name(),
		})
		for _, subnet := range space.Subnets() {
			vlan := subnet.VLAN()
			// The subnet's VLAN arrives fully populated but names its
			// fabric rather than identifying it; resolve via the
			// fabrics loaded above. An unknown fabric still yields a
			// usable VLAN row, just one the fabric table will omit.
			fabricID, known := fabricIDs[vlan.Fabric()]
			if !known {
				logger.Warningf("subnet %q references unknown fabric %q", subnet.CIDR(), vlan.Fabric())
				fabricID = -1
			}
			store.UpdateVLAN(netmodel.VLAN{
				ID:     netmodel.VLANID(vlan.ID()),
				Fabric: fabricID,
				VID:    vlan.VID(),
				Name:   vlan.Name(),
			})
			spaceID := spaceID
			store.UpdateSubnet(netmodel.Subnet{
				ID:    netmodel.SubnetID(subnet.ID()),
				Name:  subnet.Name(),
				CIDR:  subnet.CIDR(),
				VLAN:  netmodel.VLANID(vlan.ID()),
				Space: &spaceID,
			})
		}
	}
	store.MarkLoaded(cache.KindSpace)
	store.MarkLoaded(cache.KindSubnet)
	logger.Debugf("loaded %d spaces", len(spaces))
	return nil
}

func seedZones(store *cache.Controller, client Client) error {
	zones, err := client.Zones()
	if err != nil {
		return errors.Annotate(err, "fetching zones")
	}

	// The 2.0 zones endpoint does not expose IDs; number them in
	// response order.
	for i, zone := range zones {
		store.UpdateZone(netmodel.Zone{
			ID:          netmodel.ZoneID(i),
			Name:        zone.Name(),
			Description: zone.Description(),
		})
	}
	store.MarkLoaded(cache.KindZone)
	return nil
}
