// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package viewmodel

import (
	"context"
	"sync"

	"github.com/juju/errors"

	"github.com/canonical/maas-netview/core/cache"
	"github.com/canonical/maas-netview/core/netmodel"
)

// ZoneStore is the slice of the cache the zones page needs.
type ZoneStore interface {
	Zones() []netmodel.Zone
	WaitLoaded(ctx context.Context, kinds ...cache.Kind) error
}

// Zones is the view model for the availability zones list page.
type Zones struct {
	store ZoneStore

	mu     sync.Mutex
	loaded bool
}

// NewZones returns the view model in its loading state.
func NewZones(store ZoneStore) *Zones {
	return &Zones{store: store}
}

// Load blocks until the zone collection completed its initial
// synchronisation.
func (z *Zones) Load(ctx context.Context) error {
	if err := z.store.WaitLoaded(ctx, cache.KindZone); err != nil {
		return errors.Trace(err)
	}
	z.mu.Lock()
	z.loaded = true
	z.mu.Unlock()
	return nil
}

// Loading reports whether the initial synchronisation is still in
// progress.
func (z *Zones) Loading() bool {
	z.mu.Lock()
	defer z.mu.Unlock()
	return !z.loaded
}

// Zones returns the current zone list.
func (z *Zones) Zones() []netmodel.Zone {
	return z.store.Zones()
}
