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

// UserStore is the slice of the cache the preferences page needs.
type UserStore interface {
	User(username string) (netmodel.User, bool)
	WaitLoaded(ctx context.Context, kinds ...cache.Kind) error
}

// Preferences is the view model for the user preferences page. It
// only exists to hold the loading flag until the user collection has
// synchronised.
type Preferences struct {
	store    UserStore
	username string

	mu     sync.Mutex
	loaded bool
}

// NewPreferences returns the view model in its loading state.
func NewPreferences(store UserStore, username string) *Preferences {
	return &Preferences{store: store, username: username}
}

// Load blocks until the user collection completed its initial
// synchronisation.
func (p *Preferences) Load(ctx context.Context) error {
	if err := p.store.WaitLoaded(ctx, cache.KindUser); err != nil {
		return errors.Trace(err)
	}
	p.mu.Lock()
	p.loaded = true
	p.mu.Unlock()
	return nil
}

// Loading reports whether the initial synchronisation is still in
// progress.
func (p *Preferences) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.loaded
}

// User returns the account the preferences page belongs to, once
// loading has finished.
func (p *Preferences) User() (netmodel.User, bool) {
	if p.Loading() {
		return netmodel.User{}, false
	}
	return p.store.User(p.username)
}
