// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package netviewupdater keeps the subnets list view model current:
// it owns a topology watcher and reruns the view model's Refresh for
// every change event. The watcher is level triggered, so any burst of
// mutations costs at most one extra recompute.
package netviewupdater

import (
	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/juju/worker/v4"
	"github.com/juju/worker/v4/catacomb"
)

var logger = loggo.GetLogger("maasnetview.worker.netviewupdater")

// Refresher is the view model side of the worker; Refresh recomputes
// the derived tables from the current store snapshots.
type Refresher interface {
	Refresh()
}

// Watcher signals collection changes. The cache's CollectionWatcher
// satisfies this.
type Watcher interface {
	worker.Worker
	Changes() <-chan struct{}
}

// Config holds the direct dependencies of the updater worker.
type Config struct {
	Refresher Refresher
	// Watch opens the topology watcher the worker will consume. The
	// worker takes ownership of the returned watcher.
	Watch func() (Watcher, error)
}

// Validate returns an error if the config cannot start a worker.
func (config Config) Validate() error {
	if config.Refresher == nil {
		return errors.NotValidf("nil Refresher")
	}
	if config.Watch == nil {
		return errors.NotValidf("nil Watch")
	}
	return nil
}

// NewWorker starts the updater.
func NewWorker(config Config) (worker.Worker, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	u := &updater{config: config}
	err := catacomb.Invoke(catacomb.Plan{
		Site: &u.catacomb,
		Work: u.loop,
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	return u, nil
}

type updater struct {
	catacomb catacomb.Catacomb
	config   Config
}

func (u *updater) loop() error {
	watcher, err := u.config.Watch()
	if err != nil {
		return errors.Trace(err)
	}
	if err := u.catacomb.Add(watcher); err != nil {
		return errors.Trace(err)
	}

	for {
		select {
		case <-u.catacomb.Dying():
			return u.catacomb.ErrDying()
		case _, ok := <-watcher.Changes():
			if !ok {
				return errors.New("topology watcher channel closed")
			}
			logger.Tracef("topology changed, refreshing tables")
			u.config.Refresher.Refresh()
		}
	}
}

// Kill is part of the worker.Worker interface.
func (u *updater) Kill() {
	u.catacomb.Kill(nil)
}

// Wait is part of the worker.Worker interface.
func (u *updater) Wait() error {
	return u.catacomb.Wait()
}
