// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package netviewupdater_test

import (
	"time"

	"github.com/juju/errors"
	jc "github.com/juju/testing/checkers"
	"github.com/juju/worker/v4/workertest"
	gc "gopkg.in/check.v1"

	"github.com/canonical/maas-netview/core/cache"
	"github.com/canonical/maas-netview/core/netmodel"
	"github.com/canonical/maas-netview/viewmodel"
	"github.com/canonical/maas-netview/worker/netviewupdater"
)

const (
	longWait  = 10 * time.Second
	shortWait = 10 * time.Millisecond
)

type workerSuite struct {
	store *cache.Controller
	vm    *viewmodel.Subnets
}

var _ = gc.Suite(&workerSuite{})

func (s *workerSuite) SetUpTest(c *gc.C) {
	s.store = cache.NewController()
	s.vm = viewmodel.NewSubnets(s.store)
}

func (s *workerSuite) config() netviewupdater.Config {
	return netviewupdater.Config{
		Refresher: s.vm,
		Watch: func() (netviewupdater.Watcher, error) {
			return s.store.WatchTopology(), nil
		},
	}
}

func (s *workerSuite) waitForFabrics(c *gc.C, want int) {
	deadline := time.Now().Add(longWait)
	for time.Now().Before(deadline) {
		if len(s.vm.FabricTable()) == want {
			return
		}
		time.Sleep(shortWait)
	}
	c.Fatalf("view model never saw %d fabrics", want)
}

func (s *workerSuite) TestValidateRefresher(c *gc.C) {
	config := s.config()
	config.Refresher = nil
	_, err := netviewupdater.NewWorker(config)
	c.Check(err, jc.Satisfies, errors.IsNotValid)
}

func (s *workerSuite) TestValidateWatch(c *gc.C) {
	config := s.config()
	config.Watch = nil
	_, err := netviewupdater.NewWorker(config)
	c.Check(err, jc.Satisfies, errors.IsNotValid)
}

func (s *workerSuite) TestWatchErrorKillsWorker(c *gc.C) {
	config := s.config()
	config.Watch = func() (netviewupdater.Watcher, error) {
		return nil, errors.New("boom")
	}
	w, err := netviewupdater.NewWorker(config)
	c.Assert(err, jc.ErrorIsNil)
	err = workertest.CheckKilled(c, w)
	c.Check(err, gc.ErrorMatches, "boom")
}

func (s *workerSuite) TestRefreshesOnTopologyChange(c *gc.C) {
	w, err := netviewupdater.NewWorker(s.config())
	c.Assert(err, jc.ErrorIsNil)
	defer workertest.CleanKill(c, w)

	s.store.UpdateFabric(netmodel.Fabric{ID: 0, Name: "fabric-0"})
	s.waitForFabrics(c, 1)

	s.store.UpdateFabric(netmodel.Fabric{ID: 1, Name: "fabric-1"})
	s.waitForFabrics(c, 2)
}

func (s *workerSuite) TestCleanKill(c *gc.C) {
	w, err := netviewupdater.NewWorker(s.config())
	c.Assert(err, jc.ErrorIsNil)
	workertest.CleanKill(c, w)
}
