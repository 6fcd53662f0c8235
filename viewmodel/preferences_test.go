// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package viewmodel_test

import (
	"context"
	"time"

	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/canonical/maas-netview/core/cache"
	"github.com/canonical/maas-netview/core/netmodel"
	"github.com/canonical/maas-netview/viewmodel"
)

type preferencesSuite struct {
	store *cache.Controller
}

var _ = gc.Suite(&preferencesSuite{})

func (s *preferencesSuite) SetUpTest(c *gc.C) {
	s.store = cache.NewController()
}

func (s *preferencesSuite) TestLoadingFlag(c *gc.C) {
	vm := viewmodel.NewPreferences(s.store, "admin")
	c.Check(vm.Loading(), jc.IsTrue)

	_, ok := vm.User()
	c.Check(ok, jc.IsFalse)

	s.store.UpdateUser(netmodel.User{Username: "admin", IsSuperuser: true})
	s.store.MarkLoaded(cache.KindUser)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	c.Assert(vm.Load(ctx), jc.ErrorIsNil)
	c.Check(vm.Loading(), jc.IsFalse)

	user, ok := vm.User()
	c.Assert(ok, jc.IsTrue)
	c.Check(user.IsSuperuser, jc.IsTrue)
}

func (s *preferencesSuite) TestLoadCancelled(c *gc.C) {
	vm := viewmodel.NewPreferences(s.store, "admin")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	c.Check(vm.Load(ctx), gc.NotNil)
}
