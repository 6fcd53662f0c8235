// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package specialfs_test

import (
	"github.com/juju/errors"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/canonical/maas-netview/core/specialfs"
)

type formSuite struct{}

var _ = gc.Suite(&formSuite{})

func (s *formSuite) TestValidateRelativeMountPoint(c *gc.C) {
	form := specialfs.Form{FSType: "tmpfs", MountPoint: "foo"}
	err := form.Validate()
	c.Check(err, jc.Satisfies, errors.IsNotValid)
	c.Check(err, gc.ErrorMatches, `relative mount point "foo" not valid`)
}

func (s *formSuite) TestValidateEmptyMountPoint(c *gc.C) {
	form := specialfs.Form{FSType: "tmpfs"}
	c.Check(form.Validate(), jc.Satisfies, errors.IsNotValid)
}

func (s *formSuite) TestValidateAbsoluteMountPoints(c *gc.C) {
	c.Check(specialfs.Form{FSType: "ramfs", MountPoint: "/"}.Validate(), jc.ErrorIsNil)
	c.Check(specialfs.Form{FSType: "ramfs", MountPoint: "/foo"}.Validate(), jc.ErrorIsNil)
}

func (s *formSuite) TestDescriptionPlain(c *gc.C) {
	form := specialfs.Form{FSType: "ramfs", MountPoint: "/media/scratch"}
	c.Check(form.Description(), gc.Equals, "ramfs at /media/scratch")
}

func (s *formSuite) TestDescriptionPercentSize(c *gc.C) {
	form := specialfs.Form{
		FSType:       "tmpfs",
		MountPoint:   "/media/scratch",
		MountOptions: "noexec,size=20%",
	}
	c.Check(form.Description(), gc.Equals,
		"tmpfs at /media/scratch (limited to 20% of memory)")
}

func (s *formSuite) TestDescriptionByteSize(c *gc.C) {
	form := specialfs.Form{
		FSType:       "tmpfs",
		MountPoint:   "/media/scratch",
		MountOptions: "size=536870912",
	}
	c.Check(form.Description(), gc.Equals,
		"tmpfs at /media/scratch (limited to 512 MiB)")
}

func (s *formSuite) TestDescriptionMalformedSizeIgnored(c *gc.C) {
	form := specialfs.Form{
		FSType:       "tmpfs",
		MountPoint:   "/media/scratch",
		MountOptions: "size=lots",
	}
	c.Check(form.Description(), gc.Equals, "tmpfs at /media/scratch")
}
