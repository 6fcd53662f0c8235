// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package specialfs validates and describes special (non block
// device backed) filesystem mounts such as tmpfs and ramfs.
package specialfs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/juju/errors"
)

// Form holds the user's input for mounting a special filesystem on a
// machine.
type Form struct {
	FSType       string
	MountPoint   string
	MountOptions string
}

// Validate checks the form. The mount point must be an absolute path;
// fstype and options are passed to the backend as-is.
func (f Form) Validate() error {
	if f.MountPoint == "" {
		return errors.NotValidf("empty mount point")
	}
	if !strings.HasPrefix(f.MountPoint, "/") {
		return errors.NotValidf("relative mount point %q", f.MountPoint)
	}
	return nil
}

// Description renders the human-readable summary shown before the
// mount is created, e.g. "tmpfs at /media/scratch (limited to 2.0 GiB)".
// A size= mount option is reported either verbatim (percentage of
// memory) or as a humanised byte count.
func (f Form) Description() string {
	desc := fmt.Sprintf("%s at %s", f.FSType, f.MountPoint)
	size, ok := sizeOption(f.MountOptions)
	if !ok {
		return desc
	}
	if strings.HasSuffix(size, "%") {
		return fmt.Sprintf("%s (limited to %s of memory)", desc, size)
	}
	bytes, err := strconv.ParseUint(size, 10, 64)
	if err != nil {
		return desc
	}
	return fmt.Sprintf("%s (limited to %s)", desc, humanize.IBytes(bytes))
}

// sizeOption extracts the value of a size= entry from a
// comma-separated mount option string.
func sizeOption(options string) (string, bool) {
	for _, option := range strings.Split(options, ",") {
		option = strings.TrimSpace(option)
		if value, found := strings.CutPrefix(option, "size="); found && value != "" {
			return value, true
		}
	}
	return "", false
}
