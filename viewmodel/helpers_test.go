// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package viewmodel_test

import (
	"github.com/canonical/maas-netview/core/cache"
	"github.com/canonical/maas-netview/core/netmodel"
)

// recordingReporter captures raised errors for assertion.
type recordingReporter struct {
	errs []error
}

func (r *recordingReporter) RaiseError(err error) {
	r.errs = append(r.errs, err)
}

// recordingSubnetStore counts activations so tests can assert that
// invalid identifiers never reach the store.
type recordingSubnetStore struct {
	*cache.Controller
	activations int
}

func (s *recordingSubnetStore) SetActiveSubnet(id netmodel.SubnetID) (netmodel.Subnet, error) {
	s.activations++
	return s.Controller.SetActiveSubnet(id)
}

// recordingNodeStore counts lookups for the same reason.
type recordingNodeStore struct {
	*cache.Controller
	lookups int
}

func (s *recordingNodeStore) Node(systemID string) (netmodel.Node, bool) {
	s.lookups++
	return s.Controller.Node(systemID)
}
