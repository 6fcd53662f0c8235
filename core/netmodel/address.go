// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package netmodel

import (
	"encoding/binary"
	"net/netip"

	"github.com/juju/errors"
)

// IPAddress wraps a [netip.Addr] instance and provides a
// method to decompose the address into msb, lsb uint64 values.
type IPAddress struct {
	netip.Addr
}

// ParseIPAddress parses s as an IP address, accepting both dotted
// quad and RFC 4291 forms.
func ParseIPAddress(s string) (IPAddress, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return IPAddress{}, errors.NotValidf("IP address %q", s)
	}
	return IPAddress{addr}, nil
}

// AsInts returns the MSB and LSB uint64 values for the specified address.
func (a IPAddress) AsInts() (msb uint64, lsb uint64) {
	addrB := a.AsSlice()
	if a.Is4() {
		lsb = uint64(binary.BigEndian.Uint32(addrB[:4]))
	} else {
		msb = binary.BigEndian.Uint64(addrB[:8])
		lsb = binary.BigEndian.Uint64(addrB[8:])
	}
	return msb, lsb
}
