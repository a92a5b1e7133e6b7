// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"errors"
	"slices"

	"github.com/ava-labs/txassembler/ids"
	"github.com/ava-labs/txassembler/utils"
	"github.com/ava-labs/txassembler/utils/set"
	"github.com/ava-labs/txassembler/vms/components/verify"
)

var (
	ErrNilOutput            = errors.New("nil output")
	ErrOutputUnspendable    = errors.New("output is unspendable")
	ErrOutputUnoptimized    = errors.New("output representation should be optimized")
	ErrAddrsNotSortedUnique = errors.New("addresses not sorted and unique")

	_ verify.State = (*OutputOwners)(nil)
)

// OutputOwners describes who may spend an output: at least [Threshold] of
// [Addrs] must sign, and not before [Locktime].
type OutputOwners struct {
	verify.IsState `json:"-"`

	Locktime  uint64        `json:"locktime"`
	Threshold uint32        `json:"threshold"`
	Addrs     []ids.ShortID `json:"addresses"`
}

// Addresses returns the addresses that manage this output
func (out *OutputOwners) Addresses() [][]byte {
	addrs := make([][]byte, len(out.Addrs))
	for i, addr := range out.Addrs {
		addrs[i] = addr.Bytes()
	}
	return addrs
}

// AddressesSet returns addresses as a set
func (out *OutputOwners) AddressesSet() set.Set[ids.ShortID] {
	return set.Of(out.Addrs...)
}

// AddressIndex returns the position of [addr] in the owner list.
func (out *OutputOwners) AddressIndex(addr ids.ShortID) (uint32, bool) {
	for i, owner := range out.Addrs {
		if owner == addr {
			return uint32(i), true
		}
	}
	return 0, false
}

// Equals returns true if the provided owners create the same condition
func (out *OutputOwners) Equals(other *OutputOwners) bool {
	if out == other {
		return true
	}
	if out == nil || other == nil || out.Locktime != other.Locktime || out.Threshold != other.Threshold {
		return false
	}
	return slices.Equal(out.Addrs, other.Addrs)
}

func (out *OutputOwners) Verify() error {
	switch {
	case out == nil:
		return ErrNilOutput
	case out.Threshold > uint32(len(out.Addrs)):
		return ErrOutputUnspendable
	case out.Threshold == 0 && len(out.Addrs) > 0:
		return ErrOutputUnoptimized
	case !utils.IsSortedAndUnique(out.Addrs):
		return ErrAddrsNotSortedUnique
	default:
		return nil
	}
}

func (out *OutputOwners) Sort() {
	utils.Sort(out.Addrs)
}

// Clone returns a copy of the owners that shares no memory with [out].
func (out *OutputOwners) Clone() *OutputOwners {
	return &OutputOwners{
		Locktime:  out.Locktime,
		Threshold: out.Threshold,
		Addrs:     slices.Clone(out.Addrs),
	}
}
