// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package common

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ava-labs/txassembler/ids"
	"github.com/ava-labs/txassembler/utils/math"
	"github.com/ava-labs/txassembler/utils/set"
	"github.com/ava-labs/txassembler/vms/components/avax"
	"github.com/ava-labs/txassembler/vms/components/verify"
	"github.com/ava-labs/txassembler/vms/platformvm/stakeable"
	"github.com/ava-labs/txassembler/vms/secp256k1fx"
)

// UTXOSet is an in-memory catalog of UTXOs keyed by the ID of the input that
// would consume them, with a secondary index from owner address to the
// amounts held.
//
// UTXOSet is not safe for concurrent use. Callers that need to select from a
// set while it may be modified should operate on a Clone.
type UTXOSet struct {
	utxos map[ids.ID]*avax.UTXO
	// addr -> utxoID -> amount
	addressIndex map[ids.ShortID]map[ids.ID]uint64
}

func NewUTXOSet(utxos ...*avax.UTXO) *UTXOSet {
	s := &UTXOSet{
		utxos:        make(map[ids.ID]*avax.UTXO, len(utxos)),
		addressIndex: make(map[ids.ShortID]map[ids.ID]uint64),
	}
	for _, utxo := range utxos {
		s.Add(utxo)
	}
	return s
}

// Add inserts [utxo], replacing any UTXO with the same ID.
func (s *UTXOSet) Add(utxo *avax.UTXO) {
	utxoID := utxo.InputID()
	if _, exists := s.utxos[utxoID]; exists {
		s.Remove(utxoID)
	}
	s.utxos[utxoID] = utxo

	owners, amount, ok := Owners(utxo.Out)
	if !ok {
		return
	}
	for _, addr := range owners.Addrs {
		addrUTXOs, ok := s.addressIndex[addr]
		if !ok {
			addrUTXOs = make(map[ids.ID]uint64)
			s.addressIndex[addr] = addrUTXOs
		}
		addrUTXOs[utxoID] = amount
	}
}

// Remove deletes the UTXO with [utxoID]. Returns false if it wasn't present.
func (s *UTXOSet) Remove(utxoID ids.ID) bool {
	utxo, ok := s.utxos[utxoID]
	if !ok {
		return false
	}
	delete(s.utxos, utxoID)

	if owners, _, ok := Owners(utxo.Out); ok {
		for _, addr := range owners.Addrs {
			addrUTXOs := s.addressIndex[addr]
			delete(addrUTXOs, utxoID)
			if len(addrUTXOs) == 0 {
				delete(s.addressIndex, addr)
			}
		}
	}
	return true
}

func (s *UTXOSet) Get(utxoID ids.ID) (*avax.UTXO, bool) {
	utxo, ok := s.utxos[utxoID]
	return utxo, ok
}

func (s *UTXOSet) Contains(utxoID ids.ID) bool {
	_, ok := s.utxos[utxoID]
	return ok
}

func (s *UTXOSet) Len() int {
	return len(s.utxos)
}

// UTXOs returns every UTXO ordered by transaction ID and then output index.
func (s *UTXOSet) UTXOs() []*avax.UTXO {
	utxos := make([]*avax.UTXO, 0, len(s.utxos))
	for _, utxo := range s.utxos {
		utxos = append(utxos, utxo)
	}
	slices.SortFunc(utxos, compareUTXOs)
	return utxos
}

// Consumable returns the UTXOs that may be spent at [asOf]. Unless
// [includeLocked] is set, outputs that are still stake locked at [asOf] are
// excluded.
func (s *UTXOSet) Consumable(asOf uint64, includeLocked bool) []*avax.UTXO {
	utxos := s.UTXOs()
	if includeLocked {
		return utxos
	}

	consumable := utxos[:0]
	for _, utxo := range utxos {
		if IsStakeLocked(utxo.Out, asOf) {
			continue
		}
		consumable = append(consumable, utxo)
	}
	return consumable
}

// AddressUTXOs returns the IDs and amounts of the UTXOs [addr] is an owner of.
func (s *UTXOSet) AddressUTXOs(addr ids.ShortID) map[ids.ID]uint64 {
	return maps.Clone(s.addressIndex[addr])
}

// Balance returns, per asset, the amount [addrs] can spend at [asOf] without
// using any stake locked value.
func (s *UTXOSet) Balance(addrs set.Set[ids.ShortID], asOf uint64) (map[ids.ID]uint64, error) {
	balances := make(map[ids.ID]uint64)
	for _, utxo := range s.Consumable(asOf, false) {
		owners, amount, ok := Owners(utxo.Out)
		if !ok || amount == 0 {
			continue
		}
		if _, ok := MatchOwners(owners, addrs, asOf); !ok {
			continue
		}

		assetID := utxo.AssetID()
		newBalance, err := math.Add(balances[assetID], amount)
		if err != nil {
			return nil, fmt.Errorf("balance of %s: %w", assetID, err)
		}
		balances[assetID] = newBalance
	}
	return balances, nil
}

// Clone returns a copy of the set that can be modified independently. UTXOs
// are immutable so they are shared between the copies.
func (s *UTXOSet) Clone() *UTXOSet {
	clone := &UTXOSet{
		utxos:        maps.Clone(s.utxos),
		addressIndex: make(map[ids.ShortID]map[ids.ID]uint64, len(s.addressIndex)),
	}
	for addr, addrUTXOs := range s.addressIndex {
		clone.addressIndex[addr] = maps.Clone(addrUTXOs)
	}
	return clone
}

// Owners returns the owners and amount of [out]. Outputs without owners
// return false. Owner-only outputs report an amount of 0.
func Owners(out verify.State) (*secp256k1fx.OutputOwners, uint64, bool) {
	switch out := out.(type) {
	case *secp256k1fx.TransferOutput:
		return &out.OutputOwners, out.Amt, true
	case *secp256k1fx.OutputOwners:
		return out, 0, true
	case *stakeable.LockOut:
		return Owners(out.TransferableOut)
	default:
		return nil, 0, false
	}
}

// IsStakeLocked returns true if [out] may only be used for staking at [asOf].
func IsStakeLocked(out verify.State, asOf uint64) bool {
	lockedOut, ok := out.(*stakeable.LockOut)
	return ok && lockedOut.Locktime > asOf
}

func compareUTXOs(a, b *avax.UTXO) int {
	return a.UTXOID.Compare(&b.UTXOID)
}
