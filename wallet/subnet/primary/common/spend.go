// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package common

import (
	"fmt"

	"github.com/ava-labs/txassembler/ids"
	"github.com/ava-labs/txassembler/utils/set"
	"github.com/ava-labs/txassembler/vms/secp256k1fx"
)

// MatchOwners attempts to match a list of addresses up to the provided
// threshold. The returned indices are ascending positions in [owners.Addrs].
//
// Every matched address must resolve to an index in the owner list. A miss
// means the matching logic is broken and is reported with a panic.
func MatchOwners(
	owners *secp256k1fx.OutputOwners,
	addrs set.Set[ids.ShortID],
	minIssuanceTime uint64,
) ([]uint32, bool) {
	if owners.Locktime > minIssuanceTime {
		return nil, false
	}

	signers := make([]ids.ShortID, 0, owners.Threshold)
	for _, addr := range owners.Addrs {
		if uint32(len(signers)) == owners.Threshold {
			break
		}
		if addrs.Contains(addr) {
			signers = append(signers, addr)
		}
	}
	if uint32(len(signers)) != owners.Threshold {
		return nil, false
	}

	sigs := make([]uint32, len(signers))
	for i, signer := range signers {
		idx, ok := owners.AddressIndex(signer)
		if !ok {
			panic(fmt.Sprintf("signer %s is not an owner", signer))
		}
		sigs[i] = idx
	}
	return sigs, true
}
