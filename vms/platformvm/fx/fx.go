// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fx

import (
	"github.com/ava-labs/txassembler/vms/components/verify"
	"github.com/ava-labs/txassembler/vms/secp256k1fx"
)

var _ Owner = (*secp256k1fx.OutputOwners)(nil)

// Owner describes who controls a reward destination or a subnet. It carries
// no value and is never selected as a spendable input.
type Owner interface {
	verify.Verifiable
}

// Owned is implemented by outputs that expose their owners.
type Owned interface {
	Owners() *secp256k1fx.OutputOwners
}
