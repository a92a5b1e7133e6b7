// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"fmt"

	"github.com/ava-labs/txassembler/vms/components/avax"
	"github.com/ava-labs/txassembler/vms/components/verify"
	"github.com/ava-labs/txassembler/vms/platformvm/fx"
)

var _ UnsignedTx = (*AddDelegatorTx)(nil)

// AddDelegatorTx is an unsigned addDelegatorTx
type AddDelegatorTx struct {
	// Metadata, inputs and outputs
	BaseTx `json:"baseTx"`
	// Describes the delegatee
	Validator `json:"validator"`
	// Where to send staked tokens when done validating
	StakeOuts []*avax.TransferableOutput `json:"stake"`
	// Where to send staking rewards when done validating
	DelegationRewardsOwner fx.Owner `json:"rewardsOwner"`
}

// SyntacticVerify returns nil iff [tx] is valid
func (tx *AddDelegatorTx) SyntacticVerify() error {
	if tx == nil {
		return ErrNilTx
	}
	if err := tx.BaseTx.SyntacticVerify(); err != nil {
		return fmt.Errorf("failed to verify BaseTx: %w", err)
	}
	if err := verify.All(&tx.Validator, tx.DelegationRewardsOwner); err != nil {
		return fmt.Errorf("failed to verify validator or rewards owner: %w", err)
	}
	return verifyStake(tx.StakeOuts, tx.Wght)
}

func (tx *AddDelegatorTx) Visit(visitor Visitor) error {
	return visitor.AddDelegatorTx(tx)
}
