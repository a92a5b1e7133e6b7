// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"
	"fmt"

	"github.com/ava-labs/txassembler/utils/math"
	"github.com/ava-labs/txassembler/vms/components/avax"
	"github.com/ava-labs/txassembler/vms/components/verify"
	"github.com/ava-labs/txassembler/vms/platformvm/fx"
	"github.com/ava-labs/txassembler/vms/platformvm/reward"
)

var (
	_ UnsignedTx = (*AddValidatorTx)(nil)

	ErrTooManyShares           = fmt.Errorf("a staker can only require at most %d shares from delegators", reward.PercentDenominator)
	ErrNoStake                 = errors.New("no stake")
	ErrValidatorWeightMismatch = errors.New("validator weight mismatch")
)

// AddValidatorTx is an unsigned addValidatorTx
type AddValidatorTx struct {
	// Metadata, inputs and outputs
	BaseTx `json:"baseTx"`
	// Describes the delegatee
	Validator `json:"validator"`
	// Where to send staked tokens when done validating
	StakeOuts []*avax.TransferableOutput `json:"stake"`
	// Where to send staking rewards when done validating
	RewardsOwner fx.Owner `json:"rewardsOwner"`
	// Fee this validator charges delegators as a percentage, times 10,000
	// For example, if this validator has DelegationShares=300,000 then they
	// take 30% of rewards from delegators
	DelegationShares uint32 `json:"shares"`
}

// SyntacticVerify returns nil iff [tx] is valid
func (tx *AddValidatorTx) SyntacticVerify() error {
	switch {
	case tx == nil:
		return ErrNilTx
	case tx.DelegationShares > reward.PercentDenominator: // Ensure delegators shares are in the allowed amount
		return ErrTooManyShares
	}

	if err := tx.BaseTx.SyntacticVerify(); err != nil {
		return fmt.Errorf("failed to verify BaseTx: %w", err)
	}
	if err := verify.All(&tx.Validator, tx.RewardsOwner); err != nil {
		return fmt.Errorf("failed to verify validator or rewards owner: %w", err)
	}
	return verifyStake(tx.StakeOuts, tx.Wght)
}

func (tx *AddValidatorTx) Visit(visitor Visitor) error {
	return visitor.AddValidatorTx(tx)
}

func verifyStake(stakeOuts []*avax.TransferableOutput, weight uint64) error {
	if len(stakeOuts) == 0 {
		return ErrNoStake
	}
	if err := verifyOutputs(stakeOuts); err != nil {
		return err
	}

	totalStakeWeight := uint64(0)
	for _, out := range stakeOuts {
		newWeight, err := math.Add(totalStakeWeight, out.Output().Amount())
		if err != nil {
			return err
		}
		totalStakeWeight = newWeight
	}
	if totalStakeWeight != weight {
		return fmt.Errorf("%w: weight %d != stake %d", ErrValidatorWeightMismatch, weight, totalStakeWeight)
	}
	return nil
}
