// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"

	"github.com/ava-labs/txassembler/vms/platformvm/fx"
)

var (
	_ UnsignedTx = (*CreateSubnetTx)(nil)

	ErrNilOwner = errors.New("nil subnet owner")
)

// CreateSubnetTx is an unsigned proposal to create a new subnet
type CreateSubnetTx struct {
	// Metadata, inputs and outputs
	BaseTx `json:"baseTx"`
	// Who is authorized to manage this subnet
	Owner fx.Owner `json:"owner"`
}

// SyntacticVerify verifies that this transaction is well-formed
func (tx *CreateSubnetTx) SyntacticVerify() error {
	switch {
	case tx == nil:
		return ErrNilTx
	case tx.Owner == nil:
		return ErrNilOwner
	}

	if err := tx.BaseTx.SyntacticVerify(); err != nil {
		return err
	}
	return tx.Owner.Verify()
}

func (tx *CreateSubnetTx) Visit(visitor Visitor) error {
	return visitor.CreateSubnetTx(tx)
}
