// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/ava-labs/txassembler/vms/components/verify"
)

var _ UnsignedTx = (*AddSubnetValidatorTx)(nil)

// AddSubnetValidatorTx is an unsigned addSubnetValidatorTx
type AddSubnetValidatorTx struct {
	// Metadata, inputs and outputs
	BaseTx `json:"baseTx"`
	// The validator
	SubnetValidator `json:"validator"`
	// Auth that will be allowing this validator into the network
	SubnetAuth verify.Verifiable `json:"subnetAuthorization"`
}

// SyntacticVerify returns nil iff [tx] is valid
func (tx *AddSubnetValidatorTx) SyntacticVerify() error {
	if tx == nil {
		return ErrNilTx
	}
	if err := tx.BaseTx.SyntacticVerify(); err != nil {
		return err
	}
	return verify.All(&tx.SubnetValidator, tx.SubnetAuth)
}

func (tx *AddSubnetValidatorTx) Visit(visitor Visitor) error {
	return visitor.AddSubnetValidatorTx(tx)
}
