// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

// Allow vm to execute custom logic against the underlying transaction types.
type Visitor interface {
	BaseTx(*BaseTx) error
	ImportTx(*ImportTx) error
	ExportTx(*ExportTx) error
	AddValidatorTx(*AddValidatorTx) error
	AddDelegatorTx(*AddDelegatorTx) error
	AddSubnetValidatorTx(*AddSubnetValidatorTx) error
	CreateSubnetTx(*CreateSubnetTx) error
	CreateChainTx(*CreateChainTx) error
}
