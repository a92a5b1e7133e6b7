// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import "github.com/ava-labs/txassembler/ids"

// Context is the configuration of the chain that transactions are built for.
type Context struct {
	NetworkID   uint32 `json:"networkID"`
	AVAXAssetID ids.ID `json:"avaxAssetID"`

	BaseTxFee                     uint64 `json:"baseTxFee"`
	CreateSubnetTxFee             uint64 `json:"createSubnetTxFee"`
	CreateBlockchainTxFee         uint64 `json:"createBlockchainTxFee"`
	AddPrimaryNetworkValidatorFee uint64 `json:"addPrimaryNetworkValidatorFee"`
	AddPrimaryNetworkDelegatorFee uint64 `json:"addPrimaryNetworkDelegatorFee"`
	AddSubnetValidatorFee         uint64 `json:"addSubnetValidatorFee"`

	MinValidatorStake uint64 `json:"minValidatorStake"`
	MinDelegatorStake uint64 `json:"minDelegatorStake"`
}
