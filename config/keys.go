// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey = "config-file"

	NetworkNameKey = "network-id"
	AVAXAssetIDKey = "avax-asset-id"

	TxFeeKey                         = "tx-fee"
	CreateSubnetTxFeeKey             = "create-subnet-tx-fee"
	CreateBlockchainTxFeeKey         = "create-blockchain-tx-fee"
	AddPrimaryNetworkValidatorFeeKey = "add-primary-network-validator-fee"
	AddPrimaryNetworkDelegatorFeeKey = "add-primary-network-delegator-fee"
	AddSubnetValidatorFeeKey         = "add-subnet-validator-fee"
	MinValidatorStakeKey             = "min-validator-stake"
	MinDelegatorStakeKey             = "min-delegator-stake"

	AddressesKey       = "addresses"
	ChangeAddressesKey = "change-addresses"
	IssuanceTimeKey    = "issuance-time"
	SnapshotFileKey    = "snapshot"

	LogLevelKey  = "log-level"
	LogFormatKey = "log-format"
)
