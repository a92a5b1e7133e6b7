// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"github.com/spf13/pflag"

	"github.com/ava-labs/txassembler/utils/constants"
	"github.com/ava-labs/txassembler/utils/units"
)

// EnvPrefix is prepended to the upper-cased, underscore separated flag names
// to find their environment variables.
const EnvPrefix = "txbuilder"

// mainnetAVAXAssetID is the ID of AVAX on mainnet.
const mainnetAVAXAssetID = "FvwEAhmxKfeiG8SnEvq42hc6whRyY3EFYAvebMqDNDGCgxN5Z"

// AddFlags registers every configuration flag on [fs].
func AddFlags(fs *pflag.FlagSet) {
	// Config file
	fs.String(ConfigFileKey, "", "Specifies a config file")

	// Network
	fs.String(NetworkNameKey, constants.MainnetName, "Network ID the transactions are built for")
	fs.String(AVAXAssetIDKey, mainnetAVAXAssetID, "ID of the asset used to pay fees and stake")

	// Fees
	fs.Uint64(TxFeeKey, units.MilliAvax, "Transaction fee, in nAVAX")
	fs.Uint64(CreateSubnetTxFeeKey, units.Avax, "Transaction fee, in nAVAX, for transactions that create new subnets")
	fs.Uint64(CreateBlockchainTxFeeKey, units.Avax, "Transaction fee, in nAVAX, for transactions that create new blockchains")
	fs.Uint64(AddPrimaryNetworkValidatorFeeKey, 0, "Transaction fee, in nAVAX, for transactions that add new primary network validators")
	fs.Uint64(AddPrimaryNetworkDelegatorFeeKey, 0, "Transaction fee, in nAVAX, for transactions that add new primary network delegators")
	fs.Uint64(AddSubnetValidatorFeeKey, units.MilliAvax, "Transaction fee, in nAVAX, for transactions that add new subnet validators")

	// Staking
	fs.Uint64(MinValidatorStakeKey, 2*units.KiloAvax, "Minimum stake, in nAVAX, required to validate the primary network")
	fs.Uint64(MinDelegatorStakeKey, 25*units.Avax, "Minimum stake, in nAVAX, that can be delegated on the primary network")

	// Wallet
	fs.StringSlice(AddressesKey, nil, "Addresses whose UTXOs may be spent")
	fs.StringSlice(ChangeAddressesKey, nil, "Addresses that receive change. Defaults to the spending addresses")
	fs.Uint64(IssuanceTimeKey, 0, "Unix time used to evaluate locktimes. Defaults to the current time")
	fs.String(SnapshotFileKey, "", "Path to a YAML or JSON file listing the available UTXOs")

	// Logging
	fs.String(LogLevelKey, "info", "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogFormatKey, "auto", "The structure of log format. Defaults to 'auto' which formats terminal-like logs, when the output is a terminal. Otherwise, should be one of {auto, plain, colors, json}")
}
