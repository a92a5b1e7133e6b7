// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ava-labs/txassembler/ids"
	"github.com/ava-labs/txassembler/utils/formatting/address"
	"github.com/ava-labs/txassembler/vms/platformvm/txs"
	"github.com/ava-labs/txassembler/vms/secp256k1fx"
)

const (
	assetIDKey       = "asset-id"
	amountKey        = "amount"
	toKey            = "to"
	toThresholdKey   = "to-threshold"
	toLocktimeKey    = "to-locktime"
	chainIDKey       = "chain-id"
	nodeIDKey        = "node-id"
	startKey         = "start"
	endKey           = "end"
	weightKey        = "weight"
	rewardsToKey     = "rewards-to"
	rewardsThreshKey = "rewards-threshold"
	sharesKey        = "shares"
	subnetIDKey      = "subnet-id"
	ownersKey        = "owners"
	thresholdKey     = "threshold"
	vmIDKey          = "vm-id"
	fxIDsKey         = "fx-ids"
	nameKey          = "name"
	genesisFileKey   = "genesis-file"
)

func balanceCommand(w *wallet) *cobra.Command {
	c := &cobra.Command{
		Use:   "balance",
		Short: "Prints the spendable balance of every asset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			chainID, err := getID(cmd.Flags(), chainIDKey)
			if err != nil {
				return err
			}

			var balances map[ids.ID]uint64
			if chainID == ids.Empty {
				balances, err = w.builder.GetBalance()
			} else {
				balances, err = w.builder.GetImportableBalance(chainID)
			}
			if err != nil {
				return err
			}
			return printJSON(cmd, balances)
		},
	}
	c.Flags().String(chainIDKey, "", "If set, prints the balance that can be imported from this chain")
	return c
}

func transferCommand(w *wallet) *cobra.Command {
	c := &cobra.Command{
		Use:   "transfer",
		Short: "Builds a transaction that sends an asset to an owner",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			assetID, amount, err := w.getAssetAmount(flags)
			if err != nil {
				return err
			}
			to, err := getOwners(flags, toKey, toThresholdKey, toLocktimeKey)
			if err != nil {
				return err
			}

			tx, err := w.builder.NewBaseTx(assetID, amount, to)
			if err != nil {
				return err
			}
			return printJSON(cmd, tx)
		},
	}
	flags := c.Flags()
	addAssetAmountFlags(flags)
	addOwnerFlags(flags, toKey, toThresholdKey, toLocktimeKey)
	return c
}

func exportCommand(w *wallet) *cobra.Command {
	c := &cobra.Command{
		Use:   "export",
		Short: "Builds a transaction that sends an asset to another chain",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			chainID, err := getID(flags, chainIDKey)
			if err != nil {
				return err
			}
			assetID, amount, err := w.getAssetAmount(flags)
			if err != nil {
				return err
			}
			to, err := getOwners(flags, toKey, toThresholdKey, toLocktimeKey)
			if err != nil {
				return err
			}

			tx, err := w.builder.NewExportTx(chainID, assetID, amount, to)
			if err != nil {
				return err
			}
			return printJSON(cmd, tx)
		},
	}
	flags := c.Flags()
	flags.String(chainIDKey, "", "Chain to export the funds to")
	addAssetAmountFlags(flags)
	addOwnerFlags(flags, toKey, toThresholdKey, toLocktimeKey)
	return c
}

func importCommand(w *wallet) *cobra.Command {
	c := &cobra.Command{
		Use:   "import",
		Short: "Builds a transaction that imports every available UTXO from another chain",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			chainID, err := getID(flags, chainIDKey)
			if err != nil {
				return err
			}
			to, err := getOwners(flags, toKey, toThresholdKey, toLocktimeKey)
			if err != nil {
				return err
			}

			tx, err := w.builder.NewImportTx(chainID, to)
			if err != nil {
				return err
			}
			return printJSON(cmd, tx)
		},
	}
	flags := c.Flags()
	flags.String(chainIDKey, "", "Chain to import the funds from")
	addOwnerFlags(flags, toKey, toThresholdKey, toLocktimeKey)
	return c
}

func addValidatorCommand(w *wallet) *cobra.Command {
	c := &cobra.Command{
		Use:   "add-validator",
		Short: "Builds a transaction that adds a primary network validator",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			vdr, err := getValidator(flags)
			if err != nil {
				return err
			}
			rewardsOwner, err := getOwners(flags, rewardsToKey, rewardsThreshKey, "")
			if err != nil {
				return err
			}
			shares, err := flags.GetUint32(sharesKey)
			if err != nil {
				return err
			}

			tx, err := w.builder.NewAddValidatorTx(vdr, rewardsOwner, shares)
			if err != nil {
				return err
			}
			return printJSON(cmd, tx)
		},
	}
	flags := c.Flags()
	addValidatorFlags(flags)
	addOwnerFlags(flags, rewardsToKey, rewardsThreshKey, "")
	flags.Uint32(sharesKey, 20_000, "Fraction, out of 1,000,000, of delegation rewards kept by the validator")
	return c
}

func addDelegatorCommand(w *wallet) *cobra.Command {
	c := &cobra.Command{
		Use:   "add-delegator",
		Short: "Builds a transaction that delegates stake to a primary network validator",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			vdr, err := getValidator(flags)
			if err != nil {
				return err
			}
			rewardsOwner, err := getOwners(flags, rewardsToKey, rewardsThreshKey, "")
			if err != nil {
				return err
			}

			tx, err := w.builder.NewAddDelegatorTx(vdr, rewardsOwner)
			if err != nil {
				return err
			}
			return printJSON(cmd, tx)
		},
	}
	flags := c.Flags()
	addValidatorFlags(flags)
	addOwnerFlags(flags, rewardsToKey, rewardsThreshKey, "")
	return c
}

func addSubnetValidatorCommand(w *wallet) *cobra.Command {
	c := &cobra.Command{
		Use:   "add-subnet-validator",
		Short: "Builds a transaction that adds a subnet validator",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			vdr, err := getValidator(flags)
			if err != nil {
				return err
			}
			subnetID, err := getID(flags, subnetIDKey)
			if err != nil {
				return err
			}

			tx, err := w.builder.NewAddSubnetValidatorTx(&txs.SubnetValidator{
				Validator: *vdr,
				Subnet:    subnetID,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, tx)
		},
	}
	flags := c.Flags()
	addValidatorFlags(flags)
	flags.String(subnetIDKey, "", "Subnet to validate")
	return c
}

func createSubnetCommand(w *wallet) *cobra.Command {
	c := &cobra.Command{
		Use:   "create-subnet",
		Short: "Builds a transaction that creates a subnet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			owner, err := getOwners(cmd.Flags(), ownersKey, thresholdKey, "")
			if err != nil {
				return err
			}

			tx, err := w.builder.NewCreateSubnetTx(owner)
			if err != nil {
				return err
			}
			return printJSON(cmd, tx)
		},
	}
	addOwnerFlags(c.Flags(), ownersKey, thresholdKey, "")
	return c
}

func createChainCommand(w *wallet) *cobra.Command {
	c := &cobra.Command{
		Use:   "create-chain",
		Short: "Builds a transaction that creates a chain in a subnet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			subnetID, err := getID(flags, subnetIDKey)
			if err != nil {
				return err
			}
			vmID, err := getID(flags, vmIDKey)
			if err != nil {
				return err
			}
			fxIDStrs, err := flags.GetStringSlice(fxIDsKey)
			if err != nil {
				return err
			}
			fxIDs := make([]ids.ID, len(fxIDStrs))
			for i, fxIDStr := range fxIDStrs {
				fxIDs[i], err = ids.FromString(fxIDStr)
				if err != nil {
					return fmt.Errorf("couldn't parse %s: %w", fxIDsKey, err)
				}
			}
			name, err := flags.GetString(nameKey)
			if err != nil {
				return err
			}
			genesisFile, err := flags.GetString(genesisFileKey)
			if err != nil {
				return err
			}
			var genesis []byte
			if genesisFile != "" {
				genesis, err = os.ReadFile(genesisFile)
				if err != nil {
					return fmt.Errorf("failed to read genesis: %w", err)
				}
			}

			tx, err := w.builder.NewCreateChainTx(subnetID, genesis, vmID, fxIDs, name)
			if err != nil {
				return err
			}
			return printJSON(cmd, tx)
		},
	}
	flags := c.Flags()
	flags.String(subnetIDKey, "", "Subnet the chain is created in")
	flags.String(vmIDKey, "", "VM run by the chain")
	flags.StringSlice(fxIDsKey, nil, "Feature extensions run by the VM")
	flags.String(nameKey, "", "Human readable name of the chain")
	flags.String(genesisFileKey, "", "Path to the genesis of the chain")
	return c
}

func addAssetAmountFlags(flags *pflag.FlagSet) {
	flags.String(assetIDKey, "", "Asset to send. Defaults to the staking asset")
	flags.Uint64(amountKey, 0, "Amount to send")
}

func (w *wallet) getAssetAmount(flags *pflag.FlagSet) (ids.ID, uint64, error) {
	assetID, err := getID(flags, assetIDKey)
	if err != nil {
		return ids.Empty, 0, err
	}
	if assetID == ids.Empty {
		assetID = w.config.Context.AVAXAssetID
	}
	amount, err := flags.GetUint64(amountKey)
	return assetID, amount, err
}

// addOwnerFlags registers the flags describing an owner. The locktime flag is
// only registered if [locktimeKey] is non-empty.
func addOwnerFlags(flags *pflag.FlagSet, addrsKey, thresholdKey, locktimeKey string) {
	flags.StringSlice(addrsKey, nil, "Addresses of the owner")
	flags.Uint32(thresholdKey, 1, "Number of owner signatures required")
	if locktimeKey != "" {
		flags.Uint64(locktimeKey, 0, "Unix time before which the output can't be spent")
	}
}

func getOwners(flags *pflag.FlagSet, addrsKey, thresholdKey, locktimeKey string) (*secp256k1fx.OutputOwners, error) {
	addrStrs, err := flags.GetStringSlice(addrsKey)
	if err != nil {
		return nil, err
	}
	addrs, err := address.ParseToIDs(addrStrs)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse %s: %w", addrsKey, err)
	}
	threshold, err := flags.GetUint32(thresholdKey)
	if err != nil {
		return nil, err
	}

	var locktime uint64
	if locktimeKey != "" {
		locktime, err = flags.GetUint64(locktimeKey)
		if err != nil {
			return nil, err
		}
	}
	return &secp256k1fx.OutputOwners{
		Locktime:  locktime,
		Threshold: threshold,
		Addrs:     addrs,
	}, nil
}

func addValidatorFlags(flags *pflag.FlagSet) {
	flags.String(nodeIDKey, "", "Node ID of the validator")
	flags.Uint64(startKey, 0, "Unix time the validation period starts")
	flags.Uint64(endKey, 0, "Unix time the validation period ends")
	flags.Uint64(weightKey, 0, "Stake, or sampling weight for subnets")
}

func getValidator(flags *pflag.FlagSet) (*txs.Validator, error) {
	nodeIDStr, err := flags.GetString(nodeIDKey)
	if err != nil {
		return nil, err
	}
	nodeID, err := ids.NodeIDFromString(nodeIDStr)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse %s: %w", nodeIDKey, err)
	}
	start, err := flags.GetUint64(startKey)
	if err != nil {
		return nil, err
	}
	end, err := flags.GetUint64(endKey)
	if err != nil {
		return nil, err
	}
	weight, err := flags.GetUint64(weightKey)
	if err != nil {
		return nil, err
	}
	return &txs.Validator{
		NodeID: nodeID,
		Start:  start,
		End:    end,
		Wght:   weight,
	}, nil
}

// getID parses the ID stored in [key]. An empty value is returned as
// ids.Empty.
func getID(flags *pflag.FlagSet, key string) (ids.ID, error) {
	idStr, err := flags.GetString(key)
	if err != nil || idStr == "" {
		return ids.Empty, err
	}
	id, err := ids.FromString(idStr)
	if err != nil {
		return ids.Empty, fmt.Errorf("couldn't parse %s: %w", key, err)
	}
	return id, nil
}
