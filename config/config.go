// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/txassembler/ids"
	"github.com/ava-labs/txassembler/utils/constants"
	"github.com/ava-labs/txassembler/utils/formatting/address"
	"github.com/ava-labs/txassembler/utils/logging"
	"github.com/ava-labs/txassembler/utils/set"
	"github.com/ava-labs/txassembler/wallet/chain/p/builder"
)

var (
	errNoAddresses         = errors.New("at least one address must be provided")
	errMinStakeNotPositive = errors.New("minimum stake must be positive")
)

// Config is everything needed to build transactions from the command line.
type Config struct {
	Context builder.Context `json:"context"`
	Logging logging.Config  `json:"logging"`

	Addresses       set.Set[ids.ShortID] `json:"addresses"`
	ChangeAddresses set.Set[ids.ShortID] `json:"changeAddresses"`

	// Zero means the current time.
	IssuanceTime uint64 `json:"issuanceTime"`
	SnapshotFile string `json:"snapshotFile"`
}

// IssuanceAt returns the reference time used to evaluate locktimes.
func (c *Config) IssuanceAt(now time.Time) time.Time {
	if c.IssuanceTime == 0 {
		return now
	}
	return time.Unix(int64(c.IssuanceTime), 0)
}

// BuildViper returns the viper environment populated, in increasing order of
// precedence, from the defaults of [fs], the config file, the environment and
// the flags explicitly set on [fs].
func BuildViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(EnvPrefix)
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if v.IsSet(ConfigFileKey) {
		v.SetConfigFile(os.ExpandEnv(v.GetString(ConfigFileKey)))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("couldn't read config file: %w", err)
		}
	}
	return v, nil
}

// GetConfig parses the values defined in [v].
func GetConfig(v *viper.Viper) (Config, error) {
	context, err := getContext(v)
	if err != nil {
		return Config{}, err
	}

	loggingConfig, err := getLoggingConfig(v)
	if err != nil {
		return Config{}, err
	}

	addrs, err := getAddresses(v, AddressesKey)
	if err != nil {
		return Config{}, err
	}
	if addrs.Len() == 0 {
		return Config{}, fmt.Errorf("%w: --%s", errNoAddresses, AddressesKey)
	}

	changeAddrs := addrs
	if len(v.GetStringSlice(ChangeAddressesKey)) > 0 {
		changeAddrs, err = getAddresses(v, ChangeAddressesKey)
		if err != nil {
			return Config{}, err
		}
	}

	return Config{
		Context:         context,
		Logging:         loggingConfig,
		Addresses:       addrs,
		ChangeAddresses: changeAddrs,
		IssuanceTime:    v.GetUint64(IssuanceTimeKey),
		SnapshotFile:    os.ExpandEnv(v.GetString(SnapshotFileKey)),
	}, nil
}

func getContext(v *viper.Viper) (builder.Context, error) {
	networkID, err := constants.NetworkID(v.GetString(NetworkNameKey))
	if err != nil {
		return builder.Context{}, err
	}

	avaxAssetID, err := ids.FromString(v.GetString(AVAXAssetIDKey))
	if err != nil {
		return builder.Context{}, fmt.Errorf("couldn't parse %s: %w", AVAXAssetIDKey, err)
	}

	context := builder.Context{
		NetworkID:                     networkID,
		AVAXAssetID:                   avaxAssetID,
		BaseTxFee:                     v.GetUint64(TxFeeKey),
		CreateSubnetTxFee:             v.GetUint64(CreateSubnetTxFeeKey),
		CreateBlockchainTxFee:         v.GetUint64(CreateBlockchainTxFeeKey),
		AddPrimaryNetworkValidatorFee: v.GetUint64(AddPrimaryNetworkValidatorFeeKey),
		AddPrimaryNetworkDelegatorFee: v.GetUint64(AddPrimaryNetworkDelegatorFeeKey),
		AddSubnetValidatorFee:         v.GetUint64(AddSubnetValidatorFeeKey),
		MinValidatorStake:             v.GetUint64(MinValidatorStakeKey),
		MinDelegatorStake:             v.GetUint64(MinDelegatorStakeKey),
	}
	switch {
	case context.MinValidatorStake == 0:
		return builder.Context{}, fmt.Errorf("%w: %s", errMinStakeNotPositive, MinValidatorStakeKey)
	case context.MinDelegatorStake == 0:
		return builder.Context{}, fmt.Errorf("%w: %s", errMinStakeNotPositive, MinDelegatorStakeKey)
	}
	return context, nil
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	loggingConfig := logging.DefaultConfig()

	var err error
	loggingConfig.DisplayLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return loggingConfig, err
	}
	loggingConfig.LogFormat, err = logging.ToFormat(v.GetString(LogFormatKey), os.Stderr.Fd())
	return loggingConfig, err
}

func getAddresses(v *viper.Viper, key string) (set.Set[ids.ShortID], error) {
	addrs, err := address.ParseToIDs(v.GetStringSlice(key))
	if err != nil {
		return nil, fmt.Errorf("couldn't parse %s: %w", key, err)
	}
	return set.Of(addrs...), nil
}
