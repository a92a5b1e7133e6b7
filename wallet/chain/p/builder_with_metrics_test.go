// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package p

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/txassembler/vms/platformvm/metrics"
	"github.com/ava-labs/txassembler/vms/secp256k1fx"
	"github.com/ava-labs/txassembler/wallet/chain/p/builder"
)

func gatherCounters(t *testing.T, registry *prometheus.Registry) map[string]float64 {
	families, err := registry.Gather()
	require.NoError(t, err)

	values := make(map[string]float64, len(families))
	for _, family := range families {
		values[family.GetName()] = family.GetMetric()[0].GetCounter().GetValue()
	}
	return values
}

func TestBuilderWithMetrics(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	m, err := metrics.New("txbuilder", registry)
	require.NoError(err)

	_, txBuilder := newTestWallet(newUTXO(1, 100, senderAddr))
	txBuilder = NewBuilderWithMetrics(txBuilder, m)

	_, err = txBuilder.NewBaseTx(avaxAssetID, 10, owners(receiverAddr))
	require.NoError(err)

	// Nothing is built for a zero amount.
	tx, err := txBuilder.NewBaseTx(avaxAssetID, 0, owners(receiverAddr))
	require.NoError(err)
	require.Nil(tx)

	_, err = txBuilder.NewBaseTx(avaxAssetID, 1_000, owners(receiverAddr))
	require.ErrorIs(err, builder.ErrInsufficientFunds)

	_, err = txBuilder.NewBaseTx(avaxAssetID, 10, &secp256k1fx.OutputOwners{
		Threshold: 2,
		Addrs:     owners(receiverAddr).Addrs,
	})
	require.ErrorIs(err, builder.ErrThresholdExceedsAddresses)

	_, err = txBuilder.NewCreateSubnetTx(owners(senderAddr))
	require.NoError(err)

	values := gatherCounters(t, registry)
	require.Equal(float64(1), values["txbuilder_base_txs_built"])
	require.Equal(float64(1), values["txbuilder_create_subnet_txs_built"])
	require.Equal(float64(0), values["txbuilder_import_txs_built"])
	require.Equal(float64(1), values["txbuilder_insufficient_funds"])
	require.Equal(float64(1), values["txbuilder_build_failures"])
}
