// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package p

import (
	"errors"

	"github.com/ava-labs/txassembler/ids"
	"github.com/ava-labs/txassembler/vms/platformvm/metrics"
	"github.com/ava-labs/txassembler/vms/platformvm/txs"
	"github.com/ava-labs/txassembler/vms/secp256k1fx"
	"github.com/ava-labs/txassembler/wallet/chain/p/builder"
	"github.com/ava-labs/txassembler/wallet/subnet/primary/common"
)

var _ builder.Builder = (*builderWithMetrics)(nil)

type builderWithMetrics struct {
	builder.Builder
	metrics metrics.Metrics
}

// NewBuilderWithMetrics returns a transaction builder that reports every
// built transaction, and every failed build, to [metrics].
func NewBuilderWithMetrics(builder builder.Builder, metrics metrics.Metrics) builder.Builder {
	return &builderWithMetrics{
		Builder: builder,
		metrics: metrics,
	}
}

func (b *builderWithMetrics) NewBaseTx(
	assetID ids.ID,
	amount uint64,
	to *secp256k1fx.OutputOwners,
	options ...common.Option,
) (*txs.BaseTx, error) {
	tx, err := b.Builder.NewBaseTx(assetID, amount, to, options...)
	if tx == nil && err == nil {
		return nil, nil
	}
	return tx, b.observe(tx, err)
}

func (b *builderWithMetrics) NewImportTx(
	sourceChainID ids.ID,
	to *secp256k1fx.OutputOwners,
	options ...common.Option,
) (*txs.ImportTx, error) {
	tx, err := b.Builder.NewImportTx(sourceChainID, to, options...)
	return tx, b.observe(tx, err)
}

func (b *builderWithMetrics) NewExportTx(
	chainID ids.ID,
	assetID ids.ID,
	amount uint64,
	to *secp256k1fx.OutputOwners,
	options ...common.Option,
) (*txs.ExportTx, error) {
	tx, err := b.Builder.NewExportTx(chainID, assetID, amount, to, options...)
	if tx == nil && err == nil {
		return nil, nil
	}
	return tx, b.observe(tx, err)
}

func (b *builderWithMetrics) NewAddValidatorTx(
	vdr *txs.Validator,
	rewardsOwner *secp256k1fx.OutputOwners,
	shares uint32,
	options ...common.Option,
) (*txs.AddValidatorTx, error) {
	tx, err := b.Builder.NewAddValidatorTx(vdr, rewardsOwner, shares, options...)
	return tx, b.observe(tx, err)
}

func (b *builderWithMetrics) NewAddDelegatorTx(
	vdr *txs.Validator,
	rewardsOwner *secp256k1fx.OutputOwners,
	options ...common.Option,
) (*txs.AddDelegatorTx, error) {
	tx, err := b.Builder.NewAddDelegatorTx(vdr, rewardsOwner, options...)
	return tx, b.observe(tx, err)
}

func (b *builderWithMetrics) NewAddSubnetValidatorTx(
	vdr *txs.SubnetValidator,
	options ...common.Option,
) (*txs.AddSubnetValidatorTx, error) {
	tx, err := b.Builder.NewAddSubnetValidatorTx(vdr, options...)
	return tx, b.observe(tx, err)
}

func (b *builderWithMetrics) NewCreateSubnetTx(
	owner *secp256k1fx.OutputOwners,
	options ...common.Option,
) (*txs.CreateSubnetTx, error) {
	tx, err := b.Builder.NewCreateSubnetTx(owner, options...)
	return tx, b.observe(tx, err)
}

func (b *builderWithMetrics) NewCreateChainTx(
	subnetID ids.ID,
	genesis []byte,
	vmID ids.ID,
	fxIDs []ids.ID,
	chainName string,
	options ...common.Option,
) (*txs.CreateChainTx, error) {
	tx, err := b.Builder.NewCreateChainTx(subnetID, genesis, vmID, fxIDs, chainName, options...)
	return tx, b.observe(tx, err)
}

func (b *builderWithMetrics) observe(tx txs.UnsignedTx, err error) error {
	switch {
	case errors.Is(err, builder.ErrInsufficientFunds):
		b.metrics.MarkInsufficientFunds()
		return err
	case err != nil:
		b.metrics.MarkFailed()
		return err
	default:
		return b.metrics.MarkBuilt(tx)
	}
}
