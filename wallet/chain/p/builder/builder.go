// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/ava-labs/txassembler/ids"
	"github.com/ava-labs/txassembler/utils"
	"github.com/ava-labs/txassembler/utils/constants"
	"github.com/ava-labs/txassembler/utils/logging"
	"github.com/ava-labs/txassembler/utils/set"
	"github.com/ava-labs/txassembler/utils/timer/mockable"
	"github.com/ava-labs/txassembler/vms/components/avax"
	"github.com/ava-labs/txassembler/vms/platformvm/fx"
	"github.com/ava-labs/txassembler/vms/platformvm/reward"
	"github.com/ava-labs/txassembler/vms/platformvm/txs"
	"github.com/ava-labs/txassembler/vms/secp256k1fx"
	"github.com/ava-labs/txassembler/wallet/subnet/primary/common"
)

var (
	ErrNoChangeAddress           = errors.New("no possible change address")
	ErrUnknownOutputType         = errors.New("unknown output type")
	ErrUnknownOwnerType          = errors.New("unknown owner type")
	ErrInsufficientAuthorization = errors.New("insufficient authorization")
	ErrInsufficientFunds         = errors.New("insufficient funds")
	ErrThresholdExceedsAddresses = errors.New("threshold exceeds number of addresses")
	ErrFeeAssetMismatch          = errors.New("fee asset must be the base asset")
	ErrInvalidTimeWindow         = errors.New("invalid staking time window")
	ErrInvalidDelegationShares   = errors.New("invalid delegation shares")
	ErrStakeTooLow               = errors.New("stake amount too low")
	ErrNilOwner                  = errors.New("nil owner")

	_ Builder = (*builder)(nil)
)

// Builder provides a convenient interface for building unsigned P-chain
// transactions.
type Builder interface {
	// Context returns the configuration of the chain that this builder uses to
	// create transactions.
	Context() *Context

	// GetBalance calculates the amount of each asset that this builder has
	// control over.
	GetBalance(
		options ...common.Option,
	) (map[ids.ID]uint64, error)

	// GetImportableBalance calculates the amount of each asset that this
	// builder could import from the provided chain.
	//
	// - [chainID] specifies the chain the funds are from.
	GetImportableBalance(
		chainID ids.ID,
		options ...common.Option,
	) (map[ids.ID]uint64, error)

	// NewBaseTx creates a new simple value transfer. A zero [amount] builds
	// nothing and returns a nil transaction.
	//
	// - [assetID] specifies the asset to send.
	// - [amount] specifies how much of the asset to send.
	// - [to] specifies who receives the funds.
	NewBaseTx(
		assetID ids.ID,
		amount uint64,
		to *secp256k1fx.OutputOwners,
		options ...common.Option,
	) (*txs.BaseTx, error)

	// NewImportTx creates an import transaction that attempts to consume all
	// the available UTXOs and import the funds to [to].
	//
	// - [chainID] specifies the chain to be importing funds from.
	// - [to] specifies where to send the imported funds to.
	NewImportTx(
		chainID ids.ID,
		to *secp256k1fx.OutputOwners,
		options ...common.Option,
	) (*txs.ImportTx, error)

	// NewExportTx creates an export transaction that attempts to send
	// [amount] of [assetID] to [to] on [chainID]. A zero [amount] builds
	// nothing and returns a nil transaction.
	//
	// - [chainID] specifies the chain to be exporting the funds to.
	NewExportTx(
		chainID ids.ID,
		assetID ids.ID,
		amount uint64,
		to *secp256k1fx.OutputOwners,
		options ...common.Option,
	) (*txs.ExportTx, error)

	// NewAddValidatorTx creates a new validator of the primary network.
	//
	// - [vdr] specifies all the details of the validation period such as the
	//   startTime, endTime, stake weight, and nodeID.
	// - [rewardsOwner] specifies the owner of all the rewards this validator
	//   may accrue during its validation period.
	// - [shares] specifies the fraction (out of 1,000,000) that this validator
	//   will take from delegation rewards. If 1,000,000 is provided, 100% of
	//   the delegation reward will be sent to the validator's [rewardsOwner].
	NewAddValidatorTx(
		vdr *txs.Validator,
		rewardsOwner *secp256k1fx.OutputOwners,
		shares uint32,
		options ...common.Option,
	) (*txs.AddValidatorTx, error)

	// NewAddDelegatorTx creates a new delegator to a validator on the primary
	// network.
	//
	// - [vdr] specifies all the details of the delegation period such as the
	//   startTime, endTime, stake weight, and validator's nodeID.
	// - [rewardsOwner] specifies the owner of all the rewards this delegator
	//   may accrue at the end of its delegation period.
	NewAddDelegatorTx(
		vdr *txs.Validator,
		rewardsOwner *secp256k1fx.OutputOwners,
		options ...common.Option,
	) (*txs.AddDelegatorTx, error)

	// NewAddSubnetValidatorTx creates a new validator of a subnet.
	//
	// - [vdr] specifies all the details of the validation period such as the
	//   startTime, endTime, sampling weight, nodeID, and subnetID.
	NewAddSubnetValidatorTx(
		vdr *txs.SubnetValidator,
		options ...common.Option,
	) (*txs.AddSubnetValidatorTx, error)

	// NewCreateSubnetTx creates a new subnet with the specified owner.
	//
	// - [owner] specifies who has the ability to create new chains and add new
	//   validators to the subnet.
	NewCreateSubnetTx(
		owner *secp256k1fx.OutputOwners,
		options ...common.Option,
	) (*txs.CreateSubnetTx, error)

	// NewCreateChainTx creates a new chain in the named subnet.
	//
	// - [subnetID] specifies the subnet to launch the chain in.
	// - [genesis] specifies the initial state of the new chain.
	// - [vmID] specifies the vm that the new chain will run.
	// - [fxIDs] specifies all the feature extensions that the vm should be
	//   running with.
	// - [chainName] specifies a human readable name for the chain.
	NewCreateChainTx(
		subnetID ids.ID,
		genesis []byte,
		vmID ids.ID,
		fxIDs []ids.ID,
		chainName string,
		options ...common.Option,
	) (*txs.CreateChainTx, error)
}

// Backend provides frozen snapshots of the UTXOs and subnet owners that
// transactions are built against.
type Backend interface {
	// UTXOs returns a copy of the UTXOs that can be consumed on the P-chain
	// from [sourceChainID]. The returned set is owned by the caller.
	UTXOs(ctx context.Context, sourceChainID ids.ID) (*common.UTXOSet, error)
	GetSubnetOwner(ctx context.Context, subnetID ids.ID) (fx.Owner, error)
}

type builder struct {
	addrs   set.Set[ids.ShortID]
	context *Context
	backend Backend
	log     logging.Logger
	clock   mockable.Clock
}

// New returns a new transaction builder.
//
//   - [addrs] is the set of addresses that the builder assumes can be used when
//     signing the transactions in the future.
//   - [context] provides the chain's configuration.
//   - [backend] provides the chain's state.
//   - [log] receives debug summaries of the selections made.
func New(
	addrs set.Set[ids.ShortID],
	context *Context,
	backend Backend,
	log logging.Logger,
) Builder {
	return &builder{
		addrs:   addrs,
		context: context,
		backend: backend,
		log:     log,
	}
}

func (b *builder) Context() *Context {
	return b.context
}

func (b *builder) GetBalance(
	options ...common.Option,
) (map[ids.ID]uint64, error) {
	ops := common.NewOptions(options)
	return b.getBalance(constants.PlatformChainID, ops)
}

func (b *builder) GetImportableBalance(
	chainID ids.ID,
	options ...common.Option,
) (map[ids.ID]uint64, error) {
	ops := common.NewOptions(options)
	return b.getBalance(chainID, ops)
}

func (b *builder) NewBaseTx(
	assetID ids.ID,
	amount uint64,
	to *secp256k1fx.OutputOwners,
	options ...common.Option,
) (*txs.BaseTx, error) {
	if amount == 0 {
		return nil, nil
	}
	to, err := sortedOwner(to)
	if err != nil {
		return nil, err
	}
	ops := common.NewOptions(options)
	if err := verifyMemo(ops.Memo()); err != nil {
		return nil, err
	}

	var (
		feeAssetID = ops.FeeAssetID(b.context.AVAXAssetID)
		fee        = ops.TxFee(b.context.BaseTxFee)
		dest       = b.newDestination(to, ops, false)
	)
	if err := dest.addTarget(assetID, amount, 0); err != nil {
		return nil, err
	}
	if err := dest.addTarget(feeAssetID, 0, fee); err != nil {
		return nil, err
	}
	if err := b.spendFrom(constants.PlatformChainID, dest, ops, false); err != nil {
		return nil, err
	}

	tx := &txs.BaseTx{
		NetworkID:    b.context.NetworkID,
		BlockchainID: constants.PlatformChainID,
		Ins:          dest.inputs,
		Outs:         dest.outputs(),
		Memo:         ops.Memo(),
	}
	if err := verifyTx(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (b *builder) NewImportTx(
	sourceChainID ids.ID,
	to *secp256k1fx.OutputOwners,
	options ...common.Option,
) (*txs.ImportTx, error) {
	to, err := sortedOwner(to)
	if err != nil {
		return nil, err
	}
	ops := common.NewOptions(options)
	if err := verifyMemo(ops.Memo()); err != nil {
		return nil, err
	}
	utxos, err := b.backend.UTXOs(ops.Context(), sourceChainID)
	if err != nil {
		return nil, err
	}

	var (
		addrs           = ops.Addresses(b.addrs)
		minIssuanceTime = ops.MinIssuanceTime(b.clock.Unix())
		feeAssetID      = ops.FeeAssetID(b.context.AVAXAssetID)
		fee             = ops.TxFee(b.context.BaseTxFee)
		feePaid         uint64

		importedInputs = make([]*avax.TransferableInput, 0, utxos.Len())
		outputs        = make([]*avax.TransferableOutput, 0, utxos.Len())
	)
	for _, utxo := range utxos.UTXOs() {
		out, ok := utxo.Out.(*secp256k1fx.TransferOutput)
		if !ok || out.Amt == 0 {
			continue
		}

		inputSigIndices, ok := common.MatchOwners(&out.OutputOwners, addrs, minIssuanceTime)
		if !ok {
			// We couldn't spend this UTXO, so we skip to the next one
			continue
		}

		importedInputs = append(importedInputs, &avax.TransferableInput{
			UTXOID: utxo.UTXOID,
			Asset:  utxo.Asset,
			In: &secp256k1fx.TransferInput{
				Amt: out.Amt,
				Input: secp256k1fx.Input{
					SigIndices: inputSigIndices,
				},
			},
		})

		remaining := out.Amt
		if utxo.AssetID() == feeAssetID && feePaid < fee {
			paid := min(fee-feePaid, remaining)
			feePaid += paid
			remaining -= paid
		}
		if remaining == 0 {
			continue
		}
		outputs = append(outputs, &avax.TransferableOutput{
			Asset: utxo.Asset,
			Out: &secp256k1fx.TransferOutput{
				Amt:          remaining,
				OutputOwners: *to,
			},
		})
	}
	avax.SortTransferableInputs(importedInputs) // sort imported inputs

	if len(importedInputs) == 0 {
		return nil, fmt.Errorf(
			"%w: no UTXOs available to import from %s",
			ErrInsufficientFunds,
			sourceChainID,
		)
	}

	var inputs []*avax.TransferableInput
	if feePaid < fee {
		// The imported funds don't cover the fee, so the rest is paid
		// locally.
		dest := b.newDestination(to, ops, false)
		if err := dest.addTarget(feeAssetID, 0, fee-feePaid); err != nil {
			return nil, err
		}
		if err := b.spendFrom(constants.PlatformChainID, dest, ops, false); err != nil {
			return nil, fmt.Errorf("couldn't generate tx inputs/outputs: %w", err)
		}
		inputs = dest.inputs
		outputs = append(outputs, dest.changeOutputs...)
	}
	avax.SortTransferableOutputs(outputs) // sort imported outputs

	tx := &txs.ImportTx{
		BaseTx: txs.BaseTx{
			NetworkID:    b.context.NetworkID,
			BlockchainID: constants.PlatformChainID,
			Ins:          inputs,
			Outs:         outputs,
			Memo:         ops.Memo(),
		},
		SourceChain:    sourceChainID,
		ImportedInputs: importedInputs,
	}
	if err := verifyTx(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (b *builder) NewExportTx(
	chainID ids.ID,
	assetID ids.ID,
	amount uint64,
	to *secp256k1fx.OutputOwners,
	options ...common.Option,
) (*txs.ExportTx, error) {
	if amount == 0 {
		return nil, nil
	}
	to, err := sortedOwner(to)
	if err != nil {
		return nil, err
	}
	ops := common.NewOptions(options)
	if err := verifyMemo(ops.Memo()); err != nil {
		return nil, err
	}

	avaxAssetID := b.context.AVAXAssetID
	if feeAssetID := ops.FeeAssetID(avaxAssetID); feeAssetID != avaxAssetID {
		return nil, fmt.Errorf("%w: %s != %s", ErrFeeAssetMismatch, feeAssetID, avaxAssetID)
	}

	dest := b.newDestination(to, ops, false)
	if err := dest.addTarget(assetID, amount, 0); err != nil {
		return nil, err
	}
	if err := dest.addTarget(avaxAssetID, 0, ops.TxFee(b.context.BaseTxFee)); err != nil {
		return nil, err
	}
	if err := b.spendFrom(constants.PlatformChainID, dest, ops, false); err != nil {
		return nil, err
	}

	avax.SortTransferableOutputs(dest.primaryOutputs) // sort exported outputs
	avax.SortTransferableOutputs(dest.changeOutputs)
	tx := &txs.ExportTx{
		BaseTx: txs.BaseTx{
			NetworkID:    b.context.NetworkID,
			BlockchainID: constants.PlatformChainID,
			Ins:          dest.inputs,
			Outs:         dest.changeOutputs,
			Memo:         ops.Memo(),
		},
		DestinationChain: chainID,
		ExportedOutputs:  dest.primaryOutputs,
	}
	if err := verifyTx(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (b *builder) NewAddValidatorTx(
	vdr *txs.Validator,
	rewardsOwner *secp256k1fx.OutputOwners,
	shares uint32,
	options ...common.Option,
) (*txs.AddValidatorTx, error) {
	if shares > reward.PercentDenominator {
		return nil, fmt.Errorf(
			"%w: %d > %d",
			ErrInvalidDelegationShares,
			shares,
			reward.PercentDenominator,
		)
	}
	if vdr.Wght < b.context.MinValidatorStake {
		return nil, fmt.Errorf(
			"%w: validator weight %d < %d",
			ErrStakeTooLow,
			vdr.Wght,
			b.context.MinValidatorStake,
		)
	}

	ops := common.NewOptions(options)
	dest, err := b.stake(vdr, rewardsOwner, b.context.AddPrimaryNetworkValidatorFee, ops)
	if err != nil {
		return nil, err
	}

	rewardsOwner, _ = sortedOwner(rewardsOwner)
	tx := &txs.AddValidatorTx{
		BaseTx: txs.BaseTx{
			NetworkID:    b.context.NetworkID,
			BlockchainID: constants.PlatformChainID,
			Ins:          dest.inputs,
			Outs:         dest.outputs(),
			Memo:         ops.Memo(),
		},
		Validator:        *vdr,
		StakeOuts:        dest.stakeOutputs,
		RewardsOwner:     rewardsOwner,
		DelegationShares: shares,
	}
	if err := verifyTx(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (b *builder) NewAddDelegatorTx(
	vdr *txs.Validator,
	rewardsOwner *secp256k1fx.OutputOwners,
	options ...common.Option,
) (*txs.AddDelegatorTx, error) {
	if vdr.Wght < b.context.MinDelegatorStake {
		return nil, fmt.Errorf(
			"%w: delegator weight %d < %d",
			ErrStakeTooLow,
			vdr.Wght,
			b.context.MinDelegatorStake,
		)
	}

	ops := common.NewOptions(options)
	dest, err := b.stake(vdr, rewardsOwner, b.context.AddPrimaryNetworkDelegatorFee, ops)
	if err != nil {
		return nil, err
	}

	rewardsOwner, _ = sortedOwner(rewardsOwner)
	tx := &txs.AddDelegatorTx{
		BaseTx: txs.BaseTx{
			NetworkID:    b.context.NetworkID,
			BlockchainID: constants.PlatformChainID,
			Ins:          dest.inputs,
			Outs:         dest.outputs(),
			Memo:         ops.Memo(),
		},
		Validator:              *vdr,
		StakeOuts:              dest.stakeOutputs,
		DelegationRewardsOwner: rewardsOwner,
	}
	if err := verifyTx(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (b *builder) NewAddSubnetValidatorTx(
	vdr *txs.SubnetValidator,
	options ...common.Option,
) (*txs.AddSubnetValidatorTx, error) {
	ops := common.NewOptions(options)
	minIssuanceTime := ops.MinIssuanceTime(b.clock.Unix())
	if err := verifyTimeWindow(&vdr.Validator, minIssuanceTime); err != nil {
		return nil, err
	}
	if err := verifyMemo(ops.Memo()); err != nil {
		return nil, err
	}

	subnetAuth, err := b.authorizeSubnet(vdr.Subnet, ops)
	if err != nil {
		return nil, err
	}

	dest, err := b.spendFee(ops.TxFee(b.context.AddSubnetValidatorFee), ops)
	if err != nil {
		return nil, err
	}

	tx := &txs.AddSubnetValidatorTx{
		BaseTx: txs.BaseTx{
			NetworkID:    b.context.NetworkID,
			BlockchainID: constants.PlatformChainID,
			Ins:          dest.inputs,
			Outs:         dest.outputs(),
			Memo:         ops.Memo(),
		},
		SubnetValidator: *vdr,
		SubnetAuth:      subnetAuth,
	}
	if err := verifyTx(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (b *builder) NewCreateSubnetTx(
	owner *secp256k1fx.OutputOwners,
	options ...common.Option,
) (*txs.CreateSubnetTx, error) {
	owner, err := sortedOwner(owner)
	if err != nil {
		return nil, err
	}
	ops := common.NewOptions(options)
	if err := verifyMemo(ops.Memo()); err != nil {
		return nil, err
	}

	dest, err := b.spendFee(ops.TxFee(b.context.CreateSubnetTxFee), ops)
	if err != nil {
		return nil, err
	}

	tx := &txs.CreateSubnetTx{
		BaseTx: txs.BaseTx{
			NetworkID:    b.context.NetworkID,
			BlockchainID: constants.PlatformChainID,
			Ins:          dest.inputs,
			Outs:         dest.outputs(),
			Memo:         ops.Memo(),
		},
		Owner: owner,
	}
	if err := verifyTx(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (b *builder) NewCreateChainTx(
	subnetID ids.ID,
	genesis []byte,
	vmID ids.ID,
	fxIDs []ids.ID,
	chainName string,
	options ...common.Option,
) (*txs.CreateChainTx, error) {
	ops := common.NewOptions(options)
	if err := verifyMemo(ops.Memo()); err != nil {
		return nil, err
	}

	subnetAuth, err := b.authorizeSubnet(subnetID, ops)
	if err != nil {
		return nil, err
	}

	dest, err := b.spendFee(ops.TxFee(b.context.CreateBlockchainTxFee), ops)
	if err != nil {
		return nil, err
	}

	fxIDs = slices.Clone(fxIDs)
	utils.Sort(fxIDs)
	tx := &txs.CreateChainTx{
		BaseTx: txs.BaseTx{
			NetworkID:    b.context.NetworkID,
			BlockchainID: constants.PlatformChainID,
			Ins:          dest.inputs,
			Outs:         dest.outputs(),
			Memo:         ops.Memo(),
		},
		SubnetID:    subnetID,
		ChainName:   chainName,
		VMID:        vmID,
		FxIDs:       fxIDs,
		GenesisData: genesis,
		SubnetAuth:  subnetAuth,
	}
	if err := verifyTx(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (b *builder) getBalance(
	chainID ids.ID,
	options *common.Options,
) (map[ids.ID]uint64, error) {
	utxos, err := b.backend.UTXOs(options.Context(), chainID)
	if err != nil {
		return nil, err
	}

	addrs := options.Addresses(b.addrs)
	minIssuanceTime := options.MinIssuanceTime(b.clock.Unix())
	return utxos.Balance(addrs, minIssuanceTime)
}

// stake selects the UTXOs that fund [vdr]'s stake and [defaultFee]. Stake
// locked UTXOs may fund the stake but never the fee.
func (b *builder) stake(
	vdr *txs.Validator,
	rewardsOwner *secp256k1fx.OutputOwners,
	defaultFee uint64,
	ops *common.Options,
) (*spendDestination, error) {
	minIssuanceTime := ops.MinIssuanceTime(b.clock.Unix())
	if err := verifyTimeWindow(vdr, minIssuanceTime); err != nil {
		return nil, err
	}
	if _, err := sortedOwner(rewardsOwner); err != nil {
		return nil, err
	}
	if err := verifyMemo(ops.Memo()); err != nil {
		return nil, err
	}

	changeOwner := changeOwnerOf(ops.ChangeAddresses(ops.Addresses(b.addrs)))
	if changeOwner == nil {
		return nil, ErrNoChangeAddress
	}

	dest := b.newDestination(changeOwner, ops, true)
	if err := dest.addTarget(b.context.AVAXAssetID, vdr.Wght, 0); err != nil {
		return nil, err
	}
	feeAssetID := ops.FeeAssetID(b.context.AVAXAssetID)
	if err := dest.addTarget(feeAssetID, 0, ops.TxFee(defaultFee)); err != nil {
		return nil, err
	}
	if err := b.spendFrom(constants.PlatformChainID, dest, ops, true); err != nil {
		return nil, err
	}
	avax.SortTransferableOutputs(dest.stakeOutputs)
	return dest, nil
}

// spendFee selects the UTXOs that pay [fee]. The senders are both the source
// and the destination. Nothing is selected when there is no fee.
func (b *builder) spendFee(fee uint64, ops *common.Options) (*spendDestination, error) {
	senders := ops.Addresses(b.addrs)
	dest := b.newDestination(changeOwnerOf(senders), ops, false)
	if fee == 0 {
		return dest, nil
	}

	feeAssetID := ops.FeeAssetID(b.context.AVAXAssetID)
	if err := dest.addTarget(feeAssetID, 0, fee); err != nil {
		return nil, err
	}
	return dest, b.spendFrom(constants.PlatformChainID, dest, ops, false)
}

func (b *builder) spendFrom(
	chainID ids.ID,
	dest *spendDestination,
	ops *common.Options,
	spendStakeable bool,
) error {
	utxos, err := b.backend.UTXOs(ops.Context(), chainID)
	if err != nil {
		return err
	}
	minIssuanceTime := ops.MinIssuanceTime(b.clock.Unix())
	return b.spend(utxos, dest, minIssuanceTime, spendStakeable)
}

func (b *builder) newDestination(
	to *secp256k1fx.OutputOwners,
	ops *common.Options,
	stake bool,
) *spendDestination {
	senders := ops.Addresses(b.addrs)
	return newSpendDestination(
		senders,
		to,
		ops.ChangeAddresses(senders),
		stake,
	)
}

func (b *builder) authorizeSubnet(subnetID ids.ID, options *common.Options) (*secp256k1fx.Input, error) {
	ownerIntf, err := b.backend.GetSubnetOwner(options.Context(), subnetID)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to fetch subnet owner for %q: %w",
			subnetID,
			err,
		)
	}
	owner, ok := ownerIntf.(*secp256k1fx.OutputOwners)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnknownOwnerType, ownerIntf)
	}

	addrs := options.Addresses(b.addrs)
	minIssuanceTime := options.MinIssuanceTime(b.clock.Unix())
	inputSigIndices, ok := common.MatchOwners(owner, addrs, minIssuanceTime)
	if !ok {
		// We can't authorize the subnet
		return nil, ErrInsufficientAuthorization
	}

	b.log.Debug("authorized subnet",
		zap.Stringer("subnetID", subnetID),
		zap.Int("numSigners", len(inputSigIndices)),
	)
	return &secp256k1fx.Input{
		SigIndices: inputSigIndices,
	}, nil
}

// sortedOwner returns a sorted copy of [owner] after checking that its
// threshold can be met.
func sortedOwner(owner *secp256k1fx.OutputOwners) (*secp256k1fx.OutputOwners, error) {
	if owner == nil {
		return nil, ErrNilOwner
	}
	if numAddrs := len(owner.Addrs); uint64(owner.Threshold) > uint64(numAddrs) {
		return nil, fmt.Errorf(
			"%w: threshold %d > %d addresses",
			ErrThresholdExceedsAddresses,
			owner.Threshold,
			numAddrs,
		)
	}
	sorted := owner.Clone()
	sorted.Sort()
	if err := sorted.Verify(); err != nil {
		return nil, fmt.Errorf("invalid owner: %w", err)
	}
	return sorted, nil
}

func verifyTimeWindow(vdr *txs.Validator, minIssuanceTime uint64) error {
	switch {
	case vdr.Start <= minIssuanceTime:
		return fmt.Errorf(
			"%w: start time %d must be after %d",
			ErrInvalidTimeWindow,
			vdr.Start,
			minIssuanceTime,
		)
	case vdr.End <= vdr.Start:
		return fmt.Errorf(
			"%w: end time %d must be after start time %d",
			ErrInvalidTimeWindow,
			vdr.End,
			vdr.Start,
		)
	default:
		return nil
	}
}

func verifyMemo(memo []byte) error {
	if len(memo) > txs.MaxMemoSize {
		return fmt.Errorf("%w: %d > %d", txs.ErrMemoTooLarge, len(memo), txs.MaxMemoSize)
	}
	return nil
}

// verifyTx is the last step of every assembler. It rejects any transaction
// that would not pass syntactic verification.
func verifyTx(tx txs.UnsignedTx) error {
	if err := tx.SyntacticVerify(); err != nil {
		return fmt.Errorf("built invalid tx: %w", err)
	}
	return nil
}
