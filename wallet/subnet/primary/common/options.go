// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package common

import (
	"context"
	"time"

	"github.com/ava-labs/txassembler/ids"
	"github.com/ava-labs/txassembler/utils/set"
)

type Option func(*Options)

type Options struct {
	ctx context.Context

	customAddressesSet bool
	customAddresses    set.Set[ids.ShortID]

	changeAddressesSet bool
	changeAddresses    set.Set[ids.ShortID]

	minIssuanceTimeSet bool
	minIssuanceTime    uint64

	feeAssetIDSet bool
	feeAssetID    ids.ID

	txFeeSet bool
	txFee    uint64

	memo []byte
}

func NewOptions(ops []Option) *Options {
	o := &Options{}
	o.applyOptions(ops)
	return o
}

func UnionOptions(first, second []Option) []Option {
	firstLen := len(first)
	newOptions := make([]Option, firstLen+len(second))
	copy(newOptions, first)
	copy(newOptions[firstLen:], second)
	return newOptions
}

func (o *Options) applyOptions(ops []Option) {
	for _, op := range ops {
		op(o)
	}
}

func (o *Options) Context() context.Context {
	if o.ctx != nil {
		return o.ctx
	}
	return context.Background()
}

// Addresses returns the addresses whose UTXOs may be spent.
func (o *Options) Addresses(defaultAddresses set.Set[ids.ShortID]) set.Set[ids.ShortID] {
	if o.customAddressesSet {
		return o.customAddresses
	}
	return defaultAddresses
}

// ChangeAddresses returns the addresses that receive change.
func (o *Options) ChangeAddresses(defaultAddresses set.Set[ids.ShortID]) set.Set[ids.ShortID] {
	if o.changeAddressesSet {
		return o.changeAddresses
	}
	return defaultAddresses
}

// MinIssuanceTime is the reference time used to evaluate locktimes.
func (o *Options) MinIssuanceTime(defaultTime uint64) uint64 {
	if o.minIssuanceTimeSet {
		return o.minIssuanceTime
	}
	return defaultTime
}

func (o *Options) FeeAssetID(defaultAssetID ids.ID) ids.ID {
	if o.feeAssetIDSet {
		return o.feeAssetID
	}
	return defaultAssetID
}

func (o *Options) TxFee(defaultFee uint64) uint64 {
	if o.txFeeSet {
		return o.txFee
	}
	return defaultFee
}

func (o *Options) Memo() []byte {
	return o.memo
}

func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.ctx = ctx
	}
}

func WithCustomAddresses(addrs set.Set[ids.ShortID]) Option {
	return func(o *Options) {
		o.customAddressesSet = true
		o.customAddresses = addrs
	}
}

func WithChangeAddresses(addrs set.Set[ids.ShortID]) Option {
	return func(o *Options) {
		o.changeAddressesSet = true
		o.changeAddresses = addrs
	}
}

func WithMinIssuanceTime(minIssuanceTime uint64) Option {
	return func(o *Options) {
		o.minIssuanceTimeSet = true
		o.minIssuanceTime = minIssuanceTime
	}
}

// WithIssuanceAt is a convenience wrapper around WithMinIssuanceTime.
func WithIssuanceAt(t time.Time) Option {
	return WithMinIssuanceTime(uint64(max(t.Unix(), 0)))
}

func WithFeeAssetID(assetID ids.ID) Option {
	return func(o *Options) {
		o.feeAssetIDSet = true
		o.feeAssetID = assetID
	}
}

func WithTxFee(fee uint64) Option {
	return func(o *Options) {
		o.txFeeSet = true
		o.txFee = fee
	}
}

func WithMemo(memo []byte) Option {
	return func(o *Options) {
		o.memo = memo
	}
}
