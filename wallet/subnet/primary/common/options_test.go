// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package common

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/txassembler/ids"
	"github.com/ava-labs/txassembler/utils/set"
)

func TestOptionsDefaults(t *testing.T) {
	require := require.New(t)

	defaultAddrs := set.Of(ids.GenerateTestShortID())
	defaultAssetID := ids.GenerateTestID()

	ops := NewOptions(nil)
	require.Equal(context.Background(), ops.Context())
	require.Equal(defaultAddrs, ops.Addresses(defaultAddrs))
	require.Equal(defaultAddrs, ops.ChangeAddresses(defaultAddrs))
	require.Equal(uint64(5), ops.MinIssuanceTime(5))
	require.Equal(defaultAssetID, ops.FeeAssetID(defaultAssetID))
	require.Equal(uint64(7), ops.TxFee(7))
	require.Nil(ops.Memo())
}

func TestOptionsOverrides(t *testing.T) {
	require := require.New(t)

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, 1)
	addrs := set.Of(ids.GenerateTestShortID())
	changeAddrs := set.Of(ids.GenerateTestShortID())
	feeAssetID := ids.GenerateTestID()

	ops := NewOptions(UnionOptions(
		[]Option{
			WithContext(ctx),
			WithCustomAddresses(addrs),
			WithTxFee(3),
		},
		[]Option{
			WithChangeAddresses(changeAddrs),
			WithIssuanceAt(time.Unix(100, 0)),
			WithFeeAssetID(feeAssetID),
			WithTxFee(0),
			WithMemo([]byte("memo")),
		},
	))
	require.Equal(ctx, ops.Context())
	require.Equal(addrs, ops.Addresses(nil))
	require.Equal(changeAddrs, ops.ChangeAddresses(nil))
	require.Equal(uint64(100), ops.MinIssuanceTime(5))
	require.Equal(feeAssetID, ops.FeeAssetID(ids.Empty))
	require.Zero(ops.TxFee(7))
	require.Equal([]byte("memo"), ops.Memo())
}
