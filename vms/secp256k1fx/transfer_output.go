// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"errors"

	"github.com/ava-labs/txassembler/vms/components/avax"
)

var (
	ErrNoValueOutput = errors.New("output has no value")

	_ avax.TransferableOut = (*TransferOutput)(nil)
)

type TransferOutput struct {
	Amt uint64 `json:"amount"`

	OutputOwners `json:"outputOwners"`
}

// Amount returns the quantity of the asset this output consumes
func (out *TransferOutput) Amount() uint64 {
	return out.Amt
}

func (out *TransferOutput) Verify() error {
	switch {
	case out == nil:
		return ErrNilOutput
	case out.Amt == 0:
		return ErrNoValueOutput
	default:
		return out.OutputOwners.Verify()
	}
}

func (out *TransferOutput) Owners() *OutputOwners {
	return &out.OutputOwners
}
