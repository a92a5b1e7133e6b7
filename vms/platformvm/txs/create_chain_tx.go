// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"
	"unicode"

	"github.com/ava-labs/txassembler/ids"
	"github.com/ava-labs/txassembler/utils"
	"github.com/ava-labs/txassembler/utils/constants"
	"github.com/ava-labs/txassembler/utils/units"
	"github.com/ava-labs/txassembler/vms/components/verify"
)

const (
	MaxNameLen    = 128
	MaxGenesisLen = units.MiB
)

var (
	_ UnsignedTx = (*CreateChainTx)(nil)

	ErrCantCreatePrimaryNetworkChain = errors.New("new blockchain can't be validated by primary network")
	ErrInvalidVMID                   = errors.New("invalid VM ID")
	ErrFxIDsNotSortedAndUnique       = errors.New("feature extensions IDs must be sorted and unique")
	ErrNameTooLong                   = errors.New("name too long")
	ErrGenesisTooLong                = errors.New("genesis too long")
	ErrIllegalNameCharacter          = errors.New("illegal name character")
)

// CreateChainTx is an unsigned createChainTx
type CreateChainTx struct {
	// Metadata, inputs and outputs
	BaseTx `json:"baseTx"`
	// ID of the Subnet that validates this blockchain
	SubnetID ids.ID `json:"subnetID"`
	// A human readable name for the chain; need not be unique
	ChainName string `json:"chainName"`
	// ID of the VM running on the new chain
	VMID ids.ID `json:"vmID"`
	// IDs of the feature extensions running on the new chain
	FxIDs []ids.ID `json:"fxIDs"`
	// Byte representation of genesis state of the new chain
	GenesisData []byte `json:"genesisData"`
	// Authorizes this blockchain to be added to this subnet
	SubnetAuth verify.Verifiable `json:"subnetAuthorization"`
}

func (tx *CreateChainTx) SyntacticVerify() error {
	switch {
	case tx == nil:
		return ErrNilTx
	case tx.SubnetID == constants.PrimaryNetworkID:
		return ErrCantCreatePrimaryNetworkChain
	case len(tx.ChainName) > MaxNameLen:
		return ErrNameTooLong
	case tx.VMID == ids.Empty:
		return ErrInvalidVMID
	case !utils.IsSortedAndUnique(tx.FxIDs):
		return ErrFxIDsNotSortedAndUnique
	case len(tx.GenesisData) > MaxGenesisLen:
		return ErrGenesisTooLong
	}

	for _, r := range tx.ChainName {
		if r > unicode.MaxASCII || (!unicode.IsLetter(r) && !unicode.IsNumber(r) && r != ' ') {
			return ErrIllegalNameCharacter
		}
	}

	if err := tx.BaseTx.SyntacticVerify(); err != nil {
		return err
	}
	return tx.SubnetAuth.Verify()
}

func (tx *CreateChainTx) Visit(visitor Visitor) error {
	return visitor.CreateChainTx(tx)
}
