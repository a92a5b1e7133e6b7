// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"
	"time"

	"github.com/ava-labs/txassembler/ids"
	"github.com/ava-labs/txassembler/utils/constants"
)

var (
	ErrWeightTooSmall             = errors.New("weight of this validator is too low")
	ErrBadValidatorDuration       = errors.New("validator's end time must be after its start time")
	ErrCantValidatePrimaryNetwork = errors.New("can't validate the primary network with a subnet validator")
)

// Validator is a validator.
type Validator struct {
	// Node ID of the validator
	NodeID ids.NodeID `json:"nodeID"`

	// Unix time this validator starts validating
	Start uint64 `json:"start"`

	// Unix time this validator stops validating
	End uint64 `json:"end"`

	// Weight of this validator used when sampling
	Wght uint64 `json:"weight"`
}

// StartTime is the time that this validator will enter the validator set
func (v *Validator) StartTime() time.Time {
	return time.Unix(int64(v.Start), 0)
}

// EndTime is the time that this validator will leave the validator set
func (v *Validator) EndTime() time.Time {
	return time.Unix(int64(v.End), 0)
}

// Weight is this validator's weight when sampling
func (v *Validator) Weight() uint64 {
	return v.Wght
}

// Verify validates the ID for this validator
func (v *Validator) Verify() error {
	switch {
	case v.Wght == 0: // Ensure the validator has some weight
		return ErrWeightTooSmall
	case v.End <= v.Start:
		return ErrBadValidatorDuration
	default:
		return nil
	}
}

// SubnetValidator validates a subnet on the Avalanche network.
type SubnetValidator struct {
	Validator `json:"validator"`

	// ID of the subnet this validator is validating
	Subnet ids.ID `json:"subnetID"`
}

// SubnetID is the ID of the subnet this validator is validating
func (v *SubnetValidator) SubnetID() ids.ID {
	return v.Subnet
}

// Verify this validator is valid
func (v *SubnetValidator) Verify() error {
	if v.Subnet == constants.PrimaryNetworkID {
		return ErrCantValidatePrimaryNetwork
	}
	return v.Validator.Verify()
}
