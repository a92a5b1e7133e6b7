// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stakeable

import (
	"errors"

	"github.com/ava-labs/txassembler/vms/components/avax"
)

var (
	ErrInvalidLocktime = errors.New("invalid locktime")
	ErrNestedLocks     = errors.New("shouldn't nest stakeable locks")
)

// LockOut is an output that may only be used for staking until [Locktime].
type LockOut struct {
	Locktime             uint64 `json:"locktime"`
	avax.TransferableOut `json:"output"`
}

func (s *LockOut) Verify() error {
	if s.Locktime == 0 {
		return ErrInvalidLocktime
	}
	if _, nested := s.TransferableOut.(*LockOut); nested {
		return ErrNestedLocks
	}
	return s.TransferableOut.Verify()
}

// LockIn spends a LockOut and re-establishes its lock.
type LockIn struct {
	Locktime            uint64 `json:"locktime"`
	avax.TransferableIn `json:"input"`
}

func (s *LockIn) Verify() error {
	if s.Locktime == 0 {
		return ErrInvalidLocktime
	}
	if _, nested := s.TransferableIn.(*LockIn); nested {
		return ErrNestedLocks
	}
	return s.TransferableIn.Verify()
}
