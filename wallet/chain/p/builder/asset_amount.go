// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import (
	"fmt"

	"github.com/ava-labs/txassembler/ids"
	"github.com/ava-labs/txassembler/utils/math"
	"github.com/ava-labs/txassembler/vms/secp256k1fx"
)

// assetAmount tracks how much of a single asset must be produced and burned,
// and how much has been consumed so far.
//
// Stake locked value can only satisfy [amount]. The [burn] is always paid
// with unlocked value.
type assetAmount struct {
	assetID ids.ID

	amount uint64
	burn   uint64

	spent       uint64
	lockedSpent uint64

	// Consumed stake locked outputs, in consumption order.
	lockedOuts []lockedOutput
}

type lockedOutput struct {
	locktime uint64
	out      *secp256k1fx.TransferOutput
}

func newAssetAmount(assetID ids.ID) *assetAmount {
	return &assetAmount{assetID: assetID}
}

func (a *assetAmount) addTarget(amount, burn uint64) error {
	newAmount, err := math.Add(a.amount, amount)
	if err != nil {
		return fmt.Errorf("amount of %s: %w", a.assetID, err)
	}
	newBurn, err := math.Add(a.burn, burn)
	if err != nil {
		return fmt.Errorf("burn of %s: %w", a.assetID, err)
	}
	if _, err := math.Add(newAmount, newBurn); err != nil {
		return fmt.Errorf("target of %s: %w", a.assetID, err)
	}
	a.amount = newAmount
	a.burn = newBurn
	return nil
}

func (a *assetAmount) recordSpend(amount uint64, locked bool) error {
	newSpent, err := math.Add(a.spent, amount)
	if err != nil {
		return fmt.Errorf("spent of %s: %w", a.assetID, err)
	}
	a.spent = newSpent
	if locked {
		// lockedSpent <= spent
		a.lockedSpent += amount
	}
	return nil
}

// lockedUsed is the portion of the locked value that satisfies [amount].
func (a *assetAmount) lockedUsed() uint64 {
	return min(a.lockedSpent, a.amount)
}

func (a *assetAmount) unlockedSpent() uint64 {
	return a.spent - a.lockedSpent
}

// unlockedNeeded is the unlocked value required to finish.
func (a *assetAmount) unlockedNeeded() uint64 {
	return a.burn + a.amount - a.lockedUsed()
}

func (a *assetAmount) isFinished() bool {
	return a.unlockedSpent() >= a.unlockedNeeded()
}

// acceptsLocked returns true if consuming more stake locked value would
// reduce the unlocked value required.
func (a *assetAmount) acceptsLocked() bool {
	return !a.isFinished() && a.lockedSpent < a.amount
}

// missing is the unlocked value still required. It is 0 once finished.
func (a *assetAmount) missing() uint64 {
	if a.isFinished() {
		return 0
	}
	return a.unlockedNeeded() - a.unlockedSpent()
}

func (a *assetAmount) lockedChange() uint64 {
	return a.lockedSpent - a.lockedUsed()
}

func (a *assetAmount) unlockedChange() uint64 {
	return mustSub(a.unlockedSpent(), a.unlockedNeeded())
}

// change is the total value returned to the spender.
func (a *assetAmount) change() uint64 {
	return a.lockedChange() + a.unlockedChange()
}

// delivered is the unlocked value sent to the destination.
func (a *assetAmount) delivered() uint64 {
	return mustSub(mustSub(a.unlockedSpent(), a.burn), a.unlockedChange())
}

// mustSub subtracts values whose ordering is guaranteed by the tracker. A
// failure means the bookkeeping is broken.
func mustSub(a, b uint64) uint64 {
	v, err := math.Sub(a, b)
	if err != nil {
		panic(fmt.Errorf("unexpected asset accounting: %d - %d: %w", a, b, err))
	}
	return v
}
