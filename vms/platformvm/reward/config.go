// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reward

// PercentDenominator is the denominator used to calculate percentages
const PercentDenominator = 1_000_000
