// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package address

import (
	"fmt"

	"github.com/ava-labs/txassembler/ids"
)

func ParseToID(addrStr string) (ids.ShortID, error) {
	_, _, addrBytes, err := Parse(addrStr)
	if err != nil {
		return ids.ShortID{}, err
	}
	return ids.ToShortID(addrBytes)
}

func ParseToIDs(addrStrs []string) ([]ids.ShortID, error) {
	var err error
	addrs := make([]ids.ShortID, len(addrStrs))
	for i, addrStr := range addrStrs {
		addrs[i], err = ParseToID(addrStr)
		if err != nil {
			return nil, err
		}
	}
	return addrs, nil
}

// FormatFromIDs takes in a chain prefix, HRP, and slice of ids.ShortID to
// produce a slice of strings for the given addresses.
func FormatFromIDs(
	chainIDAlias string,
	hrp string,
	addrs []ids.ShortID,
) ([]string, error) {
	var err error
	addrsStr := make([]string, len(addrs))
	for i, addr := range addrs {
		addrsStr[i], err = Format(chainIDAlias, hrp, addr[:])
		if err != nil {
			return nil, fmt.Errorf("could not format address %s, chain %s, hrp %s: %w", addr, chainIDAlias, hrp, err)
		}
	}
	return addrsStr, nil
}
