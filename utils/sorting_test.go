// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"
)

var _ Sortable[sortable] = sortable(0)

type sortable int

func (s sortable) Compare(other sortable) int {
	return cmp.Compare(s, other)
}

func TestSortSliceSortable(t *testing.T) {
	require := require.New(t)

	var s []sortable
	Sort(s)
	require.True(IsSorted(s))
	require.Empty(s)

	s = []sortable{1}
	Sort(s)
	require.True(IsSorted(s))
	require.Equal([]sortable{1}, s)

	s = []sortable{1, 1}
	Sort(s)
	require.True(IsSorted(s))
	require.Equal([]sortable{1, 1}, s)

	s = []sortable{2, 1}
	Sort(s)
	require.True(IsSorted(s))
	require.Equal([]sortable{1, 2}, s)

	s = []sortable{3, 1, 2, 1}
	Sort(s)
	require.True(IsSorted(s))
	require.Equal([]sortable{1, 1, 2, 3}, s)
}

func TestIsSortedAndUniqueSortable(t *testing.T) {
	require := require.New(t)

	var s []sortable
	require.True(IsSortedAndUnique(s))

	s = []sortable{}
	require.True(IsSortedAndUnique(s))

	s = []sortable{1}
	require.True(IsSortedAndUnique(s))

	s = []sortable{1, 2}
	require.True(IsSortedAndUnique(s))

	s = []sortable{1, 1}
	require.False(IsSortedAndUnique(s))

	s = []sortable{2, 1}
	require.False(IsSortedAndUnique(s))

	s = []sortable{1, 2, 1}
	require.False(IsSortedAndUnique(s))
}

func TestIsSortedAndUniqueOrdered(t *testing.T) {
	require := require.New(t)

	require.True(IsSortedAndUniqueOrdered([]uint32{}))
	require.True(IsSortedAndUniqueOrdered([]uint32{0, 2, 5}))
	require.False(IsSortedAndUniqueOrdered([]uint32{0, 0}))
	require.False(IsSortedAndUniqueOrdered([]uint32{3, 1}))
}
