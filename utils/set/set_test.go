// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package set

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/txassembler/ids"
)

func TestSet(t *testing.T) {
	require := require.New(t)
	id1 := 1

	s := Set[int]{id1: struct{}{}}

	s.Add(id1)
	require.True(s.Contains(id1))

	s.Remove(id1)
	require.False(s.Contains(id1))

	s.Add(id1)
	require.True(s.Contains(id1))
	require.Len(s.List(), 1)
	require.Len(s, 1)

	s.Clear()
	require.False(s.Contains(id1))

	s.Add(id1)

	s2 := Set[int]{}

	require.False(s.Overlaps(s2))

	s2.Union(s)
	require.True(s2.Contains(id1))
	require.True(s.Overlaps(s2))

	s2.Difference(s)
	require.False(s2.Contains(id1))
	require.False(s.Overlaps(s2))
}

func TestOf(t *testing.T) {
	tests := []struct {
		name     string
		elements []int
		expected []int
	}{
		{
			name:     "nil",
			elements: nil,
			expected: []int{},
		},
		{
			name:     "empty",
			elements: []int{},
			expected: []int{},
		},
		{
			name:     "unique elements",
			elements: []int{1, 2, 3},
			expected: []int{1, 2, 3},
		},
		{
			name:     "duplicate elements",
			elements: []int{1, 2, 3, 1, 2, 3},
			expected: []int{1, 2, 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			s := Of(tt.elements...)

			require.Len(s, len(tt.expected))
			for _, expected := range tt.expected {
				require.True(s.Contains(expected))
			}
		})
	}
}

func TestSetPeekPop(t *testing.T) {
	require := require.New(t)

	s := Set[int]{}
	_, ok := s.Peek()
	require.False(ok)
	_, ok = s.Pop()
	require.False(ok)

	s.Add(7)
	elt, ok := s.Peek()
	require.True(ok)
	require.Equal(7, elt)
	require.Equal(1, s.Len())

	elt, ok = s.Pop()
	require.True(ok)
	require.Equal(7, elt)
	require.Zero(s.Len())
}

func TestSortedList(t *testing.T) {
	require := require.New(t)

	var (
		id0 = ids.ShortID{0}
		id1 = ids.ShortID{1}
		id2 = ids.ShortID{2}
	)
	s := Of(id2, id0, id1)
	require.Equal([]ids.ShortID{id0, id1, id2}, SortedList(s))
}

func TestSetEquals(t *testing.T) {
	require := require.New(t)

	require.True(Of(1, 2).Equals(Of(2, 1)))
	require.False(Of(1, 2).Equals(Of(1)))
	require.False(Of(1, 2).Equals(Of(1, 3)))
}

func TestSetMarshalJSON(t *testing.T) {
	require := require.New(t)

	s := Of(2, 1)
	bytes, err := s.MarshalJSON()
	require.NoError(err)
	require.Equal(`["1","2"]`, string(bytes))
}
