package util

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverse(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(Reverse([]int{1, 2, 3})))
	assert.Empty(t, slices.Collect(Reverse([]int{})))
}

func TestMapIterAndSet(t *testing.T) {
	doubled := MapIter(slices.Values([]int{1, 2, 2}), func(i int) int { return i * 2 })
	s := SetFromSeq(doubled, 3)
	assert.Equal(t, 2, s.Size())
	assert.True(t, s.Contains(4))
}

func TestJoinString(t *testing.T) {
	assert.Equal(t, "1, 2, 3", JoinString([]int{1, 2, 3}, ", ", strconv.Itoa))
	assert.Equal(t, "", JoinString([]int{}, ", ", strconv.Itoa))
}
