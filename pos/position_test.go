package pos

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeOf(t *testing.T) {
	var nilRange *Range
	assert.Equal(t, Range{}, RangeOf(nil))
	assert.Equal(t, Range{}, RangeOf(nilRange))
	assert.Equal(t, Range{1, 4}, RangeOf(At(1, 4)))
	assert.Equal(t, Range{2, 3}, RangeOf(Range{2, 3}))
	assert.True(t, RangeOf(nil).IsZero())
}

func TestRangeBetween(t *testing.T) {
	r := RangeBetween(Range{1, 2}, Range{7, 9})
	assert.Equal(t, token.Pos(1), r.Pos())
	assert.Equal(t, token.Pos(9), r.End())
	assert.Equal(t, "1-9", r.String())
	assert.Equal(t, "3", Range{3, 3}.String())
}

func TestRangeHash(t *testing.T) {
	assert.Equal(t, Range{1, 2}.Hash(), Range{1, 2}.Hash())
	assert.NotEqual(t, Range{1, 2}.Hash(), Range{2, 1}.Hash())
}
