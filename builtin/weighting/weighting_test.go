// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package weighting

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadraticRoot(t *testing.T) {
	q := QuadraticRoot{}
	tests := []struct {
		raw  uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{3, 1},
		{4, 2},
		{99, 9},
		{100, 10},
		{124, 11},
		{186, 13},
		{1 << 62, 1 << 31},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, q.Weight(uint256.NewInt(tt.raw)).Uint64(), "weight(%d)", tt.raw)
	}

	// perfect squares map exactly to their root
	for n := uint64(0); n < 2000; n++ {
		assert.Equal(t, n, q.Weight(uint256.NewInt(n*n)).Uint64())
	}

	maxU := new(uint256.Int).SetAllOne()
	want := new(uint256.Int).SetAllOne()
	want.Rsh(want, 128)
	assert.True(t, q.Weight(maxU).Eq(want))
}

func TestMonotonic(t *testing.T) {
	f := fuzz.New().NilChance(0)
	for _, s := range []Strategy{Linear{}, QuadraticRoot{}} {
		for range 500 {
			var a, b uint64
			f.Fuzz(&a)
			f.Fuzz(&b)
			if a > b {
				a, b = b, a
			}
			wa := s.Weight(uint256.NewInt(a))
			wb := s.Weight(uint256.NewInt(b))
			require.False(t, wa.Gt(wb), "%s: weight(%d) > weight(%d)", s.Name(), a, b)
		}
	}
}

func TestLinearCopies(t *testing.T) {
	raw := uint256.NewInt(124)
	w := Linear{}.Weight(raw)
	assert.True(t, w.Eq(raw))
	w.AddUint64(w, 1)
	assert.Equal(t, uint64(124), raw.Uint64(), "result must not alias input")
}

func TestParse(t *testing.T) {
	s, err := Parse("linear")
	require.NoError(t, err)
	assert.Equal(t, Linear{}, s)

	s, err = Parse("Quadratic")
	require.NoError(t, err)
	assert.Equal(t, QuadraticName, s.Name())

	_, err = Parse("cubic")
	assert.Error(t, err)
}
