// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package delta

import (
	"github.com/holiman/uint256"

	"github.com/Ministry-of-Decentralization/token-curation/builtin/reverts"
)

// Delta is the change a single stake or unstake applies to every running sum
// it touches. Raw and weighted always move in the same direction since
// weighting is monotonic.
type Delta struct {
	Increase bool
	Raw      *uint256.Int
	Weighted *uint256.Int
}

// New returns the delta moving a record from (oldRaw, oldWeighted) to (newRaw, newWeighted).
func New(oldRaw, oldWeighted, newRaw, newWeighted *uint256.Int) *Delta {
	if newRaw.Cmp(oldRaw) >= 0 {
		return &Delta{
			Increase: true,
			Raw:      new(uint256.Int).Sub(newRaw, oldRaw),
			Weighted: new(uint256.Int).Sub(newWeighted, oldWeighted),
		}
	}
	return &Delta{
		Increase: false,
		Raw:      new(uint256.Int).Sub(oldRaw, newRaw),
		Weighted: new(uint256.Int).Sub(oldWeighted, newWeighted),
	}
}

// Apply returns the sums after the delta. It fails with ErrArithmeticOverflow
// instead of wrapping.
func (d *Delta) Apply(raw, weighted *uint256.Int) (*uint256.Int, *uint256.Int, error) {
	var (
		r, w     uint256.Int
		rOf, wOf bool
	)
	if d.Increase {
		_, rOf = r.AddOverflow(raw, d.Raw)
		_, wOf = w.AddOverflow(weighted, d.Weighted)
	} else {
		_, rOf = r.SubOverflow(raw, d.Raw)
		_, wOf = w.SubOverflow(weighted, d.Weighted)
	}
	if rOf || wOf {
		return nil, nil, reverts.ErrArithmeticOverflow
	}
	return &r, &w, nil
}
