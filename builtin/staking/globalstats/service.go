// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package globalstats

import (
	"github.com/holiman/uint256"

	"github.com/Ministry-of-Decentralization/token-curation/builtin/solidity"
	"github.com/Ministry-of-Decentralization/token-curation/builtin/staking/delta"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

var (
	slotTotalRaw      = tcr.BytesToBytes32([]byte("total-stake"))
	slotTotalWeighted = tcr.BytesToBytes32([]byte("total-weight"))
)

// Service manages contract-wide staking totals across all targets and accounts.
type Service struct {
	totalRaw      *solidity.Uint256
	totalWeighted *solidity.Uint256
}

func New(sctx *solidity.Context) *Service {
	return &Service{
		totalRaw:      solidity.NewUint256(sctx, slotTotalRaw),
		totalWeighted: solidity.NewUint256(sctx, slotTotalWeighted),
	}
}

// Totals returns the raw and weighted stake of the whole ledger.
func (s *Service) Totals() (*uint256.Int, *uint256.Int, error) {
	raw, err := s.totalRaw.Get()
	if err != nil {
		return nil, nil, err
	}
	weighted, err := s.totalWeighted.Get()
	return raw, weighted, err
}

// Apply moves the totals by d. Both totals are left untouched on failure.
func (s *Service) Apply(d *delta.Delta) error {
	raw, weighted, err := s.Totals()
	if err != nil {
		return err
	}
	raw, weighted, err = d.Apply(raw, weighted)
	if err != nil {
		return err
	}
	s.totalRaw.Set(raw)
	s.totalWeighted.Set(weighted)
	return nil
}
