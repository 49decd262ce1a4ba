// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/Ministry-of-Decentralization/token-curation/builtin/weighting"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

// Target is the public view of a target.
type Target struct {
	ID            tcr.TargetID
	Enabled       bool
	TotalRaw      *uint256.Int
	TotalWeighted *uint256.Int
}

// GetTarget returns the target, disabled with zero totals if never seen.
func (s *Staking) GetTarget(id tcr.TargetID) (*Target, error) {
	t, err := s.getTarget(id)
	if err != nil {
		return nil, err
	}
	return &Target{ID: id, Enabled: t.Enabled, TotalRaw: t.TotalRaw, TotalWeighted: t.TotalWeighted}, nil
}

// TotalStakedOn returns the raw and weighted totals of the target.
func (s *Staking) TotalStakedOn(id tcr.TargetID) (*uint256.Int, *uint256.Int, error) {
	t, err := s.getTarget(id)
	if err != nil {
		return nil, nil, err
	}
	return t.TotalRaw, t.TotalWeighted, nil
}

// StakeOf returns the account's raw and weighted stake on the target.
func (s *Staking) StakeOf(account tcr.Address, id tcr.TargetID) (*uint256.Int, *uint256.Int, error) {
	r, err := s.getStake(account, id)
	if err != nil {
		return nil, nil, err
	}
	return r.Raw, r.Weighted, nil
}

// TotalStakedFor returns the account's raw and weighted stake across all targets.
func (s *Staking) TotalStakedFor(account tcr.Address) (*uint256.Int, *uint256.Int, error) {
	r, err := s.getAccount(account)
	if err != nil {
		return nil, nil, err
	}
	return r.Raw, r.Weighted, nil
}

// TotalStaked returns the raw and weighted stake of the whole ledger.
func (s *Staking) TotalStaked() (*uint256.Int, *uint256.Int, error) {
	return s.stats.Totals()
}

// SupportsHistory is always false, past stakes are not queryable.
func (s *Staking) SupportsHistory() bool {
	return false
}

// Weighting returns the name of the strategy the ledger was initialized with,
// empty if never initialized.
func (s *Staking) Weighting() (string, error) {
	b, err := s.weightName.Get()
	if err != nil {
		return "", err
	}
	return string(trimZero(b[:])), nil
}

// InitWeighting records the strategy of the ledger. A ledger initialized with
// another strategy is rejected.
func (s *Staking) InitWeighting() error {
	name := s.strategy.Name()
	current, err := s.Weighting()
	if err != nil {
		return err
	}
	if current != "" {
		if current != name {
			return errors.Errorf("ledger weighting is %q, requested %q", current, name)
		}
		return nil
	}
	if _, err := weighting.Parse(name); err != nil {
		return err
	}
	s.weightName.Set(tcr.BytesToBytes32([]byte(name)))
	return nil
}

func trimZero(b []byte) []byte {
	for i, c := range b {
		if c != 0 {
			return b[i:]
		}
	}
	return nil
}
