// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/Ministry-of-Decentralization/token-curation/builtin/staking/delta"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

var (
	slotTargets   = tcr.BytesToBytes32([]byte("targets"))
	slotStakes    = tcr.BytesToBytes32([]byte("stakes"))
	slotAccounts  = tcr.BytesToBytes32([]byte("account-totals"))
	slotWeighting = tcr.BytesToBytes32([]byte("weighting"))
)

// target is the registry entry and the running totals of a target.
type target struct {
	Enabled       bool
	TotalRaw      *uint256.Int
	TotalWeighted *uint256.Int
}

// record is a raw and weighted pair, used for stake records and account totals.
type record struct {
	Raw      *uint256.Int
	Weighted *uint256.Int
}

type stakeKey struct {
	account tcr.Address
	target  tcr.TargetID
}

func (k stakeKey) Bytes() []byte {
	b := make([]byte, 0, len(k.account)+len(k.target))
	b = append(b, k.account[:]...)
	return append(b, k.target[:]...)
}

func orZero(v *uint256.Int) *uint256.Int {
	if v == nil {
		return new(uint256.Int)
	}
	return v
}

func (s *Staking) getTarget(id tcr.TargetID) (*target, error) {
	t, err := s.targets.Get(id)
	if err != nil {
		return nil, errors.Wrap(err, "load target")
	}
	if t == nil {
		t = &target{}
	}
	t.TotalRaw = orZero(t.TotalRaw)
	t.TotalWeighted = orZero(t.TotalWeighted)
	return t, nil
}

func (s *Staking) setTarget(id tcr.TargetID, t *target) error {
	return s.targets.Set(id, t)
}

func loadRecord[K any](get func(K) (*record, error), key K) (*record, error) {
	r, err := get(key)
	if err != nil {
		return nil, errors.Wrap(err, "load stake record")
	}
	if r == nil {
		r = &record{}
	}
	r.Raw = orZero(r.Raw)
	r.Weighted = orZero(r.Weighted)
	return r, nil
}

func (s *Staking) getStake(account tcr.Address, id tcr.TargetID) (*record, error) {
	return loadRecord(s.stakes.Get, stakeKey{account, id})
}

func (s *Staking) getAccount(account tcr.Address) (*record, error) {
	return loadRecord(s.accounts.Get, account)
}

// applyTo returns a new record with d applied.
func (r *record) applyTo(d *delta.Delta) (*record, error) {
	raw, weighted, err := d.Apply(r.Raw, r.Weighted)
	if err != nil {
		return nil, err
	}
	return &record{Raw: raw, Weighted: weighted}, nil
}
