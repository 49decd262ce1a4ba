// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"github.com/holiman/uint256"

	"github.com/Ministry-of-Decentralization/token-curation/builtin/reverts"
	"github.com/Ministry-of-Decentralization/token-curation/builtin/staking/delta"
	"github.com/Ministry-of-Decentralization/token-curation/events"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

// change is the outcome of one mutation of a stake record.
type change struct {
	delta   *delta.Delta
	account *record
}

// Stake commits amount of the account's free balance to the target.
func (s *Staking) Stake(account tcr.Address, id tcr.TargetID, amount *uint256.Int) (events.Events, error) {
	if amount == nil || amount.IsZero() {
		return nil, reverts.ErrZeroAmount
	}
	t, err := s.getTarget(id)
	if err != nil {
		return nil, err
	}
	if !t.Enabled {
		return nil, reverts.ErrTargetNotEnabled.Withf("%v", id)
	}
	free, err := s.custody.FreeBalanceOf(account)
	if err != nil {
		return nil, err
	}
	if free.Lt(amount) {
		return nil, reverts.ErrInsufficientBalance.Withf("free %v, requested %v", free.Dec(), amount.Dec())
	}

	var c *change
	if err := s.atomic(func() error {
		stake, err := s.getStake(account, id)
		if err != nil {
			return err
		}
		raw, overflow := new(uint256.Int).AddOverflow(stake.Raw, amount)
		if overflow {
			return reverts.ErrArithmeticOverflow
		}
		if c, err = s.update(account, id, t, stake, raw); err != nil {
			return err
		}
		return s.custody.Reserve(account, amount)
	}); err != nil {
		return nil, err
	}

	logger.Debug("staked", "account", account, "target", id, "amount", amount)
	amt := new(uint256.Int).Set(amount)
	return events.Events{
		&events.Staked{
			Account: account,
			Amount:  amt,
			Total:   c.account.Raw,
			Data:    id,
		},
		&events.WeightedStaked{
			Account:        account,
			Amount:         amt,
			WeightedAmount: c.delta.Weighted,
			Total:          c.account.Raw,
			WeightedTotal:  c.account.Weighted,
			Data:           id,
		},
	}, nil
}

// Unstake returns amount of the account's stake on the target to its free
// balance. The target does not need to be enabled.
func (s *Staking) Unstake(account tcr.Address, id tcr.TargetID, amount *uint256.Int) (events.Events, error) {
	if amount == nil || amount.IsZero() {
		return nil, reverts.ErrZeroAmount
	}
	stake, err := s.getStake(account, id)
	if err != nil {
		return nil, err
	}
	if stake.Raw.Lt(amount) {
		return nil, reverts.ErrInsufficientStake.Withf("staked %v, requested %v", stake.Raw.Dec(), amount.Dec())
	}
	t, err := s.getTarget(id)
	if err != nil {
		return nil, err
	}

	var c *change
	if err := s.atomic(func() error {
		raw := new(uint256.Int).Sub(stake.Raw, amount)
		if c, err = s.update(account, id, t, stake, raw); err != nil {
			return err
		}
		return s.custody.Release(account, amount)
	}); err != nil {
		return nil, err
	}

	logger.Debug("unstaked", "account", account, "target", id, "amount", amount)
	amt := new(uint256.Int).Set(amount)
	return events.Events{
		&events.Unstaked{
			Account: account,
			Amount:  amt,
			Total:   c.account.Raw,
			Data:    id,
		},
		&events.WeightedUnstaked{
			Account:        account,
			Amount:         amt,
			WeightedAmount: c.delta.Weighted,
			Total:          c.account.Raw,
			WeightedTotal:  c.account.Weighted,
			Data:           id,
		},
	}, nil
}

// update moves the stake record to raw, recomputing its weight from scratch,
// and carries the difference into the target, account and global sums.
func (s *Staking) update(account tcr.Address, id tcr.TargetID, t *target, stake *record, raw *uint256.Int) (*change, error) {
	next := &record{Raw: raw, Weighted: s.strategy.Weight(raw)}
	d := delta.New(stake.Raw, stake.Weighted, next.Raw, next.Weighted)

	totalRaw, totalWeighted, err := d.Apply(t.TotalRaw, t.TotalWeighted)
	if err != nil {
		return nil, err
	}
	acc, err := s.getAccount(account)
	if err != nil {
		return nil, err
	}
	if acc, err = acc.applyTo(d); err != nil {
		return nil, err
	}
	if err := s.stats.Apply(d); err != nil {
		return nil, err
	}

	if err := s.stakes.Set(stakeKey{account, id}, next); err != nil {
		return nil, err
	}
	if err := s.setTarget(id, &target{Enabled: t.Enabled, TotalRaw: totalRaw, TotalWeighted: totalWeighted}); err != nil {
		return nil, err
	}
	if err := s.accounts.Set(account, acc); err != nil {
		return nil, err
	}
	return &change{delta: d, account: acc}, nil
}
