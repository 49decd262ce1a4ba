// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"github.com/Ministry-of-Decentralization/token-curation/events"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

// EnableStaking opens the target for staking. Enabling an enabled target
// succeeds and emits again.
func (s *Staking) EnableStaking(id tcr.TargetID, caller tcr.Address) (events.Events, error) {
	if err := s.setEnabled(id, caller, true); err != nil {
		return nil, err
	}
	return events.Events{&events.StakingEnabled{ID: id}}, nil
}

// DisableStaking closes the target for new stakes. Totals are kept and
// existing stakes remain withdrawable.
func (s *Staking) DisableStaking(id tcr.TargetID, caller tcr.Address) (events.Events, error) {
	if err := s.setEnabled(id, caller, false); err != nil {
		return nil, err
	}
	return events.Events{&events.StakingDisabled{ID: id}}, nil
}

func (s *Staking) setEnabled(id tcr.TargetID, caller tcr.Address, enabled bool) error {
	if err := s.gate.Require(caller); err != nil {
		return err
	}
	t, err := s.getTarget(id)
	if err != nil {
		return err
	}
	t.Enabled = enabled
	if err := s.setTarget(id, t); err != nil {
		return err
	}
	logger.Debug("target updated", "target", id, "enabled", enabled)
	return nil
}

// IsEnabled returns false for a never seen target.
func (s *Staking) IsEnabled(id tcr.TargetID) (bool, error) {
	t, err := s.getTarget(id)
	if err != nil {
		return false, err
	}
	return t.Enabled, nil
}
