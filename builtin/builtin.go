// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package builtin binds the ledger contracts to their storage addresses.
package builtin

import (
	"github.com/Ministry-of-Decentralization/token-curation/builtin/custody"
	"github.com/Ministry-of-Decentralization/token-curation/builtin/owner"
	"github.com/Ministry-of-Decentralization/token-curation/builtin/staking"
	"github.com/Ministry-of-Decentralization/token-curation/builtin/weighting"
	"github.com/Ministry-of-Decentralization/token-curation/state"
)

// Builtin contracts binding.
var (
	Owner   = &ownerContract{newContract("Owner")}
	Custody = &custodyContract{newContract("Custody")}
	Staking = &stakingContract{newContract("Staking")}
)

type (
	ownerContract   struct{ *contract }
	custodyContract struct{ *contract }
	stakingContract struct{ *contract }
)

func (o *ownerContract) WithState(state *state.State) *owner.Owner {
	return owner.New(o.Address, state)
}

func (c *custodyContract) WithState(state *state.State) *custody.Custody {
	return custody.New(c.Address, state)
}

// WithState binds the staking ledger to the owner gate and the custody ledger of the same state.
func (s *stakingContract) WithState(state *state.State, strategy weighting.Strategy) *staking.Staking {
	return staking.New(s.Address, state, strategy, Owner.WithState(state), Custody.WithState(state))
}
