// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package owner implements the single authority gating privileged operations.
package owner

import (
	"github.com/Ministry-of-Decentralization/token-curation/builtin/reverts"
	"github.com/Ministry-of-Decentralization/token-curation/builtin/solidity"
	"github.com/Ministry-of-Decentralization/token-curation/events"
	"github.com/Ministry-of-Decentralization/token-curation/log"
	"github.com/Ministry-of-Decentralization/token-curation/state"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

var (
	logger    = log.WithContext("pkg", "owner")
	slotOwner = tcr.BytesToBytes32([]byte("owner"))
)

// Owner keeps the authority address.
type Owner struct {
	owner *solidity.Address
}

// New create a new instance.
func New(addr tcr.Address, state *state.State) *Owner {
	return &Owner{owner: solidity.NewAddress(solidity.NewContext(addr, state), slotOwner)}
}

// Get returns the current authority, zero if never set.
func (o *Owner) Get() (tcr.Address, error) {
	return o.owner.Get()
}

// Init sets the authority. Used at genesis, before any authority exists.
func (o *Owner) Init(authority tcr.Address) error {
	if authority.IsZero() {
		return reverts.ErrZeroAddress
	}
	current, err := o.owner.Get()
	if err != nil {
		return err
	}
	if !current.IsZero() && current != authority {
		return reverts.ErrNotAuthorized.Withf("authority already set to %v", current)
	}
	o.owner.Set(authority)
	return nil
}

// Require fails with ErrNotAuthorized unless caller is the authority.
func (o *Owner) Require(caller tcr.Address) error {
	current, err := o.owner.Get()
	if err != nil {
		return err
	}
	if current.IsZero() || current != caller {
		return reverts.ErrNotAuthorized
	}
	return nil
}

// Transfer hands the authority over to next.
func (o *Owner) Transfer(caller, next tcr.Address) (events.Events, error) {
	if err := o.Require(caller); err != nil {
		return nil, err
	}
	if next.IsZero() {
		return nil, reverts.ErrZeroAddress
	}
	o.owner.Set(next)
	logger.Debug("ownership transferred", "previous", caller, "next", next)
	return events.Events{&events.OwnershipTransferred{Previous: caller, Next: next}}, nil
}
