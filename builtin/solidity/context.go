// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package solidity

import (
	"github.com/Ministry-of-Decentralization/token-curation/state"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

// Context binds storage wrappers to a contract address on a state.
type Context struct {
	address tcr.Address
	state   *state.State
}

func NewContext(address tcr.Address, state *state.State) *Context {
	return &Context{
		address: address,
		state:   state,
	}
}

func (c *Context) Address() tcr.Address {
	return c.address
}

func (c *Context) State() *state.State {
	return c.state
}
