// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package builtin

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ministry-of-Decentralization/token-curation/builtin/weighting"
	"github.com/Ministry-of-Decentralization/token-curation/lvldb"
	"github.com/Ministry-of-Decentralization/token-curation/state"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
	"github.com/Ministry-of-Decentralization/token-curation/test/datagen"
)

func TestAddresses(t *testing.T) {
	assert.Equal(t, tcr.BytesToAddress([]byte("Staking")), Staking.Address)
	assert.Equal(t, "Custody", Custody.Name())
	assert.NotEqual(t, Owner.Address, Custody.Address)
}

func TestStakingBinding(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()
	st := state.New(db)

	authority := datagen.RandAddress()
	alice := datagen.RandAddress()
	id := tcr.TargetIDFromInt(284)

	require.NoError(t, Owner.WithState(st).Init(authority))
	_, err = Custody.WithState(st).Deposit(alice, uint256.NewInt(200))
	require.NoError(t, err)

	s := Staking.WithState(st, weighting.Linear{})
	_, err = s.EnableStaking(id, authority)
	require.NoError(t, err)
	_, err = s.Stake(alice, id, uint256.NewInt(124))
	require.NoError(t, err)

	free, err := Custody.WithState(st).FreeBalanceOf(alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(76), free.Uint64())
}
