// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package owner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ministry-of-Decentralization/token-curation/builtin/reverts"
	"github.com/Ministry-of-Decentralization/token-curation/events"
	"github.com/Ministry-of-Decentralization/token-curation/lvldb"
	"github.com/Ministry-of-Decentralization/token-curation/state"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
	"github.com/Ministry-of-Decentralization/token-curation/test/datagen"
)

func newOwner(t *testing.T) *Owner {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(tcr.BytesToAddress([]byte("Owner")), state.New(db))
}

func TestOwner(t *testing.T) {
	o := newOwner(t)
	authority := datagen.RandAddress()
	stranger := datagen.RandAddress()

	// nobody passes before init, not even the zero address
	assert.ErrorIs(t, o.Require(tcr.Address{}), reverts.ErrNotAuthorized)

	assert.ErrorIs(t, o.Init(tcr.Address{}), reverts.ErrZeroAddress)
	require.NoError(t, o.Init(authority))
	require.NoError(t, o.Init(authority), "re-init with the same authority is a no-op")
	assert.ErrorIs(t, o.Init(stranger), reverts.ErrNotAuthorized)

	assert.NoError(t, o.Require(authority))
	assert.ErrorIs(t, o.Require(stranger), reverts.ErrNotAuthorized)

	_, err := o.Transfer(stranger, stranger)
	assert.ErrorIs(t, err, reverts.ErrNotAuthorized)
	_, err = o.Transfer(authority, tcr.Address{})
	assert.ErrorIs(t, err, reverts.ErrZeroAddress)

	evs, err := o.Transfer(authority, stranger)
	require.NoError(t, err)
	assert.Equal(t, events.Events{&events.OwnershipTransferred{Previous: authority, Next: stranger}}, evs)

	current, err := o.Get()
	require.NoError(t, err)
	assert.Equal(t, stranger, current)
	assert.ErrorIs(t, o.Require(authority), reverts.ErrNotAuthorized)
	assert.NoError(t, o.Require(stranger))
}
