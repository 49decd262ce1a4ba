// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/Ministry-of-Decentralization/token-curation/builtin/custody"
	"github.com/Ministry-of-Decentralization/token-curation/builtin/owner"
	"github.com/Ministry-of-Decentralization/token-curation/builtin/weighting"
	"github.com/Ministry-of-Decentralization/token-curation/lvldb"
	"github.com/Ministry-of-Decentralization/token-curation/state"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
	"github.com/Ministry-of-Decentralization/token-curation/test/datagen"
)

var (
	contractAddr = tcr.BytesToAddress([]byte("Staking"))
	custodyAddr  = tcr.BytesToAddress([]byte("Custody"))
	ownerAddr    = tcr.BytesToAddress([]byte("Owner"))
)

type testLedger struct {
	*Staking
	state     *state.State
	custody   *custody.Custody
	authority tcr.Address
}

func newTestLedger(t *testing.T, strategy weighting.Strategy) *testLedger {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	st := state.New(db)
	authority := datagen.RandAddress()
	gate := owner.New(ownerAddr, st)
	require.NoError(t, gate.Init(authority))
	c := custody.New(custodyAddr, st)

	return &testLedger{
		Staking:   New(contractAddr, st, strategy, gate, c),
		state:     st,
		custody:   c,
		authority: authority,
	}
}

func (l *testLedger) fund(t *testing.T, account tcr.Address, amount uint64) {
	_, err := l.custody.Deposit(account, uint256.NewInt(amount))
	require.NoError(t, err)
}

func (l *testLedger) enable(t *testing.T, id tcr.TargetID) {
	_, err := l.EnableStaking(id, l.authority)
	require.NoError(t, err)
}

func u(n uint64) *uint256.Int { return uint256.NewInt(n) }

// pair asserts a (raw, weighted) query result.
func pair(t *testing.T, wantRaw, wantWeighted uint64, raw, weighted *uint256.Int, err error) {
	t.Helper()
	require.NoError(t, err)
	require.Equal(t, wantRaw, raw.Uint64(), "raw")
	require.Equal(t, wantWeighted, weighted.Uint64(), "weighted")
}
