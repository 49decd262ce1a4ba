// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package testledger builds in-memory ledgers launched from the devnet genesis.
package testledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ministry-of-Decentralization/token-curation/genesis"
	"github.com/Ministry-of-Decentralization/token-curation/logdb"
	"github.com/Ministry-of-Decentralization/token-curation/lvldb"
	"github.com/Ministry-of-Decentralization/token-curation/runtime"
	"github.com/Ministry-of-Decentralization/token-curation/state"
)

// New returns a runtime over in-memory stores, launched from gen. A nil gen uses the devnet.
// Everything is released when the test ends.
func New(t testing.TB, gen *genesis.Genesis) *runtime.Runtime {
	t.Helper()
	if gen == nil {
		gen = genesis.NewDevnet()
	}
	strategy, err := gen.Strategy()
	require.NoError(t, err)

	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	stater, err := state.NewStater(db, 0)
	require.NoError(t, err)

	logDB, err := logdb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { logDB.Close() })

	rt := runtime.New(stater, logDB, strategy)
	t.Cleanup(rt.Close)

	_, err = rt.Execute(context.Background(), gen.Op())
	require.NoError(t, err)
	return rt
}
