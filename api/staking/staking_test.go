// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ministry-of-Decentralization/token-curation/api/staking"
	"github.com/Ministry-of-Decentralization/token-curation/genesis"
	"github.com/Ministry-of-Decentralization/token-curation/runtime"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
	"github.com/Ministry-of-Decentralization/token-curation/test/testledger"
)

func summary(t *testing.T, ts *httptest.Server) *staking.Summary {
	res, err := http.Get(ts.URL + "/staking")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var s staking.Summary
	require.NoError(t, json.NewDecoder(res.Body).Decode(&s))
	return &s
}

func TestStaking(t *testing.T) {
	rt := testledger.New(t, nil)
	router := mux.NewRouter()
	staking.New(rt).Mount(router, "/staking")
	ts := httptest.NewServer(router)
	defer ts.Close()

	accs := genesis.DevAccounts()
	_, err := rt.Execute(context.Background(),
		runtime.Stake(accs[1], tcr.TargetIDFromInt(1), uint256.NewInt(9)),
		runtime.Stake(accs[2], tcr.TargetIDFromInt(2), uint256.NewInt(16)),
	)
	require.NoError(t, err)

	s := summary(t, ts)
	assert.Equal(t, uint64(25), (*uint256.Int)(s.TotalStaked).Uint64())
	assert.Equal(t, uint64(7), (*uint256.Int)(s.TotalWeightedStaked).Uint64())
	assert.Equal(t, "quadratic", s.Weighting)
	assert.Equal(t, accs[0], s.Authority)
	assert.False(t, s.SupportsHistory)

	custodied := new(uint256.Int).Mul(genesis.NewDevnet().Deposits[0].Amount.Int(), uint256.NewInt(uint64(len(accs))))
	assert.Equal(t, custodied, (*uint256.Int)(s.TotalCustodied))

	transfer := func(caller, next tcr.Address) int {
		b, _ := json.Marshal(&staking.TransferRequest{Caller: &caller, Next: &next})
		res, err := http.Post(ts.URL+"/staking/authority", "application/json", bytes.NewReader(b))
		require.NoError(t, err)
		res.Body.Close()
		return res.StatusCode
	}
	assert.Equal(t, http.StatusForbidden, transfer(accs[1], accs[1]))
	assert.Equal(t, http.StatusBadRequest, transfer(accs[0], tcr.Address{}))
	assert.Equal(t, http.StatusOK, transfer(accs[0], accs[3]))
	assert.Equal(t, accs[3], summary(t, ts).Authority)

	res, err := http.Post(ts.URL+"/staking/authority", "application/json", bytes.NewBufferString(`{}`))
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
