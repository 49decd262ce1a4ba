// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ministry-of-Decentralization/token-curation/test/testledger"
)

func TestRoutes(t *testing.T) {
	rt := testledger.New(t, nil)
	handler, closeFn := New(rt, Options{AllowedOrigins: "https://curation.example"})
	defer closeFn()
	ts := httptest.NewServer(handler)
	defer ts.Close()

	for _, path := range []string{
		"/staking",
		"/targets/1",
		"/accounts/" + "0x0000000000000000000000000000000000000001",
	} {
		res, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		res.Body.Close()
		assert.Equal(t, http.StatusOK, res.StatusCode, path)
	}

	res, err := http.Get(ts.URL + "/blocks/best")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/staking", nil)
	req.Header.Set("Origin", "https://curation.example")
	res, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, "https://curation.example", res.Header.Get("Access-Control-Allow-Origin"))
}
