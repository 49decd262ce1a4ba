// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tcr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("0x7567d83b7b8d80addcb281a71d54fc7b3364ffed")
	assert.NoError(t, err)
	assert.Equal(t, "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed", addr.String())

	addr2, err := ParseAddress("7567d83b7b8d80addcb281a71d54fc7b3364ffed")
	assert.NoError(t, err)
	assert.Equal(t, addr, addr2)

	_, err = ParseAddress("1x7567d83b7b8d80addcb281a71d54fc7b3364ffed")
	assert.EqualError(t, err, "invalid prefix")
	_, err = ParseAddress("0x1234")
	assert.EqualError(t, err, "invalid length")
	_, err = ParseAddress("0xzz67d83b7b8d80addcb281a71d54fc7b3364ffed")
	assert.Error(t, err)

	assert.True(t, Address{}.IsZero())
	assert.False(t, addr.IsZero())
}

func TestAddressJSON(t *testing.T) {
	addr := BytesToAddress([]byte("owner"))
	data, err := json.Marshal(&addr)
	assert.NoError(t, err)

	var decoded Address
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, addr, decoded)

	m := map[Address]int{addr: 1}
	data, err = json.Marshal(m)
	assert.NoError(t, err)
	var decodedMap map[Address]int
	assert.NoError(t, json.Unmarshal(data, &decodedMap))
	assert.Equal(t, 1, decodedMap[addr])
}

func TestBlake2b(t *testing.T) {
	a := Blake2b([]byte("a"), []byte("b"))
	b := Blake2b([]byte("ab"))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, Blake2b([]byte("ba")))
}
