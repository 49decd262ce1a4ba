// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ministry-of-Decentralization/token-curation/lvldb"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

func newStater(t *testing.T) (*Stater, *lvldb.LevelDB) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	stater, err := NewStater(db, 0)
	require.NoError(t, err)
	return stater, db
}

func TestStateReadWrite(t *testing.T) {
	stater, _ := newStater(t)
	st := stater.NewState()

	addr := tcr.BytesToAddress([]byte("account1"))
	key := tcr.BytesToBytes32([]byte("key"))
	value := tcr.BytesToBytes32([]byte("value"))

	v, err := st.GetStorage(addr, key)
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	st.SetStorage(addr, key, value)
	v, err = st.GetStorage(addr, key)
	require.NoError(t, err)
	assert.Equal(t, value, v)

	st.SetStorage(addr, key, tcr.Bytes32{})
	raw, err := st.GetRawStorage(addr, key)
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestStateRevert(t *testing.T) {
	stater, _ := newStater(t)
	st := stater.NewState()

	addr := tcr.BytesToAddress([]byte("account1"))
	key := tcr.BytesToBytes32([]byte("key"))

	tests := []struct {
		value tcr.Bytes32
	}{
		{tcr.BytesToBytes32([]byte("v1"))},
		{tcr.BytesToBytes32([]byte("v2"))},
		{tcr.BytesToBytes32([]byte("v3"))},
	}

	var revisions []int
	for _, tt := range tests {
		revisions = append(revisions, st.NewCheckpoint())
		st.SetStorage(addr, key, tt.value)
	}

	for i := len(tests) - 1; i >= 0; i-- {
		v, err := st.GetStorage(addr, key)
		require.NoError(t, err)
		assert.Equal(t, tests[i].value, v)
		st.RevertTo(revisions[i])
	}

	v, err := st.GetStorage(addr, key)
	require.NoError(t, err)
	assert.True(t, v.IsZero(), "reverted to initial value")
	assert.Equal(t, 0, st.Stage().Len())
}

func TestStageCommit(t *testing.T) {
	stater, db := newStater(t)
	st := stater.NewState()

	addr := tcr.BytesToAddress([]byte("account1"))
	k1 := tcr.BytesToBytes32([]byte("k1"))
	k2 := tcr.BytesToBytes32([]byte("k2"))

	st.SetStorage(addr, k1, tcr.BytesToBytes32([]byte{1}))
	st.SetStorage(addr, k2, tcr.BytesToBytes32([]byte{2}))
	// repeated writes to the same slot yield a single change
	st.SetStorage(addr, k2, tcr.BytesToBytes32([]byte{3}))

	stage := st.Stage()
	assert.Equal(t, 2, stage.Len())
	assert.Equal(t, stage.Hash(), st.Stage().Hash(), "hash is deterministic")
	require.NoError(t, stage.Commit())

	// a state built on a fresh stater reads from the store
	other, err := NewStater(db, 0)
	require.NoError(t, err)
	v, err := other.NewState().GetStorage(addr, k2)
	require.NoError(t, err)
	assert.Equal(t, tcr.BytesToBytes32([]byte{3}), v)

	// clearing a slot deletes the key
	st = stater.NewState()
	st.SetStorage(addr, k1, tcr.Bytes32{})
	require.NoError(t, st.Stage().Commit())

	other, err = NewStater(db, 0)
	require.NoError(t, err)
	v, err = other.NewState().GetStorage(addr, k1)
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	hit, _ := stater.CacheStats()
	assert.Zero(t, hit)
	_, err = stater.NewState().GetStorage(addr, k2)
	require.NoError(t, err)
	hit, _ = stater.CacheStats()
	assert.Equal(t, int64(1), hit, "committed slots are served from cache")
}

func TestEncodeDecodeStorage(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()
	st := New(db)

	type record struct {
		Amount uint64
		Name   string
	}
	addr := tcr.BytesToAddress([]byte("contract"))
	key := tcr.BytesToBytes32([]byte("record"))

	require.NoError(t, st.EncodeStorage(addr, key, func() ([]byte, error) {
		return rlp.EncodeToBytes(&record{Amount: 124, Name: "x"})
	}))

	var got record
	require.NoError(t, st.DecodeStorage(addr, key, func(raw []byte) error {
		return rlp.DecodeBytes(raw, &got)
	}))
	assert.Equal(t, record{Amount: 124, Name: "x"}, got)

	// rlp lists are summarized by their hash
	raw, err := st.GetRawStorage(addr, key)
	require.NoError(t, err)
	h, err := st.GetStorage(addr, key)
	require.NoError(t, err)
	assert.Equal(t, tcr.Blake2b(raw), h)

	err = st.DecodeStorage(addr, key, func([]byte) error { return assert.AnError })
	var stErr *Error
	require.ErrorAs(t, err, &stErr)
	assert.ErrorIs(t, err, assert.AnError)
}
