// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ministry-of-Decentralization/token-curation/events"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
	"github.com/Ministry-of-Decentralization/token-curation/test/datagen"
)

func newTestDB(t *testing.T) *LogDB {
	db, err := NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func staked(account tcr.Address, target tcr.TargetID, amount uint64) events.Events {
	return events.Events{
		&events.Staked{Account: account, Amount: uint256.NewInt(amount), Total: uint256.NewInt(amount), Data: target},
		&events.WeightedStaked{
			Account:        account,
			Amount:         uint256.NewInt(amount),
			WeightedAmount: uint256.NewInt(amount),
			Total:          uint256.NewInt(amount),
			WeightedTotal:  uint256.NewInt(amount),
			Data:           target,
		},
	}
}

func write(t *testing.T, db *LogDB, time uint64, evs events.Events) []*events.Entry {
	w := db.NewWriter()
	entries, err := w.Write(time, evs)
	require.NoError(t, err)
	require.NoError(t, w.Commit())
	return entries
}

func TestWriterAssignsSequence(t *testing.T) {
	db := newTestDB(t)

	last, err := db.LastSeq()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), last)

	acc := datagen.RandAddress()
	id := tcr.TargetIDFromInt(284)

	first := write(t, db, 10, staked(acc, id, 5))
	second := write(t, db, 11, events.Events{&events.StakingDisabled{ID: id}})

	require.Len(t, first, 2)
	assert.Equal(t, uint64(1), first[0].Seq)
	assert.Equal(t, uint64(2), first[1].Seq)
	assert.Equal(t, uint64(3), second[0].Seq)
	assert.Equal(t, uint64(11), second[0].Time)

	last, err = db.LastSeq()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), last)

	all, err := db.FilterEvents(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, append(first, second...), all)
}

func TestWriterRollback(t *testing.T) {
	db := newTestDB(t)

	w := db.NewWriter()
	_, err := w.Write(1, staked(datagen.RandAddress(), datagen.RandTargetID(), 1))
	require.NoError(t, err)
	assert.Equal(t, 2, w.UncommittedCount())
	require.NoError(t, w.Rollback())
	assert.Equal(t, 0, w.UncommittedCount())

	last, err := db.LastSeq()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), last)

	entries := write(t, db, 2, events.Events{&events.StakingEnabled{ID: datagen.RandTargetID()}})
	assert.Equal(t, uint64(1), entries[0].Seq)
}

func TestEmptyWrite(t *testing.T) {
	db := newTestDB(t)
	w := db.NewWriter()
	entries, err := w.Write(1, nil)
	assert.NoError(t, err)
	assert.Nil(t, entries)
	assert.NoError(t, w.Commit())
}

func TestFilterEvents(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	alice, bob := datagen.RandAddress(), datagen.RandAddress()
	t1, t2 := tcr.TargetIDFromInt(1), tcr.TargetIDFromInt(2)

	write(t, db, 1, events.Events{&events.StakingEnabled{ID: t1}, &events.StakingEnabled{ID: t2}}) // 1, 2
	write(t, db, 2, staked(alice, t1, 10))                                                         // 3, 4
	write(t, db, 3, staked(bob, t1, 20))                                                           // 5, 6
	write(t, db, 4, staked(alice, t2, 30))                                                         // 7, 8
	write(t, db, 5, events.Events{&events.Deposited{
		Account: bob, Amount: uint256.NewInt(1), Balance: uint256.NewInt(1),
	}}) // 9

	seqs := func(entries []*events.Entry) []uint64 {
		out := make([]uint64, 0, len(entries))
		for _, e := range entries {
			out = append(out, e.Seq)
		}
		return out
	}

	tests := []struct {
		name   string
		filter *EventFilter
		want   []uint64
	}{
		{"by name", &EventFilter{CriteriaSet: []*EventCriteria{{Name: events.StakedName}}}, []uint64{3, 5, 7}},
		{"by account", &EventFilter{CriteriaSet: []*EventCriteria{{Account: &bob}}}, []uint64{5, 6, 9}},
		{"by target", &EventFilter{CriteriaSet: []*EventCriteria{{Target: &t2}}}, []uint64{2, 7, 8}},
		{"name and account", &EventFilter{CriteriaSet: []*EventCriteria{{Name: events.WeightedStakedName, Account: &alice}}}, []uint64{4, 8}},
		{"any criteria", &EventFilter{CriteriaSet: []*EventCriteria{
			{Name: events.DepositedName},
			{Name: events.StakingEnabledName, Target: &t1},
		}}, []uint64{1, 9}},
		{"any criteria in range", &EventFilter{
			CriteriaSet: []*EventCriteria{{Account: &alice}, {Account: &bob}},
			Range:       &Range{From: 4, To: 7},
		}, []uint64{4, 5, 6, 7}},
		{"open range", &EventFilter{Range: &Range{From: 8}}, []uint64{8, 9}},
		{"desc with limit", &EventFilter{Order: DESC, Options: &Options{Limit: 3}}, []uint64{9, 8, 7}},
		{"offset", &EventFilter{Options: &Options{Offset: 7, Limit: 10}}, []uint64{8, 9}},
		{"no match", &EventFilter{CriteriaSet: []*EventCriteria{{Name: events.WithdrawnName}}}, []uint64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := db.FilterEvents(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, seqs(got))
		})
	}
}

func TestFilterDecodesEvents(t *testing.T) {
	db := newTestDB(t)
	acc := datagen.RandAddress()
	id := datagen.RandTargetID()
	evs := staked(acc, id, 42)
	write(t, db, 7, evs)

	got, err := db.FilterEvents(context.Background(), &EventFilter{CriteriaSet: []*EventCriteria{{Account: &acc}}})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, evs[0], got[0].Event)
	assert.Equal(t, evs[1], got[1].Event)
}

func TestFilterCancelled(t *testing.T) {
	db := newTestDB(t)
	write(t, db, 1, staked(datagen.RandAddress(), datagen.RandTargetID(), 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := db.FilterEvents(ctx, &EventFilter{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.db")
	db, err := New(path)
	require.NoError(t, err)
	write(t, db, 1, staked(datagen.RandAddress(), datagen.RandTargetID(), 1))
	assert.Equal(t, path, db.Path())
	require.NoError(t, db.Close())

	db, err = New(path)
	require.NoError(t, err)
	defer db.Close()
	last, err := db.LastSeq()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), last)

	entries := write(t, db, 2, events.Events{&events.StakingEnabled{ID: datagen.RandTargetID()}})
	assert.Equal(t, uint64(3), entries[0].Seq)
}
