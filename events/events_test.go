// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

func TestNames(t *testing.T) {
	id := tcr.TargetIDFromInt(7)
	evs := Events{
		&StakingEnabled{ID: id},
		&Staked{Data: id},
		&WeightedStaked{Data: id},
	}
	assert.Equal(t, []string{StakingEnabledName, StakedName, WeightedStakedName}, evs.Names())
	assert.Empty(t, Events(nil).Names())
}

func TestTopics(t *testing.T) {
	acc := tcr.BytesToAddress([]byte("acc"))
	id := tcr.TargetIDFromInt(284)

	topics := (&Unstaked{Account: acc, Data: id}).Topics()
	assert.Equal(t, acc, *topics.Account)
	assert.Equal(t, id, *topics.Target)

	topics = (&Deposited{Account: acc}).Topics()
	assert.Nil(t, topics.Target)

	topics = (&StakingDisabled{ID: id}).Topics()
	assert.Nil(t, topics.Account)
}

func TestEntryJSON(t *testing.T) {
	acc := tcr.BytesToAddress([]byte("acc"))
	id := tcr.TargetIDFromInt(284)
	entry := &Entry{
		Seq:  12,
		Time: 1700000000,
		Event: &WeightedStaked{
			Account:        acc,
			Amount:         uint256.NewInt(100),
			WeightedAmount: uint256.NewInt(10),
			Total:          uint256.NewInt(100),
			WeightedTotal:  uint256.NewInt(10),
			Data:           id,
		},
	}

	b, err := json.Marshal(entry)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, WeightedStakedName, raw["name"])
	assert.Equal(t, float64(12), raw["seq"])
	assert.Equal(t, acc.String(), raw["account"])
	assert.Equal(t, id.String(), raw["target"])
	assert.Contains(t, raw["data"], "weightedAmount")

	var decoded Entry
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, entry, &decoded)
}

func TestEntryJSONOmitsMissingTopics(t *testing.T) {
	b, err := json.Marshal(&Entry{Seq: 1, Event: &StakingEnabled{ID: tcr.TargetIDFromInt(1)}})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.NotContains(t, raw, "account")
	assert.Contains(t, raw, "target")
}

func TestDecode(t *testing.T) {
	ev, err := Decode(OwnershipTransferredName, []byte(`{"previous":"0x0000000000000000000000000000000000000001","next":"0x0000000000000000000000000000000000000002"}`))
	require.NoError(t, err)
	transfer, ok := ev.(*OwnershipTransferred)
	require.True(t, ok)
	assert.Equal(t, tcr.BytesToAddress([]byte{2}), transfer.Next)

	_, err = Decode("Minted", []byte(`{}`))
	assert.ErrorContains(t, err, "unknown event")

	_, err = Decode(StakedName, []byte(`{"amount":`))
	assert.Error(t, err)

	assert.True(t, IsKnown(StakedName))
	assert.False(t, IsKnown("Minted"))
}

func TestFeed(t *testing.T) {
	var feed Feed

	assert.Equal(t, 0, feed.Send([]*Entry{{Seq: 1, Event: &StakingEnabled{}}}))

	ch := make(chan []*Entry, 1)
	sub := feed.Subscribe(ch)

	batch := []*Entry{{Seq: 2, Event: &StakingEnabled{}}, {Seq: 3, Event: &StakingDisabled{}}}
	assert.Equal(t, 1, feed.Send(batch))
	assert.Equal(t, 0, feed.Send(nil))

	select {
	case got := <-ch:
		assert.Equal(t, batch, got)
	case <-time.After(time.Second):
		t.Fatal("no entries received")
	}

	feed.Close()
	select {
	case _, ok := <-sub.Err():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscription not closed")
	}
}
