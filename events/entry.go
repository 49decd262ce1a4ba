// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package events

import (
	"encoding/json"

	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

// Entry is a committed event with its position in the event log.
type Entry struct {
	Seq   uint64
	Time  uint64
	Event Event
}

type entryJSON struct {
	Seq     uint64          `json:"seq"`
	Time    uint64          `json:"time"`
	Name    string          `json:"name"`
	Account *tcr.Address    `json:"account,omitempty"`
	Target  *tcr.TargetID   `json:"target,omitempty"`
	Data    json.RawMessage `json:"data"`
}

func (e *Entry) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(e.Event)
	if err != nil {
		return nil, err
	}
	topics := e.Event.Topics()
	return json.Marshal(&entryJSON{
		Seq:     e.Seq,
		Time:    e.Time,
		Name:    e.Event.Name(),
		Account: topics.Account,
		Target:  topics.Target,
		Data:    data,
	})
}

func (e *Entry) UnmarshalJSON(b []byte) error {
	var v entryJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	ev, err := Decode(v.Name, v.Data)
	if err != nil {
		return err
	}
	*e = Entry{Seq: v.Seq, Time: v.Time, Event: ev}
	return nil
}
