// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/Ministry-of-Decentralization/token-curation/cache"
	"github.com/Ministry-of-Decentralization/token-curation/kv"
	"github.com/Ministry-of-Decentralization/token-curation/stackedmap"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

// Error is the error caused by state access failure.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("state: %v", e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// State is a revertable view of the contract storage.
// It is not safe for concurrent use.
type State struct {
	store kv.Store
	cache *cache.LRU[storageKey, rlp.RawValue]
	sm    *stackedmap.StackedMap[storageKey, rlp.RawValue]
}

func newState(store kv.Store, c *cache.LRU[storageKey, rlp.RawValue]) *State {
	s := &State{store: store, cache: c}
	s.sm = stackedmap.New(s.load)
	return s
}

// New create a state object over a store without cache. Mostly used in tests.
func New(store kv.Store) *State {
	return newState(StorageBucket.NewStore(store), nil)
}

// load implements stackedmap.MapGetter.
func (s *State) load(key storageKey) (rlp.RawValue, bool, error) {
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			metricStorageCounter().AddWithLabel(1, map[string]string{"type": "read", "source": "cache"})
			return v, true, nil
		}
	}
	v, err := s.store.Get(key.dbKey())
	if err != nil {
		if !s.store.IsNotFound(err) {
			return nil, false, err
		}
		v = nil
	}
	metricStorageCounter().AddWithLabel(1, map[string]string{"type": "read", "source": "db"})
	if s.cache != nil {
		s.cache.Add(key, v)
	}
	return v, true, nil
}

// GetStorage returns storage value for the given address and key.
func (s *State) GetStorage(addr tcr.Address, key tcr.Bytes32) (tcr.Bytes32, error) {
	raw, err := s.GetRawStorage(addr, key)
	if err != nil {
		return tcr.Bytes32{}, err
	}
	if len(raw) == 0 {
		return tcr.Bytes32{}, nil
	}
	kind, content, _, err := rlp.Split(raw)
	if err != nil {
		return tcr.Bytes32{}, &Error{err}
	}
	if kind == rlp.List {
		// customized storage value, return hash of raw data
		return tcr.Blake2b(raw), nil
	}
	return tcr.BytesToBytes32(content), nil
}

// SetStorage set storage value for the given address and key.
func (s *State) SetStorage(addr tcr.Address, key, value tcr.Bytes32) {
	if value.IsZero() {
		s.SetRawStorage(addr, key, nil)
		return
	}
	v, _ := rlp.EncodeToBytes(bytes.TrimLeft(value[:], "\x00"))
	s.SetRawStorage(addr, key, v)
}

// GetRawStorage returns storage value in rlp raw for given address and key.
func (s *State) GetRawStorage(addr tcr.Address, key tcr.Bytes32) (rlp.RawValue, error) {
	data, _, err := s.sm.Get(storageKey{addr, key})
	if err != nil {
		return nil, &Error{err}
	}
	return data, nil
}

// SetRawStorage set storage value in rlp raw.
func (s *State) SetRawStorage(addr tcr.Address, key tcr.Bytes32, raw rlp.RawValue) {
	s.sm.Put(storageKey{addr, key}, raw)
}

// EncodeStorage set storage value encoded by given enc method.
// Error returned by enc will be absorbed by State instance.
func (s *State) EncodeStorage(addr tcr.Address, key tcr.Bytes32, enc func() ([]byte, error)) error {
	raw, err := enc()
	if err != nil {
		return &Error{err}
	}
	s.SetRawStorage(addr, key, raw)
	return nil
}

// DecodeStorage get and decode storage value.
// Error returned by dec will be absorbed by State instance.
func (s *State) DecodeStorage(addr tcr.Address, key tcr.Bytes32, dec func([]byte) error) error {
	raw, err := s.GetRawStorage(addr, key)
	if err != nil {
		return err
	}
	if err := dec(raw); err != nil {
		return &Error{err}
	}
	return nil
}

// NewCheckpoint makes a checkpoint of current state.
// It returns revision of the checkpoint.
func (s *State) NewCheckpoint() int {
	return s.sm.Push()
}

// RevertTo revert to checkpoint specified by revision.
func (s *State) RevertTo(revision int) {
	s.sm.PopTo(revision)
}

// Stage makes a stage object to commit changes.
func (s *State) Stage() *Stage {
	changes := make(map[storageKey]rlp.RawValue)
	s.sm.Journal(func(k storageKey, v rlp.RawValue) bool {
		changes[k] = v
		return true
	})
	return newStage(s.store, s.cache, changes)
}
