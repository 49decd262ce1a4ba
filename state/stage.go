// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"bytes"
	"sort"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/Ministry-of-Decentralization/token-curation/cache"
	"github.com/Ministry-of-Decentralization/token-curation/kv"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

// Stage abstracts changes on the storage.
type Stage struct {
	store   kv.Store
	cache   *cache.LRU[storageKey, rlp.RawValue]
	keys    []storageKey
	changes map[storageKey]rlp.RawValue
}

func newStage(store kv.Store, c *cache.LRU[storageKey, rlp.RawValue], changes map[storageKey]rlp.RawValue) *Stage {
	keys := make([]storageKey, 0, len(changes))
	for k := range changes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i].dbKey(), keys[j].dbKey()) < 0
	})
	return &Stage{store: store, cache: c, keys: keys, changes: changes}
}

// Len returns the count of changed slots.
func (s *Stage) Len() int {
	return len(s.keys)
}

// Hash computes the digest of all changes, in key order.
func (s *Stage) Hash() tcr.Bytes32 {
	hasher := tcr.NewBlake2b()
	for _, k := range s.keys {
		hasher.Write(k.dbKey())
		hasher.Write(s.changes[k])
	}
	var h tcr.Bytes32
	hasher.Sum(h[:0])
	return h
}

// Commit writes all changes into the store in a single batch.
func (s *Stage) Commit() error {
	if len(s.keys) == 0 {
		return nil
	}
	bulk := s.store.Bulk()
	for _, k := range s.keys {
		v := s.changes[k]
		var err error
		if len(v) == 0 {
			err = bulk.Delete(k.dbKey())
		} else {
			err = bulk.Put(k.dbKey(), v)
		}
		if err != nil {
			return errors.Wrap(err, "stage storage")
		}
	}
	if err := bulk.Write(); err != nil {
		return errors.Wrap(err, "commit storage")
	}
	metricStorageCounter().AddWithLabel(int64(len(s.keys)), map[string]string{"type": "write", "source": "db"})

	if s.cache != nil {
		for _, k := range s.keys {
			s.cache.Add(k, s.changes[k])
		}
	}
	return nil
}
