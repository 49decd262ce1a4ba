// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/Ministry-of-Decentralization/token-curation/cache"
	"github.com/Ministry-of-Decentralization/token-curation/kv"
)

// DefaultCacheSize is the number of committed slots kept in memory.
const DefaultCacheSize = 16384

// Stater is the state creator. States created by the same stater share
// the committed slot cache.
type Stater struct {
	store kv.Store
	cache *cache.LRU[storageKey, rlp.RawValue]
}

// NewStater create a new stater over the given store.
func NewStater(store kv.Store, cacheSize int) (*Stater, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	c, err := cache.NewLRU[storageKey, rlp.RawValue](cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "create storage cache")
	}
	return &Stater{store: StorageBucket.NewStore(store), cache: c}, nil
}

// NewState create a new state object reading the latest committed slots.
func (s *Stater) NewState() *State {
	return newState(s.store, s.cache)
}

// CacheStats returns hit and miss counts of the slot cache.
func (s *Stater) CacheStats() (hit, miss int64) {
	return s.cache.Stats()
}
