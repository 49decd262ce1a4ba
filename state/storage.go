// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"github.com/Ministry-of-Decentralization/token-curation/kv"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

// StorageBucket is the kv bucket all storage slots are kept under.
const StorageBucket = kv.Bucket("s")

type storageKey struct {
	addr tcr.Address
	key  tcr.Bytes32
}

// dbKey returns addr(20) + key(32).
func (k storageKey) dbKey() []byte {
	b := make([]byte, 0, len(k.addr)+len(k.key))
	b = append(b, k.addr[:]...)
	return append(b, k.key[:]...)
}
