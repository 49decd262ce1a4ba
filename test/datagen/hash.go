// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package datagen

import (
	"crypto/rand"

	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

func RandomHash() tcr.Bytes32 {
	var b32 tcr.Bytes32

	rand.Read(b32[:])
	return b32
}

func RandAddress() tcr.Address {
	var addr tcr.Address

	rand.Read(addr[:])
	return addr
}

func RandTargetID() tcr.TargetID {
	return tcr.TargetID(RandomHash())
}
