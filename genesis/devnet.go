// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"strconv"
	"sync"

	"github.com/holiman/uint256"

	"github.com/Ministry-of-Decentralization/token-curation/builtin/weighting"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

const devAccountCount = 10

// DevAccounts returns pre-funded accounts for development mode. The first one is the authority.
var DevAccounts = sync.OnceValue(func() []tcr.Address {
	accs := make([]tcr.Address, 0, devAccountCount)
	for i := range devAccountCount {
		h := tcr.Blake2b([]byte("dev-account"), []byte(strconv.Itoa(i)))
		accs = append(accs, tcr.BytesToAddress(h[12:]))
	}
	return accs
})

// devBalance is 1e24, one million tokens of 18 decimals.
var devBalance = new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(24))

// NewDevnet create genesis for development mode.
func NewDevnet() *Genesis {
	accs := DevAccounts()
	gen := &Genesis{
		Authority: accs[0],
		Weighting: weighting.QuadraticName,
	}
	for i := uint64(1); i <= 3; i++ {
		gen.Targets = append(gen.Targets, tcr.TargetIDFromInt(i))
	}
	for _, acc := range accs {
		gen.Deposits = append(gen.Deposits, Deposit{Account: acc, Amount: NewAmount(devBalance)})
	}
	return gen
}
