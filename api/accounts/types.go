// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package accounts

import (
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/Ministry-of-Decentralization/token-curation/api/utils"
)

// Account is the custody and staking summary of an address.
type Account struct {
	Balance        *hexutil.U256 `json:"balance"`
	Reserved       *hexutil.U256 `json:"reserved"`
	Free           *hexutil.U256 `json:"free"`
	Staked         *hexutil.U256 `json:"staked"`
	WeightedStaked *hexutil.U256 `json:"weightedStaked"`
}

type AmountRequest struct {
	Amount *utils.Amount `json:"amount"`
}
