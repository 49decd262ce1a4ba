// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package targets

import (
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/Ministry-of-Decentralization/token-curation/api/utils"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

type Target struct {
	ID            tcr.TargetID  `json:"id"`
	Enabled       bool          `json:"enabled"`
	TotalRaw      *hexutil.U256 `json:"totalRaw"`
	TotalWeighted *hexutil.U256 `json:"totalWeighted"`
}

type Stake struct {
	Account  tcr.Address   `json:"account"`
	Target   tcr.TargetID  `json:"target"`
	Raw      *hexutil.U256 `json:"raw"`
	Weighted *hexutil.U256 `json:"weighted"`
}

// GateRequest carries the caller of a privileged call.
type GateRequest struct {
	Caller *tcr.Address `json:"caller"`
}

type StakeRequest struct {
	Account *tcr.Address  `json:"account"`
	Amount  *utils.Amount `json:"amount"`
}
