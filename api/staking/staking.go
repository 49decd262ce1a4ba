// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/Ministry-of-Decentralization/token-curation/api/utils"
	"github.com/Ministry-of-Decentralization/token-curation/runtime"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

// Summary describes the ledger as a whole.
type Summary struct {
	TotalStaked         *hexutil.U256 `json:"totalStaked"`
	TotalWeightedStaked *hexutil.U256 `json:"totalWeightedStaked"`
	TotalCustodied      *hexutil.U256 `json:"totalCustodied"`
	Weighting           string        `json:"weighting"`
	Authority           tcr.Address   `json:"authority"`
	SupportsHistory     bool          `json:"supportsHistory"`
}

type TransferRequest struct {
	Caller *tcr.Address `json:"caller"`
	Next   *tcr.Address `json:"next"`
}

type Staking struct {
	rt *runtime.Runtime
}

func New(rt *runtime.Runtime) *Staking {
	return &Staking{rt}
}

func (s *Staking) handleGetSummary(w http.ResponseWriter, _ *http.Request) error {
	var summary Summary
	if err := s.rt.Query(func(l *runtime.Ledger) error {
		raw, weighted, err := l.Staking.TotalStaked()
		if err != nil {
			return err
		}
		custodied, err := l.Custody.TotalCustodied()
		if err != nil {
			return err
		}
		name, err := l.Staking.Weighting()
		if err != nil {
			return err
		}
		if name == "" {
			name = l.Staking.Strategy().Name()
		}
		authority, err := l.Owner.Get()
		if err != nil {
			return err
		}
		summary = Summary{
			TotalStaked:         utils.U256(raw),
			TotalWeightedStaked: utils.U256(weighted),
			TotalCustodied:      utils.U256(custodied),
			Weighting:           name,
			Authority:           authority,
			SupportsHistory:     l.Staking.SupportsHistory(),
		}
		return nil
	}); err != nil {
		return err
	}
	return utils.WriteJSON(w, &summary)
}

func (s *Staking) handleTransferAuthority(w http.ResponseWriter, req *http.Request) error {
	var body TransferRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if body.Caller == nil || body.Next == nil {
		return utils.BadRequest(errors.New("body: caller and next required"))
	}
	entries, err := s.rt.Execute(req.Context(), runtime.TransferOwnership(*body.Caller, *body.Next))
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, entries)
}

func (s *Staking) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").
		Methods(http.MethodGet).
		Name("GET /staking").
		HandlerFunc(utils.WrapHandlerFunc(s.handleGetSummary))
	sub.Path("/authority").
		Methods(http.MethodPost).
		Name("POST /staking/authority").
		HandlerFunc(utils.WrapHandlerFunc(s.handleTransferAuthority))
}
