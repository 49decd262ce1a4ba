// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package accounts

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/Ministry-of-Decentralization/token-curation/api/utils"
	"github.com/Ministry-of-Decentralization/token-curation/runtime"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

type Accounts struct {
	rt *runtime.Runtime
}

func New(rt *runtime.Runtime) *Accounts {
	return &Accounts{rt}
}

func (a *Accounts) getAccount(addr tcr.Address) (*Account, error) {
	var acc *Account
	err := a.rt.Query(func(l *runtime.Ledger) error {
		balance, err := l.Custody.BalanceOf(addr)
		if err != nil {
			return err
		}
		reserved, err := l.Custody.ReservedOf(addr)
		if err != nil {
			return err
		}
		raw, weighted, err := l.Staking.TotalStakedFor(addr)
		if err != nil {
			return err
		}
		acc = &Account{
			Balance:        utils.U256(balance),
			Reserved:       utils.U256(reserved),
			Free:           utils.U256(new(uint256.Int).Sub(balance, reserved)),
			Staked:         utils.U256(raw),
			WeightedStaked: utils.U256(weighted),
		}
		return nil
	})
	return acc, err
}

func (a *Accounts) handleGetAccount(w http.ResponseWriter, req *http.Request) error {
	addr, err := utils.ParseAddress(mux.Vars(req)["address"], "address")
	if err != nil {
		return err
	}
	acc, err := a.getAccount(addr)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, acc)
}

func (a *Accounts) custody(build func(tcr.Address, *uint256.Int) runtime.Op) utils.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) error {
		addr, err := utils.ParseAddress(mux.Vars(req)["address"], "address")
		if err != nil {
			return err
		}
		var body AmountRequest
		if err := utils.ParseJSON(req.Body, &body); err != nil {
			return utils.BadRequest(errors.WithMessage(err, "body"))
		}
		entries, err := a.rt.Execute(req.Context(), build(addr, body.Amount.Int()))
		if err != nil {
			return err
		}
		return utils.WriteJSON(w, entries)
	}
}

func (a *Accounts) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/{address}").
		Methods(http.MethodGet).
		Name("GET /accounts/{address}").
		HandlerFunc(utils.WrapHandlerFunc(a.handleGetAccount))
	sub.Path("/{address}/deposit").
		Methods(http.MethodPost).
		Name("POST /accounts/{address}/deposit").
		HandlerFunc(utils.WrapHandlerFunc(a.custody(runtime.Deposit)))
	sub.Path("/{address}/withdraw").
		Methods(http.MethodPost).
		Name("POST /accounts/{address}/withdraw").
		HandlerFunc(utils.WrapHandlerFunc(a.custody(runtime.Withdraw)))
}
