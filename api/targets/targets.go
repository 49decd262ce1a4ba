// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package targets

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/Ministry-of-Decentralization/token-curation/api/utils"
	"github.com/Ministry-of-Decentralization/token-curation/runtime"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

type Targets struct {
	rt *runtime.Runtime
}

func New(rt *runtime.Runtime) *Targets {
	return &Targets{rt}
}

func (t *Targets) handleGetTarget(w http.ResponseWriter, req *http.Request) error {
	id, err := utils.ParseTargetID(mux.Vars(req)["id"])
	if err != nil {
		return err
	}
	var target *Target
	if err := t.rt.Query(func(l *runtime.Ledger) error {
		v, err := l.Staking.GetTarget(id)
		if err != nil {
			return err
		}
		target = &Target{
			ID:            v.ID,
			Enabled:       v.Enabled,
			TotalRaw:      utils.U256(v.TotalRaw),
			TotalWeighted: utils.U256(v.TotalWeighted),
		}
		return nil
	}); err != nil {
		return err
	}
	return utils.WriteJSON(w, target)
}

func (t *Targets) handleGetStake(w http.ResponseWriter, req *http.Request) error {
	id, err := utils.ParseTargetID(mux.Vars(req)["id"])
	if err != nil {
		return err
	}
	account, err := utils.ParseAddress(mux.Vars(req)["account"], "account")
	if err != nil {
		return err
	}
	stake := &Stake{Account: account, Target: id}
	if err := t.rt.Query(func(l *runtime.Ledger) error {
		raw, weighted, err := l.Staking.StakeOf(account, id)
		if err != nil {
			return err
		}
		stake.Raw, stake.Weighted = utils.U256(raw), utils.U256(weighted)
		return nil
	}); err != nil {
		return err
	}
	return utils.WriteJSON(w, stake)
}

func (t *Targets) gated(build func(id tcr.TargetID, caller tcr.Address) runtime.Op) utils.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) error {
		id, err := utils.ParseTargetID(mux.Vars(req)["id"])
		if err != nil {
			return err
		}
		var body GateRequest
		if err := utils.ParseJSON(req.Body, &body); err != nil {
			return utils.BadRequest(errors.WithMessage(err, "body"))
		}
		if body.Caller == nil {
			return utils.BadRequest(errors.New("body: caller required"))
		}
		entries, err := t.rt.Execute(req.Context(), build(id, *body.Caller))
		if err != nil {
			return err
		}
		return utils.WriteJSON(w, entries)
	}
}

func (t *Targets) staking(build func(account tcr.Address, id tcr.TargetID, amount *utils.Amount) runtime.Op) utils.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) error {
		id, err := utils.ParseTargetID(mux.Vars(req)["id"])
		if err != nil {
			return err
		}
		var body StakeRequest
		if err := utils.ParseJSON(req.Body, &body); err != nil {
			return utils.BadRequest(errors.WithMessage(err, "body"))
		}
		if body.Account == nil {
			return utils.BadRequest(errors.New("body: account required"))
		}
		entries, err := t.rt.Execute(req.Context(), build(*body.Account, id, body.Amount))
		if err != nil {
			return err
		}
		return utils.WriteJSON(w, entries)
	}
}

func (t *Targets) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/{id}").
		Methods(http.MethodGet).
		Name("GET /targets/{id}").
		HandlerFunc(utils.WrapHandlerFunc(t.handleGetTarget))
	sub.Path("/{id}/stakes/{account}").
		Methods(http.MethodGet).
		Name("GET /targets/{id}/stakes/{account}").
		HandlerFunc(utils.WrapHandlerFunc(t.handleGetStake))
	sub.Path("/{id}/enable").
		Methods(http.MethodPost).
		Name("POST /targets/{id}/enable").
		HandlerFunc(utils.WrapHandlerFunc(t.gated(runtime.EnableStaking)))
	sub.Path("/{id}/disable").
		Methods(http.MethodPost).
		Name("POST /targets/{id}/disable").
		HandlerFunc(utils.WrapHandlerFunc(t.gated(runtime.DisableStaking)))
	sub.Path("/{id}/stake").
		Methods(http.MethodPost).
		Name("POST /targets/{id}/stake").
		HandlerFunc(utils.WrapHandlerFunc(t.staking(func(account tcr.Address, id tcr.TargetID, amount *utils.Amount) runtime.Op {
			return runtime.Stake(account, id, amount.Int())
		})))
	sub.Path("/{id}/unstake").
		Methods(http.MethodPost).
		Name("POST /targets/{id}/unstake").
		HandlerFunc(utils.WrapHandlerFunc(t.staking(func(account tcr.Address, id tcr.TargetID, amount *utils.Amount) runtime.Op {
			return runtime.Unstake(account, id, amount.Int())
		})))
}
