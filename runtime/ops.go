// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import (
	"github.com/holiman/uint256"

	"github.com/Ministry-of-Decentralization/token-curation/events"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

// Op is a named ledger operation.
type Op struct {
	Name string
	Run  func(l *Ledger) (events.Events, error)
}

// Op names, also used as metric labels.
const (
	OpEnableStaking     = "enableStaking"
	OpDisableStaking    = "disableStaking"
	OpStake             = "stake"
	OpUnstake           = "unstake"
	OpDeposit           = "deposit"
	OpWithdraw          = "withdraw"
	OpTransferOwnership = "transferOwnership"
)

func EnableStaking(id tcr.TargetID, caller tcr.Address) Op {
	return Op{OpEnableStaking, func(l *Ledger) (events.Events, error) {
		return l.Staking.EnableStaking(id, caller)
	}}
}

func DisableStaking(id tcr.TargetID, caller tcr.Address) Op {
	return Op{OpDisableStaking, func(l *Ledger) (events.Events, error) {
		return l.Staking.DisableStaking(id, caller)
	}}
}

func Stake(account tcr.Address, id tcr.TargetID, amount *uint256.Int) Op {
	return Op{OpStake, func(l *Ledger) (events.Events, error) {
		return l.Staking.Stake(account, id, amount)
	}}
}

func Unstake(account tcr.Address, id tcr.TargetID, amount *uint256.Int) Op {
	return Op{OpUnstake, func(l *Ledger) (events.Events, error) {
		return l.Staking.Unstake(account, id, amount)
	}}
}

// Deposit credits custody, standing in for the token receipt hook.
func Deposit(account tcr.Address, amount *uint256.Int) Op {
	return Op{OpDeposit, func(l *Ledger) (events.Events, error) {
		return l.Custody.Deposit(account, amount)
	}}
}

func Withdraw(account tcr.Address, amount *uint256.Int) Op {
	return Op{OpWithdraw, func(l *Ledger) (events.Events, error) {
		return l.Custody.Withdraw(account, amount)
	}}
}

func TransferOwnership(caller, next tcr.Address) Op {
	return Op{OpTransferOwnership, func(l *Ledger) (events.Events, error) {
		return l.Owner.Transfer(caller, next)
	}}
}
