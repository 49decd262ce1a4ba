// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package custody keeps the credit balances accounts stake from.
//
// Staked funds stay custodied but are reserved: free balance is the balance
// minus the reserved part, and only free balance can be withdrawn or reserved.
package custody

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/Ministry-of-Decentralization/token-curation/builtin/reverts"
	"github.com/Ministry-of-Decentralization/token-curation/builtin/solidity"
	"github.com/Ministry-of-Decentralization/token-curation/events"
	"github.com/Ministry-of-Decentralization/token-curation/log"
	"github.com/Ministry-of-Decentralization/token-curation/state"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

var (
	logger       = log.WithContext("pkg", "custody")
	slotAccounts = tcr.BytesToBytes32([]byte("accounts"))
	slotTotal    = tcr.BytesToBytes32([]byte("total-custodied"))
)

type account struct {
	Balance  *uint256.Int
	Reserved *uint256.Int
}

func (a *account) free() *uint256.Int {
	return new(uint256.Int).Sub(a.Balance, a.Reserved)
}

// Custody implements the custody ledger.
type Custody struct {
	accounts *solidity.Mapping[tcr.Address, *account]
	total    *solidity.Uint256
}

// New create a new instance.
func New(addr tcr.Address, state *state.State) *Custody {
	sctx := solidity.NewContext(addr, state)
	return &Custody{
		accounts: solidity.NewMapping[tcr.Address, *account](sctx, slotAccounts),
		total:    solidity.NewUint256(sctx, slotTotal),
	}
}

func (c *Custody) getAccount(addr tcr.Address) (*account, error) {
	acc, err := c.accounts.Get(addr)
	if err != nil {
		return nil, errors.Wrap(err, "load custody account")
	}
	if acc == nil {
		acc = &account{}
	}
	if acc.Balance == nil {
		acc.Balance = new(uint256.Int)
	}
	if acc.Reserved == nil {
		acc.Reserved = new(uint256.Int)
	}
	return acc, nil
}

func (c *Custody) setAccount(addr tcr.Address, acc *account) error {
	if acc.Balance.IsZero() && acc.Reserved.IsZero() {
		c.accounts.Clear(addr)
		return nil
	}
	return c.accounts.Set(addr, acc)
}

// BalanceOf returns the custodied balance, reserved part included.
func (c *Custody) BalanceOf(addr tcr.Address) (*uint256.Int, error) {
	acc, err := c.getAccount(addr)
	if err != nil {
		return nil, err
	}
	return acc.Balance, nil
}

// ReservedOf returns the part of the balance committed to stakes.
func (c *Custody) ReservedOf(addr tcr.Address) (*uint256.Int, error) {
	acc, err := c.getAccount(addr)
	if err != nil {
		return nil, err
	}
	return acc.Reserved, nil
}

// FreeBalanceOf returns the balance available to stake or withdraw.
func (c *Custody) FreeBalanceOf(addr tcr.Address) (*uint256.Int, error) {
	acc, err := c.getAccount(addr)
	if err != nil {
		return nil, err
	}
	return acc.free(), nil
}

// TotalCustodied returns the sum of all balances.
func (c *Custody) TotalCustodied() (*uint256.Int, error) {
	return c.total.Get()
}

// Deposit credits amount to the account balance.
func (c *Custody) Deposit(addr tcr.Address, amount *uint256.Int) (events.Events, error) {
	if amount == nil || amount.IsZero() {
		return nil, reverts.ErrZeroAmount
	}
	acc, err := c.getAccount(addr)
	if err != nil {
		return nil, err
	}
	balance, overflow := new(uint256.Int).AddOverflow(acc.Balance, amount)
	if overflow {
		return nil, reverts.ErrArithmeticOverflow
	}
	if err := c.total.Add(amount); err != nil {
		return nil, err
	}
	acc.Balance = balance
	if err := c.setAccount(addr, acc); err != nil {
		return nil, err
	}
	logger.Debug("deposited", "account", addr, "amount", amount)
	return events.Events{&events.Deposited{
		Account: addr,
		Amount:  new(uint256.Int).Set(amount),
		Balance: new(uint256.Int).Set(balance),
	}}, nil
}

// Withdraw debits amount from the account's free balance.
func (c *Custody) Withdraw(addr tcr.Address, amount *uint256.Int) (events.Events, error) {
	if amount == nil || amount.IsZero() {
		return nil, reverts.ErrZeroAmount
	}
	acc, err := c.getAccount(addr)
	if err != nil {
		return nil, err
	}
	if free := acc.free(); free.Lt(amount) {
		return nil, reverts.ErrInsufficientBalance.Withf("free %v, requested %v", free.Dec(), amount.Dec())
	}
	if err := c.total.Sub(amount); err != nil {
		return nil, err
	}
	acc.Balance = new(uint256.Int).Sub(acc.Balance, amount)
	if err := c.setAccount(addr, acc); err != nil {
		return nil, err
	}
	logger.Debug("withdrawn", "account", addr, "amount", amount)
	return events.Events{&events.Withdrawn{
		Account: addr,
		Amount:  new(uint256.Int).Set(amount),
		Balance: new(uint256.Int).Set(acc.Balance),
	}}, nil
}

// Reserve moves amount of free balance into the reserved part.
func (c *Custody) Reserve(addr tcr.Address, amount *uint256.Int) error {
	acc, err := c.getAccount(addr)
	if err != nil {
		return err
	}
	if free := acc.free(); free.Lt(amount) {
		return reverts.ErrInsufficientBalance.Withf("free %v, requested %v", free.Dec(), amount.Dec())
	}
	acc.Reserved = new(uint256.Int).Add(acc.Reserved, amount)
	return c.setAccount(addr, acc)
}

// Release returns amount of the reserved part to the free balance.
func (c *Custody) Release(addr tcr.Address, amount *uint256.Int) error {
	acc, err := c.getAccount(addr)
	if err != nil {
		return err
	}
	if acc.Reserved.Lt(amount) {
		return errors.Errorf("release %v exceeds reserved %v of %v", amount.Dec(), acc.Reserved.Dec(), addr)
	}
	acc.Reserved = new(uint256.Int).Sub(acc.Reserved, amount)
	return c.setAccount(addr, acc)
}
