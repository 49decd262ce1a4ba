// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package utils

import (
	"bytes"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

// ParseTargetID parses a path or query target id, hex or decimal.
func ParseTargetID(s string) (tcr.TargetID, error) {
	id, err := tcr.ParseTargetID(s)
	if err != nil {
		return tcr.TargetID{}, BadRequest(errors.WithMessage(err, "target"))
	}
	return id, nil
}

// ParseAddress parses a path or query address.
func ParseAddress(s string, name string) (tcr.Address, error) {
	addr, err := tcr.ParseAddress(s)
	if err != nil {
		return tcr.Address{}, BadRequest(errors.WithMessage(err, name))
	}
	return addr, nil
}

// Amount is a request amount, given as a decimal or 0x-hex string, or a JSON number.
type Amount uint256.Int

func (a *Amount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return errors.New("amount required")
	}
	v, err := tcr.ParseAmount(string(bytes.Trim(data, `"`)))
	if err != nil {
		return err
	}
	*a = Amount(*v)
	return nil
}

func (a *Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal((*uint256.Int)(a).Dec())
}

// Int returns the amount, nil for a missing one.
func (a *Amount) Int() *uint256.Int {
	if a == nil {
		return nil
	}
	return new(uint256.Int).Set((*uint256.Int)(a))
}

// U256 converts an amount for responses, nil reads as zero.
func U256(v *uint256.Int) *hexutil.U256 {
	if v == nil {
		v = new(uint256.Int)
	}
	return (*hexutil.U256)(v)
}
