// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tcr

import (
	"strings"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// ParseAmount parses a 256-bit unsigned amount, either decimal or 0x-prefixed hex.
func ParseAmount(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty amount")
	}
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		digits := strings.TrimLeft(s[2:], "0")
		if digits == "" {
			if len(s) == 2 {
				return nil, errors.New("empty hex amount")
			}
			digits = "0"
		}
		v, err := uint256.FromHex("0x" + digits)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid amount %q", s)
		}
		return v, nil
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid amount %q", s)
	}
	return v, nil
}
