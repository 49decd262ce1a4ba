// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package weighting converts raw staked amounts into influence.
package weighting

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// Strategy maps a raw amount to its weighted amount. Implementations must be
// monotonic non-decreasing and map zero to zero.
type Strategy interface {
	Name() string
	Weight(raw *uint256.Int) *uint256.Int
}

const (
	LinearName    = "linear"
	QuadraticName = "quadratic"
)

// Linear weights stake one to one.
type Linear struct{}

func (Linear) Name() string { return LinearName }

func (Linear) Weight(raw *uint256.Int) *uint256.Int {
	return new(uint256.Int).Set(raw)
}

// QuadraticRoot weights stake by the floor of its square root.
type QuadraticRoot struct{}

func (QuadraticRoot) Name() string { return QuadraticName }

func (QuadraticRoot) Weight(raw *uint256.Int) *uint256.Int {
	return new(uint256.Int).Sqrt(raw)
}

// Parse returns the strategy registered under name.
func Parse(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", LinearName:
		return Linear{}, nil
	case QuadraticName, "quadratic-root", "sqrt":
		return QuadraticRoot{}, nil
	}
	return nil, fmt.Errorf("unknown weighting strategy %q", name)
}
