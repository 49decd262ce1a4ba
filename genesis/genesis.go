// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package genesis bootstraps a ledger from a configuration file.
package genesis

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Ministry-of-Decentralization/token-curation/builtin/weighting"
	"github.com/Ministry-of-Decentralization/token-curation/events"
	"github.com/Ministry-of-Decentralization/token-curation/log"
	"github.com/Ministry-of-Decentralization/token-curation/runtime"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

var logger = log.WithContext("pkg", "genesis")

// OpName labels the genesis op.
const OpName = "genesis"

// Genesis is the bootstrap configuration of a ledger.
type Genesis struct {
	Authority tcr.Address    `json:"authority" yaml:"authority" toml:"authority"`
	Weighting string         `json:"weighting" yaml:"weighting" toml:"weighting"`
	Targets   []tcr.TargetID `json:"targets" yaml:"targets" toml:"targets"`
	Deposits  []Deposit      `json:"deposits" yaml:"deposits" toml:"deposits"`
}

// Deposit is an initial custody balance.
type Deposit struct {
	Account tcr.Address `json:"account" yaml:"account" toml:"account"`
	Amount  *Amount     `json:"amount" yaml:"amount" toml:"amount"`
}

// Amount is an uint256 read from a decimal or 0x-hex string.
type Amount uint256.Int

func NewAmount(v *uint256.Int) *Amount {
	return (*Amount)(new(uint256.Int).Set(v))
}

// Int returns the amount as uint256, zero for nil.
func (a *Amount) Int() *uint256.Int {
	if a == nil {
		return new(uint256.Int)
	}
	return new(uint256.Int).Set((*uint256.Int)(a))
}

func (a *Amount) MarshalText() ([]byte, error) {
	return []byte((*uint256.Int)(a).Dec()), nil
}

func (a *Amount) UnmarshalText(text []byte) error {
	v, err := tcr.ParseAmount(string(text))
	if err != nil {
		return err
	}
	*a = Amount(*v)
	return nil
}

// UnmarshalJSON accepts both JSON strings and bare numbers.
func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.UnmarshalText(bytes.Trim(data, `"`))
}

// Load reads a genesis file. The format follows the extension: .yaml/.yml, .toml or .json.
func Load(path string) (*Genesis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var gen Genesis
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &gen)
	case ".toml":
		err = toml.Unmarshal(data, &gen)
	case ".json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		err = decoder.Decode(&gen)
	default:
		return nil, errors.Errorf("unsupported genesis format %q", ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	if err := gen.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "invalid genesis %s", path)
	}
	return &gen, nil
}

// Validate checks the configuration is consistent.
func (g *Genesis) Validate() error {
	if g.Authority.IsZero() {
		return errors.New("authority required")
	}
	if _, err := weighting.Parse(g.Weighting); err != nil {
		return err
	}
	seen := make(map[tcr.TargetID]struct{}, len(g.Targets))
	for _, id := range g.Targets {
		if _, ok := seen[id]; ok {
			return errors.Errorf("duplicated target %v", id)
		}
		seen[id] = struct{}{}
	}
	for i, d := range g.Deposits {
		if d.Account.IsZero() {
			return errors.Errorf("deposit %d: account required", i)
		}
		if d.Amount.Int().IsZero() {
			return errors.Errorf("deposit %d: amount must be positive", i)
		}
	}
	return nil
}

// Strategy returns the weighting strategy named by the configuration.
func (g *Genesis) Strategy() (weighting.Strategy, error) {
	return weighting.Parse(g.Weighting)
}

// Op returns the op bootstrapping a ledger. On a ledger launched before it only
// checks the weighting recorded at first launch matches.
func (g *Genesis) Op() runtime.Op {
	return runtime.Op{Name: OpName, Run: g.apply}
}

func (g *Genesis) apply(l *runtime.Ledger) (events.Events, error) {
	strategy, err := g.Strategy()
	if err != nil {
		return nil, err
	}
	if name := l.Staking.Strategy().Name(); name != strategy.Name() {
		return nil, errors.Errorf("runtime weighting %q differs from genesis %q", name, strategy.Name())
	}
	if err := l.Staking.InitWeighting(); err != nil {
		return nil, err
	}

	current, err := l.Owner.Get()
	if err != nil {
		return nil, err
	}
	if !current.IsZero() {
		logger.Debug("ledger already launched", "authority", current)
		return nil, nil
	}

	if err := l.Owner.Init(g.Authority); err != nil {
		return nil, err
	}
	var evs events.Events
	for _, id := range g.Targets {
		enabled, err := l.Staking.EnableStaking(id, g.Authority)
		if err != nil {
			return nil, errors.WithMessagef(err, "enable %v", id)
		}
		evs = append(evs, enabled...)
	}
	for _, d := range g.Deposits {
		deposited, err := l.Custody.Deposit(d.Account, d.Amount.Int())
		if err != nil {
			return nil, errors.WithMessagef(err, "deposit %v", d.Account)
		}
		evs = append(evs, deposited...)
	}
	logger.Info("ledger launched", "authority", g.Authority, "weighting", strategy.Name(), "targets", len(g.Targets), "deposits", len(g.Deposits))
	return evs, nil
}
