// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tcr

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// TargetID is the opaque 32-byte key stake is directed at.
// It is only ever compared and hashed, never used in arithmetic.
type TargetID [32]byte

var (
	_ json.Marshaler   = (*TargetID)(nil)
	_ json.Unmarshaler = (*TargetID)(nil)
)

// String returns the 0x-prefixed 64 hex chars form.
func (t TargetID) String() string {
	return "0x" + hex.EncodeToString(t[:])
}

// Bytes returns byte slice form of TargetID.
func (t TargetID) Bytes() []byte {
	return t[:]
}

// MarshalJSON implements json.Marshaler.
func (t *TargetID) MarshalJSON() ([]byte, error) {
	if t == nil {
		return json.Marshal(nil)
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *TargetID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n uint64
		if err := json.Unmarshal(data, &n); err != nil {
			return errors.New("target id must be a hex string or an integer")
		}
		*t = TargetIDFromInt(n)
		return nil
	}
	parsed, err := ParseTargetID(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t TargetID) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TargetID) UnmarshalText(text []byte) error {
	parsed, err := ParseTargetID(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TargetIDFromInt encodes n the way curation clients derive target keys: the decimal digits are
// read as hex nibbles and right-aligned, so 284 becomes 0x00..0284.
func TargetIDFromInt(n uint64) TargetID {
	// a uint64 has at most 20 decimal digits, it always fits.
	id, _ := TargetIDFromDecimal(strconv.FormatUint(n, 10))
	return id
}

// TargetIDFromDecimal is TargetIDFromInt for decimal strings of up to 64 digits.
func TargetIDFromDecimal(s string) (TargetID, error) {
	if len(s) == 0 || len(s) > 64 {
		return TargetID{}, errors.New("invalid length")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return TargetID{}, errors.New("non-decimal digit")
		}
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}

	var id TargetID
	// decimal digits are valid hex digits, so decoding never fails here.
	hex.Decode(id[32-len(s)/2:], []byte(s))
	return id, nil
}

// ParseTargetID accepts either the 0x-prefixed 32-byte hex form or a decimal integer.
func ParseTargetID(s string) (TargetID, error) {
	if strings.HasPrefix(strings.ToLower(s), "0x") {
		b, err := ParseBytes32(s)
		if err != nil {
			return TargetID{}, err
		}
		return TargetID(b), nil
	}
	return TargetIDFromDecimal(s)
}
