// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tcr

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetIDFromInt(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{284, "0x0000000000000000000000000000000000000000000000000000000000000284"},
		{7, "0x0000000000000000000000000000000000000000000000000000000000000007"},
		{0, "0x0000000000000000000000000000000000000000000000000000000000000000"},
		{123456, "0x0000000000000000000000000000000000000000000000000000000000123456"},
		{18446744073709551615, "0x" + strings.Repeat("0", 44) + "18446744073709551615"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TargetIDFromInt(tt.in).String(), "n=%d", tt.in)
	}
}

func TestTargetIDFromDecimal(t *testing.T) {
	id, err := TargetIDFromDecimal("284")
	assert.NoError(t, err)
	assert.Equal(t, TargetIDFromInt(284), id)

	_, err = TargetIDFromDecimal("")
	assert.Error(t, err)
	_, err = TargetIDFromDecimal("12a")
	assert.Error(t, err)
	_, err = TargetIDFromDecimal(string(make([]byte, 65)))
	assert.Error(t, err)
}

func TestParseTargetID(t *testing.T) {
	hexForm := "0x0000000000000000000000000000000000000000000000000000000000000284"

	id, err := ParseTargetID(hexForm)
	assert.NoError(t, err)
	assert.Equal(t, TargetIDFromInt(284), id)

	id, err = ParseTargetID("284")
	assert.NoError(t, err)
	assert.Equal(t, hexForm, id.String())

	_, err = ParseTargetID("0x1234")
	assert.Error(t, err)
}

func TestTargetIDJSON(t *testing.T) {
	var v struct {
		A TargetID `json:"a"`
		B TargetID `json:"b"`
	}
	err := json.Unmarshal([]byte(`{"a":"0x0000000000000000000000000000000000000000000000000000000000000001","b":284}`), &v)
	assert.NoError(t, err)
	assert.Equal(t, TargetIDFromInt(1), v.A)
	assert.Equal(t, TargetIDFromInt(284), v.B)

	out, err := json.Marshal(&v.B)
	assert.NoError(t, err)
	assert.Equal(t, `"0x0000000000000000000000000000000000000000000000000000000000000284"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"a":true}`), &v))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"100", "100", false},
		{"0x64", "100", false},
		{"0x0064", "100", false},
		{"0x0", "0", false},
		{"0", "0", false},
		{"115792089237316195423570985008687907853269984665640564039457584007913129639935", "115792089237316195423570985008687907853269984665640564039457584007913129639935", false},
		{"115792089237316195423570985008687907853269984665640564039457584007913129639936", "", true},
		{"0x", "", true},
		{"-1", "", true},
		{"12a", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "in=%q", tt.in)
			continue
		}
		if assert.NoError(t, err, "in=%q", tt.in) {
			assert.Equal(t, tt.want, got.Dec(), "in=%q", tt.in)
		}
	}
}
