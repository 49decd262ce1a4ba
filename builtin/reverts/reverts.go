// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package reverts defines the recoverable failures of ledger operations.
// A revert leaves state untouched, every other error is a storage failure.
package reverts

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrRevert is a ledger operation failure identified by its code.
type ErrRevert struct {
	code    string
	message string
}

func New(code, message string) *ErrRevert {
	return &ErrRevert{code: code, message: message}
}

var (
	ErrTargetNotEnabled    = New("TargetNotEnabled", "target not enabled")
	ErrInsufficientBalance = New("InsufficientBalance", "insufficient balance")
	ErrInsufficientStake   = New("InsufficientStake", "insufficient stake")
	ErrNotAuthorized       = New("NotAuthorized", "not authorized")
	ErrArithmeticOverflow  = New("ArithmeticOverflow", "arithmetic overflow")
	ErrZeroAmount          = New("ZeroAmount", "amount must be greater than zero")
	ErrZeroAddress         = New("ZeroAddress", "zero address")
)

func (e *ErrRevert) Error() string {
	return e.message
}

func (e *ErrRevert) Code() string {
	return e.code
}

// Is reports whether target carries the same code, so detailed reverts derived
// with Withf still match their sentinel.
func (e *ErrRevert) Is(target error) bool {
	var t *ErrRevert
	if !errors.As(target, &t) || t == nil || e == nil {
		return false
	}
	return t.code == e.code
}

// Withf returns a revert with the same code and a detailed message.
func (e *ErrRevert) Withf(format string, args ...any) *ErrRevert {
	return &ErrRevert{code: e.code, message: e.message + ": " + fmt.Sprintf(format, args...)}
}

// Bytes returns the revert reason ABI encoded as Error(string).
func (e *ErrRevert) Bytes() []byte {
	if e == nil {
		return nil
	}

	// 4-byte selector for Error(string)
	selector := []byte{0x08, 0xc3, 0x79, 0xa0}
	msgBytes := []byte(e.message)
	padded := ((len(msgBytes) + 31) / 32) * 32

	// selector + offset (32 bytes) + length (32 bytes) + data (padded to 32)
	encoded := make([]byte, 4+32+32+padded)
	copy(encoded, selector)
	binary.BigEndian.PutUint64(encoded[4+24:], 32)
	binary.BigEndian.PutUint64(encoded[4+32+24:], uint64(len(msgBytes)))
	copy(encoded[4+64:], msgBytes)

	return encoded
}

func IsRevertErr(err error) bool {
	if err == nil {
		return false
	}
	var re *ErrRevert
	return errors.As(err, &re) && re != nil
}

// Code returns the code of the revert wrapped in err, or empty.
func Code(err error) string {
	var re *ErrRevert
	if errors.As(err, &re) && re != nil {
		return re.code
	}
	return ""
}
