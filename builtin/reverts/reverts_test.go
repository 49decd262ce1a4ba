// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reverts

import (
	"encoding/hex"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestRevertMatching(t *testing.T) {
	detailed := ErrInsufficientBalance.Withf("free %d, requested %d", 10, 20)

	assert.ErrorIs(t, detailed, ErrInsufficientBalance)
	assert.NotErrorIs(t, detailed, ErrInsufficientStake)
	assert.Equal(t, "insufficient balance: free 10, requested 20", detailed.Error())

	wrapped := errors.Wrap(detailed, "stake")
	assert.True(t, IsRevertErr(wrapped))
	assert.ErrorIs(t, wrapped, ErrInsufficientBalance)
	assert.Equal(t, "InsufficientBalance", Code(wrapped))

	assert.False(t, IsRevertErr(nil))
	assert.False(t, IsRevertErr(errors.New("leveldb: closed")))
	assert.Empty(t, Code(errors.New("x")))
}

func TestRevertBytes(t *testing.T) {
	b := New("X", "not authorized").Bytes()
	assert.Len(t, b, 4+32+32+32)
	assert.Equal(t, "08c379a0", hex.EncodeToString(b[:4]))
	assert.Equal(t, byte(32), b[4+31])
	assert.Equal(t, byte(len("not authorized")), b[4+63])
	assert.Equal(t, "not authorized", string(b[68:68+len("not authorized")]))

	var nilRevert *ErrRevert
	assert.Nil(t, nilRevert.Bytes())
}
