// Copyright 2026 The klaytn Authors
// This file is part of the klaytn library.
//
// The klaytn library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The klaytn library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the klaytn library. If not, see <http://www.gnu.org/licenses/>.

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klaytn/bitfield-distribution/common"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	pub, priv, err := GenerateKey()
	require.NoError(t, err)
	validator := BytesToValidatorID(pub)

	ctx := SigningContext{SessionIndex: 1, ParentHash: common.BytesToHash([]byte{1})}
	bitmap := []byte{0x01, 0x02, 0x03}
	sig := Sign(priv, ctx, bitmap)

	assert.True(t, Verify(validator, ctx, bitmap, sig))
}

func TestVerify_WrongSessionIndexFails(t *testing.T) {
	pub, priv, err := GenerateKey()
	require.NoError(t, err)
	validator := BytesToValidatorID(pub)

	bitmap := []byte{0x01}
	sig := Sign(priv, SigningContext{SessionIndex: 1}, bitmap)

	assert.False(t, Verify(validator, SigningContext{SessionIndex: 2}, bitmap, sig))
}

func TestVerify_WrongKeyFails(t *testing.T) {
	_, priv, err := GenerateKey()
	require.NoError(t, err)
	otherPub, _, err := GenerateKey()
	require.NoError(t, err)

	ctx := SigningContext{SessionIndex: 1}
	bitmap := []byte{0x01}
	sig := Sign(priv, ctx, bitmap)

	assert.False(t, Verify(BytesToValidatorID(otherPub), ctx, bitmap, sig))
}

func TestVerify_TamperedBitmapFails(t *testing.T) {
	pub, priv, err := GenerateKey()
	require.NoError(t, err)
	validator := BytesToValidatorID(pub)

	ctx := SigningContext{SessionIndex: 1}
	sig := Sign(priv, ctx, []byte{0x01})

	assert.False(t, Verify(validator, ctx, []byte{0x02}, sig))
}
