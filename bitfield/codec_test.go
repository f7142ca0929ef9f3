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

package bitfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klaytn/bitfield-distribution/common"
)

func TestCodec_RoundTrip(t *testing.T) {
	h0 := common.BytesToHash([]byte{7})
	msg := BitfieldGossipMessage{
		RelayParent: h0,
		SignedAvailability: SignedAvailabilityBitfield{
			Bitmap: []byte{0xde, 0xad, 0xbe, 0xef},
			Index:  3,
		},
	}
	for i := range msg.SignedAvailability.Sig {
		msg.SignedAvailability.Sig[i] = byte(i)
	}

	raw := EncodeMessage(msg)
	decoded, err := DecodeMessage(raw)
	require.NoError(t, err)
	assert.Equal(t, msg, decoded)
}

func TestCodec_EmptyBitmapRoundTrips(t *testing.T) {
	msg := BitfieldGossipMessage{RelayParent: common.BytesToHash([]byte{1})}
	raw := EncodeMessage(msg)
	decoded, err := DecodeMessage(raw)
	require.NoError(t, err)
	assert.Equal(t, msg, decoded)
}

func TestCodec_Truncated(t *testing.T) {
	_, err := DecodeMessage([]byte{0x01, 0x02, 0x03})
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestCodec_TruncatedBitmapOrSignature(t *testing.T) {
	msg := BitfieldGossipMessage{RelayParent: common.BytesToHash([]byte{1}), SignedAvailability: SignedAvailabilityBitfield{Bitmap: []byte{1, 2, 3}}}
	raw := EncodeMessage(msg)
	_, err := DecodeMessage(raw[:len(raw)-5])
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestCodec_TrailingData(t *testing.T) {
	msg := BitfieldGossipMessage{RelayParent: common.BytesToHash([]byte{1})}
	raw := append(EncodeMessage(msg), 0xff)
	_, err := DecodeMessage(raw)
	assert.ErrorIs(t, err, ErrTrailingData)
}
