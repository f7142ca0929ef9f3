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
	"encoding/binary"
	"errors"

	"github.com/klaytn/bitfield-distribution/common"
	"github.com/klaytn/bitfield-distribution/crypto"
)

// ErrTruncated is returned when a wire message ends before a required
// field has been fully read.
var ErrTruncated = errors.New("bitfield: message truncated")

// ErrTrailingData is returned when bytes remain after a message has been
// fully decoded; decoding must fail closed per spec.md §6.
var ErrTrailingData = errors.New("bitfield: trailing data after message")

// EncodeMessage produces the canonical wire form of m: the 32-byte relay
// parent followed by the encoded SignedAvailabilityBitfield (a 4-byte
// big-endian validator index, a 4-byte big-endian bitmap length, the
// bitmap itself, then the fixed-size signature). No SCALE library exists
// in this module's dependency surface (see DESIGN.md); this is a direct,
// explicit binary layout rather than a generic derive-macro codec.
func EncodeMessage(m BitfieldGossipMessage) []byte {
	bitmap := m.SignedAvailability.Bitmap
	out := make([]byte, common.HashLength+4+4+len(bitmap)+crypto.SignatureLength)
	off := 0
	copy(out[off:off+common.HashLength], m.RelayParent[:])
	off += common.HashLength
	binary.BigEndian.PutUint32(out[off:off+4], m.SignedAvailability.Index)
	off += 4
	binary.BigEndian.PutUint32(out[off:off+4], uint32(len(bitmap)))
	off += 4
	copy(out[off:off+len(bitmap)], bitmap)
	off += len(bitmap)
	copy(out[off:off+crypto.SignatureLength], m.SignedAvailability.Sig[:])
	return out
}

// DecodeMessage parses the canonical wire form produced by EncodeMessage.
// It rejects trailing garbage and fails closed on any short read, per
// spec.md §6 ("Decoding MUST reject trailing garbage and MUST fail
// closed").
func DecodeMessage(b []byte) (BitfieldGossipMessage, error) {
	var m BitfieldGossipMessage
	if len(b) < common.HashLength+8 {
		return m, ErrTruncated
	}
	off := 0
	copy(m.RelayParent[:], b[off:off+common.HashLength])
	off += common.HashLength

	index := binary.BigEndian.Uint32(b[off : off+4])
	off += 4
	bitmapLen := binary.BigEndian.Uint32(b[off : off+4])
	off += 4

	remaining := len(b) - off
	need := int(bitmapLen) + crypto.SignatureLength
	if remaining < need {
		return BitfieldGossipMessage{}, ErrTruncated
	}
	if remaining > need {
		return BitfieldGossipMessage{}, ErrTrailingData
	}

	var bitmap []byte
	if bitmapLen > 0 {
		bitmap = make([]byte, bitmapLen)
		copy(bitmap, b[off:off+int(bitmapLen)])
	}
	off += int(bitmapLen)

	var sig crypto.Signature
	copy(sig[:], b[off:off+crypto.SignatureLength])

	m.SignedAvailability = SignedAvailabilityBitfield{
		Bitmap: bitmap,
		Index:  index,
		Sig:    sig,
	}
	return m, nil
}
