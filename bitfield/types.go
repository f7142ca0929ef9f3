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

// Package bitfield implements the gossip state machine of the availability
// bitfield distribution subsystem: tracking peers, their views, the
// per-relay-parent validator sets, and which (peer, validator) pairs have
// already exchanged a bitfield, together with the algorithms that decide,
// for each inbound event, which message goes to which peer and what
// reputation delta to apply.
package bitfield

import (
	"errors"

	"github.com/klaytn/bitfield-distribution/common"
	"github.com/klaytn/bitfield-distribution/crypto"
)

// ErrBadSignature is returned by CheckSignature when verification fails.
var ErrBadSignature = errors.New("bitfield: signature does not verify")

// SignedAvailabilityBitfield is a signed payload stating, for a given
// relay parent, which candidate parachain blocks the signing validator
// considers available.
type SignedAvailabilityBitfield struct {
	Bitmap         []byte
	Index          uint32
	Sig            crypto.Signature
}

// ValidatorIndex returns the index into the relay parent's validator set
// that signed this bitfield.
func (s SignedAvailabilityBitfield) ValidatorIndex() uint32 { return s.Index }

// CheckSignature verifies the bitfield's signature was produced by
// validatorPub under ctx. Cryptographic verification itself (the ed25519
// primitive) is an external collaborator by spec.md §1; this method is the
// seam the inbound message validator (C4) calls through.
func (s SignedAvailabilityBitfield) CheckSignature(ctx crypto.SigningContext, validatorPub crypto.ValidatorID) error {
	if !crypto.Verify(validatorPub, ctx, s.Bitmap, s.Sig) {
		return ErrBadSignature
	}
	return nil
}

// BitfieldGossipMessage is the sole wire form exchanged between peers.
type BitfieldGossipMessage struct {
	RelayParent        common.Hash
	SignedAvailability SignedAvailabilityBitfield
}
