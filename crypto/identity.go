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

import "encoding/hex"

// IdentityLength is the size in bytes of a peer or validator identity
// (an ed25519 public key), the relay-chain analogue of the teacher's
// 20-byte common.Address used as a map key throughout node/cn/peer.go.
const IdentityLength = 32

// PeerID is the opaque, stable identity of a remote node. It is comparable
// and hashable as a plain Go array, so it can be used directly as a map
// key the way the teacher keys peerSet.cnpeers by common.Address.
type PeerID [IdentityLength]byte

func (p PeerID) String() string { return "0x" + hex.EncodeToString(p[:]) }

// ValidatorID is a validator's public key, and the value indexed by
// validator_index within a relay parent's validator set.
type ValidatorID [IdentityLength]byte

func (v ValidatorID) String() string { return "0x" + hex.EncodeToString(v[:]) }

// BytesToValidatorID truncates/pads b into a ValidatorID.
func BytesToValidatorID(b []byte) ValidatorID {
	var v ValidatorID
	copy(v[:], b)
	return v
}

// BytesToPeerID truncates/pads b into a PeerID.
func BytesToPeerID(b []byte) PeerID {
	var p PeerID
	copy(p[:], b)
	return p
}
