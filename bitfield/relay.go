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
	"errors"

	"github.com/klaytn/bitfield-distribution/crypto"
)

// ErrUnknownRelayParent is returned when relay is asked to distribute a
// message for a relay parent we are not tracking.
var ErrUnknownRelayParent = errors.New("bitfield: relay parent not in working set")

// relay is the relay engine (spec.md §4.3, component C3). Given a message
// that has already been validated (signature checked, first-seen-wins
// already enforced by the caller), it delivers to the provisioner, picks
// the interested peers, records the bookkeeping, and fans the message out
// in a single batched send.
//
// Selection and bookkeeping happen in the same step specifically so that
// invariant 3 ("if v is in message_sent_to_peer[p] then the bitfield was
// at some point emitted to p") holds even if the subsequent bridge send
// fails: the invariant is about attempted delivery.
func relay(t *Tracker, m BitfieldGossipMessage, v crypto.ValidatorID, bridge NetworkBridge, provisioner Provisioner) error {
	provisioner.ProvisionBitfield(m.RelayParent, m.SignedAvailability)

	data, ok := t.RelayParentData(m.RelayParent)
	if !ok {
		return ErrUnknownRelayParent
	}

	var peers []crypto.PeerID
	for peer, view := range t.peerViews {
		if !view.Contains(m.RelayParent) {
			continue
		}
		data.markSent(peer, v)
		peers = append(peers, peer)
	}

	if len(peers) > 0 {
		bridge.SendMessage(peers, ProtocolName, EncodeMessage(m))
	}
	return nil
}
