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
	"go.uber.org/zap"

	"github.com/klaytn/bitfield-distribution/common"
	"github.com/klaytn/bitfield-distribution/crypto"
)

// peerConnected installs an empty view for peer iff absent; never
// overwrites an existing entry (spec.md §4.5).
func peerConnected(t *Tracker, peer crypto.PeerID) {
	if _, ok := t.peerViews[peer]; !ok {
		t.peerViews[peer] = common.NewView(nil)
	}
}

// peerDisconnected removes peer from peerViews. Sent-set entries keyed by
// peer in each relay parent's PerRelayParentData are deliberately not
// pruned (spec.md §4.5, §9.4): the peer may reconnect, and conservative
// over-suppression is preferred to wasted bandwidth.
func peerDisconnected(t *Tracker, peer crypto.PeerID) {
	delete(t.peerViews, peer)
}

// ourViewChange replaces the tracker's own view. No outbound messages are
// emitted here; locally-originated distribution arrives only via
// DistributeBitfield (spec.md §4.5).
func ourViewChange(t *Tracker, newView common.View, logger *zap.SugaredLogger) {
	old := t.view
	for _, h := range newView.Difference(old) {
		if _, ok := t.RelayParentData(h); !ok {
			logger.Warnw("our view contains a relay parent we were never asked to work on", "relayParent", h.Hex())
		}
	}
	t.view = newView
}

// peerViewChange is the catch-up engine (spec.md §4.5, component C5).
//
// The delta is the relay parents the peer now cares about that it did not
// before: newView \ currentPeerView. spec.md §9.1 notes the source
// computed the opposite direction (current \ new); SPEC_FULL.md's open
// question decision #1 follows the corrected, semantically-intended
// direction used by spec.md's own scenario 5.
func peerViewChange(t *Tracker, peer crypto.PeerID, newView common.View, bridge NetworkBridge) {
	current, ok := t.peerViews[peer]
	if !ok {
		current = common.NewView(nil)
	}
	delta := newView.Difference(current)

	type pending struct {
		relayParent common.Hash
		validator   crypto.ValidatorID
		msg         BitfieldGossipMessage
	}
	var sends []pending
	seen := make(map[crypto.ValidatorID]struct{})

	for _, relayParent := range delta {
		data, ok := t.RelayParentData(relayParent)
		if !ok {
			continue
		}
		for validator, msg := range data.onePerValidator {
			if _, already := seen[validator]; already {
				continue
			}
			if !data.messageFromValidatorNeededByPeer(peer, validator) {
				continue
			}
			seen[validator] = struct{}{}
			sends = append(sends, pending{relayParent: relayParent, validator: validator, msg: msg})
		}
	}

	for _, p := range sends {
		bridge.SendMessage([]crypto.PeerID{peer}, ProtocolName, EncodeMessage(p.msg))
		data, _ := t.RelayParentData(p.relayParent)
		data.markSent(peer, p.validator)
	}

	t.peerViews[peer] = newView
}
