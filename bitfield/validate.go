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

	"github.com/klaytn/bitfield-distribution/crypto"
)

// handlePeerMessage is the inbound message validator (spec.md §4.4,
// component C4). It runs the decision ladder against raw bytes received
// from peer and, on success, hands the validated message to the relay
// engine (C3) before reporting a positive reputation delta. The
// reputation report is always the terminal side effect of a successful
// acceptance (spec.md §5: "reputation deltas ... are emitted after all
// other side effects for that event").
func handlePeerMessage(t *Tracker, peer crypto.PeerID, raw []byte, bridge NetworkBridge, provisioner Provisioner, logger *zap.SugaredLogger) {
	msg, err := DecodeMessage(raw)
	if err != nil {
		reportPeer(bridge, peer, CostMessageNotDecodable)
		return
	}

	if !t.View().Contains(msg.RelayParent) {
		reportPeer(bridge, peer, CostNotInterested)
		return
	}

	data, ok := t.RelayParentData(msg.RelayParent)
	if !ok {
		reportPeer(bridge, peer, CostNotInterested)
		return
	}

	if len(data.ValidatorSet) == 0 {
		reportPeer(bridge, peer, CostMissingPeerSessionKey)
		return
	}

	validator, ok := data.ValidatorAt(msg.SignedAvailability.ValidatorIndex())
	if !ok {
		reportPeer(bridge, peer, CostValidatorIndexInvalid)
		return
	}

	if err := msg.SignedAvailability.CheckSignature(data.SigningContext, validator); err != nil {
		reportPeer(bridge, peer, CostSignatureInvalid)
		return
	}

	if data.HasSeen(validator) {
		// Duplicate of an already-accepted bitfield: silent, no
		// reputation change, per spec.md §4.4.
		return
	}

	firstForRelayParent := len(data.onePerValidator) == 0
	data.onePerValidator[validator] = msg

	if err := relay(t, msg, validator, bridge, provisioner); err != nil {
		logger.Warnw("relay failed after accepting bitfield", "relayParent", msg.RelayParent.Hex(), "err", err)
	}

	gain := GainValidMessage
	if firstForRelayParent {
		gain = GainValidMessageFirst
	}
	reportPeer(bridge, peer, gain)
}
