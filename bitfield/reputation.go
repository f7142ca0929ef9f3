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

import "github.com/klaytn/bitfield-distribution/crypto"

// ReputationChange is a peer reputation delta. The bridge owns a peer's
// true reputation value; this subsystem only ever emits deltas (spec.md
// §4.6, GLOSSARY).
type ReputationChange struct {
	Value  int
	Reason string
}

// Reputation constants, normative per spec.md §4.6. These are a fixed
// table and are not parameterized (spec.md §9).
var (
	CostSignatureInvalid      = ReputationChange{Value: -100, Reason: "bitfield signature invalid"}
	CostValidatorIndexInvalid = ReputationChange{Value: -100, Reason: "validator index out of bounds"}
	CostMissingPeerSessionKey = ReputationChange{Value: -133, Reason: "validator set empty at relay parent"}
	CostNotInterested         = ReputationChange{Value: -51, Reason: "relay parent not in our workset or view"}
	CostMessageNotDecodable   = ReputationChange{Value: -100, Reason: "message bytes did not decode"}
	GainValidMessageFirst     = ReputationChange{Value: 15, Reason: "first valid bitfield for relay parent"}
	GainValidMessage          = ReputationChange{Value: 5, Reason: "accepted valid bitfield"}
)

// reportPeer emits a reputation delta for peer via the bridge. This is C6:
// a single operation with no local accumulation, mirroring the teacher's
// habit of keeping reputation/penalty bookkeeping entirely on the other
// side of a collaborator interface (e.g. node/cn/peer.go never tallies a
// peer's standing itself, it only reports events upward).
func reportPeer(bridge NetworkBridge, peer crypto.PeerID, delta ReputationChange) {
	bridge.ReportPeer(peer, delta)
}
