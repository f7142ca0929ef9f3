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
	"context"

	"github.com/klaytn/bitfield-distribution/common"
	"github.com/klaytn/bitfield-distribution/crypto"
)

// ProtocolID is the fixed protocol tag registered with the network bridge
// at start-up (spec.md §6).
type ProtocolID string

// ProtocolName is the 4-byte ASCII protocol identifier for bitfield gossip.
const ProtocolName ProtocolID = "bitd"

// NetworkBridge is the external collaborator that owns peer transport,
// wire encoding, and per-peer reputation state (spec.md §1). This
// subsystem only ever calls it; spec.md places its implementation out of
// scope.
type NetworkBridge interface {
	// RegisterEventProducer registers protocol with the bridge, supplying
	// a callback that wraps raw bridge events into subsystem-addressed
	// events (spec.md §4.1).
	RegisterEventProducer(protocol ProtocolID, adapter func(NetworkBridgeEvent))
	// SendMessage fans a single encoded message out to peers under protocol.
	SendMessage(peers []crypto.PeerID, protocol ProtocolID, payload []byte)
	// ReportPeer emits a reputation delta for peer.
	ReportPeer(peer crypto.PeerID, delta ReputationChange)
}

// RuntimeAPI is the external collaborator that resolves a relay parent's
// validator set and signing context (spec.md §1, §6).
type RuntimeAPI interface {
	Validators(ctx context.Context, relayParent common.Hash) ([]crypto.ValidatorID, error)
	SigningContext(ctx context.Context, relayParent common.Hash) (crypto.SigningContext, error)
}

// Provisioner is the external collaborator that consumes accepted
// bitfields to build blocks (spec.md §1, §6).
type Provisioner interface {
	ProvisionBitfield(relayParent common.Hash, signed SignedAvailabilityBitfield)
}

// NetworkBridgeEvent is the taxonomy of events the network bridge reports
// upward (spec.md §6).
type NetworkBridgeEvent interface{ isNetworkBridgeEvent() }

type PeerConnected struct{ Peer crypto.PeerID }
type PeerDisconnected struct{ Peer crypto.PeerID }
type PeerViewChange struct {
	Peer crypto.PeerID
	View common.View
}
type OurViewChange struct{ View common.View }
type PeerMessage struct {
	Peer  crypto.PeerID
	Bytes []byte
}

func (PeerConnected) isNetworkBridgeEvent()    {}
func (PeerDisconnected) isNetworkBridgeEvent() {}
func (PeerViewChange) isNetworkBridgeEvent()   {}
func (OurViewChange) isNetworkBridgeEvent()    {}
func (PeerMessage) isNetworkBridgeEvent()      {}

// Event is the taxonomy the subsystem loop (C7) dequeues: lifecycle
// signals from the orchestrator, and bus messages (spec.md §4.1).
type Event interface{ isEvent() }

type StartWork struct{ RelayParent common.Hash }
type StopWork struct{ RelayParent common.Hash }
type Conclude struct{}
type DistributeBitfield struct {
	RelayParent common.Hash
	Signed      SignedAvailabilityBitfield
}
type NetworkBridgeUpdate struct{ Event NetworkBridgeEvent }

func (StartWork) isEvent()           {}
func (StopWork) isEvent()            {}
func (Conclude) isEvent()            {}
func (DistributeBitfield) isEvent()  {}
func (NetworkBridgeUpdate) isEvent() {}
