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

package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/klaytn/bitfield-distribution/bitfield"
	"github.com/klaytn/bitfield-distribution/common"
	"github.com/klaytn/bitfield-distribution/crypto"
	klog "github.com/klaytn/bitfield-distribution/log"
)

// loopbackBridge is a process-local stand-in for the real network bridge
// (spec.md §1 places the bridge itself out of scope). It logs every
// outbound send and reputation report instead of putting bytes on a wire,
// the way the teacher's console command (cmd/utils/nodecmd/consolecmd.go)
// stands in for a full RPC transport during local experimentation.
type loopbackBridge struct {
	logger  *zap.SugaredLogger
	adapter func(bitfield.NetworkBridgeEvent)
}

func newLoopbackBridge() *loopbackBridge {
	return &loopbackBridge{logger: klog.NewModuleLogger(klog.NetBridge)}
}

func (b *loopbackBridge) RegisterEventProducer(protocol bitfield.ProtocolID, adapter func(bitfield.NetworkBridgeEvent)) {
	b.logger.Infow("protocol registered", "protocol", string(protocol))
	b.adapter = adapter
}

func (b *loopbackBridge) SendMessage(peers []crypto.PeerID, protocol bitfield.ProtocolID, payload []byte) {
	for _, p := range peers {
		b.logger.Infow("send", "protocol", string(protocol), "peer", p.String(), "bytes", len(payload))
	}
}

func (b *loopbackBridge) ReportPeer(peer crypto.PeerID, delta bitfield.ReputationChange) {
	b.logger.Infow("reputation change", "peer", peer.String(), "value", delta.Value, "reason", delta.Reason)
}

// Deliver feeds a bridge event back into the subsystem, as the real
// bridge's receive loop would on an inbound network packet.
func (b *loopbackBridge) Deliver(ev bitfield.NetworkBridgeEvent) {
	if b.adapter != nil {
		b.adapter(ev)
	}
}

// loopbackRuntime answers Validators/SigningContext from a fixed,
// operator-supplied validator set rather than a real chain-state query
// (spec.md §1, RuntimeAPI out of scope).
type loopbackRuntime struct {
	validators []crypto.ValidatorID
	session    uint64
}

func (r *loopbackRuntime) Validators(ctx context.Context, relayParent common.Hash) ([]crypto.ValidatorID, error) {
	return r.validators, nil
}

func (r *loopbackRuntime) SigningContext(ctx context.Context, relayParent common.Hash) (crypto.SigningContext, error) {
	return crypto.SigningContext{SessionIndex: r.session, ParentHash: relayParent}, nil
}

// loopbackProvisioner logs accepted bitfields instead of feeding a real
// block-building pipeline (spec.md §1, Provisioner out of scope).
type loopbackProvisioner struct {
	logger *zap.SugaredLogger
}

func newLoopbackProvisioner() *loopbackProvisioner {
	return &loopbackProvisioner{logger: klog.NewModuleLogger(klog.Bitfield)}
}

func (p *loopbackProvisioner) ProvisionBitfield(relayParent common.Hash, signed bitfield.SignedAvailabilityBitfield) {
	p.logger.Infow("bitfield provisioned", "relayParent", relayParent.Hex(), "validatorIndex", signed.ValidatorIndex())
}
