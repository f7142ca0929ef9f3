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
	"golang.org/x/crypto/ed25519"
)

// fakeBridge records every SendMessage/ReportPeer call instead of touching
// a real transport, in the teacher's no-op-collaborator test style (e.g.
// consensus/istanbul/validator/default_test.go constructs validator sets
// directly rather than via a live network).
type fakeBridge struct {
	sends     []fakeSend
	reports   []fakeReport
	producers map[ProtocolID]func(NetworkBridgeEvent)
}

type fakeSend struct {
	peers   []crypto.PeerID
	payload []byte
}

type fakeReport struct {
	peer  crypto.PeerID
	delta ReputationChange
}

func newFakeBridge() *fakeBridge {
	return &fakeBridge{producers: make(map[ProtocolID]func(NetworkBridgeEvent))}
}

func (b *fakeBridge) RegisterEventProducer(protocol ProtocolID, adapter func(NetworkBridgeEvent)) {
	b.producers[protocol] = adapter
}

func (b *fakeBridge) SendMessage(peers []crypto.PeerID, protocol ProtocolID, payload []byte) {
	cp := make([]crypto.PeerID, len(peers))
	copy(cp, peers)
	b.sends = append(b.sends, fakeSend{peers: cp, payload: payload})
}

func (b *fakeBridge) ReportPeer(peer crypto.PeerID, delta ReputationChange) {
	b.reports = append(b.reports, fakeReport{peer: peer, delta: delta})
}

// fakeProvisioner records every accepted bitfield handed to it.
type fakeProvisioner struct {
	provisioned []BitfieldGossipMessage
}

func (p *fakeProvisioner) ProvisionBitfield(relayParent common.Hash, signed SignedAvailabilityBitfield) {
	p.provisioned = append(p.provisioned, BitfieldGossipMessage{RelayParent: relayParent, SignedAvailability: signed})
}

// fakeRuntime answers Validators/SigningContext from a fixed table, with
// an optional forced error to exercise the StartWork failure path.
type fakeRuntime struct {
	validators []crypto.ValidatorID
	signingCtx crypto.SigningContext
	err        error
}

func (r *fakeRuntime) Validators(ctx context.Context, relayParent common.Hash) ([]crypto.ValidatorID, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.validators, nil
}

func (r *fakeRuntime) SigningContext(ctx context.Context, relayParent common.Hash) (crypto.SigningContext, error) {
	if r.err != nil {
		return crypto.SigningContext{}, r.err
	}
	return r.signingCtx, nil
}

// testValidator is a generated validator keypair for use across tests.
type testValidator struct {
	pub  crypto.ValidatorID
	priv ed25519.PrivateKey
}

func newTestValidators(t interface{ Fatalf(string, ...interface{}) }, n int) []testValidator {
	out := make([]testValidator, n)
	for i := range out {
		pub, priv, err := crypto.GenerateKey()
		if err != nil {
			t.Fatalf("generating validator key: %v", err)
		}
		out[i] = testValidator{pub: crypto.BytesToValidatorID(pub), priv: priv}
	}
	return out
}

func sign(v testValidator, ctx crypto.SigningContext, bitmap []byte) crypto.Signature {
	return crypto.Sign(v.priv, ctx, bitmap)
}
