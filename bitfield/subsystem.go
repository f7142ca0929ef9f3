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

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/klaytn/bitfield-distribution/common"
	klog "github.com/klaytn/bitfield-distribution/log"
)

// Subsystem is the single long-running actor (spec.md §2, component C7)
// driven by an inbound event queue. It owns one Tracker exclusively; all
// state mutations are serialized by this loop, so no locking is required
// (spec.md §5).
type Subsystem struct {
	tracker     *Tracker
	bridge      NetworkBridge
	runtime     RuntimeAPI
	provisioner Provisioner

	events chan Event
	logger *zap.SugaredLogger
}

// NewSubsystem wires a Subsystem against its three external collaborators.
// eventBuffer sizes the inbound queue; the teacher's peer broadcast
// channels (node/cn/peer.go's queuedTxs/queuedProps) use small fixed
// buffers for the same reason: bound memory, let the producer observe
// backpressure rather than grow unbounded.
func NewSubsystem(bridge NetworkBridge, runtime RuntimeAPI, provisioner Provisioner, eventBuffer int) *Subsystem {
	return &Subsystem{
		tracker:     NewTracker(),
		bridge:      bridge,
		runtime:     runtime,
		provisioner: provisioner,
		events:      make(chan Event, eventBuffer),
		logger:      klog.NewModuleLogger(klog.Subsystem),
	}
}

// Submit enqueues an event for processing. It is the only thread-safe
// entry point into the Subsystem from outside its own goroutine.
func (s *Subsystem) Submit(ev Event) {
	s.events <- ev
}

// Tracker exposes the Subsystem's Tracker for observation in tests; no
// other code should mutate it concurrently with Run.
func (s *Subsystem) Tracker() *Tracker { return s.tracker }

// Run registers the protocol with the network bridge, then processes
// events to completion, one at a time, until ctx is cancelled, a Conclude
// event is handled, or a runtime-API failure at StartWork terminates the
// loop (spec.md §4.1, §5, §7: "we cannot safely operate on a relay parent
// whose validator set we could not fetch").
func (s *Subsystem) Run(ctx context.Context) error {
	s.bridge.RegisterEventProducer(ProtocolName, func(e NetworkBridgeEvent) {
		s.Submit(NetworkBridgeUpdate{Event: e})
	})

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-s.events:
			if !ok {
				return nil
			}
			terminate, err := s.handle(ctx, ev)
			if err != nil {
				return err
			}
			if terminate {
				return nil
			}
		}
	}
}

// handle dispatches a single event to completion. It returns a non-nil
// error only for the class of failure spec.md §7 says must terminate the
// subsystem (runtime-API failure at StartWork); every other fault is
// handled in place (peer faults become reputation reports, orchestrator
// contract violations are logged and dropped).
func (s *Subsystem) handle(ctx context.Context, ev Event) (terminate bool, err error) {
	switch e := ev.(type) {
	case StartWork:
		if err := s.handleStartWork(ctx, e.RelayParent); err != nil {
			return true, err
		}
	case StopWork:
		s.tracker.StopWork(e.RelayParent)
	case Conclude:
		s.tracker.ConcludeClear()
		return true, nil
	case DistributeBitfield:
		s.handleDistributeBitfield(e.RelayParent, e.Signed)
	case NetworkBridgeUpdate:
		s.handleBridgeEvent(e.Event)
	}
	return false, nil
}

// handleStartWork issues the two runtime-API requests (Validators,
// SigningContext) and awaits both before inserting the relay-parent
// entry. This is blocking by design (spec.md §5): no other event is
// processed while awaiting. A failure from either request is propagated
// to Run and terminates the subsystem (spec.md §7).
func (s *Subsystem) handleStartWork(ctx context.Context, relayParent common.Hash) error {
	validators, err := s.runtime.Validators(ctx, relayParent)
	if err != nil {
		return errors.Wrapf(err, "runtime API Validators request failed for relay parent %s", relayParent.Hex())
	}
	signingCtx, err := s.runtime.SigningContext(ctx, relayParent)
	if err != nil {
		return errors.Wrapf(err, "runtime API SigningContext request failed for relay parent %s", relayParent.Hex())
	}
	s.tracker.StartWork(relayParent, signingCtx, validators)
	return nil
}

func (s *Subsystem) handleDistributeBitfield(relayParent common.Hash, signed SignedAvailabilityBitfield) {
	data, ok := s.tracker.RelayParentData(relayParent)
	if !ok {
		s.logger.Warnw("orchestrator contract violation", "relayParent", relayParent.Hex(), "err", errDistributeUnknownRelayParent)
		return
	}
	validator, ok := data.ValidatorAt(signed.ValidatorIndex())
	if !ok {
		s.logger.Warnw("orchestrator contract violation", "relayParent", relayParent.Hex(), "index", signed.ValidatorIndex(), "err", errDistributeBadValidatorIndex)
		return
	}
	if data.HasSeen(validator) {
		return
	}
	msg := BitfieldGossipMessage{RelayParent: relayParent, SignedAvailability: signed}
	data.onePerValidator[validator] = msg
	if err := relay(s.tracker, msg, validator, s.bridge, s.provisioner); err != nil {
		s.logger.Warnw("relay failed for locally distributed bitfield", "relayParent", relayParent.Hex(), "err", err)
	}
}

func (s *Subsystem) handleBridgeEvent(e NetworkBridgeEvent) {
	switch ev := e.(type) {
	case PeerConnected:
		peerConnected(s.tracker, ev.Peer)
	case PeerDisconnected:
		peerDisconnected(s.tracker, ev.Peer)
	case OurViewChange:
		ourViewChange(s.tracker, ev.View, s.logger)
	case PeerViewChange:
		peerViewChange(s.tracker, ev.Peer, ev.View, s.bridge)
	case PeerMessage:
		handlePeerMessage(s.tracker, ev.Peer, ev.Bytes, s.bridge, s.provisioner, s.logger)
	}
}
