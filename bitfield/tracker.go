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
	"github.com/klaytn/bitfield-distribution/common"
	"github.com/klaytn/bitfield-distribution/crypto"
)

// PerRelayParentData is the relay-parent-scoped slice of gossip state
// (spec.md §3, component C1): the signing context and validator set
// fixed at creation, the first-seen bitfield per validator, and which
// validators' bitfields have been forwarded to which peers.
type PerRelayParentData struct {
	SigningContext crypto.SigningContext
	ValidatorSet   []crypto.ValidatorID

	onePerValidator  map[crypto.ValidatorID]BitfieldGossipMessage
	messageSentToPeer map[crypto.PeerID]map[crypto.ValidatorID]struct{}

	indexOf map[crypto.ValidatorID]int
}

func newPerRelayParentData(ctx crypto.SigningContext, validatorSet []crypto.ValidatorID) *PerRelayParentData {
	idx := make(map[crypto.ValidatorID]int, len(validatorSet))
	for i, v := range validatorSet {
		idx[v] = i
	}
	return &PerRelayParentData{
		SigningContext:    ctx,
		ValidatorSet:      validatorSet,
		onePerValidator:   make(map[crypto.ValidatorID]BitfieldGossipMessage),
		messageSentToPeer: make(map[crypto.PeerID]map[crypto.ValidatorID]struct{}),
		indexOf:           idx,
	}
}

// ValidatorAt returns the validator at index i and whether i is in bounds.
func (d *PerRelayParentData) ValidatorAt(i uint32) (crypto.ValidatorID, bool) {
	if int(i) >= len(d.ValidatorSet) {
		return crypto.ValidatorID{}, false
	}
	return d.ValidatorSet[i], true
}

// IndexOf returns v's position in the validator set.
func (d *PerRelayParentData) IndexOf(v crypto.ValidatorID) (int, bool) {
	i, ok := d.indexOf[v]
	return i, ok
}

// HasSeen reports whether a message signed by v has already been accepted
// for this relay parent (invariant 2, first-seen-wins).
func (d *PerRelayParentData) HasSeen(v crypto.ValidatorID) bool {
	_, ok := d.onePerValidator[v]
	return ok
}

// messageFromValidatorNeededByPeer is C1's sole query (spec.md §4.2):
// true iff the peer's sent-set doesn't yet contain v.
//
// Per SPEC_FULL.md open-question decision #2, a peer with no sent-set
// entry at all is treated as needing every validator's message ("no
// entry" means "nothing sent", hence "needed") rather than the source's
// original false-on-missing policy, which would otherwise make the very
// first catch-up send to a newly connected peer never fire.
func (d *PerRelayParentData) messageFromValidatorNeededByPeer(peer crypto.PeerID, v crypto.ValidatorID) bool {
	sent, ok := d.messageSentToPeer[peer]
	if !ok {
		return true
	}
	_, already := sent[v]
	return !already
}

// markSent records that v's message for this relay parent has been (or is
// being) forwarded to peer, creating the peer's sent-set if needed.
func (d *PerRelayParentData) markSent(peer crypto.PeerID, v crypto.ValidatorID) {
	sent, ok := d.messageSentToPeer[peer]
	if !ok {
		sent = make(map[crypto.ValidatorID]struct{})
		d.messageSentToPeer[peer] = sent
	}
	sent[v] = struct{}{}
}

// Tracker is the process-wide gossip state (spec.md §3, component C2):
// our view, one View per connected peer, and the map of active relay
// parents to their PerRelayParentData. The subsystem actor owns a single
// Tracker exclusively; no locking is required (spec.md §5).
type Tracker struct {
	view           common.View
	peerViews      map[crypto.PeerID]common.View
	perRelayParent map[common.Hash]*PerRelayParentData
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		view:           common.NewView(nil),
		peerViews:      make(map[crypto.PeerID]common.View),
		perRelayParent: make(map[common.Hash]*PerRelayParentData),
	}
}

// View returns our current view.
func (t *Tracker) View() common.View { return t.view }

// PeerView returns the last-known view of peer and whether peer is known.
func (t *Tracker) PeerView(peer crypto.PeerID) (common.View, bool) {
	v, ok := t.peerViews[peer]
	return v, ok
}

// RelayParentData returns the gossip state for relayParent, if it is in
// our working set.
func (t *Tracker) RelayParentData(relayParent common.Hash) (*PerRelayParentData, bool) {
	d, ok := t.perRelayParent[relayParent]
	return d, ok
}

// StartWork inserts a fresh PerRelayParentData for relayParent, replacing
// any prior entry (spec.md §4.1: "If h is already present, the prior
// entry is replaced"). Invariant 1 is maintained by the caller only
// calling this for relay parents the orchestrator asked us to work on.
func (t *Tracker) StartWork(relayParent common.Hash, ctx crypto.SigningContext, validatorSet []crypto.ValidatorID) {
	t.perRelayParent[relayParent] = newPerRelayParentData(ctx, validatorSet)
}

// StopWork removes relayParent from the working set.
func (t *Tracker) StopWork(relayParent common.Hash) {
	delete(t.perRelayParent, relayParent)
}

// ConcludeClear fully clears the Tracker (spec.md §3 lifecycle, "On
// Conclude, the Tracker is fully cleared").
func (t *Tracker) ConcludeClear() {
	t.view = common.NewView(nil)
	t.peerViews = make(map[crypto.PeerID]common.View)
	t.perRelayParent = make(map[common.Hash]*PerRelayParentData)
}

// IsEmpty reports whether the Tracker holds no state, used to verify
// invariant 6 after Conclude.
func (t *Tracker) IsEmpty() bool {
	return t.view.Len() == 0 && len(t.peerViews) == 0 && len(t.perRelayParent) == 0
}
