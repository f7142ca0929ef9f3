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

import "errors"

// Sentinel errors, in the teacher's style of package-level error values
// rather than ad-hoc fmt.Errorf at every call site (node/cn/peer.go:
// errClosed, errAlreadyRegistered, errNotRegistered).
var (
	// errDistributeUnknownRelayParent is an orchestrator contract
	// violation (spec.md §4.1, §7): DistributeBitfield was issued for a
	// relay parent we were never asked to work on. It is logged at warn
	// level and the event is dropped; the actor does not crash.
	errDistributeUnknownRelayParent = errors.New("bitfield: DistributeBitfield for unknown relay parent")

	// errDistributeBadValidatorIndex is an orchestrator contract
	// violation: the locally-produced bitfield's validator index does
	// not resolve within the relay parent's validator set.
	errDistributeBadValidatorIndex = errors.New("bitfield: DistributeBitfield validator index out of bounds")
)
