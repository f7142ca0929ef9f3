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

package common

// View is the ordered set of relay parents a node is currently interested
// in. Order reflects however the orchestrator supplied it; membership is
// what callers actually care about, so View keeps a parallel index for O(1)
// lookups the way the teacher's peerSet keeps a map alongside per-type
// slices for fast membership tests (node/cn/peer.go).
type View struct {
	heads []Hash
	index map[Hash]struct{}
}

// NewView builds a View from an ordered slice of relay parents. Duplicates
// are not expected per spec but are tolerated (collapsed in the index).
func NewView(heads []Hash) View {
	idx := make(map[Hash]struct{}, len(heads))
	for _, h := range heads {
		idx[h] = struct{}{}
	}
	return View{heads: heads, index: idx}
}

// Contains reports whether h is one of the view's relay parents.
func (v View) Contains(h Hash) bool {
	_, ok := v.index[h]
	return ok
}

// Heads returns the ordered relay parents of the view. The returned slice
// must not be mutated by the caller.
func (v View) Heads() []Hash { return v.heads }

// Len returns the number of relay parents in the view.
func (v View) Len() int { return len(v.heads) }

// Difference returns the relay parents present in v but not in other,
// preserving v's order. Used by the catch-up engine (bitfield package) to
// compute which relay parents a peer newly cares about.
func (v View) Difference(other View) []Hash {
	var out []Hash
	for _, h := range v.heads {
		if !other.Contains(h) {
			out = append(out, h)
		}
	}
	return out
}
