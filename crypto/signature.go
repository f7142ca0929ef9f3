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

package crypto

import (
	"encoding/binary"

	"golang.org/x/crypto/ed25519"

	"github.com/klaytn/bitfield-distribution/common"
)

// SignatureLength is the size in bytes of an ed25519 signature.
const SignatureLength = ed25519.SignatureSize

// Signature is an opaque signed payload's signature bytes.
type Signature [SignatureLength]byte

// SigningContext is mixed into every signature so a signature cannot replay
// across sessions or forks (spec.md GLOSSARY).
type SigningContext struct {
	SessionIndex uint64
	ParentHash   common.Hash
}

// signedMessage builds the byte string that is actually signed: the
// signing context followed by the raw bitmap. The validator index is
// deliberately excluded — it identifies which key to verify against, it is
// not itself part of what the key attests to.
func signedMessage(ctx SigningContext, bitmap []byte) []byte {
	buf := make([]byte, 8+common.HashLength+len(bitmap))
	binary.BigEndian.PutUint64(buf[:8], ctx.SessionIndex)
	copy(buf[8:8+common.HashLength], ctx.ParentHash[:])
	copy(buf[8+common.HashLength:], bitmap)
	return buf
}

// GenerateKey returns a fresh ed25519 keypair, exposed mainly for tests
// that need to construct valid signed bitfields.
func GenerateKey() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	return ed25519.GenerateKey(nil)
}

// Sign produces a Signature over bitmap under the given signing context.
func Sign(priv ed25519.PrivateKey, ctx SigningContext, bitmap []byte) Signature {
	var sig Signature
	copy(sig[:], ed25519.Sign(priv, signedMessage(ctx, bitmap)))
	return sig
}

// Verify checks sig against bitmap signed under ctx by the holder of pub.
// This is the sole piece of cryptographic verification the bitfield
// distribution subsystem performs; spec.md §1 places the definition of
// signature verification itself out of scope, but some concrete
// implementation is required to exercise the decision ladder in C4.
func Verify(pub ValidatorID, ctx SigningContext, bitmap []byte, sig Signature) bool {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), signedMessage(ctx, bitmap), sig[:])
}
