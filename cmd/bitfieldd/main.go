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

// Command bitfieldd runs the bitfield distribution subsystem against an
// in-process loopback bridge, for local experimentation and smoke-testing
// outside of a full node build.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/klaytn/bitfield-distribution/bitfield"
	"github.com/klaytn/bitfield-distribution/common"
	"github.com/klaytn/bitfield-distribution/crypto"
	klog "github.com/klaytn/bitfield-distribution/log"
)

var (
	logger = klog.NewModuleLogger(klog.CommandCLI)

	validatorCountFlag = cli.IntFlag{
		Name:  "validators",
		Usage: "number of validators in the demo signing set",
		Value: 4,
	}
	sessionFlag = cli.Uint64Flag{
		Name:  "session",
		Usage: "session index used in the demo signing context",
		Value: 1,
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "bitfieldd"
	app.Usage = "bitfield distribution subsystem demo runner"
	app.Flags = []cli.Flag{validatorCountFlag, sessionFlag}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		logger.Errorw("exiting", "err", err)
		os.Exit(1)
	}
}

// run boots a Subsystem against a loopback bridge and a single demo relay
// parent, signs one bitfield per validator, and feeds them through the
// subsystem as locally produced DistributeBitfield events, then shuts down
// cleanly on Conclude.
func run(ctx *cli.Context) error {
	validatorCount := ctx.Int(validatorCountFlag.Name)
	session := ctx.Uint64(sessionFlag.Name)
	if validatorCount <= 0 {
		return errors.New("validators must be positive")
	}

	keys := make([]ed25519.PrivateKey, validatorCount)
	validators := make([]crypto.ValidatorID, validatorCount)
	for i := range validators {
		pub, priv, err := crypto.GenerateKey()
		if err != nil {
			return errors.Wrap(err, "generating demo validator key")
		}
		keys[i] = priv
		validators[i] = crypto.BytesToValidatorID(pub)
	}

	bridge := newLoopbackBridge()
	runtime := &loopbackRuntime{validators: validators, session: session}
	provisioner := newLoopbackProvisioner()

	sub := bitfield.NewSubsystem(bridge, runtime, provisioner, 16)

	relayParent := common.BytesToHash([]byte("demo-relay-parent"))
	peer := crypto.BytesToPeerID([]byte("demo-peer"))

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sub.Run(runCtx) }()

	sub.Submit(bitfield.NetworkBridgeUpdate{Event: bitfield.PeerConnected{Peer: peer}})
	sub.Submit(bitfield.NetworkBridgeUpdate{Event: bitfield.OurViewChange{View: common.NewView([]common.Hash{relayParent})}})
	sub.Submit(bitfield.NetworkBridgeUpdate{Event: bitfield.PeerViewChange{Peer: peer, View: common.NewView([]common.Hash{relayParent})}})
	sub.Submit(bitfield.StartWork{RelayParent: relayParent})

	signingCtx := crypto.SigningContext{SessionIndex: session, ParentHash: relayParent}
	for i, priv := range keys {
		bitmap := []byte{byte(i + 1)}
		sig := crypto.Sign(priv, signingCtx, bitmap)
		signed := bitfield.SignedAvailabilityBitfield{Bitmap: bitmap, Index: uint32(i), Sig: sig}
		sub.Submit(bitfield.DistributeBitfield{RelayParent: relayParent, Signed: signed})
	}

	sub.Submit(bitfield.Conclude{})

	err := <-done
	cancel()
	if err != nil {
		return fmt.Errorf("subsystem terminated: %w", err)
	}
	logger.Infow("subsystem concluded cleanly")
	return nil
}
