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

// Package log provides the module-scoped logger used across this
// repository, following the call-site shape of klaytn's own internal log
// package (`logger = log.NewModuleLogger(log.SomeModule)`, then
// `logger.Warn("message", "key", value, ...)`). That package is an internal
// klaytn dependency not carried by this module; its shape maps onto the
// key-value methods of zap's SugaredLogger (Warnw, Infow, ...), zap being
// the teacher's actual third-party logging dependency, so NewModuleLogger
// is built on top of zap directly.
package log

import (
	"sync"

	"go.uber.org/zap"
)

// Module names, mirroring the teacher's log.Common / log.ConsensusIstanbulBackend
// constants used to tag every module logger.
const (
	Bitfield   = "BITFIELD"
	Subsystem  = "SUBSYSTEM"
	Tracker    = "TRACKER"
	NetBridge  = "NETBRIDGE"
	Crypto     = "CRYPTO"
	CommandCLI = "CMD"
)

var (
	baseOnce sync.Once
	base     *zap.Logger
)

func rootLogger() *zap.Logger {
	baseOnce.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.DisableStacktrace = true
		l, err := cfg.Build()
		if err != nil {
			l = zap.NewNop()
		}
		base = l
	})
	return base
}

// NewModuleLogger returns a logger scoped to module, with every call tagged
// by a "module" field, the way the teacher tags every log line with the
// originating component.
func NewModuleLogger(module string) *zap.SugaredLogger {
	return rootLogger().Sugar().With("module", module)
}
