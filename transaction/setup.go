// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"sync"

	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/logger"
)

type globalDataType struct {
	sync.RWMutex // to allow locking

	log *logger.L

	// set once during initialise
	initialised bool
}

var globalData globalDataType

// Initialise - start the logging channel
//
// before this is called nothing is logged
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("transaction")
	if nil == globalData.log {
		return fault.ErrInvalidLoggerChannel
	}
	globalData.log.Info("starting…")

	globalData.initialised = true
	return nil
}

// Finalise - stop logging
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	globalData.log = nil
	return nil
}

func channel() *logger.L {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.log
}

func debugf(format string, arguments ...interface{}) {
	if log := channel(); nil != log {
		log.Debugf(format, arguments...)
	}
}

func warnf(format string, arguments ...interface{}) {
	if log := channel(); nil != log {
		log.Warnf(format, arguments...)
	}
}

func errorf(format string, arguments ...interface{}) {
	if log := channel(); nil != log {
		log.Errorf(format, arguments...)
	}
}

func criticalf(format string, arguments ...interface{}) {
	if log := channel(); nil != log {
		log.Criticalf(format, arguments...)
	}
}
