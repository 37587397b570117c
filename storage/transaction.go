// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Transaction - exclusive access to the database
//
// Commit and Abort release the lock, after either one further calls
// to Commit or Abort do nothing
type Transaction interface {
	Has(*PoolHandle, []byte) bool
	Get(*PoolHandle, []byte) []byte
	ReadInto(*PoolHandle, []byte, []byte) (int, bool)
	Put(*PoolHandle, []byte, []byte)
	Commit() error
	Abort()
}

// Handle - a source of transactions
type Handle interface {
	Begin() Transaction
}

// TransactionImpl - transaction holding the database lock
type TransactionImpl struct {
	database *Database
	access   Access
	done     bool
}

// Has - check if a key exists
func (t *TransactionImpl) Has(pool *PoolHandle, key []byte) bool {
	t.mustBeOpen()
	found, err := t.access.Has(pool.prefixKey(key))
	logger.PanicIfError("storage.Has", err)
	return found
}

// Get - read a value, nil if not found
//
// the result is a copy
func (t *TransactionImpl) Get(pool *PoolHandle, key []byte) []byte {
	t.mustBeOpen()
	value, err := t.access.Get(pool.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("storage.Get", err)
	return append([]byte{}, value...)
}

// ReadInto - copy as much of a value as fits into buffer
//
// returns the full length of the stored value so the caller can retry
// with a larger buffer, second result is false if not found
func (t *TransactionImpl) ReadInto(pool *PoolHandle, key []byte, buffer []byte) (int, bool) {
	t.mustBeOpen()
	value, err := t.access.Get(pool.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return 0, false
	}
	logger.PanicIfError("storage.ReadInto", err)
	copy(buffer, value)
	return len(value), true
}

// Put - queue a write
func (t *TransactionImpl) Put(pool *PoolHandle, key []byte, value []byte) {
	t.mustBeOpen()
	t.access.Put(pool.prefixKey(key), value)
}

// Commit - write queued operations and release the lock
func (t *TransactionImpl) Commit() error {
	if t.done {
		return nil
	}
	t.done = true
	err := t.access.Commit()
	t.database.Unlock()
	return err
}

// Abort - discard queued operations and release the lock
func (t *TransactionImpl) Abort() {
	if t.done {
		return
	}
	t.done = true
	t.access.Abort()
	t.database.Unlock()
}

func (t *TransactionImpl) mustBeOpen() {
	if t.done {
		logger.Panic("storage: transaction already finished")
	}
}
