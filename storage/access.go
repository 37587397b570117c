// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// Access - batched writes over a database with read-your-writes
type Access interface {
	Abort()
	Commit() error
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

// AccessData - Access over a LevelDB handle
type AccessData struct {
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, batch *leveldb.Batch, cache Cache) Access {
	return &AccessData{
		db:    db,
		batch: batch,
		cache: cache,
	}
}

// Put - queue a write
func (d *AccessData) Put(key []byte, value []byte) {
	v := append([]byte{}, value...)
	d.cache.Set(dbPut, string(key), v)
	d.batch.Put(key, v)
}

// Commit - write all queued operations then reset
func (d *AccessData) Commit() error {
	err := d.db.Write(d.batch, nil)
	d.Abort()
	return err
}

// Get - pending value, else the stored value
//
// returns leveldb.ErrNotFound for a missing key
func (d *AccessData) Get(key []byte) ([]byte, error) {
	value, found := d.cache.Get(string(key))
	if found {
		return value, nil
	}
	return d.db.Get(key, nil)
}

// Has - true if a pending or stored value exists
func (d *AccessData) Has(key []byte) (bool, error) {
	_, found := d.cache.Get(string(key))
	if found {
		return true, nil
	}
	return d.db.Has(key, nil)
}

// Iterator - over stored values only
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

// Abort - drop all queued operations
func (d *AccessData) Abort() {
	d.batch.Reset()
	d.cache.Clear()
}
