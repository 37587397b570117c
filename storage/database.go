// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/logger"
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Database - an open LevelDB with a single writer lock
type Database struct {
	sync.Mutex
	db     *leveldb.DB
	access Access
}

// Open - open or create a database directory
func Open(name string, readOnly bool) (*Database, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}
	return setup(db, readOnly)
}

// OpenMemory - a database that lives only in memory
func OpenMemory() (*Database, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, ReadWrite)
}

func setup(db *leveldb.DB, readOnly bool) (*Database, error) {
	version, err := getVersion(db)
	if nil != err {
		db.Close()
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		db.Close()
		return nil, fault.ErrIncompatibleVersion
	}

	if 0 == version && !readOnly {
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			db.Close()
			return nil, err
		}
	} else if version != currentDBVersion {
		logger.Criticalf("database version: %d  current: %d", version, currentDBVersion)
		db.Close()
		return nil, fault.ErrIncompatibleVersion
	}

	return &Database{
		db:     db,
		access: newDA(db, new(leveldb.Batch), newCache()),
	}, nil
}

// Close - close the database
func (d *Database) Close() {
	d.Lock()
	defer d.Unlock()
	if nil != d.db {
		d.db.Close()
		d.db = nil
	}
}

// Begin - take the database lock and start a transaction
func (d *Database) Begin() Transaction {
	d.Lock()
	if nil == d.db {
		d.Unlock()
		logger.Panic("storage: database is closed")
	}
	return &TransactionImpl{
		database: d,
		access:   d.access,
	}
}

// Iterate - visit every element of a pool in key order
//
// the prefix is removed from the key; both slices are copies; return
// false from the callback to stop early
func (d *Database) Iterate(pool *PoolHandle, callback func(key []byte, value []byte) bool) error {
	searchRange := ldb_util.Range{
		Start: []byte{pool.prefix}, // Start of key range, included in the range
		Limit: pool.limit,          // Limit of key range, excluded from the range
	}

	d.Lock()
	defer d.Unlock()
	if nil == d.db {
		return fault.ErrDatabaseIsNotSet
	}

	iter := d.access.Iterator(&searchRange)
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		if !callback(dataKey, dataValue) {
			break
		}
	}
	iter.Release()
	return iter.Error()
}

// return the version number, zero for an empty database
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
