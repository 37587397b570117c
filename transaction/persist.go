// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/binary"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/merkle"
	"github.com/bitmark-inc/ledgertx/storage"
)

// row layout in the transactions pool
const (
	ledgerOffset    = 0
	statusOffset    = ledgerOffset + 8
	senderOffset    = statusOffset + 1
	senderSeqOffset = senderOffset + account.AccountIDLength
	packedOffset    = senderSeqOffset + 8

	initialReadBufferSize = 2048
)

// Save - store the transaction if its id is not already present
//
// false for Invalid or Removed, for an existing row or if the write
// fails; an existing row is never changed
func (t *Transaction) Save(handle storage.Handle) bool {
	t.RLock()
	status := t.status
	inLedger := t.inLedger
	id := t.id
	source := t.source
	if status.IsTerminal() || nil == t.record {
		t.RUnlock()
		return false
	}
	packed := t.record.Pack()
	sequence := t.record.Sequence()
	t.RUnlock()

	row := make([]byte, packedOffset, packedOffset+len(packed))
	binary.BigEndian.PutUint64(row[ledgerOffset:], uint64(inLedger))
	row[statusOffset] = status.Code()
	copy(row[senderOffset:], source[:])
	binary.BigEndian.PutUint64(row[senderSeqOffset:], uint64(sequence))
	row = append(row, packed...)

	indexKey := senderKey(source, sequence)

	trx := handle.Begin()
	defer trx.Abort()

	if trx.Has(storage.Pool.Transactions, id[:]) {
		debugf("save: %s  already stored", id)
		return false
	}

	trx.Put(storage.Pool.Transactions, id[:], row)

	// first transaction for a sender and sequence keeps the index
	if !trx.Has(storage.Pool.SenderIndex, indexKey) {
		trx.Put(storage.Pool.SenderIndex, indexKey, id[:])
	}

	if err := trx.Commit(); nil != err {
		errorf("save: %s  error: %s", id, err)
		return false
	}
	debugf("save: %s  status: %s  ledger: %d", id, status, inLedger)
	return true
}

// Load - fetch a stored transaction by id, nil if absent
func Load(handle storage.Handle, id merkle.Digest) *Transaction {
	trx := handle.Begin()
	defer trx.Abort()

	return loadRow(trx, id)
}

// FindFrom - fetch a stored transaction by sender and sequence, nil if absent
func FindFrom(handle storage.Handle, source account.AccountID, sequence uint32) *Transaction {
	trx := handle.Begin()
	defer trx.Abort()

	idBytes := trx.Get(storage.Pool.SenderIndex, senderKey(source, sequence))
	if nil == idBytes {
		return nil
	}

	id := merkle.Digest{}
	if err := merkle.DigestFromBytes(&id, idBytes); nil != err {
		criticalf("sender index: %s  sequence: %d  corrupt id: %x", source, sequence, idBytes)
		return nil
	}
	return loadRow(trx, id)
}

// read a row and rebuild the transaction, validating its signature
func loadRow(trx storage.Transaction, id merkle.Digest) *Transaction {
	buffer := make([]byte, initialReadBufferSize)
	length, found := trx.ReadInto(storage.Pool.Transactions, id[:], buffer)
	if !found {
		return nil
	}
	if length > len(buffer) {
		buffer = make([]byte, length)
		length, found = trx.ReadInto(storage.Pool.Transactions, id[:], buffer)
		if !found || length > len(buffer) {
			criticalf("load: %s  row changed while reading", id)
			return nil
		}
	}
	return FromRow(id, buffer[:length])
}

// FromRow - rebuild a transaction from a stored row, validating its signature
//
// nil if the row is too short to hold the header
func FromRow(id merkle.Digest, row []byte) *Transaction {
	if len(row) < packedOffset {
		criticalf("load: %s  truncated row: %x", id, row)
		return nil
	}

	inLedger := uint32(binary.BigEndian.Uint64(row[ledgerOffset:]))
	status, ok := StatusFromCode(row[statusOffset])
	if !ok {
		criticalf("load: %s  unexpected status code: %q", id, row[statusOffset])
	}

	t, err := FromPacked(row[packedOffset:], true)
	if nil != err {
		warnf("load: %s  stored transaction is invalid: %s", id, err)
	}

	// an invalid rebuild stays invalid but keeps its ledger
	if err := t.SetStatus(status, inLedger); nil != err {
		_ = t.SetStatus(t.Status(), inLedger)
	}
	return t
}

// index key: sender ++ BE uint64(sequence)
func senderKey(source account.AccountID, sequence uint32) []byte {
	key := make([]byte, account.AccountIDLength+8)
	copy(key, source[:])
	binary.BigEndian.PutUint64(key[account.AccountIDLength:], uint64(sequence))
	return key
}
