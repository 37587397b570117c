// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"sort"

	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/merkle"
)

// Item - raw entry of an authenticated map
type Item interface {
	Data() []byte
}

// DiffEntry - the two sides for one key, nil where a side has no entry
type DiffEntry struct {
	First  Item
	Second Item
}

// Pair - rebuilt transactions for one key, nil where a side had no entry
type Pair struct {
	First  *Transaction
	Second *Transaction
}

// ConvertToTransactions - turn a map difference into transaction pairs
//
// keys are processed in ascending order and processing stops at the
// first problem; a nil result means both ledgers are valid, otherwise
// the output is incomplete and must be discarded
func ConvertToTransactions(firstLedgerSeq uint32, secondLedgerSeq uint32,
	checkFirst bool, checkSecond bool,
	in map[merkle.Digest]DiffEntry, out map[merkle.Digest]Pair) error {

	keys := make([]merkle.Digest, 0, len(in))
	for id := range in {
		keys = append(keys, id)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Compare(keys[j]) < 0 })

	for _, id := range keys {
		entry := in[id]

		if nil == entry.First && nil == entry.Second {
			errorf("reconcile: %s  has no entry on either side", id)
			return fault.ErrEmptyDiffEntry
		}

		var first, second *Transaction
		var err error

		if nil != entry.First {
			first, err = includedFrom(entry.First, checkFirst, firstLedgerSeq, id)
			if nil != err {
				return err
			}
		}

		if nil != entry.Second {
			second, err = includedFrom(entry.Second, checkSecond, secondLedgerSeq, id)
			if nil != err {
				return err
			}
		}

		// one or the other map is structurally invalid
		if nil != first && nil != second {
			criticalf("reconcile: %s  valid in ledgers: %d and %d", id, firstLedgerSeq, secondLedgerSeq)
			return fault.ErrBothSidesValid
		}

		out[id] = Pair{
			First:  first,
			Second: second,
		}
	}
	return nil
}

// rebuild one side and mark it for its ledger
func includedFrom(item Item, validate bool, ledgerSeq uint32, id merkle.Digest) (*Transaction, error) {
	t, _ := FromPacked(item.Data(), validate)

	if Invalid == t.Status() {
		_ = t.SetStatus(Invalid, ledgerSeq)
		errorf("reconcile: %s  invalid entry in ledger: %d", id, ledgerSeq)
		return t, fault.ErrLedgerEntryInvalid
	}

	if t.Id() != id {
		_ = t.SetStatus(Invalid, ledgerSeq)
		errorf("reconcile: %s  entry in ledger: %d  has id: %s", id, ledgerSeq, t.Id())
		return t, fault.ErrLedgerEntryMismatch
	}

	_ = t.SetStatus(Included, ledgerSeq)
	return t, nil
}
