// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/merkle"
	"github.com/bitmark-inc/ledgertx/transaction"
)

type rawItem []byte

func (item rawItem) Data() []byte {
	return item
}

func itemOf(tx *transaction.Transaction) rawItem {
	return rawItem(tx.Packed())
}

func TestReconcileOneSided(t *testing.T) {
	a := makePayment(1, 10)
	b := makePayment(2, 20)

	in := map[merkle.Digest]transaction.DiffEntry{
		a.Id(): {First: itemOf(a)},
		b.Id(): {Second: itemOf(b)},
	}
	out := map[merkle.Digest]transaction.Pair{}

	err := transaction.ConvertToTransactions(100, 101, true, true, in, out)
	require.Nil(t, err, "convert")
	require.Len(t, out, 2, "pairs")

	pa := out[a.Id()]
	require.NotNil(t, pa.First, "a first")
	assert.Nil(t, pa.Second, "a second")
	assert.Equal(t, transaction.Included, pa.First.Status(), "a status")
	assert.Equal(t, uint32(100), pa.First.InLedger(), "a ledger")

	pb := out[b.Id()]
	assert.Nil(t, pb.First, "b first")
	require.NotNil(t, pb.Second, "b second")
	assert.Equal(t, transaction.Included, pb.Second.Status(), "b status")
	assert.Equal(t, uint32(101), pb.Second.InLedger(), "b ledger")
}

func TestReconcileEmpty(t *testing.T) {
	out := map[merkle.Digest]transaction.Pair{}
	err := transaction.ConvertToTransactions(1, 2, true, true, map[merkle.Digest]transaction.DiffEntry{}, out)
	assert.Nil(t, err, "convert")
	assert.Len(t, out, 0, "pairs")
}

func TestReconcileInvalidEntry(t *testing.T) {
	garbage := rawItem{0x01, 0x02}
	key := merkle.NewDigest(garbage)

	in := map[merkle.Digest]transaction.DiffEntry{
		key: {Second: garbage},
	}
	out := map[merkle.Digest]transaction.Pair{}

	err := transaction.ConvertToTransactions(1, 2, true, true, in, out)
	assert.Equal(t, fault.ErrLedgerEntryInvalid, err, "error")
	assert.Len(t, out, 0, "pairs")
}

func TestReconcileLongFormEntry(t *testing.T) {
	a := makePayment(1, 10)
	widened := rawItem(longFormFirstTag(t, a.Packed()))
	key := merkle.NewDigest(widened)

	in := map[merkle.Digest]transaction.DiffEntry{
		key: {First: widened},
	}
	out := map[merkle.Digest]transaction.Pair{}

	err := transaction.ConvertToTransactions(1, 2, false, false, in, out)
	assert.Equal(t, fault.ErrLedgerEntryInvalid, err, "error")
	assert.Len(t, out, 0, "pairs")
}

func TestReconcileUncheckedSignature(t *testing.T) {
	// signed by the wrong key; only fatal when checked
	header := headerFor(senderKey, 4)
	bad := makePayment(4, 1)
	require.True(t, bad.Sign(receiverKey), "re-sign")
	require.Equal(t, header.Source, bad.Source(), "source")

	in := map[merkle.Digest]transaction.DiffEntry{
		bad.Id(): {First: itemOf(bad)},
	}

	out := map[merkle.Digest]transaction.Pair{}
	assert.Nil(t, transaction.ConvertToTransactions(1, 2, false, true, in, out), "unchecked")
	assert.Len(t, out, 1, "pairs")

	out = map[merkle.Digest]transaction.Pair{}
	assert.Equal(t, fault.ErrLedgerEntryInvalid, transaction.ConvertToTransactions(1, 2, true, true, in, out), "checked")
}

func TestReconcileKeyMismatch(t *testing.T) {
	a := makePayment(1, 10)
	b := makePayment(2, 20)

	in := map[merkle.Digest]transaction.DiffEntry{
		a.Id(): {First: itemOf(b)},
	}
	out := map[merkle.Digest]transaction.Pair{}

	err := transaction.ConvertToTransactions(1, 2, true, true, in, out)
	assert.Equal(t, fault.ErrLedgerEntryMismatch, err, "error")
	assert.Len(t, out, 0, "pairs")
}

func TestReconcileBothSides(t *testing.T) {
	a := makePayment(1, 10)

	in := map[merkle.Digest]transaction.DiffEntry{
		a.Id(): {First: itemOf(a), Second: itemOf(a)},
	}
	out := map[merkle.Digest]transaction.Pair{}

	err := transaction.ConvertToTransactions(1, 2, true, true, in, out)
	assert.Equal(t, fault.ErrBothSidesValid, err, "error")
	assert.True(t, fault.IsErrConflict(err), "conflict class")
	assert.Len(t, out, 0, "pairs")
}

func TestReconcileNeitherSide(t *testing.T) {
	in := map[merkle.Digest]transaction.DiffEntry{
		{0x01}: {},
	}
	out := map[merkle.Digest]transaction.Pair{}

	err := transaction.ConvertToTransactions(1, 2, true, true, in, out)
	assert.Equal(t, fault.ErrEmptyDiffEntry, err, "error")
}

func TestReconcileStopsAtFirstProblem(t *testing.T) {
	a := makePayment(1, 10)
	b := makePayment(2, 20)

	low, high := a, b
	if a.Id().Compare(b.Id()) > 0 {
		low, high = b, a
	}

	// lower key converts, higher key fails
	in := map[merkle.Digest]transaction.DiffEntry{
		low.Id():  {First: itemOf(low)},
		high.Id(): {First: itemOf(high), Second: itemOf(high)},
	}
	out := map[merkle.Digest]transaction.Pair{}

	err := transaction.ConvertToTransactions(1, 2, true, true, in, out)
	assert.Equal(t, fault.ErrBothSidesValid, err, "error")
	assert.Len(t, out, 1, "partial output")
	_, ok := out[low.Id()]
	assert.True(t, ok, "lower key converted")
}
