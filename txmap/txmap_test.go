// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txmap_test

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/amount"
	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/merkle"
	"github.com/bitmark-inc/ledgertx/transaction"
	"github.com/bitmark-inc/ledgertx/transactionrecord"
	"github.com/bitmark-inc/ledgertx/txmap"
	"github.com/bitmark-inc/logger"
)

var key = makeKey("95b5a80b4cdbe61c0f3f72cc152d4a4f29bcfd39c9a67e2c7bc6e0e14ec7c7ba")

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "txmap-test")
	if nil != err {
		panic(err)
	}
	_ = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "test.log",
		Size:      50000,
		Count:     10,
	})
	_ = transaction.Initialise()

	rc := m.Run()

	_ = transaction.Finalise()
	logger.Finalise()
	_ = os.RemoveAll(dir)
	os.Exit(rc)
}

func makeKey(seedHex string) *account.PrivateKey {
	seed, err := hex.DecodeString(seedHex)
	if nil != err {
		panic(err)
	}
	k, err := account.PrivateKeyFromSeed(seed)
	if nil != err {
		panic(err)
	}
	return k
}

func cancel(sequence uint32) transactionrecord.Packed {
	acc := key.Account()
	header := transactionrecord.Header{
		SigningKey: acc,
		Source:     acc.AccountID(),
		Sequence:   sequence,
		Fee:        amount.Native(10),
	}
	return transaction.NewOfferCancel(header, key, transactionrecord.OfferCancel{OfferSequence: sequence - 1}).Packed()
}

func TestAddGet(t *testing.T) {
	m := txmap.New()
	packed := cancel(2)

	id, err := m.Add(packed)
	require.Nil(t, err, "add")
	assert.Equal(t, packed.MakeLink(), id, "id")

	e, ok := m.Get(id)
	require.True(t, ok, "get")
	assert.Equal(t, []byte(packed), e.Data(), "data")

	_, err = m.Add(packed)
	assert.Equal(t, fault.ErrDuplicateKey, err, "duplicate")
	assert.Equal(t, 1, m.Len(), "length")

	_, ok = m.Get(merkle.Digest{})
	assert.False(t, ok, "missing")
}

func TestKeysSorted(t *testing.T) {
	m := txmap.New()
	for i := uint32(1); i <= 5; i += 1 {
		_, err := m.Add(cancel(i))
		require.Nil(t, err, "add")
	}
	keys := m.Keys()
	require.Len(t, keys, 5, "keys")
	for i := 1; i < len(keys); i += 1 {
		assert.True(t, keys[i-1].Compare(keys[i]) < 0, "ascending at: %d", i)
	}
}

func TestRoot(t *testing.T) {
	a := txmap.New()
	b := txmap.New()
	assert.True(t, a.Root().IsZero(), "empty root")

	p1 := cancel(1)
	p2 := cancel(2)

	_, _ = a.Add(p1)
	_, _ = a.Add(p2)
	_, _ = b.Add(p2)
	_, _ = b.Add(p1)
	assert.Equal(t, a.Root(), b.Root(), "insertion order does not matter")

	c := txmap.New()
	_, _ = c.Add(p1)
	require.Nil(t, c.AddWithKey(p2.MakeLink(), p1), "damaged entry")
	assert.NotEqual(t, a.Root(), c.Root(), "content is covered")
}

func TestDiff(t *testing.T) {
	p1 := cancel(1)
	p2 := cancel(2)
	p3 := cancel(3)

	first := txmap.New()
	second := txmap.New()

	_, _ = first.Add(p1)
	_, _ = first.Add(p2)
	_, _ = second.Add(p2)
	_, _ = second.Add(p3)

	diff := first.Diff(second)
	require.Len(t, diff, 2, "differences")

	d1 := diff[p1.MakeLink()]
	assert.Equal(t, []byte(p1), d1.First.Data(), "first only")
	assert.Nil(t, d1.Second, "first only")

	d3 := diff[p3.MakeLink()]
	assert.Nil(t, d3.First, "second only")
	assert.Equal(t, []byte(p3), d3.Second.Data(), "second only")

	_, same := diff[p2.MakeLink()]
	assert.False(t, same, "identical entry omitted")

	assert.Len(t, first.Diff(first), 0, "self")
}

// opposite order comparisons racing with writers must all finish
func TestDiffBothDirections(t *testing.T) {
	first := txmap.New()
	second := txmap.New()
	_, _ = first.Add(cancel(1))
	_, _ = second.Add(cancel(2))

	const rounds = 200

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i += 1 {
			first.Diff(second)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i += 1 {
			second.Diff(first)
		}
	}()
	go func() {
		defer wg.Done()
		for i := uint32(0); i < rounds; i += 1 {
			_ = first.AddWithKey(merkle.Digest{0: 1, 1: byte(i), 2: byte(i >> 8)}, []byte{1})
		}
	}()
	go func() {
		defer wg.Done()
		for i := uint32(0); i < rounds; i += 1 {
			_ = second.AddWithKey(merkle.Digest{0: 2, 1: byte(i), 2: byte(i >> 8)}, []byte{2})
		}
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("diff did not finish")
	}

	assert.Len(t, first.Diff(second), 2+2*rounds, "differences")
}

func TestDiffReconcile(t *testing.T) {
	p1 := cancel(1)
	p2 := cancel(2)

	first := txmap.New()
	second := txmap.New()
	_, _ = first.Add(p1)
	_, _ = second.Add(p2)

	out := map[merkle.Digest]transaction.Pair{}
	err := transaction.ConvertToTransactions(7, 8, true, true, first.Diff(second), out)
	require.Nil(t, err, "convert")
	require.Len(t, out, 2, "pairs")

	assert.Equal(t, uint32(7), out[p1.MakeLink()].First.InLedger(), "first ledger")
	assert.Equal(t, uint32(8), out[p2.MakeLink()].Second.InLedger(), "second ledger")

	// same key with different content on each side
	damaged := txmap.New()
	require.Nil(t, damaged.AddWithKey(p1.MakeLink(), p2), "damaged")
	out = map[merkle.Digest]transaction.Pair{}
	err = transaction.ConvertToTransactions(7, 8, true, true, first.Diff(damaged), out)
	assert.Equal(t, fault.ErrLedgerEntryMismatch, err, "mismatch")
}
