// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txmap - authenticated map of transaction id to packed bytes
package txmap

import (
	"bytes"
	"sort"
	"sync"

	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/merkle"
	"github.com/bitmark-inc/ledgertx/transaction"
	"github.com/bitmark-inc/ledgertx/transactionrecord"
)

// Entry - the stored bytes for one key
type Entry []byte

// Data - the packed transaction
func (e Entry) Data() []byte {
	return e
}

// Map - id to packed transaction
type Map struct {
	sync.RWMutex
	entries map[merkle.Digest]Entry
}

// New - empty map
func New() *Map {
	return &Map{
		entries: make(map[merkle.Digest]Entry),
	}
}

// Add - store packed bytes under their own id
func (m *Map) Add(packed transactionrecord.Packed) (merkle.Digest, error) {
	id := packed.MakeLink()
	return id, m.AddWithKey(id, packed)
}

// AddWithKey - store bytes under an arbitrary key
//
// the key need not match the content so that damaged maps can be built
func (m *Map) AddWithKey(key merkle.Digest, data []byte) error {
	m.Lock()
	defer m.Unlock()

	if _, ok := m.entries[key]; ok {
		return fault.ErrDuplicateKey
	}
	m.entries[key] = append(Entry{}, data...)
	return nil
}

// Get - bytes for a key
func (m *Map) Get(key merkle.Digest) (Entry, bool) {
	m.RLock()
	defer m.RUnlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	return append(Entry{}, e...), true
}

// Len - number of entries
func (m *Map) Len() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.entries)
}

// Keys - all keys in ascending order
func (m *Map) Keys() []merkle.Digest {
	m.RLock()
	defer m.RUnlock()
	return m.keys()
}

func (m *Map) keys() []merkle.Digest {
	keys := make([]merkle.Digest, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Compare(keys[j]) < 0 })
	return keys
}

// Root - merkle root over the entries in key order
//
// each leaf is the digest of key followed by data
func (m *Map) Root() merkle.Digest {
	m.RLock()
	defer m.RUnlock()

	keys := m.keys()
	leaves := make([]merkle.Digest, len(keys))
	for i, k := range keys {
		e := m.entries[k]
		leaf := make([]byte, 0, merkle.DigestLength+len(e))
		leaf = append(leaf, k[:]...)
		leaf = append(leaf, e...)
		leaves[i] = merkle.NewDigest(leaf)
	}
	return merkle.Root(leaves)
}

// Diff - entries that exist on only one side or whose bytes differ
//
// the receiver is the first side; each map is read under its own lock
// in turn so two maps can be compared in either order concurrently
func (m *Map) Diff(other *Map) map[merkle.Digest]transaction.DiffEntry {
	if m == other {
		return map[merkle.Digest]transaction.DiffEntry{}
	}

	second := other.snapshot()

	m.RLock()
	defer m.RUnlock()

	diff := make(map[merkle.Digest]transaction.DiffEntry)

	for k, a := range m.entries {
		b, ok := second[k]
		if !ok {
			diff[k] = transaction.DiffEntry{First: a}
		} else if !bytes.Equal(a, b) {
			diff[k] = transaction.DiffEntry{First: a, Second: b}
		}
	}
	for k, b := range second {
		if _, ok := m.entries[k]; !ok {
			diff[k] = transaction.DiffEntry{Second: b}
		}
	}
	return diff
}

// stored entries are never modified so only the map is copied
func (m *Map) snapshot() map[merkle.Digest]Entry {
	m.RLock()
	defer m.RUnlock()

	entries := make(map[merkle.Digest]Entry, len(m.entries))
	for k, e := range m.entries {
		entries[k] = e
	}
	return entries
}
