// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"bytes"
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/ledgertx/fault"
)

// DigestLength - number of bytes in the digest
const DigestLength = 32

// Digest - type for a SHA3-256 digest
//
// stored in hash output order and shown as hex in the same order
// to convert to bytes just use d[:]
type Digest [DigestLength]byte

// NewDigest - create a digest from a byte slice
func NewDigest(record []byte) Digest {
	return sha3.Sum256(record)
}

// IsZero - true if no byte of the digest is set
func (digest Digest) IsZero() bool {
	return Digest{} == digest
}

// Compare - byte order comparison: -1, 0, +1
func (digest Digest) Compare(other Digest) int {
	return bytes.Compare(digest[:], other[:])
}

// String - hex string for use by the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// GoString - hex string for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<SHA3-256:" + hex.EncodeToString(digest[:]) + ">"
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(DigestLength))
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	d, err := DigestFromHex(string(s))
	if nil != err {
		return err
	}
	*digest = d
	return nil
}

// DigestFromBytes - convert and validate a byte slice to a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if DigestLength != len(buffer) {
		return fault.ErrNotTransactionId
	}
	copy(digest[:], buffer)
	return nil
}

// DigestFromHex - convert exactly 64 hex characters (either case)
// to a digest
func DigestFromHex(s string) (Digest, error) {
	digest := Digest{}
	if hex.EncodedLen(DigestLength) != len(s) {
		return digest, fault.ErrNotTransactionId
	}
	n, err := hex.Decode(digest[:], []byte(s))
	if nil != err || DigestLength != n {
		return Digest{}, fault.ErrNotTransactionId
	}
	return digest, nil
}
