// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/ledgertx/fault"
)

// AccountIDLength - number of bytes in an account identifier
const AccountIDLength = 20

// prefix for the text form so that account ids and keys cannot be confused
const accountIDPrefix = 0x61

// AccountID - identifies a ledger account independently of the key
// currently used to sign for it
type AccountID [AccountIDLength]byte

// NewAccountID - the account identifier for an encoded public key
func NewAccountID(publicKeyBytes []byte) AccountID {
	digest := sha3.Sum256(publicKeyBytes)
	id := AccountID{}
	copy(id[:], digest[:AccountIDLength])
	return id
}

// AccountIDFromBytes - convert and validate a byte slice
func AccountIDFromBytes(buffer []byte) (AccountID, error) {
	id := AccountID{}
	if AccountIDLength != len(buffer) {
		return id, fault.ErrNotAccountId
	}
	copy(id[:], buffer)
	return id, nil
}

// AccountIDFromBase58 - decode the text form
func AccountIDFromBase58(s string) (AccountID, error) {
	decoded, err := base58.Decode(s)
	if nil != err || 1+AccountIDLength+checksumLength != len(decoded) {
		return AccountID{}, fault.ErrCannotDecodeAccount
	}
	if accountIDPrefix != decoded[0] {
		return AccountID{}, fault.ErrCannotDecodeAccount
	}
	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return AccountID{}, fault.ErrChecksumMismatch
	}
	return AccountIDFromBytes(decoded[1:checksumStart])
}

// IsZero - true for the all zero identifier
func (id AccountID) IsZero() bool {
	return AccountID{} == id
}

// String - base58 text form with checksum
func (id AccountID) String() string {
	buffer := make([]byte, 0, 1+AccountIDLength+checksumLength)
	buffer = append(buffer, accountIDPrefix)
	buffer = append(buffer, id[:]...)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - for %#v
func (id AccountID) GoString() string {
	return "<account:" + id.String() + ">"
}

// MarshalText - convert to text for JSON
func (id AccountID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert from JSON text
func (id *AccountID) UnmarshalText(s []byte) error {
	a, err := AccountIDFromBase58(string(s))
	if nil != err {
		return err
	}
	*id = a
	return nil
}
