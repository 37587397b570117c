// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package field

import (
	"encoding/hex"

	"github.com/bitmark-inc/ledgertx/fault"
)

// Hash128 - 128 bit opaque value
type Hash128 [16]byte

// Hash256 - 256 bit opaque value
type Hash256 [32]byte

// String - hex form
func (h Hash128) String() string {
	return hex.EncodeToString(h[:])
}

// MarshalText - hex form
func (h Hash128) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText - from hex form
func (h *Hash128) UnmarshalText(s []byte) error {
	return fromHex(h[:], s)
}

// String - hex form
func (h Hash256) String() string {
	return hex.EncodeToString(h[:])
}

// MarshalText - hex form
func (h Hash256) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText - from hex form
func (h *Hash256) UnmarshalText(s []byte) error {
	return fromHex(h[:], s)
}

func fromHex(buffer []byte, s []byte) error {
	if hex.DecodedLen(len(s)) != len(buffer) {
		return fault.ErrInvalidKeyLength
	}
	_, err := hex.Decode(buffer, s)
	return err
}
