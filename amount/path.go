// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package amount

import (
	"encoding/json"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/util"
)

// flag bits of a path element
const (
	PathAccount  = 0x01
	PathCurrency = 0x02
	PathIssuer   = 0x04

	pathFlagMask = PathAccount | PathCurrency | PathIssuer
)

// limits for decoding
const (
	MaximumPaths        = 6
	MaximumPathElements = 8
)

// PathElement - one hop, zero fields are absent
type PathElement struct {
	Account  account.AccountID
	Currency Currency
	Issuer   account.AccountID
}

// Path - sequence of hops
type Path []PathElement

// PathSet - alternative paths for a payment
type PathSet []Path

// Flags - presence bits for the element
func (element PathElement) Flags() byte {
	flags := byte(0)
	if !element.Account.IsZero() {
		flags |= PathAccount
	}
	if !element.Currency.IsNative() {
		flags |= PathCurrency
	}
	if !element.Issuer.IsZero() {
		flags |= PathIssuer
	}
	return flags
}

// MarshalJSON - only the present fields
func (element PathElement) MarshalJSON() ([]byte, error) {
	m := make(map[string]string)
	flags := element.Flags()
	if 0 != flags&PathAccount {
		m["account"] = element.Account.String()
	}
	if 0 != flags&PathCurrency {
		m["currency"] = element.Currency.String()
	}
	if 0 != flags&PathIssuer {
		m["issuer"] = element.Issuer.String()
	}
	return json.Marshal(m)
}

// Validate - the same limits that decoding enforces
func (pathSet PathSet) Validate() error {
	if 0 == len(pathSet) || len(pathSet) > MaximumPaths {
		return fault.ErrInvalidPathElement
	}
	for _, path := range pathSet {
		if 0 == len(path) || len(path) > MaximumPathElements {
			return fault.ErrInvalidPathElement
		}
		for _, element := range path {
			if 0 == element.Flags() {
				return fault.ErrInvalidPathElement
			}
		}
	}
	return nil
}

// Pack - append the binary form to a buffer
func (pathSet PathSet) Pack(buffer []byte) []byte {
	buffer = util.AppendVarint64(buffer, uint64(len(pathSet)))
	for _, path := range pathSet {
		buffer = util.AppendVarint64(buffer, uint64(len(path)))
		for _, element := range path {
			flags := element.Flags()
			buffer = append(buffer, flags)
			if 0 != flags&PathAccount {
				buffer = append(buffer, element.Account[:]...)
			}
			if 0 != flags&PathCurrency {
				buffer = append(buffer, element.Currency[:]...)
			}
			if 0 != flags&PathIssuer {
				buffer = append(buffer, element.Issuer[:]...)
			}
		}
	}
	return buffer
}

// UnpackPathSet - decode a path set from the start of a buffer
//
// returns the path set and the number of bytes consumed
func UnpackPathSet(buffer []byte) (PathSet, int, error) {
	pathCount, n := util.ClippedVarint64(buffer, 1, MaximumPaths)
	if 0 == n {
		return nil, 0, fault.ErrInvalidPathElement
	}

	pathSet := make(PathSet, 0, pathCount)
	for p := 0; p < pathCount; p += 1 {
		elementCount, count := util.ClippedVarint64(buffer[n:], 1, MaximumPathElements)
		if 0 == count {
			return nil, 0, fault.ErrInvalidPathElement
		}
		n += count

		path := make(Path, elementCount)
		for e := 0; e < elementCount; e += 1 {
			if n >= len(buffer) {
				return nil, 0, fault.ErrTruncatedRecord
			}
			flags := buffer[n]
			n += 1
			if 0 == flags || 0 != flags&^pathFlagMask {
				return nil, 0, fault.ErrInvalidPathElement
			}

			element := &path[e]
			if 0 != flags&PathAccount {
				if len(buffer) < n+account.AccountIDLength {
					return nil, 0, fault.ErrTruncatedRecord
				}
				copy(element.Account[:], buffer[n:])
				n += account.AccountIDLength
			}
			if 0 != flags&PathCurrency {
				if len(buffer) < n+CurrencyLength {
					return nil, 0, fault.ErrTruncatedRecord
				}
				copy(element.Currency[:], buffer[n:])
				n += CurrencyLength
			}
			if 0 != flags&PathIssuer {
				if len(buffer) < n+account.AccountIDLength {
					return nil, 0, fault.ErrTruncatedRecord
				}
				copy(element.Issuer[:], buffer[n:])
				n += account.AccountIDLength
			}

			// a flag bit must not announce an all zero value
			if flags != element.Flags() {
				return nil, 0, fault.ErrInvalidPathElement
			}
		}
		pathSet = append(pathSet, path)
	}
	return pathSet, n, nil
}
