// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package amount

import (
	"github.com/bitmark-inc/ledgertx/fault"
)

// CurrencyLength - bytes in a currency code
const CurrencyLength = 3

// NativeName - text shown for the native currency
const NativeName = "XNS"

// Currency - three letter code, all zero for native
type Currency [CurrencyLength]byte

// CurrencyFromString - parse a currency code
//
// empty string and the native name both give the native currency
func CurrencyFromString(s string) (Currency, error) {
	c := Currency{}
	if "" == s || NativeName == s {
		return c, nil
	}
	if CurrencyLength != len(s) {
		return c, fault.ErrInvalidCurrency
	}
	for i := 0; i < CurrencyLength; i += 1 {
		b := s[i]
		if (b < 'A' || b > 'Z') && (b < '0' || b > '9') {
			return c, fault.ErrInvalidCurrency
		}
		c[i] = b
	}
	return c, nil
}

// IsNative - true for the zero code
func (c Currency) IsNative() bool {
	return Currency{} == c
}

// String - code as text
func (c Currency) String() string {
	if c.IsNative() {
		return NativeName
	}
	return string(c[:])
}

// MarshalText - convert currency to text
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText - convert text to currency
func (c *Currency) UnmarshalText(s []byte) error {
	currency, err := CurrencyFromString(string(s))
	if nil != err {
		return err
	}
	*c = currency
	return nil
}
