// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package amount

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/util"
)

// Amount - a quantity of native or issued currency
type Amount struct {
	Value    uint64            `json:"value,string"`
	Currency Currency          `json:"currency"`
	Issuer   account.AccountID `json:"issuer"`
}

// Native - amount of the native currency
func Native(value uint64) Amount {
	return Amount{Value: value}
}

// IsNative - true if no currency code
func (amount Amount) IsNative() bool {
	return amount.Currency.IsNative()
}

// IsZero - true for a zero value
func (amount Amount) IsZero() bool {
	return 0 == amount.Value
}

// SameValue - equal value and currency, the issuer is not compared
func (amount Amount) SameValue(other Amount) bool {
	return amount.Value == other.Value && amount.Currency == other.Currency
}

// Validate - an issued amount needs an issuer
func (amount Amount) Validate() error {
	if !amount.IsNative() && amount.Issuer.IsZero() {
		return fault.ErrInvalidAmount
	}
	return nil
}

// Pack - append the binary form to a buffer
func (amount Amount) Pack(buffer []byte) []byte {
	buffer = util.AppendVarint64(buffer, amount.Value)
	buffer = append(buffer, amount.Currency[:]...)
	if !amount.IsNative() {
		buffer = append(buffer, amount.Issuer[:]...)
	}
	return buffer
}

// Unpack - decode an amount from the start of a buffer
//
// returns the amount and the number of bytes consumed
func Unpack(buffer []byte) (Amount, int, error) {
	amount := Amount{}

	value, n := util.FromVarint64(buffer)
	if 0 == n {
		return amount, 0, fault.ErrTruncatedRecord
	}
	amount.Value = value

	if len(buffer) < n+CurrencyLength {
		return amount, 0, fault.ErrTruncatedRecord
	}
	copy(amount.Currency[:], buffer[n:])
	n += CurrencyLength

	if amount.IsNative() {
		return amount, n, nil
	}

	if len(buffer) < n+account.AccountIDLength {
		return amount, 0, fault.ErrTruncatedRecord
	}
	copy(amount.Issuer[:], buffer[n:])
	n += account.AccountIDLength
	if amount.Issuer.IsZero() {
		return amount, 0, fault.ErrInvalidAmount
	}
	return amount, n, nil
}

// FromString - parse "value" or "value/CUR/issuer"
func FromString(s string) (Amount, error) {
	amount := Amount{}
	parts := strings.Split(s, "/")

	value, err := strconv.ParseUint(parts[0], 10, 64)
	if nil != err {
		return amount, fault.ErrInvalidAmount
	}
	amount.Value = value

	switch len(parts) {
	case 1:
		return amount, nil
	case 3:
		amount.Currency, err = CurrencyFromString(parts[1])
		if nil != err {
			return amount, err
		}
		if amount.IsNative() {
			return amount, fault.ErrInvalidAmount
		}
		amount.Issuer, err = account.AccountIDFromBase58(parts[2])
		if nil != err {
			return amount, err
		}
		return amount, nil
	default:
		return amount, fault.ErrInvalidAmount
	}
}

// String - text form, native amounts are a bare number
func (amount Amount) String() string {
	v := strconv.FormatUint(amount.Value, 10)
	if amount.IsNative() {
		return v
	}
	return v + "/" + amount.Currency.String() + "/" + amount.Issuer.String()
}

// MarshalJSON - native amounts are a string, others an object
func (amount Amount) MarshalJSON() ([]byte, error) {
	if amount.IsNative() {
		return json.Marshal(strconv.FormatUint(amount.Value, 10))
	}
	type issued Amount
	return json.Marshal(issued(amount))
}
