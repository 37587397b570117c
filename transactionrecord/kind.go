// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"strconv"
)

// Kind - transaction type, stored in the TransactionType field
type Kind uint32

// the transaction kinds, values are part of the wire format
const (
	PaymentKind      = Kind(0)
	ClaimKind        = Kind(1)
	WalletAddKind    = Kind(2)
	AccountSetKind   = Kind(3)
	PasswordFundKind = Kind(4)
	PasswordSetKind  = Kind(5)
	NicknameSetKind  = Kind(6)
	OfferCreateKind  = Kind(7)
	OfferCancelKind  = Kind(8)
	CreditSetKind    = Kind(20)
)

var kindNames = map[Kind]string{
	PaymentKind:      "Payment",
	ClaimKind:        "Claim",
	WalletAddKind:    "WalletAdd",
	AccountSetKind:   "AccountSet",
	PasswordFundKind: "PasswordFund",
	PasswordSetKind:  "PasswordSet",
	NicknameSetKind:  "NicknameSet",
	OfferCreateKind:  "OfferCreate",
	OfferCancelKind:  "OfferCancel",
	CreditSetKind:    "CreditSet",
}

// IsValid - true for a defined kind
func (kind Kind) IsValid() bool {
	_, ok := kindNames[kind]
	return ok
}

// String - name of the kind
func (kind Kind) String() string {
	if name, ok := kindNames[kind]; ok {
		return name
	}
	return "Kind(" + strconv.FormatUint(uint64(kind), 10) + ")"
}

// MarshalText - name of the kind
func (kind Kind) MarshalText() ([]byte, error) {
	return []byte(kind.String()), nil
}

// flag bits for the Flags field
const (
	FlagCreateAccount  = uint32(0x00010000) // PaymentKind
	FlagPartialPayment = uint32(0x00020000) // PaymentKind
	FlagLimitQuality   = uint32(0x00040000) // PaymentKind
	FlagPassive        = uint32(0x00010000) // OfferCreateKind
)
