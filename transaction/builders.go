// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/amount"
	"github.com/bitmark-inc/ledgertx/transactionrecord"
)

// add the fields of an operation then sign
//
// an operation of a different kind makes the transaction Invalid
func (t *Transaction) apply(privateKey *account.PrivateKey, operation transactionrecord.Operation) *Transaction {
	t.Lock()
	defer t.Unlock()

	if nil == t.record || operation.Kind() != t.record.Kind() {
		warnf("transaction: %s  cannot apply: %s", t.id, operation.Kind())
		t.status = Invalid
		return t
	}
	t.record.Apply(operation)
	t.sign(privateKey)
	return t
}

// header for transactions signed by the source account itself
func selfHeader(privateKey *account.PrivateKey) transactionrecord.Header {
	header := transactionrecord.Header{
		Fee: amount.Native(0),
	}
	if signingKey := privateKey.Account(); nil != signingKey {
		header.SigningKey = signingKey
		header.Source = signingKey.AccountID()
	}
	return header
}

// SetAccountSet - account settings and sign
func (t *Transaction) SetAccountSet(privateKey *account.PrivateKey, parameters transactionrecord.AccountSet) *Transaction {
	return t.apply(privateKey, parameters)
}

// NewAccountSet - originate, account settings and sign
func NewAccountSet(header transactionrecord.Header, privateKey *account.PrivateKey, parameters transactionrecord.AccountSet) *Transaction {
	return Originate(transactionrecord.AccountSetKind, header).SetAccountSet(privateKey, parameters)
}

// SetClaim - claim a generator and sign
func (t *Transaction) SetClaim(privateKey *account.PrivateKey, parameters transactionrecord.Claim) *Transaction {
	return t.apply(privateKey, parameters)
}

// NewClaim - claim a generator, signed by the source account with sequence zero and no fee
func NewClaim(privateKey *account.PrivateKey, parameters transactionrecord.Claim) *Transaction {
	return Originate(transactionrecord.ClaimKind, selfHeader(privateKey)).SetClaim(privateKey, parameters)
}

// SetCreate - create and fund an account and sign
func (t *Transaction) SetCreate(privateKey *account.PrivateKey, parameters transactionrecord.Create) *Transaction {
	return t.apply(privateKey, parameters)
}

// NewCreate - originate, create and fund an account and sign
func NewCreate(header transactionrecord.Header, privateKey *account.PrivateKey, parameters transactionrecord.Create) *Transaction {
	return Originate(transactionrecord.PaymentKind, header).SetCreate(privateKey, parameters)
}

// SetCreditSet - set a trust line limit and sign
func (t *Transaction) SetCreditSet(privateKey *account.PrivateKey, parameters transactionrecord.CreditSet) *Transaction {
	return t.apply(privateKey, parameters)
}

// NewCreditSet - originate, set a trust line limit and sign
func NewCreditSet(header transactionrecord.Header, privateKey *account.PrivateKey, parameters transactionrecord.CreditSet) *Transaction {
	return Originate(transactionrecord.CreditSetKind, header).SetCreditSet(privateKey, parameters)
}

// SetNicknameSet - claim or update a nickname and sign
func (t *Transaction) SetNicknameSet(privateKey *account.PrivateKey, parameters transactionrecord.NicknameSet) *Transaction {
	return t.apply(privateKey, parameters)
}

// NewNicknameSet - originate, claim or update a nickname and sign
func NewNicknameSet(header transactionrecord.Header, privateKey *account.PrivateKey, parameters transactionrecord.NicknameSet) *Transaction {
	return Originate(transactionrecord.NicknameSetKind, header).SetNicknameSet(privateKey, parameters)
}

// SetOfferCreate - place an offer and sign
func (t *Transaction) SetOfferCreate(privateKey *account.PrivateKey, parameters transactionrecord.OfferCreate) *Transaction {
	return t.apply(privateKey, parameters)
}

// NewOfferCreate - originate, place an offer and sign
func NewOfferCreate(header transactionrecord.Header, privateKey *account.PrivateKey, parameters transactionrecord.OfferCreate) *Transaction {
	return Originate(transactionrecord.OfferCreateKind, header).SetOfferCreate(privateKey, parameters)
}

// SetOfferCancel - withdraw an offer and sign
func (t *Transaction) SetOfferCancel(privateKey *account.PrivateKey, parameters transactionrecord.OfferCancel) *Transaction {
	return t.apply(privateKey, parameters)
}

// NewOfferCancel - originate, withdraw an offer and sign
func NewOfferCancel(header transactionrecord.Header, privateKey *account.PrivateKey, parameters transactionrecord.OfferCancel) *Transaction {
	return Originate(transactionrecord.OfferCancelKind, header).SetOfferCancel(privateKey, parameters)
}

// SetPasswordFund - fund a password reset and sign
func (t *Transaction) SetPasswordFund(privateKey *account.PrivateKey, parameters transactionrecord.PasswordFund) *Transaction {
	return t.apply(privateKey, parameters)
}

// NewPasswordFund - originate, fund a password reset and sign
func NewPasswordFund(header transactionrecord.Header, privateKey *account.PrivateKey, parameters transactionrecord.PasswordFund) *Transaction {
	return Originate(transactionrecord.PasswordFundKind, header).SetPasswordFund(privateKey, parameters)
}

// SetPasswordSet - replace the authorised key and sign
func (t *Transaction) SetPasswordSet(privateKey *account.PrivateKey, parameters transactionrecord.PasswordSet) *Transaction {
	return t.apply(privateKey, parameters)
}

// NewPasswordSet - replace the authorised key, signed by the source account with sequence zero and no fee
func NewPasswordSet(privateKey *account.PrivateKey, parameters transactionrecord.PasswordSet) *Transaction {
	return Originate(transactionrecord.PasswordSetKind, selfHeader(privateKey)).SetPasswordSet(privateKey, parameters)
}

// SetPayment - send value and sign
func (t *Transaction) SetPayment(privateKey *account.PrivateKey, parameters transactionrecord.Payment) *Transaction {
	return t.apply(privateKey, parameters)
}

// NewPayment - originate, send value and sign
func NewPayment(header transactionrecord.Header, privateKey *account.PrivateKey, parameters transactionrecord.Payment) *Transaction {
	return Originate(transactionrecord.PaymentKind, header).SetPayment(privateKey, parameters)
}

// SetWalletAdd - add a wallet and sign
func (t *Transaction) SetWalletAdd(privateKey *account.PrivateKey, parameters transactionrecord.WalletAdd) *Transaction {
	return t.apply(privateKey, parameters)
}

// NewWalletAdd - originate, add a wallet and sign
func NewWalletAdd(header transactionrecord.Header, privateKey *account.PrivateKey, parameters transactionrecord.WalletAdd) *Transaction {
	return Originate(transactionrecord.WalletAddKind, header).SetWalletAdd(privateKey, parameters)
}
