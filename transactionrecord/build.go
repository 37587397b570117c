// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/amount"
	"github.com/bitmark-inc/ledgertx/field"
)

// Header - fields common to every kind
type Header struct {
	SigningKey *account.Account
	Source     account.AccountID
	Sequence   uint32
	Fee        amount.Amount
	SourceTag  uint32 // zero: absent
}

// Operation - kind specific parameters
//
// implemented only by the structs in this package
type Operation interface {
	Kind() Kind
	populate(r *Record)
}

// Build - unsigned record for a header and an operation
func Build(header Header, operation Operation) *Record {
	r := NewWithHeader(operation.Kind(), header)
	r.Apply(operation)
	return r
}

// Apply - add the fields of an operation to a record
//
// the record kind is not checked
func (r *Record) Apply(operation Operation) {
	operation.populate(r)
}

// NewWithHeader - record of a kind carrying only the header fields
func NewWithHeader(kind Kind, header Header) *Record {
	r := New(kind)
	if nil != header.SigningKey {
		r.SetBlob(field.SigningPubKey, header.SigningKey.Bytes())
	}
	r.SetAccount(field.Account, header.Source)
	r.SetUInt32(field.Sequence, header.Sequence)
	r.SetAmount(field.Fee, header.Fee)
	if 0 != header.SourceTag {
		r.SetUInt32(field.SourceTag, header.SourceTag)
	}
	return r
}

// AccountSet - account settings
type AccountSet struct {
	HasEmailHash     bool
	EmailHash        field.Hash128
	HasWalletLocator bool
	WalletLocator    field.Hash256
	MessageKey       *account.Account // nil: absent
	HasDomain        bool
	Domain           []byte
	HasTransferRate  bool
	TransferRate     uint32
	HasPublish       bool
	PublishHash      field.Hash256
	PublishSize      uint32
}

// Kind - AccountSetKind
func (AccountSet) Kind() Kind { return AccountSetKind }

func (op AccountSet) populate(r *Record) {
	if op.HasEmailHash {
		r.SetHash128(field.EmailHash, op.EmailHash)
	}
	if op.HasWalletLocator {
		r.SetHash256(field.WalletLocator, op.WalletLocator)
	}
	if nil != op.MessageKey {
		r.SetBlob(field.MessageKey, op.MessageKey.Bytes())
	}
	if op.HasDomain {
		r.SetBlob(field.Domain, op.Domain)
	}
	if op.HasTransferRate {
		r.SetUInt32(field.TransferRate, op.TransferRate)
	}
	if op.HasPublish {
		r.SetHash256(field.PublishHash, op.PublishHash)
		r.SetUInt32(field.PublishSize, op.PublishSize)
	}
}

// Claim - claim a generator for an account
type Claim struct {
	Generator []byte
	PublicKey []byte
	Signature []byte
}

// Kind - ClaimKind
func (Claim) Kind() Kind { return ClaimKind }

func (op Claim) populate(r *Record) {
	r.SetBlob(field.Generator, op.Generator)
	r.SetBlob(field.PublicKey, op.PublicKey)
	r.SetBlob(field.Signature, op.Signature)
}

// Create - payment that creates the destination account
type Create struct {
	Destination account.AccountID
	Amount      amount.Amount
}

// Kind - PaymentKind
func (Create) Kind() Kind { return PaymentKind }

func (op Create) populate(r *Record) {
	r.SetUInt32(field.Flags, FlagCreateAccount)
	r.SetAccount(field.Destination, op.Destination)
	r.SetAmount(field.Amount, op.Amount)
}

// CreditSet - set a trust line limit
type CreditSet struct {
	LimitAmount   amount.Amount
	HasQualityIn  bool
	QualityIn     uint32
	HasQualityOut bool
	QualityOut    uint32
}

// Kind - CreditSetKind
func (CreditSet) Kind() Kind { return CreditSetKind }

func (op CreditSet) populate(r *Record) {
	r.SetAmount(field.LimitAmount, op.LimitAmount)
	if op.HasQualityIn {
		r.SetUInt32(field.QualityIn, op.QualityIn)
	}
	if op.HasQualityOut {
		r.SetUInt32(field.QualityOut, op.QualityOut)
	}
}

// NicknameSet - claim or update a nickname
//
// a zero minimum offer with SetOffer true removes the offer
type NicknameSet struct {
	Nickname     field.Hash256
	SetOffer     bool
	MinimumOffer amount.Amount
	Signature    []byte // ownership proof, empty: absent
}

// Kind - NicknameSetKind
func (NicknameSet) Kind() Kind { return NicknameSetKind }

func (op NicknameSet) populate(r *Record) {
	r.SetHash256(field.Nickname, op.Nickname)
	if op.SetOffer {
		r.SetAmount(field.MinimumOffer, op.MinimumOffer)
	}
	if 0 != len(op.Signature) {
		r.SetBlob(field.Signature, op.Signature)
	}
}

// OfferCreate - place an offer
type OfferCreate struct {
	Passive    bool
	TakerPays  amount.Amount
	TakerGets  amount.Amount
	Expiration uint32 // zero: absent
}

// Kind - OfferCreateKind
func (OfferCreate) Kind() Kind { return OfferCreateKind }

func (op OfferCreate) populate(r *Record) {
	if op.Passive {
		r.SetUInt32(field.Flags, FlagPassive)
	}
	r.SetAmount(field.TakerPays, op.TakerPays)
	r.SetAmount(field.TakerGets, op.TakerGets)
	if 0 != op.Expiration {
		r.SetUInt32(field.Expiration, op.Expiration)
	}
}

// OfferCancel - withdraw an offer
type OfferCancel struct {
	OfferSequence uint32
}

// Kind - OfferCancelKind
func (OfferCancel) Kind() Kind { return OfferCancelKind }

func (op OfferCancel) populate(r *Record) {
	r.SetUInt32(field.OfferSequence, op.OfferSequence)
}

// PasswordFund - fund a password reset
type PasswordFund struct {
	Destination account.AccountID
}

// Kind - PasswordFundKind
func (PasswordFund) Kind() Kind { return PasswordFundKind }

func (op PasswordFund) populate(r *Record) {
	r.SetAccount(field.Destination, op.Destination)
}

// PasswordSet - replace the authorised key
type PasswordSet struct {
	AuthorizedKey account.AccountID
	Generator     []byte
	PublicKey     []byte
	Signature     []byte
}

// Kind - PasswordSetKind
func (PasswordSet) Kind() Kind { return PasswordSetKind }

func (op PasswordSet) populate(r *Record) {
	r.SetAccount(field.AuthorizedKey, op.AuthorizedKey)
	r.SetBlob(field.Generator, op.Generator)
	r.SetBlob(field.PublicKey, op.PublicKey)
	r.SetBlob(field.Signature, op.Signature)
}

// Payment - send value to a destination
type Payment struct {
	Destination account.AccountID
	Amount      amount.Amount
	SendMax     amount.Amount
	Paths       amount.PathSet
	Partial     bool
	Limit       bool
}

// Kind - PaymentKind
func (Payment) Kind() Kind { return PaymentKind }

func (op Payment) populate(r *Record) {
	flags := uint32(0)
	if op.Partial {
		flags |= FlagPartialPayment
	}
	if op.Limit {
		flags |= FlagLimitQuality
	}
	if 0 != flags {
		r.SetUInt32(field.Flags, flags)
	}
	r.SetAccount(field.Destination, op.Destination)
	r.SetAmount(field.Amount, op.Amount)
	if !op.Amount.SameValue(op.SendMax) {
		r.SetAmount(field.SendMax, op.SendMax)
	}
	if 0 != len(op.Paths) {
		r.SetPathSet(field.Paths, op.Paths)
	}
}

// WalletAdd - add a wallet under an authorised key
type WalletAdd struct {
	Amount        amount.Amount
	AuthorizedKey account.AccountID
	PublicKey     []byte
	Signature     []byte
}

// Kind - WalletAddKind
func (WalletAdd) Kind() Kind { return WalletAddKind }

func (op WalletAdd) populate(r *Record) {
	r.SetAmount(field.Amount, op.Amount)
	r.SetAccount(field.AuthorizedKey, op.AuthorizedKey)
	r.SetBlob(field.PublicKey, op.PublicKey)
	r.SetBlob(field.Signature, op.Signature)
}
