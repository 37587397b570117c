// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/json"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/amount"
	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/field"
	"github.com/bitmark-inc/ledgertx/merkle"
)

// signing domain prefix
var signingPrefix = []byte{'S', 'T', 'X', 0x00}

// Packed - packed records are just a byte slice
type Packed []byte

// MakeLink - the digest of a packed record is its transaction id
func (record Packed) MakeLink() merkle.Digest {
	return merkle.NewDigest(record)
}

// Record - a transaction payload
type Record struct {
	fields *field.Object
}

// New - empty record of a kind
func New(kind Kind) *Record {
	r := &Record{
		fields: field.NewObject(),
	}
	r.fields.SetUInt32(field.TransactionType, uint32(kind))
	return r
}

// Kind - the transaction kind
func (r *Record) Kind() Kind {
	k, _ := r.fields.UInt32(field.TransactionType)
	return Kind(k)
}

// Fields - read access to the underlying fields
func (r *Record) Fields() *field.Object {
	return r.fields
}

// setters, any previous value is replaced

// SetUInt32 - set an integer field
func (r *Record) SetUInt32(tag field.Tag, value uint32) { r.fields.SetUInt32(tag, value) }

// SetHash128 - set a 128 bit hash field
func (r *Record) SetHash128(tag field.Tag, value field.Hash128) { r.fields.SetHash128(tag, value) }

// SetHash256 - set a 256 bit hash field
func (r *Record) SetHash256(tag field.Tag, value field.Hash256) { r.fields.SetHash256(tag, value) }

// SetBlob - set a variable length field
func (r *Record) SetBlob(tag field.Tag, value []byte) { r.fields.SetBlob(tag, value) }

// SetAccount - set an account id field
func (r *Record) SetAccount(tag field.Tag, value account.AccountID) { r.fields.SetAccount(tag, value) }

// SetAmount - set an amount field
func (r *Record) SetAmount(tag field.Tag, value amount.Amount) { r.fields.SetAmount(tag, value) }

// SetPathSet - set a path set field
func (r *Record) SetPathSet(tag field.Tag, value amount.PathSet) { r.fields.SetPathSet(tag, value) }

// SigningKey - decode the signing public key field
func (r *Record) SigningKey() (*account.Account, error) {
	b, ok := r.fields.Blob(field.SigningPubKey)
	if !ok {
		return nil, fault.ErrMissingField
	}
	return account.AccountFromBytes(b)
}

// Source - the source account id
func (r *Record) Source() (account.AccountID, error) {
	id, ok := r.fields.Account(field.Account)
	if !ok {
		return id, fault.ErrMissingField
	}
	return id, nil
}

// Sequence - the source account sequence
func (r *Record) Sequence() uint32 {
	s, _ := r.fields.UInt32(field.Sequence)
	return s
}

// SigningPayload - the bytes covered by the signature
func (r *Record) SigningPayload() []byte {
	payload := append([]byte{}, signingPrefix...)
	return append(payload, r.fields.PackWithout(field.TxnSignature)...)
}

// Validate - every field value would survive a pack and unpack
func (r *Record) Validate() error {
	return r.fields.Validate()
}

// Sign - sign all fields and store the signature
//
// a record that fails Validate is not signed
func (r *Record) Sign(privateKey *account.PrivateKey) error {
	if err := r.fields.Validate(); nil != err {
		return err
	}
	signature, err := privateKey.Sign(r.SigningPayload())
	if nil != err {
		return err
	}
	r.fields.SetBlob(field.TxnSignature, signature)
	return nil
}

// CheckSign - verify the stored signature
//
// false for a missing key, a missing signature or any mismatch
func (r *Record) CheckSign(publicKey *account.Account) bool {
	if nil == publicKey {
		return false
	}
	signature, ok := r.fields.Blob(field.TxnSignature)
	if !ok {
		return false
	}
	return nil == publicKey.CheckSignature(r.SigningPayload(), signature)
}

// Pack - canonical encoding
func (r *Record) Pack() Packed {
	return r.fields.Pack()
}

// Id - digest of the canonical encoding
func (r *Record) Id() merkle.Digest {
	return r.Pack().MakeLink()
}

// Unpack - decode a packed record
//
// the kind must be present and defined
func (record Packed) Unpack() (*Record, error) {
	fields, err := field.Unpack(record)
	if nil != err {
		return nil, err
	}
	kind, ok := fields.UInt32(field.TransactionType)
	if !ok {
		return nil, fault.ErrMissingField
	}
	if !Kind(kind).IsValid() {
		return nil, fault.ErrUnknownTransactionKind
	}
	return &Record{fields: fields}, nil
}

// Clone - deep copy
func (r *Record) Clone() *Record {
	return &Record{fields: r.fields.Clone()}
}

// JSONFields - field map with the kind shown by name and the id as hash
func (r *Record) JSONFields() map[string]interface{} {
	m := r.fields.JSONFields()
	m[field.TransactionType.String()] = r.Kind()
	m["hash"] = r.Id()
	return m
}

// MarshalJSON - record as JSON object
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.JSONFields())
}
