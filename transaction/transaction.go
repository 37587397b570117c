// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/hex"
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/merkle"
	"github.com/bitmark-inc/ledgertx/transactionrecord"
)

// Transaction - a record with its runtime state
type Transaction struct {
	sync.RWMutex

	record    *transactionrecord.Record // nil if the bytes did not decode
	id        merkle.Digest
	publicKey *account.Account
	source    account.AccountID
	status    Status
	inLedger  uint32
}

// FromPacked - rebuild a transaction from its canonical bytes
//
// the result is never nil; any failure leaves it Invalid and is
// returned as the error
func FromPacked(packed []byte, validate bool) (*Transaction, error) {
	t := &Transaction{
		id:     merkle.NewDigest(packed),
		status: Invalid,
	}

	record, err := transactionrecord.Packed(packed).Unpack()
	if nil != err {
		warnf("cannot decode transaction: %s  error: %s", t.id, err)
		return t, err
	}
	t.record = record

	publicKey, err := record.SigningKey()
	if nil != err {
		warnf("transaction: %s  has bad signing key: %s", t.id, err)
		return t, err
	}
	t.publicKey = publicKey

	source, err := record.Source()
	if nil != err {
		warnf("transaction: %s  has no source account", t.id)
		return t, err
	}
	t.source = source

	if validate && !record.CheckSign(publicKey) {
		warnf("transaction: %s  signature does not verify", t.id)
		return t, fault.ErrSignatureInvalid
	}

	t.status = New
	return t, nil
}

// Originate - new unsigned transaction of a kind
//
// without a signing key the transaction is Incomplete
func Originate(kind transactionrecord.Kind, header transactionrecord.Header) *Transaction {
	record := transactionrecord.NewWithHeader(kind, header)
	t := &Transaction{
		record:    record,
		id:        record.Id(),
		publicKey: header.SigningKey,
		source:    header.Source,
		status:    New,
	}
	if nil == header.SigningKey {
		warnf("originate %s: no signing key", kind)
		t.status = Incomplete
	}
	return t
}

// Sign - sign the record and recompute the id
//
// an unusable key sets Incomplete and returns false, a record that
// could not be decoded after packing sets Invalid
func (t *Transaction) Sign(privateKey *account.PrivateKey) bool {
	t.Lock()
	defer t.Unlock()
	return t.sign(privateKey)
}

func (t *Transaction) sign(privateKey *account.PrivateKey) bool {
	if nil != t.record {
		if err := t.record.Validate(); nil != err {
			warnf("transaction: %s  invalid record: %s", t.id, err)
			if !t.status.IsTerminal() {
				t.status = Invalid
			}
			return false
		}
	}
	if nil == t.record || !privateKey.IsValid() {
		warnf("no private key for signing: %s", t.id)
		t.incomplete()
		return false
	}
	if err := t.record.Sign(privateKey); nil != err {
		warnf("sign: %s  error: %s", t.id, err)
		t.incomplete()
		return false
	}
	t.id = t.record.Id()
	return true
}

// terminal states are kept
func (t *Transaction) incomplete() {
	if !t.status.IsTerminal() {
		t.status = Incomplete
	}
}

// SetStatus - change status and ledger sequence together
//
// no change is allowed out of a terminal status; asserting the same
// terminal status again only updates the ledger sequence
func (t *Transaction) SetStatus(status Status, ledger uint32) error {
	t.Lock()
	defer t.Unlock()

	if t.status.IsTerminal() {
		if status != t.status {
			return fault.ErrStatusIsTerminal
		}
	}
	t.status = status
	t.inLedger = ledger
	return nil
}

// Status - current status
func (t *Transaction) Status() Status {
	t.RLock()
	defer t.RUnlock()
	return t.status
}

// InLedger - sequence of including ledger, zero if none
func (t *Transaction) InLedger() uint32 {
	t.RLock()
	defer t.RUnlock()
	return t.inLedger
}

// Id - the transaction id
func (t *Transaction) Id() merkle.Digest {
	t.RLock()
	defer t.RUnlock()
	return t.id
}

// Kind - the record kind
func (t *Transaction) Kind() transactionrecord.Kind {
	t.RLock()
	defer t.RUnlock()
	if nil == t.record {
		return transactionrecord.Kind(0xffffffff)
	}
	return t.record.Kind()
}

// PublicKey - the signing key, nil if not well formed
func (t *Transaction) PublicKey() *account.Account {
	return t.publicKey
}

// Source - the source account
func (t *Transaction) Source() account.AccountID {
	return t.source
}

// Sequence - the source account sequence
func (t *Transaction) Sequence() uint32 {
	t.RLock()
	defer t.RUnlock()
	if nil == t.record {
		return 0
	}
	return t.record.Sequence()
}

// Record - a copy of the record, nil if the bytes did not decode
func (t *Transaction) Record() *transactionrecord.Record {
	t.RLock()
	defer t.RUnlock()
	if nil == t.record {
		return nil
	}
	return t.record.Clone()
}

// Packed - canonical bytes, nil if the bytes did not decode
func (t *Transaction) Packed() transactionrecord.Packed {
	t.RLock()
	defer t.RUnlock()
	if nil == t.record {
		return nil
	}
	return t.record.Pack()
}

// CheckSign - verify the record against its own signing key
func (t *Transaction) CheckSign() bool {
	t.RLock()
	defer t.RUnlock()
	if nil == t.record {
		return false
	}
	return t.record.CheckSign(t.publicKey)
}

// ReportOptions - extra items for JSON
type ReportOptions struct {
	Raw bool // include the packed bytes as hex
}

// Report - JSON encodable map of the record fields and runtime state
func (t *Transaction) Report(options ReportOptions) map[string]interface{} {
	t.RLock()
	defer t.RUnlock()

	m := map[string]interface{}{}
	if nil != t.record {
		m = t.record.JSONFields()
		if options.Raw {
			m["raw"] = hex.EncodeToString(t.record.Pack())
		}
	} else {
		m["hash"] = t.id
	}
	if 0 != t.inLedger {
		m["inLedger"] = t.inLedger
	}
	m["status"] = t.status
	return m
}

// MarshalJSON - default report
func (t *Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Report(ReportOptions{}))
}

// IsHexTxId - exactly 64 hex characters in either case
func IsHexTxId(s string) bool {
	if 2*merkle.DigestLength != len(s) {
		return false
	}
	for i := 0; i < len(s); i += 1 {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'F':
		case c >= 'a' && c <= 'f':
		default:
			return false
		}
	}
	return true
}
