// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/amount"
	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/field"
	"github.com/bitmark-inc/ledgertx/merkle"
	"github.com/bitmark-inc/ledgertx/transaction"
	"github.com/bitmark-inc/ledgertx/transactionrecord"
)

func TestFromPackedValid(t *testing.T) {
	original := makePayment(3, 1000)
	require.Equal(t, transaction.New, original.Status(), "original status")

	packed := original.Packed()
	tx, err := transaction.FromPacked(packed, true)
	require.Nil(t, err, "rebuild")

	assert.Equal(t, transaction.New, tx.Status(), "status")
	assert.Equal(t, original.Id(), tx.Id(), "id")
	assert.Equal(t, merkle.NewDigest(packed), tx.Id(), "id is digest of bytes")
	assert.Equal(t, senderKey.Account().AccountID(), tx.Source(), "source")
	assert.Equal(t, uint32(3), tx.Sequence(), "sequence")
	assert.Equal(t, transactionrecord.PaymentKind, tx.Kind(), "kind")
	assert.Equal(t, senderKey.Account().Bytes(), tx.PublicKey().Bytes(), "public key")
	assert.True(t, tx.CheckSign(), "signature")
	assert.Equal(t, uint32(0), tx.InLedger(), "ledger")
}

func TestFromPackedGarbage(t *testing.T) {
	garbage := []byte{0x01, 0x02, 0x03}
	tx, err := transaction.FromPacked(garbage, true)
	assert.NotNil(t, err, "error")
	require.NotNil(t, tx, "wrapper is always returned")
	assert.Equal(t, transaction.Invalid, tx.Status(), "status")
	assert.Equal(t, merkle.NewDigest(garbage), tx.Id(), "id")
	assert.Nil(t, tx.Record(), "record")
	assert.Nil(t, tx.Packed(), "packed")
	assert.False(t, tx.CheckSign(), "signature")
}

func TestFromPackedBadSignature(t *testing.T) {
	// signed by the receiver but claiming the sender key
	header := headerFor(senderKey, 4)
	tx := transaction.NewPayment(header, receiverKey, transactionrecord.Payment{
		Destination: receiverKey.Account().AccountID(),
		Amount:      amount.Native(1),
		SendMax:     amount.Native(1),
	})
	packed := tx.Packed()

	rebuilt, err := transaction.FromPacked(packed, true)
	assert.Equal(t, fault.ErrSignatureInvalid, err, "error")
	assert.Equal(t, transaction.Invalid, rebuilt.Status(), "status")

	unchecked, err := transaction.FromPacked(packed, false)
	assert.Nil(t, err, "error without validation")
	assert.Equal(t, transaction.New, unchecked.Status(), "status without validation")
}

func TestFromPackedBadSigningKey(t *testing.T) {
	r := transactionrecord.NewWithHeader(transactionrecord.OfferCancelKind, headerFor(senderKey, 5))
	r.SetBlob(field.SigningPubKey, []byte{0x00, 0x01})
	r.Apply(transactionrecord.OfferCancel{OfferSequence: 2})
	require.Nil(t, r.Sign(senderKey), "sign")

	tx, err := transaction.FromPacked(r.Pack(), true)
	assert.NotNil(t, err, "error")
	assert.Equal(t, transaction.Invalid, tx.Status(), "status")
	assert.Nil(t, tx.PublicKey(), "public key")
}

func TestFromPackedMissingSource(t *testing.T) {
	r := transactionrecord.New(transactionrecord.OfferCancelKind)
	r.SetBlob(field.SigningPubKey, senderKey.Account().Bytes())
	require.Nil(t, r.Sign(senderKey), "sign")

	tx, err := transaction.FromPacked(r.Pack(), true)
	assert.Equal(t, fault.ErrMissingField, err, "error")
	assert.Equal(t, transaction.Invalid, tx.Status(), "status")
}

func TestFromPackedLongFormTag(t *testing.T) {
	original := makePayment(3, 1000)
	widened := longFormFirstTag(t, original.Packed())

	tx, err := transaction.FromPacked(widened, true)
	assert.Equal(t, fault.ErrNonCanonicalEncoding, err, "error")
	require.NotNil(t, tx, "wrapper is always returned")
	assert.Equal(t, transaction.Invalid, tx.Status(), "status")
	assert.Equal(t, merkle.NewDigest(widened), tx.Id(), "id")
	assert.NotEqual(t, original.Id(), tx.Id(), "id differs from canonical")

	_, err = transaction.FromPacked(widened, false)
	assert.Equal(t, fault.ErrNonCanonicalEncoding, err, "error without validation")
}

func TestSetStatus(t *testing.T) {
	tx := makePayment(1, 10)

	for _, status := range []transaction.Status{
		transaction.Included,
		transaction.Conflicted,
		transaction.Committed,
		transaction.Held,
		transaction.Obsolete,
		transaction.New,
	} {
		assert.Nil(t, tx.SetStatus(status, 7), "set: %s", status)
		assert.Equal(t, status, tx.Status(), "status")
	}
	assert.Equal(t, uint32(7), tx.InLedger(), "ledger")

	require.Nil(t, tx.SetStatus(transaction.Removed, 8), "remove")
	assert.Equal(t, fault.ErrStatusIsTerminal, tx.SetStatus(transaction.New, 9), "leave removed")
	assert.Equal(t, fault.ErrStatusIsTerminal, tx.SetStatus(transaction.Invalid, 9), "removed to invalid")
	assert.Equal(t, transaction.Removed, tx.Status(), "still removed")
	assert.Equal(t, uint32(8), tx.InLedger(), "ledger unchanged")

	// same terminal status updates the ledger only
	assert.Nil(t, tx.SetStatus(transaction.Removed, 10), "re-assert")
	assert.Equal(t, uint32(10), tx.InLedger(), "ledger updated")
}

func TestSignInvalidKey(t *testing.T) {
	tx := transaction.Originate(transactionrecord.OfferCancelKind, headerFor(senderKey, 2))
	assert.False(t, tx.Sign(&account.PrivateKey{}), "sign with empty key")
	assert.Equal(t, transaction.Incomplete, tx.Status(), "status")

	assert.True(t, tx.Sign(senderKey), "sign")
	assert.True(t, tx.CheckSign(), "verify")
	assert.Equal(t, tx.Packed().MakeLink(), tx.Id(), "id follows signature")

	require.Nil(t, tx.SetStatus(transaction.Removed, 0), "remove")
	assert.False(t, tx.Sign(nil), "sign with nil key")
	assert.Equal(t, transaction.Removed, tx.Status(), "terminal kept")
}

func TestOriginateWithoutKey(t *testing.T) {
	header := headerFor(senderKey, 2)
	header.SigningKey = nil
	tx := transaction.Originate(transactionrecord.OfferCancelKind, header)
	assert.Equal(t, transaction.Incomplete, tx.Status(), "status")
	assert.Nil(t, tx.PublicKey(), "public key")
}

func TestBuilders(t *testing.T) {
	header := headerFor(senderKey, 6)
	destination := receiverKey.Account().AccountID()

	items := []struct {
		name string
		tx   *transaction.Transaction
		kind transactionrecord.Kind
	}{
		{"account set", transaction.NewAccountSet(header, senderKey, transactionrecord.AccountSet{HasTransferRate: true, TransferRate: 1000000001}), transactionrecord.AccountSetKind},
		{"claim", transaction.NewClaim(senderKey, transactionrecord.Claim{Generator: []byte{1}, PublicKey: []byte{2}, Signature: []byte{3}}), transactionrecord.ClaimKind},
		{"create", transaction.NewCreate(header, senderKey, transactionrecord.Create{Destination: destination, Amount: amount.Native(500)}), transactionrecord.PaymentKind},
		{"credit set", transaction.NewCreditSet(header, senderKey, transactionrecord.CreditSet{LimitAmount: amount.Native(1)}), transactionrecord.CreditSetKind},
		{"nickname set", transaction.NewNicknameSet(header, senderKey, transactionrecord.NicknameSet{}), transactionrecord.NicknameSetKind},
		{"offer create", transaction.NewOfferCreate(header, senderKey, transactionrecord.OfferCreate{TakerPays: amount.Native(5), TakerGets: amount.Native(6)}), transactionrecord.OfferCreateKind},
		{"offer cancel", transaction.NewOfferCancel(header, senderKey, transactionrecord.OfferCancel{OfferSequence: 3}), transactionrecord.OfferCancelKind},
		{"password fund", transaction.NewPasswordFund(header, senderKey, transactionrecord.PasswordFund{Destination: destination}), transactionrecord.PasswordFundKind},
		{"password set", transaction.NewPasswordSet(senderKey, transactionrecord.PasswordSet{AuthorizedKey: destination}), transactionrecord.PasswordSetKind},
		{"payment", transaction.NewPayment(header, senderKey, transactionrecord.Payment{Destination: destination, Amount: amount.Native(9), SendMax: amount.Native(9)}), transactionrecord.PaymentKind},
		{"wallet add", transaction.NewWalletAdd(header, senderKey, transactionrecord.WalletAdd{Amount: amount.Native(1), AuthorizedKey: destination}), transactionrecord.WalletAddKind},
	}

	for _, item := range items {
		assert.Equal(t, transaction.New, item.tx.Status(), "%s: status", item.name)
		assert.Equal(t, item.kind, item.tx.Kind(), "%s: kind", item.name)
		assert.True(t, item.tx.CheckSign(), "%s: signature", item.name)

		rebuilt, err := transaction.FromPacked(item.tx.Packed(), true)
		assert.Nil(t, err, "%s: rebuild", item.name)
		assert.Equal(t, item.tx.Id(), rebuilt.Id(), "%s: id", item.name)
	}
}

func TestSelfSignedHeader(t *testing.T) {
	tx := transaction.NewClaim(senderKey, transactionrecord.Claim{Generator: []byte{1}, PublicKey: []byte{2}, Signature: []byte{3}})
	r := tx.Record()
	require.NotNil(t, r, "record")

	assert.Equal(t, senderKey.Account().AccountID(), tx.Source(), "source")
	assert.Equal(t, uint32(0), tx.Sequence(), "sequence")
	fee, ok := r.Fields().Amount(field.Fee)
	assert.True(t, ok, "fee present")
	assert.Equal(t, amount.Native(0), fee, "fee")
}

func TestBuilderInvalidKey(t *testing.T) {
	tx := transaction.NewOfferCancel(headerFor(senderKey, 1), &account.PrivateKey{}, transactionrecord.OfferCancel{OfferSequence: 1})
	assert.Equal(t, transaction.Incomplete, tx.Status(), "status")
	assert.False(t, tx.CheckSign(), "unsigned")

	claim := transaction.NewClaim(nil, transactionrecord.Claim{})
	assert.Equal(t, transaction.Incomplete, claim.Status(), "claim status")
}

func TestBuilderKindMismatch(t *testing.T) {
	tx := transaction.Originate(transactionrecord.OfferCancelKind, headerFor(senderKey, 1))
	tx.SetPayment(senderKey, transactionrecord.Payment{Amount: amount.Native(1)})
	assert.Equal(t, transaction.Invalid, tx.Status(), "status")
	assert.False(t, tx.CheckSign(), "not signed")

	_, ok := tx.Record().Fields().Amount(field.Amount)
	assert.False(t, ok, "payment fields not added")
}

func TestBuilderUnencodable(t *testing.T) {
	destination := receiverKey.Account().AccountID()
	noIssuer := amount.Amount{Value: 5, Currency: amount.Currency{'U', 'S', 'D'}}

	items := []struct {
		name    string
		payment transactionrecord.Payment
	}{
		{"empty path", transactionrecord.Payment{Destination: destination, Amount: amount.Native(1), SendMax: amount.Native(2), Paths: amount.PathSet{{}}}},
		{"empty element", transactionrecord.Payment{Destination: destination, Amount: amount.Native(1), SendMax: amount.Native(2), Paths: amount.PathSet{{amount.PathElement{}}}}},
		{"zero issuer", transactionrecord.Payment{Destination: destination, Amount: noIssuer, SendMax: noIssuer}},
	}

	for _, item := range items {
		tx := transaction.NewPayment(headerFor(senderKey, 7), senderKey, item.payment)
		assert.Equal(t, transaction.Invalid, tx.Status(), "%s: status", item.name)
		assert.False(t, tx.CheckSign(), "%s: signed", item.name)
		assert.False(t, tx.Sign(senderKey), "%s: sign again", item.name)
		assert.Equal(t, transaction.Invalid, tx.Status(), "%s: status after sign", item.name)
	}
}

func TestIsHexTxId(t *testing.T) {
	valid := "00000000440b921e1b77c6c0487ae5616de67f788f44ae2a5af6e2194d16b6f8"
	assert.True(t, transaction.IsHexTxId(valid), "lower case")
	assert.True(t, transaction.IsHexTxId("00000000440B921E1B77C6C0487AE5616DE67F788F44AE2A5AF6E2194D16B6F8"), "upper case")

	assert.False(t, transaction.IsHexTxId(""), "empty")
	assert.False(t, transaction.IsHexTxId(valid[1:]), "63 characters")
	assert.False(t, transaction.IsHexTxId(valid+"0"), "65 characters")
	assert.False(t, transaction.IsHexTxId("g"+valid[1:]), "bad first character")
	assert.False(t, transaction.IsHexTxId(valid[:63]+"x"), "bad last character")
	assert.False(t, transaction.IsHexTxId(valid[:30]+" "+valid[31:]), "space")
}

func TestReport(t *testing.T) {
	tx := makePayment(2, 77)
	require.Nil(t, tx.SetStatus(transaction.Included, 12), "include")

	buffer, err := json.Marshal(tx)
	require.Nil(t, err, "marshal")

	m := map[string]interface{}{}
	require.Nil(t, json.Unmarshal(buffer, &m), "unmarshal")

	assert.Equal(t, "included", m["status"], "status")
	assert.Equal(t, float64(12), m["inLedger"], "ledger")
	assert.Equal(t, "Payment", m["TransactionType"], "type")
	assert.Equal(t, tx.Id().String(), m["hash"], "hash")
	_, hasRaw := m["raw"]
	assert.False(t, hasRaw, "no raw by default")

	raw := tx.Report(transaction.ReportOptions{Raw: true})
	assert.Contains(t, raw, "raw", "raw requested")

	fresh := makePayment(3, 1)
	_, hasLedger := fresh.Report(transaction.ReportOptions{})["inLedger"]
	assert.False(t, hasLedger, "no ledger before inclusion")
}

func TestReportUndecodable(t *testing.T) {
	garbage := []byte{0xff}
	tx, _ := transaction.FromPacked(garbage, false)
	m := tx.Report(transaction.ReportOptions{Raw: true})
	assert.Equal(t, merkle.NewDigest(garbage), m["hash"], "hash")
	assert.Equal(t, transaction.Invalid, m["status"], "status")
}

func TestStatusCodes(t *testing.T) {
	for _, status := range []transaction.Status{
		transaction.New,
		transaction.Included,
		transaction.Conflicted,
		transaction.Committed,
		transaction.Held,
	} {
		s, ok := transaction.StatusFromCode(status.Code())
		assert.True(t, ok, "%s: known code", status)
		assert.Equal(t, status, s, "round trip")
	}

	for _, status := range []transaction.Status{
		transaction.Invalid,
		transaction.Removed,
		transaction.Obsolete,
		transaction.Incomplete,
	} {
		assert.Equal(t, byte('U'), status.Code(), "%s: code", status)
	}

	s, ok := transaction.StatusFromCode('U')
	assert.True(t, ok, "U is known")
	assert.Equal(t, transaction.Invalid, s, "U status")

	s, ok = transaction.StatusFromCode('Q')
	assert.False(t, ok, "Q is unknown")
	assert.Equal(t, transaction.Invalid, s, "Q status")

	assert.Equal(t, "unknown", transaction.Status(99).String(), "out of range")
}
