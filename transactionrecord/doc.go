// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactionrecord - the signed transaction payload
//
// a record is a field.Object whose TransactionType field gives the
// kind; the packed form is the canonical field encoding and its
// SHA3-256 digest is the transaction id
//
// the signature covers:
//
//   "STX" 0x00 ++ packed fields excluding TxnSignature
//
// kind specific records are produced by Build from a Header and one
// of the Operation structs
package transactionrecord
