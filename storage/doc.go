// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - LevelDB backed key/value pools
//
// all pools share one database; each pool is a one byte key prefix
//
// pools:
//
//   T - transaction id → ledgerSeq(8) ++ status(1) ++ sender(20) ++ senderSeq(8) ++ packed
//   S - sender(20) ++ BE uint64(sequence) → transaction id
//
// every read and write that must be atomic goes through a Transaction
// obtained from Database.Begin; this holds the database lock until
// Commit or Abort, so the usual pattern is:
//
//   trx := database.Begin()
//   defer trx.Abort()
//   …
//   err := trx.Commit()
package storage
