// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - signed records with a status lifecycle
//
// a Transaction wraps one transactionrecord.Record together with its
// id, the decoded signing key, the source account, a Status and the
// sequence of the ledger that includes it (zero if none)
//
// construction never fails outright: decode or key problems leave the
// wrapper Invalid and the cause is returned alongside it
//
// status changes:
//
//   New → Included | Conflicted | Committed | Held | Removed | Obsolete | Incomplete
//   any → Invalid
//
// Invalid and Removed are terminal
//
// a wrapper may be shared between goroutines, status and ledger
// sequence are protected by its lock
package transaction
