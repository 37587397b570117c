// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package amount - ledger values and payment paths
//
// an amount is either native (zero currency code) or an issued
// currency qualified by its issuing account
//
// binary forms:
//
//   amount:       Varint64(value) ++ currency(3) [++ issuer(20) when not native]
//   path set:     Varint64(paths) ++ path…
//   path:         Varint64(elements) ++ element…
//   path element: flags(1) [++ account(20)] [++ currency(3)] [++ issuer(20)]
package amount
