// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// ledgertx - command line tool for ledger transactions
//
// signing commands take the key from --key or the configuration's
// private_key; --save stores the result in the configured database
package main
