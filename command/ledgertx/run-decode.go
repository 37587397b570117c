// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/merkle"
	"github.com/bitmark-inc/ledgertx/transaction"
)

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s := c.String("transaction")
	if "" == s {
		return ErrRequiredTransaction
	}
	packed, err := hex.DecodeString(s)
	if nil != err {
		return err
	}

	tx, err := transaction.FromPacked(packed, true)
	if nil != err && m.verbose {
		fmt.Fprintf(m.e, "decode error: %s\n", err)
	}

	return printJson(m.w, tx.Report(transaction.ReportOptions{}))
}

func runStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	txId := c.String("txid")
	if "" == txId {
		return ErrRequiredTxId
	}
	if !transaction.IsHexTxId(txId) {
		return fault.ErrNotTransactionId
	}

	id, err := merkle.DigestFromHex(txId)
	if nil != err {
		return err
	}

	tx := transaction.Load(m.database, id)
	if nil == tx {
		return fault.ErrTransactionNotFound
	}
	return printJson(m.w, tx.Report(transaction.ReportOptions{Raw: m.verbose}))
}

func runFind(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	sender := c.String("sender")
	if "" == sender {
		return ErrRequiredSender
	}
	source, err := account.AccountIDFromBase58(sender)
	if nil != err {
		return err
	}

	sequence, err := uint32Flag(c, "sequence")
	if nil != err {
		return err
	}

	tx := transaction.FindFrom(m.database, source, sequence)
	if nil == tx {
		return fault.ErrTransactionNotFound
	}
	return printJson(m.w, tx.Report(transaction.ReportOptions{Raw: m.verbose}))
}
