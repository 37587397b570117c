// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/transaction"
	"github.com/bitmark-inc/ledgertx/transactionrecord"
)

func runPayment(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := privateKeyFromHex(m.key)
	if nil != err {
		return err
	}

	header, err := makeHeader(privateKey, c.Uint("sequence"), c.String("fee"), c.Uint("source-tag"))
	if nil != err {
		return err
	}

	to := c.String("destination")
	if "" == to {
		return ErrRequiredDestination
	}
	destination, err := account.AccountIDFromBase58(to)
	if nil != err {
		return err
	}

	value, err := checkAmount(c.String("amount"))
	if nil != err {
		return err
	}

	var tx *transaction.Transaction
	if c.Bool("create") {
		tx = transaction.NewCreate(header, privateKey, transactionrecord.Create{
			Destination: destination,
			Amount:      value,
		})
	} else {
		sendMax := value
		if s := c.String("send-max"); "" != s {
			sendMax, err = checkAmount(s)
			if nil != err {
				return err
			}
		}
		tx = transaction.NewPayment(header, privateKey, transactionrecord.Payment{
			Destination: destination,
			Amount:      value,
			SendMax:     sendMax,
			Partial:     c.Bool("partial"),
			Limit:       c.Bool("limit"),
		})
	}

	return finish(m, tx, c.Bool("raw"), c.Bool("save"))
}
