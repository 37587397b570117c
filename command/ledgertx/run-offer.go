// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgertx/transaction"
	"github.com/bitmark-inc/ledgertx/transactionrecord"
)

func runOffer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := privateKeyFromHex(m.key)
	if nil != err {
		return err
	}

	header, err := makeHeader(privateKey, c.Uint("sequence"), c.String("fee"), c.Uint("source-tag"))
	if nil != err {
		return err
	}

	pays, err := checkAmount(c.String("pays"))
	if nil != err {
		return err
	}
	gets, err := checkAmount(c.String("gets"))
	if nil != err {
		return err
	}

	expiration, err := uint32Flag(c, "expiration")
	if nil != err {
		return err
	}

	tx := transaction.NewOfferCreate(header, privateKey, transactionrecord.OfferCreate{
		Passive:    c.Bool("passive"),
		TakerPays:  pays,
		TakerGets:  gets,
		Expiration: expiration,
	})

	return finish(m, tx, c.Bool("raw"), c.Bool("save"))
}

func runCancel(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := privateKeyFromHex(m.key)
	if nil != err {
		return err
	}

	header, err := makeHeader(privateKey, c.Uint("sequence"), c.String("fee"), c.Uint("source-tag"))
	if nil != err {
		return err
	}

	offer, err := uint32Flag(c, "offer")
	if nil != err {
		return err
	}
	if 0 == offer {
		return ErrRequiredOffer
	}

	tx := transaction.NewOfferCancel(header, privateKey, transactionrecord.OfferCancel{
		OfferSequence: offer,
	})

	return finish(m, tx, c.Bool("raw"), c.Bool("save"))
}
