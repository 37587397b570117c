// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgertx/account"
)

type generatedKey struct {
	PrivateKey string            `json:"private_key"`
	Account    *account.Account  `json:"account"`
	AccountID  account.AccountID `json:"account_id"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var privateKey *account.PrivateKey
	var err error

	passphrase := c.String("passphrase")
	if "" == passphrase {
		privateKey, err = account.NewPrivateKey(rand.Reader)
	} else {
		var seed []byte
		seed, err = passphraseSeed(passphrase, c.String("salt"))
		if nil != err {
			return err
		}
		privateKey, err = account.PrivateKeyFromSeed(seed)
	}
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "account: %s\n", privateKey.Account())
	}

	return printJson(m.w, generatedKey{
		PrivateKey: privateKey.String(),
		Account:    privateKey.Account(),
		AccountID:  privateKey.Account().AccountID(),
	})
}
