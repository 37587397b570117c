// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"encoding/hex"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/amount"
	"github.com/bitmark-inc/ledgertx/transactionrecord"
)

// fixed keys so packed output is repeatable
var (
	senderKey   = makeKey("95b5a80b4cdbe61c0f3f72cc152d4a4f29bcfd39c9a67e2c7bc6e0e14ec7c7ba")
	receiverKey = makeKey("36d9d0b3c2d5f0e4d8a2a8d4e1c2b6f3a0c9b8e7d6f5a4b3c2d1e0f9a8b7c6d5")
)

func makeKey(seedHex string) *account.PrivateKey {
	seed, err := hex.DecodeString(seedHex)
	if nil != err {
		panic(err)
	}
	key, err := account.PrivateKeyFromSeed(seed)
	if nil != err {
		panic(err)
	}
	return key
}

func senderHeader(sequence uint32) transactionrecord.Header {
	acc := senderKey.Account()
	return transactionrecord.Header{
		SigningKey: acc,
		Source:     acc.AccountID(),
		Sequence:   sequence,
		Fee:        amount.Native(10),
	}
}

func usd(value uint64) amount.Amount {
	return amount.Amount{
		Value:    value,
		Currency: amount.Currency{'U', 'S', 'D'},
		Issuer:   receiverKey.Account().AccountID(),
	}
}
