// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/bitmark-inc/go-argon2"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/amount"
	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/transaction"
	"github.com/bitmark-inc/ledgertx/transactionrecord"
)

const defaultSalt = "ledgertx-wallet-salt"

var (
	ErrRequiredAmount      = fault.InvalidError("amount is required")
	ErrRequiredConfigFile  = fault.InvalidError("config file is required")
	ErrRequiredDestination = fault.InvalidError("destination is required")
	ErrRequiredKey         = fault.InvalidError("signing key is required")
	ErrRequiredOffer       = fault.InvalidError("offer sequence is required")
	ErrRequiredSender      = fault.InvalidError("sender is required")
	ErrRequiredTransaction = fault.InvalidError("transaction is required")
	ErrRequiredTxId        = fault.InvalidError("transaction id is required")
	ErrShortSalt           = fault.LengthError("salt must be at least 8 bytes")
	ErrSigningFailed       = fault.ProcessError("transaction could not be signed")
	ErrNotStored           = fault.ExistsError("transaction was not stored")
	ErrValueTooLarge       = fault.LengthError("value does not fit in 32 bits")
)

// config is required
func checkConfigFile(file string) (string, error) {
	if "" == file {
		return "", ErrRequiredConfigFile
	}

	file = os.ExpandEnv(file)
	return file, nil
}

// amount is required
func checkAmount(s string) (amount.Amount, error) {
	if "" == s {
		return amount.Amount{}, ErrRequiredAmount
	}
	return amount.FromString(s)
}

// accept a 32 byte seed or the full 64 byte key
func privateKeyFromHex(s string) (*account.PrivateKey, error) {
	if "" == s {
		return nil, ErrRequiredKey
	}
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrPrivateKeyInvalid
	}
	if account.SeedLength == len(b) {
		return account.PrivateKeyFromSeed(b)
	}
	return account.PrivateKeyFromBytes(b)
}

// derive a seed from a passphrase
func passphraseSeed(passphrase string, salt string) ([]byte, error) {
	if len(salt) < 8 {
		return nil, ErrShortSalt
	}

	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16,
		Parallelism: 4,
		HashLen:     account.SeedLength,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	return argon2.Hash(ctx, []byte(passphrase), []byte(salt))
}

// flag values are read as uint so reject rather than truncate
func toUint32(value uint) (uint32, error) {
	if uint64(value) > math.MaxUint32 {
		return 0, ErrValueTooLarge
	}
	return uint32(value), nil
}

func uint32Flag(c *cli.Context, name string) (uint32, error) {
	return toUint32(c.Uint(name))
}

// header signed by the key's own account
func makeHeader(privateKey *account.PrivateKey, sequence uint, fee string, sourceTag uint) (transactionrecord.Header, error) {
	seq, err := toUint32(sequence)
	if nil != err {
		return transactionrecord.Header{}, err
	}
	tag, err := toUint32(sourceTag)
	if nil != err {
		return transactionrecord.Header{}, err
	}

	feeAmount, err := amount.FromString(fee)
	if nil != err {
		return transactionrecord.Header{}, err
	}
	if !feeAmount.IsNative() {
		return transactionrecord.Header{}, fault.ErrInvalidAmount
	}

	signingKey := privateKey.Account()
	return transactionrecord.Header{
		SigningKey: signingKey,
		Source:     signingKey.AccountID(),
		Sequence:   seq,
		Fee:        feeAmount,
		SourceTag:  tag,
	}, nil
}

// print a built transaction and optionally store it
func finish(m *metadata, tx *transaction.Transaction, raw bool, save bool) error {
	if transaction.New != tx.Status() {
		return ErrSigningFailed
	}

	if m.verbose {
		fmt.Fprintf(m.e, "txid: %s\n", tx.Id())
	}

	if save {
		if !tx.Save(m.database) {
			return ErrNotStored
		}
	}

	return printJson(m.w, tx.Report(transaction.ReportOptions{Raw: raw}))
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
