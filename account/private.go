// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/ledgertx/fault"
)

// SeedLength - bytes of seed needed to derive a private key
const SeedLength = ed25519.SeedSize

// PrivateKey - an ed25519 signing key
type PrivateKey struct {
	PrivateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a random private key
func NewPrivateKey(random io.Reader) (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(random)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{PrivateKey: priv}, nil
}

// PrivateKeyFromSeed - deterministic private key from 32 seed bytes
func PrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if SeedLength != len(seed) {
		return nil, fault.ErrInvalidKeyLength
	}
	return &PrivateKey{PrivateKey: ed25519.NewKeyFromSeed(seed)}, nil
}

// PrivateKeyFromBytes - 64 bytes: seed ++ public key
func PrivateKeyFromBytes(privateKeyBytes []byte) (*PrivateKey, error) {
	if ed25519.PrivateKeySize != len(privateKeyBytes) {
		return nil, fault.ErrInvalidKeyLength
	}
	priv := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
	copy(priv, privateKeyBytes)
	p := &PrivateKey{PrivateKey: priv}
	if !p.IsValid() {
		return nil, fault.ErrPrivateKeyInvalid
	}
	return p, nil
}

// PrivateKeyFromHex - hex text of the 64 byte form
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrPrivateKeyInvalid
	}
	return PrivateKeyFromBytes(b)
}

// IsValid - true if the key can be used for signing
//
// the embedded public half must match the one derived from the seed
func (privateKey *PrivateKey) IsValid() bool {
	if nil == privateKey || ed25519.PrivateKeySize != len(privateKey.PrivateKey) {
		return false
	}
	derived := ed25519.NewKeyFromSeed(privateKey.PrivateKey.Seed())
	return bytes.Equal(derived, privateKey.PrivateKey)
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) (Signature, error) {
	if !privateKey.IsValid() {
		return nil, fault.ErrPrivateKeyInvalid
	}
	return ed25519.Sign(privateKey.PrivateKey, message), nil
}

// Account - the public half of the key
func (privateKey *PrivateKey) Account() *Account {
	if !privateKey.IsValid() {
		return nil
	}
	publicKey := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(publicKey, privateKey.PrivateKey.Public().(ed25519.PublicKey))
	return &Account{PublicKey: publicKey}
}

// Bytes - the raw 64 byte key
func (privateKey *PrivateKey) Bytes() []byte {
	return privateKey.PrivateKey[:]
}

// String - hex form of the key
func (privateKey *PrivateKey) String() string {
	return hex.EncodeToString(privateKey.PrivateKey)
}
