// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package field

import (
	"strconv"
)

// Type - the value type of a field
type Type byte

// value types, numeric order fixes the packing order
const (
	TypeUInt32  Type = 1
	TypeHash128 Type = 2
	TypeHash256 Type = 3
	TypeAmount  Type = 4
	TypeBlob    Type = 5
	TypeAccount Type = 6
	TypePathSet Type = 7
)

// Tag - type in high byte, code in low byte
type Tag uint16

// all known fields
const (
	TransactionType = Tag(TypeUInt32)<<8 | 1
	Flags           = Tag(TypeUInt32)<<8 | 2
	SourceTag       = Tag(TypeUInt32)<<8 | 3
	Sequence        = Tag(TypeUInt32)<<8 | 4
	Expiration      = Tag(TypeUInt32)<<8 | 10
	TransferRate    = Tag(TypeUInt32)<<8 | 11
	PublishSize     = Tag(TypeUInt32)<<8 | 12
	QualityIn       = Tag(TypeUInt32)<<8 | 20
	QualityOut      = Tag(TypeUInt32)<<8 | 21
	OfferSequence   = Tag(TypeUInt32)<<8 | 25

	EmailHash = Tag(TypeHash128)<<8 | 1

	WalletLocator = Tag(TypeHash256)<<8 | 1
	Nickname      = Tag(TypeHash256)<<8 | 2
	PublishHash   = Tag(TypeHash256)<<8 | 3

	Amount       = Tag(TypeAmount)<<8 | 1
	Fee          = Tag(TypeAmount)<<8 | 2
	SendMax      = Tag(TypeAmount)<<8 | 3
	TakerPays    = Tag(TypeAmount)<<8 | 4
	TakerGets    = Tag(TypeAmount)<<8 | 5
	LimitAmount  = Tag(TypeAmount)<<8 | 6
	MinimumOffer = Tag(TypeAmount)<<8 | 7

	PublicKey     = Tag(TypeBlob)<<8 | 1
	MessageKey    = Tag(TypeBlob)<<8 | 2
	SigningPubKey = Tag(TypeBlob)<<8 | 3
	TxnSignature  = Tag(TypeBlob)<<8 | 4
	Generator     = Tag(TypeBlob)<<8 | 5
	Signature     = Tag(TypeBlob)<<8 | 6
	Domain        = Tag(TypeBlob)<<8 | 7

	Account       = Tag(TypeAccount)<<8 | 1
	Destination   = Tag(TypeAccount)<<8 | 2
	AuthorizedKey = Tag(TypeAccount)<<8 | 3

	Paths = Tag(TypePathSet)<<8 | 1
)

// names are also the JSON keys
var names = map[Tag]string{
	TransactionType: "TransactionType",
	Flags:           "Flags",
	SourceTag:       "SourceTag",
	Sequence:        "Sequence",
	Expiration:      "Expiration",
	TransferRate:    "TransferRate",
	PublishSize:     "PublishSize",
	QualityIn:       "QualityIn",
	QualityOut:      "QualityOut",
	OfferSequence:   "OfferSequence",

	EmailHash: "EmailHash",

	WalletLocator: "WalletLocator",
	Nickname:      "Nickname",
	PublishHash:   "PublishHash",

	Amount:       "Amount",
	Fee:          "Fee",
	SendMax:      "SendMax",
	TakerPays:    "TakerPays",
	TakerGets:    "TakerGets",
	LimitAmount:  "LimitAmount",
	MinimumOffer: "MinimumOffer",

	PublicKey:     "PublicKey",
	MessageKey:    "MessageKey",
	SigningPubKey: "SigningPubKey",
	TxnSignature:  "TxnSignature",
	Generator:     "Generator",
	Signature:     "Signature",
	Domain:        "Domain",

	Account:       "Account",
	Destination:   "Destination",
	AuthorizedKey: "AuthorizedKey",

	Paths: "Paths",
}

// Type - value type of the tag
func (tag Tag) Type() Type {
	return Type(tag >> 8)
}

// IsKnown - true if the tag is one of the defined fields
func (tag Tag) IsKnown() bool {
	_, ok := names[tag]
	return ok
}

// String - field name, or number for unknown tags
func (tag Tag) String() string {
	if name, ok := names[tag]; ok {
		return name
	}
	return "Tag(" + strconv.Itoa(int(tag)) + ")"
}
