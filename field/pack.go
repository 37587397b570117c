// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package field

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/amount"
	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/util"
)

// maximum bytes in a blob field
const maxBlobLength = 8192

// Pack - canonical encoding of all fields
func (o *Object) Pack() []byte {
	return o.pack(nil, 0)
}

// PackWithout - canonical encoding omitting one field
//
// used to build the payload that a signature covers
func (o *Object) PackWithout(skip Tag) []byte {
	return o.pack(nil, skip)
}

// Validate - check that every value can be decoded after packing
func (o *Object) Validate() error {
	for _, tag := range o.Tags() {
		switch v := o.fields[tag].(type) {
		case amount.Amount:
			if err := v.Validate(); nil != err {
				return err
			}
		case []byte:
			if len(v) > maxBlobLength {
				return fault.ErrRecordTooLong
			}
		case amount.PathSet:
			if err := v.Validate(); nil != err {
				return err
			}
		}
	}
	return nil
}

// Equal - same fields with same values
func (o *Object) Equal(other *Object) bool {
	if nil == o || nil == other {
		return o == other
	}
	return bytes.Equal(o.Pack(), other.Pack())
}

func (o *Object) pack(buffer []byte, skip Tag) []byte {
	for _, tag := range o.Tags() {
		if skip == tag {
			continue
		}
		buffer = util.AppendVarint64(buffer, uint64(tag))

		switch v := o.fields[tag].(type) {
		case uint32:
			var b [4]byte
			binary.BigEndian.PutUint32(b[:], v)
			buffer = append(buffer, b[:]...)
		case Hash128:
			buffer = append(buffer, v[:]...)
		case Hash256:
			buffer = append(buffer, v[:]...)
		case amount.Amount:
			buffer = v.Pack(buffer)
		case []byte:
			buffer = util.AppendVarint64(buffer, uint64(len(v)))
			buffer = append(buffer, v...)
		case account.AccountID:
			buffer = append(buffer, v[:]...)
		case amount.PathSet:
			buffer = v.Pack(buffer)
		}
	}
	return buffer
}
