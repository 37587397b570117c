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

// Unpack - decode a complete canonical encoding
//
// tags must be known and strictly ascending, the whole buffer must be
// consumed and packing the result must give back the same bytes
func Unpack(record []byte) (*Object, error) {
	o := NewObject()
	previous := Tag(0)

	n := 0
	for n < len(record) {
		t, count := util.FromVarint64(record[n:])
		if 0 == count {
			return nil, fault.ErrTruncatedRecord
		}
		n += count

		if t > 0xffff || !Tag(t).IsKnown() {
			return nil, fault.ErrUnknownField
		}
		tag := Tag(t)
		if tag <= previous {
			return nil, fault.ErrFieldOrder
		}
		previous = tag

		count, err := o.unpackValue(tag, record[n:])
		if nil != err {
			return nil, err
		}
		n += count
	}

	if !bytes.Equal(o.Pack(), record) {
		return nil, fault.ErrNonCanonicalEncoding
	}
	return o, nil
}

func (o *Object) unpackValue(tag Tag, buffer []byte) (int, error) {
	switch tag.Type() {

	case TypeUInt32:
		if len(buffer) < 4 {
			return 0, fault.ErrTruncatedRecord
		}
		o.fields[tag] = binary.BigEndian.Uint32(buffer)
		return 4, nil

	case TypeHash128:
		h := Hash128{}
		if len(buffer) < len(h) {
			return 0, fault.ErrTruncatedRecord
		}
		copy(h[:], buffer)
		o.fields[tag] = h
		return len(h), nil

	case TypeHash256:
		h := Hash256{}
		if len(buffer) < len(h) {
			return 0, fault.ErrTruncatedRecord
		}
		copy(h[:], buffer)
		o.fields[tag] = h
		return len(h), nil

	case TypeAmount:
		a, n, err := amount.Unpack(buffer)
		if nil != err {
			return 0, err
		}
		o.fields[tag] = a
		return n, nil

	case TypeBlob:
		length, n := util.ClippedVarint64(buffer, 0, maxBlobLength)
		if 0 == n {
			return 0, fault.ErrMalformedEncoding
		}
		if len(buffer) < n+length {
			return 0, fault.ErrTruncatedRecord
		}
		o.fields[tag] = append([]byte{}, buffer[n:n+length]...)
		return n + length, nil

	case TypeAccount:
		if len(buffer) < account.AccountIDLength {
			return 0, fault.ErrTruncatedRecord
		}
		id := account.AccountID{}
		copy(id[:], buffer)
		o.fields[tag] = id
		return account.AccountIDLength, nil

	case TypePathSet:
		pathSet, n, err := amount.UnpackPathSet(buffer)
		if nil != err {
			return 0, err
		}
		o.fields[tag] = pathSet
		return n, nil

	default:
		return 0, fault.ErrUnknownField
	}
}
