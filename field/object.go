// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package field

import (
	"fmt"
	"sort"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/amount"
)

// Object - set of typed fields
//
// values are copied in and out so the caller never aliases storage
type Object struct {
	fields map[Tag]interface{}
}

// NewObject - an empty object
func NewObject() *Object {
	return &Object{
		fields: make(map[Tag]interface{}),
	}
}

// a setter given a tag of the wrong type is a programming error
func mustBe(tag Tag, t Type) {
	if !tag.IsKnown() || t != tag.Type() {
		panic(fmt.Sprintf("field: %s is not of type: %d", tag, t))
	}
}

// SetUInt32 - set a 32 bit integer field
func (o *Object) SetUInt32(tag Tag, value uint32) {
	mustBe(tag, TypeUInt32)
	o.fields[tag] = value
}

// SetHash128 - set a 128 bit hash field
func (o *Object) SetHash128(tag Tag, value Hash128) {
	mustBe(tag, TypeHash128)
	o.fields[tag] = value
}

// SetHash256 - set a 256 bit hash field
func (o *Object) SetHash256(tag Tag, value Hash256) {
	mustBe(tag, TypeHash256)
	o.fields[tag] = value
}

// SetAmount - set an amount field
func (o *Object) SetAmount(tag Tag, value amount.Amount) {
	mustBe(tag, TypeAmount)
	o.fields[tag] = value
}

// SetBlob - set a variable length field
func (o *Object) SetBlob(tag Tag, value []byte) {
	mustBe(tag, TypeBlob)
	o.fields[tag] = append([]byte{}, value...)
}

// SetAccount - set an account id field
func (o *Object) SetAccount(tag Tag, value account.AccountID) {
	mustBe(tag, TypeAccount)
	o.fields[tag] = value
}

// SetPathSet - set a path set field
func (o *Object) SetPathSet(tag Tag, value amount.PathSet) {
	mustBe(tag, TypePathSet)
	o.fields[tag] = copyPathSet(value)
}

// Has - true if the field is present
func (o *Object) Has(tag Tag) bool {
	_, ok := o.fields[tag]
	return ok
}

// Remove - delete a field if present
func (o *Object) Remove(tag Tag) {
	delete(o.fields, tag)
}

// Len - number of fields present
func (o *Object) Len() int {
	return len(o.fields)
}

// Tags - present tags in packing order
func (o *Object) Tags() []Tag {
	tags := make([]Tag, 0, len(o.fields))
	for tag := range o.fields {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// UInt32 - get a 32 bit integer field
func (o *Object) UInt32(tag Tag) (uint32, bool) {
	v, ok := o.fields[tag].(uint32)
	return v, ok
}

// Hash128 - get a 128 bit hash field
func (o *Object) Hash128(tag Tag) (Hash128, bool) {
	v, ok := o.fields[tag].(Hash128)
	return v, ok
}

// Hash256 - get a 256 bit hash field
func (o *Object) Hash256(tag Tag) (Hash256, bool) {
	v, ok := o.fields[tag].(Hash256)
	return v, ok
}

// Amount - get an amount field
func (o *Object) Amount(tag Tag) (amount.Amount, bool) {
	v, ok := o.fields[tag].(amount.Amount)
	return v, ok
}

// Blob - get a copy of a variable length field
func (o *Object) Blob(tag Tag) ([]byte, bool) {
	v, ok := o.fields[tag].([]byte)
	if !ok {
		return nil, false
	}
	return append([]byte{}, v...), true
}

// Account - get an account id field
func (o *Object) Account(tag Tag) (account.AccountID, bool) {
	v, ok := o.fields[tag].(account.AccountID)
	return v, ok
}

// PathSet - get a copy of a path set field
func (o *Object) PathSet(tag Tag) (amount.PathSet, bool) {
	v, ok := o.fields[tag].(amount.PathSet)
	if !ok {
		return nil, false
	}
	return copyPathSet(v), true
}

// Clone - deep copy
func (o *Object) Clone() *Object {
	c := NewObject()
	for tag, value := range o.fields {
		switch v := value.(type) {
		case []byte:
			c.fields[tag] = append([]byte{}, v...)
		case amount.PathSet:
			c.fields[tag] = copyPathSet(v)
		default:
			c.fields[tag] = v
		}
	}
	return c
}

func copyPathSet(pathSet amount.PathSet) amount.PathSet {
	if nil == pathSet {
		return nil
	}
	c := make(amount.PathSet, len(pathSet))
	for i, path := range pathSet {
		c[i] = append(amount.Path{}, path...)
	}
	return c
}
