// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package amount_test

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/amount"
	"github.com/bitmark-inc/ledgertx/fault"
)

var issuer = account.NewAccountID([]byte("issuer of test currency"))

func usd(value uint64) amount.Amount {
	return amount.Amount{
		Value:    value,
		Currency: amount.Currency{'U', 'S', 'D'},
		Issuer:   issuer,
	}
}

func TestPackNative(t *testing.T) {
	a := amount.Native(300)
	packed := a.Pack(nil)
	expected := []byte{0xac, 0x02, 0x00, 0x00, 0x00}
	if !bytes.Equal(expected, packed) {
		t.Fatalf("packed: %x  expected: %x", packed, expected)
	}

	b, n, err := amount.Unpack(packed)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if len(packed) != n {
		t.Errorf("unpack consumed: %d  expected: %d", n, len(packed))
	}
	if a != b {
		t.Errorf("unpacked: %#v  expected: %#v", b, a)
	}
}

func TestPackIssued(t *testing.T) {
	a := usd(12345)
	packed := a.Pack([]byte{0xff})
	if 0xff != packed[0] {
		t.Fatalf("prefix overwritten: %x", packed)
	}
	packed = packed[1:]
	if 2+amount.CurrencyLength+account.AccountIDLength != len(packed) {
		t.Fatalf("packed length: %d", len(packed))
	}

	b, n, err := amount.Unpack(packed)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if len(packed) != n {
		t.Errorf("unpack consumed: %d  expected: %d", n, len(packed))
	}
	if a != b {
		t.Errorf("unpacked: %#v  expected: %#v", b, a)
	}

	for i := 0; i < len(packed); i += 1 {
		if _, _, err := amount.Unpack(packed[:i]); fault.ErrTruncatedRecord != err {
			t.Errorf("truncated at %d: error: %v", i, err)
		}
	}
}

func TestUnpackZeroIssuer(t *testing.T) {
	a := usd(1)
	a.Issuer = account.AccountID{}
	if _, _, err := amount.Unpack(a.Pack(nil)); fault.ErrInvalidAmount != err {
		t.Errorf("zero issuer error: %v", err)
	}
}

func TestSameValue(t *testing.T) {
	if !usd(10).SameValue(usd(10)) {
		t.Errorf("same amount differs")
	}
	otherIssuer := usd(10)
	otherIssuer.Issuer = account.NewAccountID([]byte("another issuer"))
	if !usd(10).SameValue(otherIssuer) {
		t.Errorf("issuer should not be compared")
	}
	if usd(10).SameValue(usd(11)) {
		t.Errorf("different values compare equal")
	}
	if usd(10).SameValue(amount.Native(10)) {
		t.Errorf("different currencies compare equal")
	}
}

func TestFromString(t *testing.T) {
	a, err := amount.FromString("42")
	if nil != err {
		t.Fatalf("native error: %s", err)
	}
	if amount.Native(42) != a {
		t.Errorf("native: %#v", a)
	}

	text := usd(7).String()
	b, err := amount.FromString(text)
	if nil != err {
		t.Fatalf("issued: %q  error: %s", text, err)
	}
	if usd(7) != b {
		t.Errorf("issued: %#v", b)
	}

	invalid := []string{"", "x", "-1", "1/USD", "1/XNS/" + issuer.String(), "1/usd/" + issuer.String(), "1/USD/" + issuer.String() + "/x"}
	for _, s := range invalid {
		if _, err := amount.FromString(s); nil == err {
			t.Errorf("accepted: %q", s)
		}
	}
}

func TestJSON(t *testing.T) {
	b, err := json.Marshal(amount.Native(5))
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	if `"5"` != string(b) {
		t.Errorf("native JSON: %s", b)
	}

	b, err = json.Marshal(usd(5))
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	expected := `{"value":"5","currency":"USD","issuer":"` + issuer.String() + `"}`
	if expected != string(b) {
		t.Errorf("issued JSON: %s  expected: %s", b, expected)
	}
}

func TestPathSet(t *testing.T) {
	pathSet := amount.PathSet{
		{
			{Account: issuer},
			{Currency: amount.Currency{'E', 'U', 'R'}, Issuer: issuer},
		},
		{
			{Account: issuer, Currency: amount.Currency{'J', 'P', 'Y'}, Issuer: issuer},
		},
	}

	packed := pathSet.Pack(nil)
	recovered, n, err := amount.UnpackPathSet(packed)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if len(packed) != n {
		t.Errorf("unpack consumed: %d  expected: %d", n, len(packed))
	}
	if !reflect.DeepEqual(pathSet, recovered) {
		t.Errorf("recovered: %#v  expected: %#v", recovered, pathSet)
	}

	for i := 0; i < len(packed); i += 1 {
		if _, _, err := amount.UnpackPathSet(packed[:i]); nil == err {
			t.Errorf("truncated at %d: accepted", i)
		}
	}
}

func TestInvalidPathSet(t *testing.T) {
	tests := [][]byte{
		{0x00},                      // no paths
		{0x01, 0x00},                // empty path
		{0x01, 0x01, 0x00},          // element with no fields
		{0x01, 0x01, 0x08},          // unknown flag
		{0x01, 0x01, 0x02, 0, 0, 0}, // currency flag with zero code
	}
	for i, buffer := range tests {
		if _, _, err := amount.UnpackPathSet(buffer); fault.ErrInvalidPathElement != err {
			t.Errorf("%d: error: %v", i, err)
		}
	}
}

func TestValidateAmount(t *testing.T) {
	if err := amount.Native(1).Validate(); nil != err {
		t.Errorf("native error: %s", err)
	}
	issued := usd(1)
	if err := issued.Validate(); nil != err {
		t.Errorf("issued error: %s", err)
	}
	issued.Issuer = account.AccountID{}
	if err := issued.Validate(); fault.ErrInvalidAmount != err {
		t.Errorf("zero issuer error: %v", err)
	}
}

// every path set Validate accepts must also unpack
func TestValidatePathSet(t *testing.T) {
	element := amount.PathElement{Account: issuer}

	long := make(amount.Path, amount.MaximumPathElements+1)
	for i := range long {
		long[i] = element
	}
	many := make(amount.PathSet, amount.MaximumPaths+1)
	for i := range many {
		many[i] = amount.Path{element}
	}

	tests := []struct {
		name    string
		pathSet amount.PathSet
		err     error
	}{
		{"single", amount.PathSet{{element}}, nil},
		{"longest", amount.PathSet{long[:amount.MaximumPathElements]}, nil},
		{"most", many[:amount.MaximumPaths], nil},
		{"no paths", amount.PathSet{}, fault.ErrInvalidPathElement},
		{"empty path", amount.PathSet{{}}, fault.ErrInvalidPathElement},
		{"too many elements", amount.PathSet{long}, fault.ErrInvalidPathElement},
		{"too many paths", many, fault.ErrInvalidPathElement},
		{"zero element", amount.PathSet{{amount.PathElement{}}}, fault.ErrInvalidPathElement},
	}

	for _, test := range tests {
		err := test.pathSet.Validate()
		if test.err != err {
			t.Errorf("%s: error: %v  expected: %v", test.name, err, test.err)
		}
		_, _, unpackErr := amount.UnpackPathSet(test.pathSet.Pack(nil))
		if (nil == err) != (nil == unpackErr) {
			t.Errorf("%s: validate: %v  unpack: %v", test.name, err, unpackErr)
		}
	}
}
