// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package field - typed tag/value container with a canonical encoding
//
// each field is identified by a Tag whose high byte is the value type
// and whose low byte is the field code within that type
//
// packed form is the fields in ascending tag order:
//
//   Varint64(tag) ++ value
//
// value encodings:
//
//   UInt32   4 bytes big endian
//   Hash128  16 bytes
//   Hash256  32 bytes
//   Amount   see amount package
//   Blob     Varint64(length) ++ bytes
//   Account  20 bytes
//   PathSet  see amount package
package field
