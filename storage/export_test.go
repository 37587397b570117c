// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// TestPool - a pool outside the production key space
var TestPool = &PoolHandle{
	prefix: 'Z',
	limit:  []byte{'Z' + 1},
}
