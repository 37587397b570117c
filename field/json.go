// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package field

import (
	"encoding/hex"
	"encoding/json"
)

// JSONFields - map of field name to a JSON encodable value
//
// blobs are hex, hashes are hex, accounts are base58 text
func (o *Object) JSONFields() map[string]interface{} {
	m := make(map[string]interface{}, len(o.fields))
	for tag, value := range o.fields {
		switch v := value.(type) {
		case []byte:
			m[tag.String()] = hex.EncodeToString(v)
		default:
			m[tag.String()] = v
		}
	}
	return m
}

// MarshalJSON - object of all fields
func (o *Object) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.JSONFields())
}
