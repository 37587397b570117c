// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

// FullMerkleTree - compute the merkle tree from a set of leaf digests
//
// structure is:
//   1. N * leaf digests
//   2. level 1..m digests
//   3. merkle root digest (last element)
//
// an odd digest at the end of a level is paired with itself
func FullMerkleTree(leaves []Digest) []Digest {

	leafCount := len(leaves)
	if 0 == leafCount {
		return []Digest{}
	}

	totalLength := 1
	for n := leafCount; n > 1; n = (n + 1) / 2 {
		totalLength += n
	}

	tree := make([]Digest, totalLength)
	copy(tree, leaves)

	n := leafCount
	j := 0
	for width := leafCount; width > 1; width = (width + 1) / 2 {
		for i := 0; i < width; i += 2 {
			k := j + 1
			if i+1 == width {
				k = j
			}
			pair := make([]byte, 0, 2*DigestLength)
			pair = append(pair, tree[j][:]...)
			pair = append(pair, tree[k][:]...)
			tree[n] = NewDigest(pair)
			n += 1
			j = k + 1
		}
	}
	return tree
}

// Root - the merkle root of a set of leaves, zero digest for no leaves
func Root(leaves []Digest) Digest {
	tree := FullMerkleTree(leaves)
	if 0 == len(tree) {
		return Digest{}
	}
	return tree[len(tree)-1]
}
