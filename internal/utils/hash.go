// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// shortHashLen is the number of hex characters kept by ShortHash.
const shortHashLen = 16

// Hash returns the BLAKE3-256 digest of data.
func Hash(data []byte) []byte {
	sum := blake3.Sum256(data)
	return sum[:]
}

// HashString returns the hex-encoded BLAKE3-256 digest of data.
func HashString(data string) string {
	return hex.EncodeToString(Hash([]byte(data)))
}

// ShortHash returns a short hex prefix of the BLAKE3 digest of data. It is
// used for file names, where collisions are already made unlikely by a
// timestamp prefix.
func ShortHash(data string) string {
	return HashString(data)[:shortHashLen]
}
