// Copyright The OpenCentauri Authors
// SPDX-License-Identifier: Apache-2.0

package ota

// PadToBlock appends zero bytes to data until its length is a multiple of
// blockSize. Input that is already aligned is returned unchanged. There
// is no inverse operation: decode leaves the padding in place and the
// archive's own trailer marks the real end of data.
func PadToBlock(data []byte, blockSize int) []byte {
	rem := len(data) % blockSize
	if rem == 0 {
		return data
	}
	return append(data, make([]byte, blockSize-rem)...)
}
