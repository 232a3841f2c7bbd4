// Copyright The OpenCentauri Authors
// SPDX-License-Identifier: Apache-2.0

package ota

import "crypto/md5"

// PayloadDigest computes the integrity digest stored in the container
// header, over the encrypted payload bytes as they appear on disk. The
// format mandates MD5; it guards against accidental corruption only,
// since anyone holding the public key material can forge a matching
// digest.
func PayloadDigest(payload []byte) [16]byte {
	return md5.Sum(payload)
}

// VerifyPayload recomputes the payload digest and compares it against the
// stored value, returning an *IntegrityError carrying both digests on
// mismatch.
func VerifyPayload(payload []byte, stored [16]byte) error {
	computed := PayloadDigest(payload)
	if computed != stored {
		return &IntegrityError{Stored: stored, Computed: computed}
	}
	return nil
}
