// Copyright The OpenCentauri Authors
// SPDX-License-Identifier: Apache-2.0

package ota

import (
	"encoding/hex"
	"fmt"
)

// TooSmallError reports an input shorter than the fixed container header.
type TooSmallError struct {
	Size int
}

func (e *TooSmallError) Error() string {
	return fmt.Sprintf("input too small: %d bytes, the header alone is %d", e.Size, HeaderSize)
}

// BadMagicError reports a header whose magic does not identify the OTA
// container format.
type BadMagicError struct {
	Magic [4]byte
}

func (e *BadMagicError) Error() string {
	return fmt.Sprintf("bad magic %x, expected %x", e.Magic, Magic)
}

// IntegrityError reports a payload whose recomputed digest differs from
// the one stored in the header. It signals corruption, truncation, or a
// container produced for a different format revision.
type IntegrityError struct {
	Stored   [16]byte
	Computed [16]byte
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("payload digest mismatch: stored=%s computed=%s",
		hex.EncodeToString(e.Stored[:]), hex.EncodeToString(e.Computed[:]))
}

// BlockLengthError reports payload data whose length is not a multiple of
// the cipher block size.
type BlockLengthError struct {
	Length int
}

func (e *BlockLengthError) Error() string {
	return fmt.Sprintf("payload length %d is not a multiple of the %d byte cipher block",
		e.Length, CipherBlockSize)
}

// NotAnArchiveError reports encode input that carries no zip signature.
type NotAnArchiveError struct {
	Magic []byte
}

func (e *NotAnArchiveError) Error() string {
	return fmt.Sprintf("input does not look like a zip archive (magic=%x)", e.Magic)
}
