// Copyright The OpenCentauri Authors
// SPDX-License-Identifier: Apache-2.0

package ota

import (
	"fmt"

	"github.com/coreos/pkg/capnslog"
)

var plog = capnslog.NewPackageLogger("github.com/opencentauri/ccfw", "ota")

// Codec packs update archives into OTA containers and unpacks them
// again. Key and IV are explicit fields rather than hidden globals so
// per-variant material can be swapped without a code change; NewEncoder
// and NewDecoder seed the role defaults. A Codec holds no per-call state,
// so one value may serve concurrent Pack and Unpack calls.
type Codec struct {
	Cipher Cipher
	Key    []byte
	IV     []byte
}

// NewEncoder returns a Codec seeded with the built-in encode role key.
func NewEncoder() *Codec {
	return &Codec{Cipher: AESCBC{}, Key: EncodeKey, IV: IV}
}

// NewDecoder returns a Codec seeded with the built-in decode role key.
func NewDecoder() *Codec {
	return &Codec{Cipher: AESCBC{}, Key: DecodeKey, IV: IV}
}

// Pack serializes archive into a complete container: the archive is zero
// padded to the cipher block size, encrypted, digested, and prefixed with
// the 32 byte header recording info and the payload digest.
func (c *Codec) Pack(archive []byte, info FirmwareInfo) ([]byte, error) {
	padded := PadToBlock(archive, CipherBlockSize)

	encrypted, err := c.Cipher.Encrypt(c.Key, c.IV, padded)
	if err != nil {
		return nil, fmt.Errorf("encrypt payload: %w", err)
	}

	h := &Header{
		Magic:         Magic,
		Major:         info.Major,
		Minor:         info.Minor,
		Patch:         info.Patch,
		Board:         info.Board,
		CustomInfo:    customInfo,
		PayloadLength: uint32(len(encrypted)),
		PayloadDigest: PayloadDigest(encrypted),
	}

	plog.Debugf("packed %d archive bytes (%d padded) for version %s board %d",
		len(archive), len(padded), h.Version(), h.Board)

	return append(h.Marshal(), encrypted...), nil
}

// Unpack recovers the update archive from a container. The payload
// digest is verified before any decryption is attempted, so corrupt data
// never reaches the cipher. The returned archive keeps the trailing zero
// padding added by Pack; the parsed header is returned alongside it for
// diagnostics, including on integrity and alignment failures.
func (c *Codec) Unpack(container []byte) ([]byte, *Header, error) {
	if len(container) < HeaderSize {
		return nil, nil, &TooSmallError{Size: len(container)}
	}

	h, err := ParseHeader(container)
	if err != nil {
		return nil, nil, err
	}

	if h.Magic != Magic {
		return nil, h, &BadMagicError{Magic: h.Magic}
	}

	payload := container[HeaderSize:]

	// The declared length is informational, the digest is authoritative.
	if int(h.PayloadLength) != len(payload) {
		plog.Warningf("header declares %d payload bytes, container has %d", h.PayloadLength, len(payload))
	}

	if err := VerifyPayload(payload, h.PayloadDigest); err != nil {
		return nil, h, err
	}

	if len(payload)%CipherBlockSize != 0 {
		return nil, h, &BlockLengthError{Length: len(payload)}
	}

	decrypted, err := c.Cipher.Decrypt(c.Key, c.IV, payload)
	if err != nil {
		return nil, h, fmt.Errorf("decrypt payload: %w", err)
	}

	return decrypted, h, nil
}
