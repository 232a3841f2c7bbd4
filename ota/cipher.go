// Copyright The OpenCentauri Authors
// SPDX-License-Identifier: Apache-2.0

package ota

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"fmt"
)

// AES-256-CBC key material embedded in the printer's application binary.
// The encode and decode keys differ in their trailing bytes and have been
// observed in different roles; they are not interchangeable, so each
// codec direction defaults to its own key.
const (
	EncodeKeyHex = "78B6A614B6B6E361DC84D705B7FDDA33C967DDF2970A689F8156F78EFE0B1FCE"
	DecodeKeyHex = "78B6A614B6B6E361DC84D705B7FDDA33C967DDF2970A689F8156F78EFE0B0928"
	IVHex        = "54E37626B9A699403064111F77858049"
)

var (
	// EncodeKey is the default key for producing containers.
	EncodeKey = mustHex(EncodeKeyHex)
	// DecodeKey is the default key for consuming containers.
	DecodeKey = mustHex(DecodeKeyHex)
	// IV is the fixed CBC initialization vector shared by both roles.
	IV = mustHex(IVHex)
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("ota: bad built-in key material: " + err.Error())
	}
	return b
}

// Cipher is the block encryption capability the container codec relies
// on. Implementations operate on block aligned data only, apply no
// padding scheme of their own, and preserve length.
type Cipher interface {
	Encrypt(key, iv, plaintext []byte) ([]byte, error)
	Decrypt(key, iv, ciphertext []byte) ([]byte, error)
}

// AESCBC implements Cipher with AES in CBC mode, matching the device
// firmware. A 32 byte key selects AES-256.
type AESCBC struct{}

func (AESCBC) Encrypt(key, iv, plaintext []byte) ([]byte, error) {
	mode, err := cbc(key, iv, true)
	if err != nil {
		return nil, err
	}
	if len(plaintext)%CipherBlockSize != 0 {
		return nil, &BlockLengthError{Length: len(plaintext)}
	}

	out := make([]byte, len(plaintext))
	mode.CryptBlocks(out, plaintext)
	return out, nil
}

func (AESCBC) Decrypt(key, iv, ciphertext []byte) ([]byte, error) {
	mode, err := cbc(key, iv, false)
	if err != nil {
		return nil, err
	}
	if len(ciphertext)%CipherBlockSize != 0 {
		return nil, &BlockLengthError{Length: len(ciphertext)}
	}

	out := make([]byte, len(ciphertext))
	mode.CryptBlocks(out, ciphertext)
	return out, nil
}

func cbc(key, iv []byte, encrypt bool) (cipher.BlockMode, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cipher init: %w", err)
	}
	if len(iv) != block.BlockSize() {
		return nil, fmt.Errorf("cipher init: IV must be %d bytes, got %d", block.BlockSize(), len(iv))
	}

	if encrypt {
		return cipher.NewCBCEncrypter(block, iv), nil
	}
	return cipher.NewCBCDecrypter(block, iv), nil
}
