// Copyright The OpenCentauri Authors
// SPDX-License-Identifier: Apache-2.0

package ota

import (
	"encoding/binary"
	"fmt"
)

const (
	// HeaderSize is the fixed size of the container header in bytes.
	HeaderSize = 32

	// CipherBlockSize is the AES block size the encrypted payload is
	// aligned to. The cipher runs without its own padding scheme, so
	// alignment is a structural property of the container.
	CipherBlockSize = 16
)

// Magic identifies the OTA container format.
var Magic = [4]byte{0x14, 0x17, 0x0B, 0x17}

// customInfo is the value the stock packaging tool writes at offset 0x08.
// The field is opaque to this codec and carried through unexamined on
// decode.
var customInfo = [4]byte{0x01, 0x00, 0x00, 0x00}

// Header is the fixed 32 byte container header. All multi-byte integers
// are little-endian on the wire.
type Header struct {
	Magic         [4]byte
	Major         uint8
	Minor         uint8
	Patch         uint8
	Board         uint8
	CustomInfo    [4]byte
	PayloadLength uint32
	PayloadDigest [16]byte
}

// ParseHeader reads a Header from the first HeaderSize bytes of b. The
// magic value is not checked here so callers can still inspect a foreign
// or damaged header for diagnostics; Unpack enforces it.
func ParseHeader(b []byte) (*Header, error) {
	if len(b) < HeaderSize {
		return nil, &TooSmallError{Size: len(b)}
	}

	h := &Header{
		Major:         b[4],
		Minor:         b[5],
		Patch:         b[6],
		Board:         b[7],
		PayloadLength: binary.LittleEndian.Uint32(b[12:16]),
	}
	copy(h.Magic[:], b[0:4])
	copy(h.CustomInfo[:], b[8:12])
	copy(h.PayloadDigest[:], b[16:32])

	return h, nil
}

// Marshal serializes the header into its fixed 32 byte wire form.
func (h *Header) Marshal() []byte {
	b := make([]byte, HeaderSize)

	copy(b[0:4], h.Magic[:])
	b[4] = h.Major
	b[5] = h.Minor
	b[6] = h.Patch
	b[7] = h.Board
	copy(b[8:12], h.CustomInfo[:])
	binary.LittleEndian.PutUint32(b[12:16], h.PayloadLength)
	copy(b[16:32], h.PayloadDigest[:])

	return b
}

// Version returns the firmware version in dotted form.
func (h *Header) Version() string {
	return fmt.Sprintf("%d.%d.%d", h.Major, h.Minor, h.Patch)
}

// FirmwareInfo identifies the firmware revision recorded in a container
// header.
type FirmwareInfo struct {
	Major uint8
	Minor uint8
	Patch uint8
	Board uint8
}

// NewFirmwareInfo builds a FirmwareInfo from plain integers. Each value
// is masked to the low 8 bits to match the header field width; out of
// range values are truncated, never rejected.
func NewFirmwareInfo(major, minor, patch, board int) FirmwareInfo {
	return FirmwareInfo{
		Major: uint8(major & 0xFF),
		Minor: uint8(minor & 0xFF),
		Patch: uint8(patch & 0xFF),
		Board: uint8(board & 0xFF),
	}
}
