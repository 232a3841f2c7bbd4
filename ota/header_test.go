// Copyright The OpenCentauri Authors
// SPDX-License-Identifier: Apache-2.0

package ota

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestHeaderRoundTrip(t *testing.T) {
	in := &Header{
		Magic:         Magic,
		Major:         1,
		Minor:         2,
		Patch:         3,
		Board:         4,
		CustomInfo:    [4]byte{0x01, 0x00, 0x00, 0x00},
		PayloadLength: 0xDEADBEEF,
		PayloadDigest: [16]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	}

	b := in.Marshal()
	if len(b) != HeaderSize {
		t.Fatalf("Marshal produced %d bytes, want %d", len(b), HeaderSize)
	}

	out, err := ParseHeader(b)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("parsed header %+v does not match original %+v", out, in)
	}
}

func TestHeaderLayout(t *testing.T) {
	h := &Header{
		Magic:         Magic,
		Major:         1,
		Minor:         1,
		Patch:         46,
		Board:         0,
		CustomInfo:    [4]byte{0x01, 0x00, 0x00, 0x00},
		PayloadLength: 0x12345678,
	}

	b := h.Marshal()

	want := []byte{0x14, 0x17, 0x0B, 0x17, 0x01, 0x01, 0x2E, 0x00}
	if !bytes.Equal(b[:8], want) {
		t.Errorf("header prefix is % x, want % x", b[:8], want)
	}

	// payload length is little-endian at 0x0C
	if !bytes.Equal(b[12:16], []byte{0x78, 0x56, 0x34, 0x12}) {
		t.Errorf("payload length field is % x", b[12:16])
	}
}

func TestParseHeaderTooSmall(t *testing.T) {
	_, err := ParseHeader(make([]byte, HeaderSize-1))
	if err == nil {
		t.Fatal("expected an error for a short header")
	}

	var tooSmall *TooSmallError
	if !errors.As(err, &tooSmall) {
		t.Fatalf("expected a TooSmallError, got %T: %v", err, err)
	}
	if tooSmall.Size != HeaderSize-1 {
		t.Errorf("TooSmallError.Size is %d, want %d", tooSmall.Size, HeaderSize-1)
	}
}

func TestNewFirmwareInfoMasksToByte(t *testing.T) {
	info := NewFirmwareInfo(300, 256, 511, 257)

	if info.Major != 44 {
		t.Errorf("Major is %d, want 44", info.Major)
	}
	if info.Minor != 0 {
		t.Errorf("Minor is %d, want 0", info.Minor)
	}
	if info.Patch != 255 {
		t.Errorf("Patch is %d, want 255", info.Patch)
	}
	if info.Board != 1 {
		t.Errorf("Board is %d, want 1", info.Board)
	}
}
