// Copyright The OpenCentauri Authors
// SPDX-License-Identifier: Apache-2.0

package ota

import (
	"bytes"
	"testing"
)

func TestPadToBlockAlignment(t *testing.T) {
	for size := 0; size <= 48; size++ {
		in := bytes.Repeat([]byte{0xAA}, size)
		out := PadToBlock(in, CipherBlockSize)

		if len(out)%CipherBlockSize != 0 {
			t.Errorf("size %d: padded length %d is not block aligned", size, len(out))
		}
		if !bytes.Equal(out[:size], in) {
			t.Errorf("size %d: padding modified the original data", size)
		}
		for i := size; i < len(out); i++ {
			if out[i] != 0 {
				t.Errorf("size %d: padding byte %d is %#x, want zero", size, i, out[i])
			}
		}

		if again := PadToBlock(out, CipherBlockSize); len(again) != len(out) {
			t.Errorf("size %d: padding is not idempotent (%d != %d)", size, len(again), len(out))
		}
	}
}

func TestPadToBlockNoopOnAligned(t *testing.T) {
	in := make([]byte, 2*CipherBlockSize)
	out := PadToBlock(in, CipherBlockSize)

	if len(out) != len(in) {
		t.Errorf("aligned input grew from %d to %d bytes", len(in), len(out))
	}
	if &out[0] != &in[0] {
		t.Error("aligned input was copied")
	}
}

func TestPadToBlockEmpty(t *testing.T) {
	if out := PadToBlock(nil, CipherBlockSize); len(out) != 0 {
		t.Errorf("empty input is already aligned, got %d bytes", len(out))
	}
}
