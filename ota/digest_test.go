// Copyright The OpenCentauri Authors
// SPDX-License-Identifier: Apache-2.0

package ota

import (
	"encoding/hex"
	"errors"
	"testing"
)

func digestFromHex(t *testing.T, s string) (d [16]byte) {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	copy(d[:], b)
	return
}

func TestPayloadDigest(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want string
	}{
		{"", "d41d8cd98f00b204e9800998ecf8427e"},
		{"abc", "900150983cd24fb0d6963f7d28e17f72"},
	} {
		got := PayloadDigest([]byte(tt.in))
		if got != digestFromHex(t, tt.want) {
			t.Errorf("PayloadDigest(%q) = %x, want %s", tt.in, got, tt.want)
		}
	}
}

func TestVerifyPayload(t *testing.T) {
	payload := []byte("some encrypted bytes")

	if err := VerifyPayload(payload, PayloadDigest(payload)); err != nil {
		t.Fatal(err)
	}

	bogus := digestFromHex(t, "00112233445566778899aabbccddeeff")
	err := VerifyPayload(payload, bogus)
	if err == nil {
		t.Fatal("expected a digest mismatch")
	}

	var mismatch *IntegrityError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected an IntegrityError, got %T: %v", err, err)
	}
	if mismatch.Stored != bogus {
		t.Errorf("IntegrityError.Stored is %x, want %x", mismatch.Stored, bogus)
	}
	if mismatch.Computed != PayloadDigest(payload) {
		t.Errorf("IntegrityError.Computed is %x", mismatch.Computed)
	}
}
