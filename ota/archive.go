// Copyright The OpenCentauri Authors
// SPDX-License-Identifier: Apache-2.0

package ota

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"errors"
)

// UpdateEntryPath is the archive entry the device update service extracts.
const UpdateEntryPath = "update/update.swu"

var (
	zipMagic = []byte{'P', 'K'}
	eocdSig  = []byte{'P', 'K', 0x05, 0x06}
)

// eocdLen is the size of a zip end-of-central-directory record without
// its trailing comment.
const eocdLen = 22

// IsZip reports whether data starts with the zip local file header
// signature.
func IsZip(data []byte) bool {
	return bytes.HasPrefix(data, zipMagic)
}

// WrapUpdate builds a new zip archive holding swu as its single
// update/update.swu entry, deflate compressed.
func WrapUpdate(swu []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw := zip.NewWriter(&buf)
	w, err := zw.Create(UpdateEntryPath)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(swu); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// CheckArchive verifies that data can be packed as-is. Input without the
// zip signature fails with *NotAnArchiveError. A parseable archive that
// lacks the update/update.swu entry is accepted with a warning, since the
// device ignores entries it does not know but will find nothing to
// install.
func CheckArchive(data []byte) error {
	if !IsZip(data) {
		m := data
		if len(m) > 4 {
			m = m[:4]
		}
		return &NotAnArchiveError{Magic: m}
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		plog.Warningf("input has a zip signature but does not parse: %v", err)
		return nil
	}
	for _, f := range zr.File {
		if f.Name == UpdateEntryPath {
			return nil
		}
	}
	plog.Warningf("archive has no %s entry, the device will find nothing to install", UpdateEntryPath)
	return nil
}

// TrimArchive cuts trailing bytes left over after decoding, using the zip
// end-of-central-directory record to find the true end of the archive.
// The record sits within the last 64KiB plus 22 bytes of a well-formed
// archive, since the comment length field is 16 bit.
func TrimArchive(data []byte) ([]byte, error) {
	start := len(data) - (eocdLen + 0xFFFF)
	if start < 0 {
		start = 0
	}

	i := bytes.LastIndex(data[start:], eocdSig)
	if i < 0 {
		return nil, errors.New("no end-of-central-directory record found")
	}
	i += start
	if i+eocdLen > len(data) {
		return nil, errors.New("truncated end-of-central-directory record")
	}

	commentLen := int(binary.LittleEndian.Uint16(data[i+20 : i+22]))
	end := i + eocdLen + commentLen
	if end > len(data) {
		return nil, errors.New("end-of-central-directory comment length out of range")
	}

	return data[:end], nil
}
