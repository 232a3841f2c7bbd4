// Copyright The OpenCentauri Authors
// SPDX-License-Identifier: Apache-2.0

// Package ota implements the Centauri Carbon OTA firmware container
// format (.bin).
//
// A container is a fixed 32 byte header followed by an AES-256-CBC
// encrypted zip archive:
//
//	[0x00-0x03]  magic            14 17 0B 17
//	[0x04]       version major
//	[0x05]       version minor
//	[0x06]       version patch
//	[0x07]       board type       0 = e100_lite / e100
//	[0x08-0x0B]  custom info      01 00 00 00 on encode
//	[0x0C-0x0F]  payload length   little-endian uint32
//	[0x10-0x1F]  payload MD5
//	[0x20-EOF ]  encrypted payload
//
// The archive carries the update image as its update/update.swu entry.
// The archive is zero padded to the AES block size before encryption and
// the padding is left in place after decryption; zip readers locate
// content through the trailer so the extra bytes are ignored. TrimArchive
// removes them when an exact byte length is needed.
//
// The key material is embedded in the printer's own application binary
// and publicly known. The format provides integrity checking against
// accidental corruption, not confidentiality or authenticity.
package ota
