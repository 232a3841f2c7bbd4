// Copyright The OpenCentauri Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencentauri/ccfw/ota"
)

var cmdInfo = &cobra.Command{
	Use:   "info <input.bin>",
	Short: "print and verify the container header",
	Long: `Parse the container header, print its fields, and verify the magic
and payload digest without decrypting or writing anything. Exits
non-zero when a check fails.`,
	Args: cobra.ExactArgs(1),
	Run:  runInfo,
}

func init() {
	root.AddCommand(cmdInfo)
}

func runInfo(cmd *cobra.Command, args []string) {
	data, err := readFile(args[0])
	if err != nil {
		die(err)
	}

	header, err := ota.ParseHeader(data)
	if err != nil {
		die(err)
	}

	payload := data[ota.HeaderSize:]

	magicOK := header.Magic == ota.Magic
	digestErr := ota.VerifyPayload(payload, header.PayloadDigest)

	status := func(ok bool) string {
		if ok {
			return "ok"
		}
		return "MISMATCH"
	}

	fmt.Printf("Magic    : %x (%s)\n", header.Magic, status(magicOK))
	fmt.Printf("Version  : %s  board=%d\n", header.Version(), header.Board)
	fmt.Printf("Custom   : %x\n", header.CustomInfo)
	fmt.Printf("Payload  : %d bytes declared, %d present\n", header.PayloadLength, len(payload))
	fmt.Printf("MD5      : %x (%s)\n", header.PayloadDigest, status(digestErr == nil))

	if !magicOK {
		die(&ota.BadMagicError{Magic: header.Magic})
	}
	if digestErr != nil {
		die(digestErr)
	}
	if len(payload)%ota.CipherBlockSize != 0 {
		die(&ota.BlockLengthError{Length: len(payload)})
	}
	if int(header.PayloadLength) != len(payload) {
		die(errors.New("declared payload length does not match the container"))
	}
}
