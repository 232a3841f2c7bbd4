// Copyright The OpenCentauri Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/opencentauri/ccfw/ota"
)

var (
	cmdDecode = &cobra.Command{
		Use:   "decode <input.bin> <output.zip>",
		Short: "unpack an OTA container into its update archive",
		Long: `Verify and decrypt an OTA container, writing the inner zip archive.

The archive keeps the trailing zero padding the encoder added unless
--trim is given; zip readers locate content through the trailer, so the
padding is normally harmless.`,
		Args: cobra.ExactArgs(2),
		Run:  runDecode,
	}

	trimPadding bool
)

func init() {
	cmdDecode.Flags().BoolVar(&trimPadding, "trim", false, "strip trailing padding using the archive's own end marker")
	root.AddCommand(cmdDecode)
}

func runDecode(cmd *cobra.Command, args []string) {
	input, output := args[0], args[1]

	data, err := readFile(input)
	if err != nil {
		die(err)
	}

	codec := ota.NewDecoder()
	if err := applyKeyOverrides(codec); err != nil {
		die(err)
	}

	archive, header, err := codec.Unpack(data)
	if err != nil {
		die(err)
	}

	plog.Infof("Version %s board %d, %d payload bytes, digest %x",
		header.Version(), header.Board, header.PayloadLength, header.PayloadDigest)

	if trimPadding {
		archive, err = ota.TrimArchive(archive)
		if err != nil {
			die(err)
		}
	}

	if err := os.WriteFile(output, archive, 0644); err != nil {
		die(err)
	}

	plog.Noticef("Wrote %s (%d bytes)", output, len(archive))
}
