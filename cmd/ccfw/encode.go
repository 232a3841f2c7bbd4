// Copyright The OpenCentauri Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/coreos/go-semver/semver"
	"github.com/spf13/cobra"

	"github.com/opencentauri/ccfw/ota"
)

var (
	cmdEncode = &cobra.Command{
		Use:   "encode <input.swu|input.zip> <output.bin> [major [minor [patch [board]]]]",
		Short: "pack an update into an OTA container",
		Long: `Pack a firmware update into the OTA container format the printer
accepts from a USB stick or the update server.

A raw .swu input is wrapped into a zip archive as update/update.swu
first; any other input must already be a zip archive. Version digits
default to 0 and may also be given as --fw-version major.minor.patch.`,
		Args: cobra.RangeArgs(2, 6),
		Run:  runEncode,
	}

	fwVersion string
	fwBoard   int
)

func init() {
	cmdEncode.Flags().StringVar(&fwVersion, "fw-version", "", "firmware version as major.minor.patch, overrides the positional digits")
	cmdEncode.Flags().IntVar(&fwBoard, "board", 0, "board type (0 = e100_lite / e100)")
	root.AddCommand(cmdEncode)
}

func runEncode(cmd *cobra.Command, args []string) {
	input, output := args[0], args[1]

	var digits [4]int
	for i, arg := range args[2:] {
		n, err := strconv.Atoi(arg)
		if err != nil {
			die(fmt.Errorf("parse version digit %q: %v", arg, err))
		}
		digits[i] = n
	}
	major, minor, patch, board := digits[0], digits[1], digits[2], digits[3]

	if fwVersion != "" {
		v, err := semver.NewVersion(fwVersion)
		if err != nil {
			die(fmt.Errorf("parse --fw-version: %v", err))
		}
		major, minor, patch = int(v.Major), int(v.Minor), int(v.Patch)
	}
	if cmd.Flags().Changed("board") {
		board = fwBoard
	}

	data, err := readFile(input)
	if err != nil {
		die(err)
	}

	var archive []byte
	if strings.HasSuffix(input, ".swu") {
		plog.Infof("Wrapping %s into a zip archive", input)
		archive, err = ota.WrapUpdate(data)
		if err != nil {
			die(err)
		}
	} else {
		if err := ota.CheckArchive(data); err != nil {
			die(err)
		}
		archive = data
	}

	codec := ota.NewEncoder()
	if err := applyKeyOverrides(codec); err != nil {
		die(err)
	}

	info := ota.NewFirmwareInfo(major, minor, patch, board)
	container, err := codec.Pack(archive, info)
	if err != nil {
		die(err)
	}

	// The container is complete at this point, nothing partial is ever
	// written.
	if err := os.WriteFile(output, container, 0644); err != nil {
		die(err)
	}

	plog.Noticef("Wrote %s (%d bytes, version %d.%d.%d, board %d)",
		output, len(container), info.Major, info.Minor, info.Patch, info.Board)
}
