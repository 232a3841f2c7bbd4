// Copyright The OpenCentauri Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/coreos/pkg/capnslog"
	"github.com/spf13/cobra"

	"github.com/opencentauri/ccfw/cli"
	"github.com/opencentauri/ccfw/ota"
	"github.com/opencentauri/ccfw/util"
)

var (
	plog = capnslog.NewPackageLogger("github.com/opencentauri/ccfw", "ccfw")

	root = &cobra.Command{
		Use:   "ccfw [command]",
		Short: "Centauri Carbon OTA firmware packaging tools",
	}

	keyHex string
	ivHex  string
)

func init() {
	root.PersistentFlags().StringVar(&keyHex, "key", "", "hex AES-256 key overriding the built-in role key")
	root.PersistentFlags().StringVar(&ivHex, "iv", "", "hex AES IV overriding the built-in one")
}

func main() {
	cli.Execute(root)
}

func die(err error) {
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(1)
}

// applyKeyOverrides replaces the codec's role key material with the
// --key/--iv flag values when given.
func applyKeyOverrides(codec *ota.Codec) error {
	if keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil {
			return fmt.Errorf("parse --key: %v", err)
		}
		codec.Key = key
	}
	if ivHex != "" {
		iv, err := hex.DecodeString(ivHex)
		if err != nil {
			return fmt.Errorf("parse --iv: %v", err)
		}
		codec.IV = iv
	}
	return nil
}

// readFile slurps path into memory, drawing a progress bar at INFO level
// for large firmware images.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := util.CopyProgress(capnslog.INFO, "Reading "+path, &buf, f, fi.Size()); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
