// Copyright The OpenCentauri Authors
// SPDX-License-Identifier: Apache-2.0

package version

// Version is the tool version reported by the version subcommand.
// Overridden at build time via -ldflags "-X ...version.Version=".
var Version = "0.1.0+git"
