// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command asn1c compiles ASN.1 modules into a target representation (Rust
// type projections, Protocol Buffers descriptors, or PostgreSQL DDL).
package main

import (
	"fmt"
	"os"

	"asn1c.dev/asn1c/cmd/asn1c/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
