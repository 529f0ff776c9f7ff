// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage information to the given writer.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `berdump - BER/DER tag tree inspector

Usage:
  berdump <command> [options]

Commands:
  dump        Decode a file or stdin and print its tag tree
  help        Show this help message

Use "berdump dump -h" for more information about the dump command.
`)
}

// printDumpUsage prints the dump command usage.
func printDumpUsage(w io.Writer) {
	fmt.Fprint(w, `Decode a file or stdin and print its tag tree

Usage:
  berdump dump [options] [file]

If no file is given, input is read from stdin.

Options:
  -strict
        Reject input that is not DER canonical (default: permissive BER)
  -max-depth int
        Override the recursion depth limit (default: 50)
  -log-level string
        Log level: debug, info, warn, error, disabled (default "info")
  -h, -help
        Show this help message
`)
}
