// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kberio/asn1"
	"github.com/kberio/asn1/ber"
	"github.com/kberio/asn1/der"
)

// dumpCmd handles the dump command.
func dumpCmd(args []string) int {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	strict := fs.Bool("strict", false, "Reject input that is not DER canonical")
	maxDepth := fs.Int("max-depth", asn1.MaxDepth, "Override the recursion depth limit")
	logLevel := fs.String("log-level", "info", "Log level: debug, info, warn, error, disabled")
	help := fs.Bool("h", false, "Show help message")
	helpLong := fs.Bool("help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *help || *helpLong {
		printDumpUsage(os.Stdout)
		return 0
	}

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -log-level %q: %v\n", *logLevel, err)
		return 1
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()

	var input []byte
	switch fs.NArg() {
	case 0:
		input, err = io.ReadAll(os.Stdin)
	case 1:
		input, err = os.ReadFile(fs.Arg(0))
	default:
		fmt.Fprintln(os.Stderr, "Error: at most one file argument is allowed")
		return 1
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		return 1
	}

	logger.Debug().Int("bytes", len(input)).Bool("strict", *strict).Msg("decoding input")
	start := time.Now()

	var obj ber.Object
	var rest []byte
	if *strict {
		obj, rest, err = der.ParseDepth(input, *maxDepth)
	} else {
		obj, rest, err = ber.ParseOptions(input, ber.Options{MaxDepth: *maxDepth})
	}

	elapsed := time.Since(start)
	if err != nil {
		logger.Error().Err(err).Dur("elapsed", elapsed).Msg("decode failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	depth := treeDepth(&obj)
	logger.Info().
		Dur("elapsed", elapsed).
		Int("depth", depth).
		Int("consumed", len(input)-len(rest)).
		Int("trailing", len(rest)).
		Msg("decode complete")

	printTree(os.Stdout, &obj, 0)
	if len(rest) > 0 {
		fmt.Fprintf(os.Stdout, "\n%d trailing byte(s) after top-level element\n", len(rest))
	}
	return 0
}

// treeDepth reports the nesting depth of obj's deepest descendant, counting
// obj itself as depth 1.
func treeDepth(obj *ber.Object) int {
	max := 0
	for i := range obj.Children {
		if d := treeDepth(&obj.Children[i]); d > max {
			max = d
		}
	}
	return max + 1
}

// printTree writes a human-readable rendering of obj and its descendants to
// w, indenting each level by two spaces per depth.
func printTree(w io.Writer, obj *ber.Object, depth int) {
	indent := strings.Repeat("  ", depth)
	tag := tagLabel(obj)
	if obj.IsConstructed() {
		fmt.Fprintf(w, "%s%s (%d bytes, %d children)\n", indent, tag, len(obj.Raw), len(obj.Children))
		for i := range obj.Children {
			printTree(w, &obj.Children[i], depth+1)
		}
		return
	}
	fmt.Fprintf(w, "%s%s %s\n", indent, tag, summarizeContent(obj))
}

// tagLabel returns a space-separated class/tag label for obj.
func tagLabel(obj *ber.Object) string {
	class := obj.Class().String()
	return fmt.Sprintf("%s %s", class, obj.Tag().String())
}

// summarizeContent returns a short printable rendering of a primitive
// object's content, falling back to a hex dump for types with no sensible
// text form.
func summarizeContent(obj *ber.Object) string {
	switch obj.Tag() {
	case asn1.TagBoolean:
		if v, err := obj.Boolean(); err == nil {
			return fmt.Sprintf("%v", v)
		}
	case asn1.TagInteger, asn1.TagEnumerated:
		if v, err := obj.Int64(); err == nil {
			return fmt.Sprintf("%d", v)
		}
	case asn1.TagOID, asn1.TagRelativeOID:
		if v, err := obj.OID(); err == nil {
			return v.String()
		}
	case asn1.TagUTF8String, asn1.TagPrintableString, asn1.TagIA5String,
		asn1.TagNumericString, asn1.TagVisibleString:
		if v, err := obj.Text(); err == nil {
			return fmt.Sprintf("%q", v)
		}
	}
	return fmt.Sprintf("% x", obj.Content())
}
