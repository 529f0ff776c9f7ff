// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun_NoArgs(t *testing.T) {
	if code := run([]string{"berdump"}); code != 1 {
		t.Errorf("run(no args) = %d, want 1", code)
	}
}

func TestRun_Help(t *testing.T) {
	tests := [][]string{
		{"berdump", "help"},
		{"berdump", "-h"},
		{"berdump", "--help"},
	}
	for _, args := range tests {
		if code := run(args); code != 0 {
			t.Errorf("run(%v) = %d, want 0", args, code)
		}
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	if code := run([]string{"berdump", "frobnicate"}); code != 1 {
		t.Errorf("run(unknown command) = %d, want 1", code)
	}
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	printUsage(&buf)
	for _, want := range []string{"berdump", "Usage:", "dump"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("printUsage() missing %q", want)
		}
	}
}

func TestPrintDumpUsage(t *testing.T) {
	var buf bytes.Buffer
	printDumpUsage(&buf)
	for _, want := range []string{"-strict", "-max-depth", "-log-level"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("printDumpUsage() missing %q", want)
		}
	}
}
