// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer opens saved charts in an external image viewer.
package viewer

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
	"golang.org/x/crypto/ssh/terminal"
)

// Interactive reports whether stdout is a capable terminal, in which
// case someone is likely around to look at a chart.
func Interactive() bool {
	if os.Getenv("TERM") == "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return terminal.IsTerminal(int(os.Stdout.Fd()))
}

// Open starts cmdline, a shell-quoted command line, with path as an
// extra argument and returns without waiting for it. If cmdline is
// empty, Open does nothing and returns a nil Cmd.
func Open(cmdline, path string) (*exec.Cmd, error) {
	args, err := shellquote.Split(cmdline)
	if err != nil {
		return nil, fmt.Errorf("parsing viewer %q: %w", cmdline, err)
	}
	if len(args) == 0 {
		return nil, nil
	}
	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting viewer: %w", err)
	}
	return cmd, nil
}

// Show opens path with cmdline when force is set or stdout is
// Interactive. Like Open, it does nothing if cmdline is empty.
func Show(cmdline, path string, force bool) error {
	if !force && !Interactive() {
		return nil
	}
	_, err := Open(cmdline, path)
	return err
}
