/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	accentColor  = color.New(color.FgCyan, color.Bold)
	dimColor     = color.New(color.Faint)
)

func printSuccess(w io.Writer, msg string) {
	successColor.Fprintf(w, "✓ %s\n", msg)
}

func printError(w io.Writer, msg string) {
	errorColor.Fprintf(w, "✗ %s\n", msg)
}

// waitFunc runs fn while showing that the CLI is waiting on the backend.
type waitFunc func(suffix string, fn func())

func spinnerWait(suffix string, fn func()) {
	s := spinner.New(spinner.CharSets[11], spinnerDelay, spinner.WithWriter(os.Stderr))
	s.Suffix = fmt.Sprintf(" %s", suffix)
	s.Start()
	defer s.Stop()

	fn()
}

func noWait(_ string, fn func()) {
	fn()
}
