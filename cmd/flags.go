/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/metabolx/metabolx/backend"
)

func backendURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "backend-url",
		Sources: cli.EnvVars("BACKEND_URL"),
		Usage:   "base URL of the analysis backend serving /analyze and /chat",
	}
}

func requestTimeoutFlag() *cli.DurationFlag {
	return &cli.DurationFlag{
		Name:    "request-timeout",
		Sources: cli.EnvVars("BACKEND_TIMEOUT"),
		Value:   0,
		Usage:   "timeout for backend requests (0 waits until the backend answers)",
	}
}

func backendClient(cmd *cli.Command) (*backend.Client, error) {
	backendURL := strings.TrimSpace(cmd.String("backend-url"))
	if backendURL == "" {
		return nil, errBackendURLRequired
	}

	return backend.New(backendURL, cmd.Duration("request-timeout")), nil
}

// spinnerDelay is the frame interval of the CLI spinners.
const spinnerDelay = 100 * time.Millisecond
