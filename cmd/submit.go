/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/metabolx/metabolx/backend"
)

var CmdSubmit = &cli.Command{
	Name:      "submit",
	Usage:     "Submit a blood report for analysis",
	ArgsUsage: "[file | -]",
	Flags: []cli.Flag{
		backendURLFlag(),
		requestTimeoutFlag(),
		&cli.StringFlag{
			Name:    "site-url",
			Sources: cli.EnvVars("SITE_URL"),
			Usage:   "public URL of the web dashboard, used to print an absolute dashboard link",
		},
		&cli.StringFlag{
			Name:  "text",
			Usage: "report text to submit instead of a file",
		},
	},
	Action: submit,
}

func submit(ctx context.Context, cmd *cli.Command) error {
	client, err := backendClient(cmd)
	if err != nil {
		return err
	}

	text, err := readReport(cmd.String("text"), cmd.Args().First(), os.Stdin)
	if err != nil {
		return err
	}

	return submitReport(ctx, client, text, cmd.String("site-url"), os.Stdout, spinnerWait)
}

// readReport returns the inline text, the named file, or stdin when the
// path is empty or "-".
func readReport(inline, path string, stdin io.Reader) (string, error) {
	if inline != "" && path != "" {
		return "", errTooManyReportSources
	}

	if inline != "" {
		return inline, nil
	}

	if path == "" || path == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read report from stdin: %w", err)
		}
		return string(raw), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read report file: %w", err)
	}

	return string(raw), nil
}

func submitReport(ctx context.Context, client *backend.Client, text, siteURL string, out io.Writer, wait waitFunc) error {
	var (
		resp backend.AnalyzeResponse
		err  error
	)

	wait("Analyzing report...", func() {
		resp, err = client.Analyze(ctx, text)
	})

	var appErr *backend.AppError

	switch {
	case errors.Is(err, backend.ErrEmptyReport):
		printError(out, "Please enter your blood report text")
		return err
	case errors.As(err, &appErr):
		printError(out, appErr.Message)
		return err
	case err != nil:
		printError(out, fmt.Sprintf("Error analyzing report: %v", err))
		return err
	}

	printSuccess(out, "Analysis ready")

	if resp.Redirect != "" {
		fmt.Fprintf(out, "Dashboard: %s\n", dashboardLink(siteURL, resp.Redirect))
	}

	if strings.TrimSpace(resp.Analysis) != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, resp.Analysis)
	}

	return nil
}

// dashboardLink resolves a relative redirect against the web dashboard URL.
// Without a site URL, and for absolute redirects, the redirect is kept as is.
func dashboardLink(siteURL, redirect string) string {
	target, err := url.Parse(redirect)
	if err != nil || target.IsAbs() || siteURL == "" {
		return redirect
	}

	base, err := url.Parse(siteURL)
	if err != nil {
		return redirect
	}

	return base.ResolveReference(target).String()
}
