/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/metabolx/metabolx/cmd"
	"github.com/metabolx/metabolx/logging"
)

func main() {
	logging.Init()

	app := &cli.Command{
		Name:  "metabolx",
		Usage: "MetabolX - Blood report analysis dashboard",
		Commands: []*cli.Command{
			cmd.CmdStart,
			cmd.CmdMigrate,
			cmd.CmdSubmit,
			cmd.CmdChat,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logging.Logger(logging.SourceApp).Fatal(err)
	}
}
