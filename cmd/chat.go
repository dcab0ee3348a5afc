/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/metabolx/metabolx/chat"
)

var CmdChat = &cli.Command{
	Name:  "chat",
	Usage: "Chat with the MetabolX assistant",
	Flags: []cli.Flag{
		backendURLFlag(),
		requestTimeoutFlag(),
	},
	Action: chatREPL,
}

const chatHelp = `Commands:
  /replies  list quick replies
  /emoji    list emoji
  /clear    clear the conversation
  /quit     leave the chat`

func chatREPL(ctx context.Context, cmd *cli.Command) error {
	client, err := backendClient(cmd)
	if err != nil {
		return err
	}

	conv := chat.NewConversation(uuid.New(), chat.NewMemoryStore(0), client, chat.DefaultCatalog())

	accentColor.Fprintln(os.Stdout, "MetabolX AI Assistant")
	dimColor.Fprintln(os.Stdout, chatHelp)
	fmt.Fprintln(os.Stdout)

	return runChat(ctx, conv, chat.DefaultCatalog(), os.Stdin, os.Stdout, spinnerWait)
}

func runChat(ctx context.Context, conv *chat.Conversation, catalog *chat.Catalog, in io.Reader, out io.Writer, wait waitFunc) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/clear":
			if err := conv.Reset(ctx); err != nil {
				return err
			}
			dimColor.Fprintln(out, "Conversation cleared")
			continue
		case "/replies":
			printList(out, "Quick replies", catalog.Phrases())
			continue
		case "/emoji":
			for _, category := range catalog.Emoji {
				fmt.Fprintf(out, "%s: %s\n", category.Name, strings.Join(category.Items, " "))
			}
			continue
		case "/help":
			dimColor.Fprintln(out, chatHelp)
			continue
		}

		var (
			exchange chat.Exchange
			err      error
		)

		wait("Thinking...", func() {
			exchange, err = conv.Send(ctx, line)
		})

		if errors.Is(err, chat.ErrNothingToSend) {
			continue
		}
		if err != nil {
			return err
		}

		printReply(out, exchange)
	}
}

func printReply(out io.Writer, exchange chat.Exchange) {
	reply := exchange.Reply

	accentColor.Fprint(out, "MetabolX AI")
	dimColor.Fprintf(out, " %s\n", reply.Timestamp())

	if exchange.Failed {
		errorColor.Fprintln(out, reply.Content)
	} else {
		fmt.Fprintln(out, reply.Content)
	}

	printList(out, "Suggestions", exchange.Suggestions)
	fmt.Fprintln(out)
}

func printList(out io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}

	dimColor.Fprintf(out, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(out, "  - %s\n", item)
	}
}
