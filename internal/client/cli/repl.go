package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	SignUp(ctx context.Context) error
	Verify(ctx context.Context) error
	Resend(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Scan(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Save(ctx context.Context) error
	List(ctx context.Context) error
	Create(ctx context.Context) error
	Update(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Go(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
}

const (
	helpGuest  = "Available commands: login, signup, verify, resend, go <route>, exit"
	helpMember = "Available commands: dashboard, scan <file>, edit [field value], save, (l)ist, create, update <id>, delete <id>, show <id>, go <route>, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the card scanner CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a' with the remaining tokens as arguments.
// Unknown commands are reported back to the user. The loop exits on EOF or
// when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help             show available commands
//	  - login            authenticate
//	  - signup           create an account and verify it
//	  - verify           enter a verification code
//	  - resend           send the verification code again
//	  - exit | quit      leave the program
//
//	Logged in:
//	  - dashboard        start a new capture
//	  - scan <file>      preview, upload and recognize a card image
//	  - edit             change form fields
//	  - save             save the form as a new card
//	  - list             list saved cards
//	  - create           add a card by hand
//	  - update <id>      edit a saved card
//	  - delete <id>      delete a saved card
//	  - show <id>        show a card and download its image
//	  - go <route>       open a route
//	  - logout           log out
//	  - exit | quit      leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("cardscan %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpMember)
			} else {
				printlnFn(helpGuest)
			}

		case "login":
			_ = a.Login(ctx)

		case "signup", "register":
			_ = a.SignUp(ctx)

		case "verify":
			_ = a.Verify(ctx)

		case "resend":
			_ = a.Resend(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "scan":
			_ = a.Scan(ctx, args)

		case "edit":
			_ = a.Edit(ctx, args)

		case "save":
			_ = a.Save(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "create":
			_ = a.Create(ctx)

		case "update":
			_ = a.Update(ctx, args)

		case "delete":
			_ = a.Delete(ctx, args)

		case "show":
			_ = a.Show(ctx, args)

		case "go":
			_ = a.Go(ctx, args)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
