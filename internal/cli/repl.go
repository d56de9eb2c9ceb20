package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	Filter(ctx context.Context, args []string) error
	Sort(ctx context.Context, args []string) error
	Page(ctx context.Context, args []string) error
	PageSize(ctx context.Context, args []string) error
	AddEnquiry(ctx context.Context) error
	Dashboard(ctx context.Context) error
	FollowUps(ctx context.Context) error
	Chat(ctx context.Context, args []string) error
	Send(ctx context.Context, args []string) error
	Theme(ctx context.Context, args []string) error
}

// runREPL starts a read-eval-print loop over the dashboard.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands available before login: help, register, login, exit.
// After login the enquiry table, dashboard, chat, profile, and theme
// commands open up; see the help text below.
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("crm %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: register, login, exit")
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Unknown command (log in first):", cmd)
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: (l)ist, search, filter, sort, page, pagesize, add, dashboard, followups, chat, send, profile, theme, logout, exit")

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, args)

		case "filter":
			_ = a.Filter(ctx, args)

		case "sort":
			_ = a.Sort(ctx, args)

		case "page":
			_ = a.Page(ctx, args)

		case "pagesize":
			_ = a.PageSize(ctx, args)

		case "add":
			_ = a.AddEnquiry(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "followups":
			_ = a.FollowUps(ctx)

		case "chat":
			_ = a.Chat(ctx, args)

		case "send":
			_ = a.Send(ctx, args)

		case "profile":
			_ = a.Profile(ctx)

		case "theme":
			_ = a.Theme(ctx, args)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
