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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Refresh(ctx context.Context) error
	Delete(ctx context.Context, n string) error
	Draft(ctx context.Context, args []string) error
	More(ctx context.Context) error
	Show(ctx context.Context, n string) error
	Languages(ctx context.Context) error
	Caption(ctx context.Context, n string) error
}

// runREPL reads one command per line and dispatches it to a. The loop exits
// on EOF or when the user types "exit" or "quit".
//
//	Always:
//	  - help                 — show available commands
//	  - more                 — load the next photo feed page
//	  - photo <n>            — show a feed card
//	  - langs                — languages available for captions
//	  - caption <n>          — translate the caption of a feed card
//	  - exit | quit          — leave the program
//
//	Not logged in:
//	  - register, login
//
//	Logged in:
//	  - (l)ist               — show the cached report list
//	  - refresh              — fetch the report list again
//	  - delete <n>           — delete report #n
//	  - draft <subcommand>   — compose a new report
//	  - logout
//
// Errors returned by command handlers are ignored here; handlers report
// to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("har %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if requiresLogin(cmd) && !a.isLoggedIn() {
			printlnFn("Please log in first.")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, refresh, delete <n>, draft, more, photo <n>, langs, caption <n>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, more, photo <n>, langs, caption <n>, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "delete":
			if len(args) != 1 {
				printlnFn("Usage: delete <number>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "draft":
			_ = a.Draft(ctx, args)

		case "more":
			_ = a.More(ctx)

		case "photo":
			if len(args) != 1 {
				printlnFn("Usage: photo <number>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "langs":
			_ = a.Languages(ctx)

		case "caption":
			if len(args) != 1 {
				printlnFn("Usage: caption <number>")
				continue
			}
			_ = a.Caption(ctx, args[0])

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

func requiresLogin(cmd string) bool {
	switch cmd {
	case "l", "list", "refresh", "delete", "draft", "logout":
		return true
	}
	return false
}
