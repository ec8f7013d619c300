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
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isSavings() bool
	Open(ctx context.Context) error
	Login(ctx context.Context) error
	Deposit(ctx context.Context) error
	Withdraw(ctx context.Context) error
	Transfer(ctx context.Context) error
	History(ctx context.Context) error
	Interest(ctx context.Context) error
	Statement(ctx context.Context, format string) error
	Close(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts the read-eval-print loop of the banking CLI.
//
// It reads a line from the provided reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on EOF or when the user types "exit" or
// "quit".
//
// Commands while logged out:
//
//	help | open | login | exit | quit
//
// Commands while logged in:
//
//	help | deposit | withdraw | transfer | history | statement [pdf|xlsx]
//	| interest (savings accounts) | close | logout | exit | quit
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures to the user. This keeps the loop resilient and focused
// on line handling.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("banque%s> ", statusFn()))
		line, readErr := reader.ReadString('\n')

		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				return
			}
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				cmds := "Available commands: deposit, withdraw, transfer, history, statement [pdf|xlsx], close, logout, exit"
				if a.isSavings() {
					cmds = "Available commands: deposit, withdraw, transfer, history, interest, statement [pdf|xlsx], close, logout, exit"
				}
				printlnFn(cmds)
			} else {
				printlnFn("Available commands: open, login, exit")
			}

		case "open":
			if a.isLoggedIn() {
				printlnFn("Log out before opening another account.")
				break
			}
			_ = a.Open(ctx)

		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in.")
				break
			}
			_ = a.Login(ctx)

		case "deposit":
			if requireLogin(a) {
				_ = a.Deposit(ctx)
			}

		case "withdraw":
			if requireLogin(a) {
				_ = a.Withdraw(ctx)
			}

		case "transfer":
			if requireLogin(a) {
				_ = a.Transfer(ctx)
			}

		case "history":
			if requireLogin(a) {
				_ = a.History(ctx)
			}

		case "interest":
			if requireLogin(a) {
				if !a.isSavings() {
					printlnFn("Interest applies to savings accounts only.")
					break
				}
				_ = a.Interest(ctx)
			}

		case "statement":
			if requireLogin(a) {
				format := "pdf"
				if len(args) > 0 {
					format = args[0]
				}
				_ = a.Statement(ctx, format)
			}

		case "close":
			if requireLogin(a) {
				_ = a.Close(ctx)
			}

		case "logout":
			if requireLogin(a) {
				_ = a.Logout(ctx)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if readErr != nil {
			return
		}
	}
}

func requireLogin(a execIface) bool {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return false
	}
	return true
}
