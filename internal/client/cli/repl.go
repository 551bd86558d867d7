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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) error
	Courses(ctx context.Context) error
	Enroll(ctx context.Context) error
	MyCourses(ctx context.Context) error
	Progress(ctx context.Context) error
	Exam(ctx context.Context) error
	Offers(ctx context.Context) error
	Apply(ctx context.Context) error
	Applications(ctx context.Context) error
	Contacts(ctx context.Context) error
	Invite(ctx context.Context) error
	Requests(ctx context.Context) error
	Respond(ctx context.Context) error
	Search(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Talentum CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Role checks happen inside the command handlers (via the route guard), not
// here; the REPL only distinguishes logged-in from logged-out for the help
// text. Any errors returned by command handlers are ignored here; handlers
// report their own errors. This keeps the REPL loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("talentum %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: me, courses, enroll, mycourses, progress, exam, offers, apply, applications, contacts, invite, requests, respond, search, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "me":
			_ = a.Me(ctx)

		case "courses":
			_ = a.Courses(ctx)

		case "enroll":
			_ = a.Enroll(ctx)

		case "mycourses":
			_ = a.MyCourses(ctx)

		case "progress":
			_ = a.Progress(ctx)

		case "exam":
			_ = a.Exam(ctx)

		case "offers":
			_ = a.Offers(ctx)

		case "apply":
			_ = a.Apply(ctx)

		case "applications":
			_ = a.Applications(ctx)

		case "contacts":
			_ = a.Contacts(ctx)

		case "invite":
			_ = a.Invite(ctx)

		case "requests":
			_ = a.Requests(ctx)

		case "respond":
			_ = a.Respond(ctx)

		case "search":
			_ = a.Search(ctx)

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
