package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for REPL output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	currentScreen() Screen
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Back(ctx context.Context) error
	Logout(ctx context.Context) error
	Weather(ctx context.Context, city string) error
	Users(ctx context.Context) error
	Search(ctx context.Context, text string) error
	Type(ctx context.Context, chars string) error
	Stats(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The first word is the command; the rest of the line, with only the
// separating space removed, is its argument, so "search  a" searches for " a".
//
// Commands
//
//	Login / Signup screens:
//	  - help             show available commands
//	  - login            sign in
//	  - signup           fill in the signup form
//	  - back             return to the login screen
//	  - exit | quit      leave the program
//
//	Home screen:
//	  - help             show available commands
//	  - weather [city]   look up current weather
//	  - users            show the user table
//	  - search [text]    set the search text (empty clears it)
//	  - type <chars>     append chars one keystroke at a time
//	  - stats            show upstream request metrics
//	  - logout           return to the login screen
//	  - exit | quit      leave the program
//
// Handlers report problems to the user themselves; the errors they return
// only stop the loop when the context is done.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("wd %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		line = strings.TrimRight(line, "\r\n")

		cmd, arg, _ := strings.Cut(strings.TrimLeft(line, " \t"), " ")
		if cmd == "" {
			continue
		}

		var cmdErr error
		home := a.currentScreen() == ScreenHome

		switch {
		case cmd == "help":
			if home {
				printlnFn("Available commands: weather [city], users, search [text], type <chars>, stats, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, back, exit")
			}

		case cmd == "exit", cmd == "quit":
			printlnFn("Bye!")
			return

		case !home && cmd == "login":
			cmdErr = a.Login(ctx)
		case !home && cmd == "signup":
			cmdErr = a.Signup(ctx)
		case !home && cmd == "back":
			cmdErr = a.Back(ctx)

		case home && cmd == "weather":
			cmdErr = a.Weather(ctx, arg)
		case home && cmd == "users":
			cmdErr = a.Users(ctx)
		case home && cmd == "search":
			cmdErr = a.Search(ctx, arg)
		case home && cmd == "type":
			if arg == "" {
				printlnFn("Usage: type <chars>")
				continue
			}
			cmdErr = a.Type(ctx, arg)
		case home && cmd == "stats":
			cmdErr = a.Stats(ctx)
		case home && cmd == "logout":
			cmdErr = a.Logout(ctx)

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil && ctx.Err() != nil {
			return
		}
		if err != nil {
			return
		}
	}
}
