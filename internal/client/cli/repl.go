package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Profile(ctx context.Context) error
	Users(ctx context.Context, term string) error
	Recipes(ctx context.Context, term string) error
	MyRecipes(ctx context.Context) error
	AddRecipe(ctx context.Context) error
	EditRecipe(ctx context.Context, id string) error
	DeleteRecipe(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error
	Logout(ctx context.Context) error
}

// runREPL starts a read-eval-print loop for the Cookenu CLI.
//
// It reads a line from the scanner, parses the first token as the command,
// and dispatches to methods on 'a'. Unknown commands are reported back to
// the user. The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
// Commands:
//
//	Not logged in:
//	  - help             — show available commands
//	  - signup           — create an account
//	  - login            — authenticate
//	  - exit | quit      — leave the program
//
//	Logged in:
//	  - help             — show available commands
//	  - profile          — show your account
//	  - users [term]     — list users, optionally filtered
//	  - recipes [term]   — list recipes, optionally filtered
//	  - mine             — list your own recipes
//	  - add              — create a recipe
//	  - edit <id>        — edit a recipe
//	  - rm <id>          — delete a recipe
//	  - rmuser <id>      — delete a user account (admin)
//	  - logout           — drop the session token
//	  - exit | quit      — leave the program
//
// Errors returned by command handlers are printed and the loop continues,
// keeping the REPL resilient.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprintf(w, "cookenu [%s] > ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: profile, users [term], recipes [term], mine, add, edit <id>, rm <id>, rmuser <id>, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: signup, login, exit")
			}

		case "signup":
			err = a.Signup(ctx)

		case "login":
			err = a.Login(ctx)

		case "profile":
			err = a.Profile(ctx)

		case "users":
			err = a.Users(ctx, firstArg(args))

		case "recipes":
			err = a.Recipes(ctx, firstArg(args))

		case "mine":
			err = a.MyRecipes(ctx)

		case "add":
			err = a.AddRecipe(ctx)

		case "edit":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: edit <id>")
				continue
			}
			err = a.EditRecipe(ctx, args[0])

		case "rm":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: rm <id>")
				continue
			}
			err = a.DeleteRecipe(ctx, args[0])

		case "rmuser":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: rmuser <id>")
				continue
			}
			err = a.DeleteUser(ctx, args[0])

		case "logout":
			err = a.Logout(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			fmt.Fprintln(w, err.Error())
		}
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
