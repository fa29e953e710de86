package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. App implements it; tests
// use a recording stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error

	ListPosts(ctx context.Context) error
	NewPost(ctx context.Context) error
	EditPost(ctx context.Context, id int64) error
	DeletePost(ctx context.Context, id int64) error

	AddComment(ctx context.Context, postID int64) error
	EditComment(ctx context.Context, id int64) error
	DeleteComment(ctx context.Context, id int64) error

	Report(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: register, login, (l)ist | posts, report, exit"
	helpLoggedIn  = "Available commands: (l)ist | posts, post new | edit <id> | delete <id>, " +
		"comment add <postID> | edit <id> | delete <id>, report, profile, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// Command errors are printed and the loop goes on. It returns on EOF or
// "exit" / "quit".
//
//	Not logged in:  help, register, login, posts, report, exit
//	Logged in:      help, posts | l, post new|edit|delete, comment add|edit|delete,
//	                report, profile, logout, exit
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("pb %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		printErr(dispatch(ctx, a, cmd, args))

		if err != nil {
			return
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpLoggedIn)
		} else {
			printlnFn(helpAnonymous)
		}
		return nil

	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "logout":
		return a.Logout(ctx)
	case "profile":
		return a.Profile(ctx)

	case "l", "list", "posts":
		return a.ListPosts(ctx)
	case "report":
		return a.Report(ctx)

	case "post", "comment":
		sub, id, err := subcommand(cmd, args)
		if err != nil {
			return err
		}
		switch cmd + " " + sub {
		case "post new":
			return a.NewPost(ctx)
		case "post edit":
			return a.EditPost(ctx, id)
		case "post delete":
			return a.DeletePost(ctx, id)
		case "comment add":
			return a.AddComment(ctx, id)
		case "comment edit":
			return a.EditComment(ctx, id)
		case "comment delete":
			return a.DeleteComment(ctx, id)
		}
	}

	printlnFn("Unknown command:", cmd)
	return nil
}

var errUsage = errors.New("usage")

var subcommands = map[string][]string{
	"post":    {"new", "edit", "delete"},
	"comment": {"add", "edit", "delete"},
}

var usages = map[string]string{
	"post":    "post new | post edit <id> | post delete <id>",
	"comment": "comment add <postID> | comment edit <id> | comment delete <id>",
}

// subcommand parses "<sub> [id]" for post and comment. Only "post new"
// takes no id.
func subcommand(cmd string, args []string) (string, int64, error) {
	usage := fmt.Errorf("%w: %s", errUsage, usages[cmd])
	if len(args) == 0 || !slices.Contains(subcommands[cmd], args[0]) {
		return "", 0, usage
	}
	sub := args[0]
	if sub == "new" {
		return sub, 0, nil
	}
	if len(args) < 2 {
		return "", 0, usage
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || id <= 0 {
		return "", 0, fmt.Errorf("%w: %q is not a valid id", errUsage, args[1])
	}
	return sub, id, nil
}

var (
	errColor = color.New(color.FgHiRed)
	okColor  = color.New(color.FgHiGreen)
)

func printErr(err error) {
	if err == nil {
		return
	}
	printlnFn(errColor.Sprint("Error: " + err.Error()))
}

func printOK(msg string) {
	printlnFn(okColor.Sprint(msg))
}
