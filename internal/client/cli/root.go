package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// execIface defines the minimal command surface the command loop needs.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	Refresh(ctx context.Context) error
	Language(ctx context.Context, args []string) error
	Theme(ctx context.Context, args []string) error
}

var (
	statusColor = color.New(color.FgCyan)
	errorColor  = color.New(color.FgRed)
)

func (a *App) getStatus() string {
	snap := a.session.Snapshot()
	if snap.User != nil {
		return fmt.Sprintf("(%s)", snap.User.Email)
	}
	return "(signed out)"
}

// Root runs the command loop. The available command set is gated on the
// session state: while signed out only login/register are offered, after
// a successful login the account commands appear.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to AuthShell (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		statusColor.Fprintf(a.out, "ash %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		if done := runCommand(ctx, a, scanner.Text(), a.out); done {
			return
		}
	}
}

// runCommand parses one input line and dispatches it. It returns true when
// the loop should terminate.
func runCommand(ctx context.Context, a execIface, line string, out io.Writer) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}

	cmd := parts[0]
	args := parts[1:]

	var err error

	switch cmd {
	case "help":
		if a.isLoggedIn() {
			fmt.Fprintln(out, "Available commands: whoami, profile, update, refresh, lang, theme, logout, exit")
		} else {
			fmt.Fprintln(out, "Available commands: login, register, exit")
		}
	case "login":
		err = a.Login(ctx)
	case "register":
		err = a.Register(ctx)
	case "logout":
		err = a.Logout(ctx)
	case "whoami":
		err = a.WhoAmI(ctx)
	case "profile":
		err = a.Profile(ctx)
	case "update":
		err = a.UpdateProfile(ctx)
	case "refresh":
		err = a.Refresh(ctx)
	case "lang":
		err = a.Language(ctx, args)
	case "theme":
		err = a.Theme(ctx, args)
	case "exit", "quit":
		fmt.Fprintln(out, "Bye!")
		return true
	default:
		fmt.Fprintln(out, "Unknown command:", cmd)
	}

	if err != nil {
		errorColor.Fprintf(out, "error: %v\n", err)
	}
	return false
}
