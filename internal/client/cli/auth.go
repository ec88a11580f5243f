package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/authshell/internal/client/models"
	"github.com/dmitrijs2005/authshell/internal/common"
)

// Login prompts for credentials and signs the user in. A failed attempt is
// reported to the user but is not an error of the command itself.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res := a.session.Login(ctx, models.LoginCredentials{Email: email, Password: string(password)})
	if !res.Success {
		errorColor.Fprintf(a.out, "Login failed: %s\n", res.Error)
		return nil
	}

	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Register prompts for account details and creates the account. On success
// the user is signed in immediately.
func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	firstName, err := GetSimpleText(a.reader, "Enter first name", a.out)
	if err != nil {
		return err
	}
	lastName, err := GetSimpleText(a.reader, "Enter last name", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res := a.session.Register(ctx, models.RegisterData{
		Email:     email,
		Password:  string(password),
		FirstName: firstName,
		LastName:  lastName,
	})
	if !res.Success {
		errorColor.Fprintf(a.out, "Registration failed: %s\n", res.Error)
		return nil
	}

	fmt.Fprintln(a.out, "Registration successful")
	return nil
}

// Logout terminates the session. It always signs the user out locally,
// even when the server is unreachable.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.logger.Warn(ctx, "logout cleanup failed", "error", err)
	}
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

// Refresh reports whether the session still holds a usable token.
func (a *App) Refresh(ctx context.Context) error {
	if a.session.RefreshToken(ctx) {
		fmt.Fprintln(a.out, "Session is valid")
	} else {
		fmt.Fprintln(a.out, "No active session")
	}
	return nil
}
