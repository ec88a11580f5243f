package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authshell/internal/client/models"
)

var errNotLoggedIn = errors.New("not logged in")

// WhoAmI prints the locally known user record.
func (a *App) WhoAmI(ctx context.Context) error {
	snap := a.session.Snapshot()
	if snap.User == nil {
		return errNotLoggedIn
	}

	u := snap.User
	fmt.Fprintf(a.out, "%s %s <%s> (id %s)\n", u.FirstName, u.LastName, u.Email, u.ID)
	return nil
}

// Profile fetches and prints the fresh profile from the identity service.
func (a *App) Profile(ctx context.Context) error {
	snap := a.session.Snapshot()
	if snap.Token == "" {
		return errNotLoggedIn
	}

	u, err := a.session.FetchProfile(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s %s <%s>\n", u.FirstName, u.LastName, u.Email)
	if u.PhoneNumber != "" {
		fmt.Fprintf(a.out, "phone: %s\n", u.PhoneNumber)
	}
	if u.DateOfBirth != "" {
		fmt.Fprintf(a.out, "date of birth: %s\n", u.DateOfBirth)
	}
	fmt.Fprintf(a.out, "member since: %s\n", u.CreatedAt.Format("2006-01-02"))
	return nil
}

// UpdateProfile prompts for new field values and applies the patch. Fields
// left empty keep their current value.
func (a *App) UpdateProfile(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	firstName, err := GetOptionalText(a.reader, "First name", a.out)
	if err != nil {
		return err
	}
	lastName, err := GetOptionalText(a.reader, "Last name", a.out)
	if err != nil {
		return err
	}
	phone, err := GetOptionalText(a.reader, "Phone number", a.out)
	if err != nil {
		return err
	}

	res := a.session.UpdateProfile(ctx, models.ProfilePatch{
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: phone,
	})
	if !res.Success {
		errorColor.Fprintf(a.out, "Update failed: %s\n", res.Error)
		return nil
	}

	fmt.Fprintln(a.out, "Profile updated")
	return nil
}
