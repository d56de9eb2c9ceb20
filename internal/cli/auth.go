package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/loanmo/crm/internal/common"
	"github.com/loanmo/crm/internal/sessionstore"
)

// Register prompts for the registration form and creates a new account.
// The new user is not logged in; that mirrors the web flow, which sends
// the user back to the login form.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	if err := a.sessions.Register(ctx, name, email, password, confirm); err != nil {
		switch {
		case common.IsValidation(err):
			fmt.Fprintln(a.out, err.Error())
		case errors.Is(err, common.ErrDuplicateEmail):
			fmt.Fprintln(a.out, "Email already registered. Please use a different email.")
		default:
			fmt.Fprintln(a.out, "Registration failed:", err.Error())
		}
		return err
	}

	fmt.Fprintln(a.out, "Account created successfully! You can log in now.")
	return nil
}

// Login prompts for credentials and establishes the session.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	sess, err := a.sessions.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUserNotFound):
			fmt.Fprintln(a.out, "User not found. Please check your email or register.")
		case errors.Is(err, common.ErrInvalidPassword):
			fmt.Fprintln(a.out, "Invalid password. Please try again.")
		default:
			fmt.Fprintln(a.out, "Login failed:", err.Error())
		}
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", sess.Name, sess.Role)
	return nil
}

// Logout ends the session. Safe to call when already logged out.
func (a *App) Logout(ctx context.Context) error {
	a.sessions.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Profile shows the active session and optionally updates name/email.
// Empty input keeps the current value.
func (a *App) Profile(ctx context.Context) error {
	sess := a.sessions.CurrentSession()
	if sess == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return common.ErrNoActiveSession
	}

	fmt.Fprintf(a.out, "Name:  %s\nEmail: %s\nRole:  %s\n", sess.Name, sess.Email, sess.Role)

	name, err := GetSimpleText(a.reader, "New name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "New email (empty to keep)", a.out)
	if err != nil {
		return err
	}

	var upd sessionstore.ProfileUpdate
	if name != "" {
		upd.Name = &name
	}
	if email != "" {
		upd.Email = &email
	}
	if upd.Name == nil && upd.Email == nil {
		return nil
	}

	updated, err := a.sessions.UpdateProfile(ctx, upd)
	if err != nil {
		fmt.Fprintln(a.out, "Profile update failed:", err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Profile updated: %s <%s>\n", updated.Name, updated.Email)
	return nil
}
