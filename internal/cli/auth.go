package cli

import (
	"context"
	"fmt"
)

// Signup prompts for credentials and creates a new account. Validation and
// duplicate-account failures are shown to the user, never fatal.
func (a *App) Signup(ctx context.Context) error {
	email, err := getText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	user, err := a.accounts.Signup(ctx, email, password, confirm)
	if err != nil {
		fmt.Fprintf(a.out, "Signup failed: %v\n", err)
		return err
	}

	a.user = user
	a.resetTranscript()
	fmt.Fprintf(a.out, "Account created. You are logged in as %s\n", user.Email)
	return nil
}

// Login prompts for credentials and authenticates.
func (a *App) Login(ctx context.Context) error {
	email, err := getText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}

	user, err := a.accounts.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %v\n", err)
		return err
	}

	a.user = user
	a.resetTranscript()
	fmt.Fprintf(a.out, "Logged in as %s\n", user.Email)
	return nil
}

// Logout clears the session and resets the transcript.
func (a *App) Logout(ctx context.Context) error {
	a.accounts.Logout(ctx)
	a.user = nil
	a.resetTranscript()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
