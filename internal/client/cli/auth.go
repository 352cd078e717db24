package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/guard"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/tokeninfo"
	"github.com/dmitrijs2005/gophauth/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// nowFn is the clock used by Status.
var nowFn = time.Now

// guestOnly reports whether a guest-only command may run. A signed-in user
// is shown the dashboard instead.
func (a *App) guestOnly(ctx context.Context) (bool, error) {
	if guard.Decide(a.store.State(), guard.GuestOnly) == guard.Allow {
		return true, nil
	}
	fmt.Fprintln(a.out, "You are already logged in.")
	return false, a.Dashboard(ctx)
}

// Register prompts for full name, email and password and creates the
// account. Registration does not sign the user in.
func (a *App) Register(ctx context.Context) error {
	if ok, err := a.guestOnly(ctx); !ok {
		return err
	}

	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	// Only the raw input buffer is wiped. The string copy in req stays in
	// memory until it is collected.
	defer common.WipeByteArray(password)

	req := models.RegistrationRequest{FullName: fullName, Email: email, Password: string(password)}
	if err := a.authService.Register(ctx, req); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account Created Successfully!")
	fmt.Fprintln(a.out, "You can now log in.")
	return nil
}

// Login prompts for credentials, signs in and greets the user.
func (a *App) Login(ctx context.Context) error {
	if ok, err := a.guestOnly(ctx); !ok {
		return err
	}
	return a.login(ctx)
}

func (a *App) login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	// See Register: the string copy in Credentials outlives this wipe.
	defer common.WipeByteArray(password)

	profile, err := a.authService.Login(ctx, models.Credentials{Email: email, Password: string(password)})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", profile.DisplayName())
	return nil
}

// Logout drops the local session.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Dashboard shows the profile of the signed-in user. Guests are asked to
// log in first.
func (a *App) Dashboard(ctx context.Context) error {
	switch guard.Decide(a.store.State(), guard.Protected) {
	case guard.Wait:
		fmt.Fprintln(a.out, "Session is still loading, try again.")
		return nil
	case guard.Redirect:
		fmt.Fprintln(a.out, "Please log in to continue.")
		if err := a.login(ctx); err != nil {
			return err
		}
	}

	p := a.authService.CurrentUser()
	if p == nil {
		return errors.New("no profile loaded")
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", p.DisplayName())
	fmt.Fprintf(a.out, "  Email:  %s\n", p.Email)
	if p.Role != "" {
		fmt.Fprintf(a.out, "  Role:   %s\n", p.Role)
	}
	if !p.CreatedAt.IsZero() {
		fmt.Fprintf(a.out, "  Member since: %s\n", p.CreatedAt)
	}
	return nil
}

// Status prints the session state and what the token says about itself.
func (a *App) Status(_ context.Context) error {
	fmt.Fprintf(a.out, "Session: %s\n", a.store.State())

	token := a.store.Token()
	if token == "" {
		return nil
	}
	if p := a.store.Profile(); p != nil {
		fmt.Fprintf(a.out, "User:    %s <%s>\n", p.DisplayName(), p.Email)
	}
	if at := a.store.SignedInAt(); !at.IsZero() {
		fmt.Fprintf(a.out, "Since:   %s\n", at.Local().Format(time.RFC1123))
	}

	info, err := tokeninfo.Inspect(token)
	if err != nil {
		fmt.Fprintln(a.out, "Token:   opaque")
		return nil
	}
	if info.Subject != "" {
		fmt.Fprintf(a.out, "Subject: %s\n", info.Subject)
	}
	if !info.IssuedAt.IsZero() {
		fmt.Fprintf(a.out, "Issued:  %s\n", info.IssuedAt.Local().Format(time.RFC1123))
	}
	if !info.ExpiresAt.IsZero() {
		state := "valid"
		if info.Expired(nowFn()) {
			state = "expired"
		}
		fmt.Fprintf(a.out, "Expires: %s (%s)\n", info.ExpiresAt.Local().Format(time.RFC1123), state)
	}
	return nil
}
