package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cardscan/internal/client/views"
	"github.com/dmitrijs2005/cardscan/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// open navigates to route and reports whether the router allowed it. When it
// did not, the user is told where they were sent instead.
func (a *App) open(route views.Route) bool {
	got := a.router.Navigate(route)
	if got == route {
		return true
	}

	if a.isLoggedIn() {
		a.println(views.Alert(fmt.Sprintf("%s is not available while logged in, redirected to %s", route, got)))
	} else {
		a.println(views.Alert(fmt.Sprintf("Please log in first, redirected to %s", got)))
	}
	a.leaveCapture(got)
	return false
}

// Login prompts for credentials and signs in. On success the router is
// mounted again from the new session and lands on the dashboard.
func (a *App) Login(ctx context.Context) error {
	if !a.open(views.RouteLogin) {
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.authService.Login(ctx, email, password)
	if err != nil {
		a.alert(err)
		return err
	}

	a.println(views.Confirm(fmt.Sprintf("Welcome, %s!", s.DisplayName)))
	a.router.Mount(ctx)
	return a.Dashboard(ctx)
}

// SignUp creates an account and continues straight to the verification step.
func (a *App) SignUp(ctx context.Context) error {
	if !a.open(views.RouteSignUp) {
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.SignUp(ctx, email, password); err != nil {
		a.alert(err)
		return err
	}

	a.println("Account created. A verification code was sent to " + strings.TrimSpace(email) + ".")
	return a.verify(ctx, strings.TrimSpace(email))
}

// Verify asks for the email and runs the verification step.
func (a *App) Verify(ctx context.Context) error {
	if !a.open(views.RouteSignUp) {
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	return a.verify(ctx, email)
}

// verify prompts for the code until it is accepted. "resend" sends a new
// code and an empty answer leaves the step.
func (a *App) verify(ctx context.Context, email string) error {
	for {
		code, err := getSimpleText(a.reader, "Enter verification code ('resend' for a new code, empty to skip)", a.out)
		if err != nil {
			return err
		}

		switch code {
		case "":
			a.println("You can verify later with 'verify'.")
			return nil
		case "resend":
			if err := a.authService.ResendVerification(ctx, email); err != nil {
				a.alert(err)
				continue
			}
			a.println("A new code was sent.")
			continue
		}

		if err := a.authService.Verify(ctx, email, code); err != nil {
			a.alert(err)
			continue
		}

		a.println(views.Confirm("Verification successful. You can now log in."))
		a.router.Navigate(views.RouteLogin)
		return nil
	}
}

// Resend sends a new verification code.
func (a *App) Resend(ctx context.Context) error {
	if !a.open(views.RouteSignUp) {
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	if err := a.authService.ResendVerification(ctx, email); err != nil {
		a.alert(err)
		return err
	}
	a.println("A new code was sent.")
	return nil
}

// Logout clears the session and returns to the login route.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.println("Not logged in.")
		return nil
	}

	a.capture.Unmount()
	if err := a.router.Logout(ctx); err != nil {
		a.alert(err)
		return err
	}
	a.println("Logged out.")
	return nil
}
