package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cardscan/internal/client/views"
)

func (a *App) getStatus() string {
	s := string(a.router.Current())
	if !a.isLoggedIn() {
		return s
	}

	u, err := a.authService.Session(context.Background())
	if err != nil || u == nil {
		return s
	}
	return fmt.Sprintf("%s (%s <%s>)", s, u.DisplayName, u.Email)
}

// Go opens a route by name. Unknown routes go to the default route of the
// current state.
func (a *App) Go(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.println("Usage: go <route>")
		return nil
	}

	route := a.router.Resolve(views.Route(args[0]))
	switch route {
	case views.RouteLogin:
		return a.Login(ctx)
	case views.RouteSignUp:
		return a.SignUp(ctx)
	case views.RouteList:
		return a.List(ctx)
	case views.RouteInfoCard:
		return a.Show(ctx, args[1:])
	default:
		return a.Dashboard(ctx)
	}
}

// Root mounts the router from the stored session and runs the REPL.
func (a *App) Root(ctx context.Context) {
	a.println("Welcome to the card scanner CLI (type 'help' for commands)")

	if a.router.Mount(ctx) == views.Authenticated {
		_ = a.Dashboard(ctx)
	} else {
		a.println("Log in with 'login' or create an account with 'signup'.")
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
