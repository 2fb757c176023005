package views

import (
	"context"

	"github.com/dmitrijs2005/cardscan/internal/client/services"
)

type Route string

const (
	RouteLogin     Route = "/login"
	RouteSignUp    Route = "/signup"
	RouteDashboard Route = "/dashboard"
	RouteList      Route = "/list"
	RouteInfoCard  Route = "/info-card"
)

type AuthState int

const (
	Unauthenticated AuthState = iota
	Authenticated
)

func (s AuthState) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

var routesByState = map[AuthState]map[Route]bool{
	Unauthenticated: {RouteLogin: true, RouteSignUp: true},
	Authenticated:   {RouteDashboard: true, RouteList: true, RouteInfoCard: true},
}

var defaultRoute = map[AuthState]Route{
	Unauthenticated: RouteLogin,
	Authenticated:   RouteDashboard,
}

// Router tracks the current route. Its auth state is read from the session
// when Mount is called and changes afterwards only through Mount or Logout.
type Router struct {
	auth    services.AuthService
	state   AuthState
	current Route
}

func NewRouter(auth services.AuthService) *Router {
	return &Router{auth: auth, state: Unauthenticated, current: RouteLogin}
}

// Mount re-reads the session and lands on the default route of the state.
func (r *Router) Mount(ctx context.Context) AuthState {
	r.state = Unauthenticated
	if r.auth.IsAuthenticated(ctx) {
		r.state = Authenticated
	}
	r.current = defaultRoute[r.state]
	return r.state
}

func (r *Router) State() AuthState { return r.state }

func (r *Router) Current() Route { return r.current }

// Resolve maps a requested route to the one that will be shown in the
// current state. Routes of the other state fall back to the default route.
func (r *Router) Resolve(route Route) Route {
	if routesByState[r.state][route] {
		return route
	}
	return defaultRoute[r.state]
}

// Navigate moves to route, or to the default route when it is not allowed.
func (r *Router) Navigate(route Route) Route {
	r.current = r.Resolve(route)
	return r.current
}

// Logout clears the session and forces the login route. There is no
// confirmation step.
func (r *Router) Logout(ctx context.Context) error {
	err := r.auth.Logout(ctx)
	r.state = Unauthenticated
	r.current = RouteLogin
	return err
}
