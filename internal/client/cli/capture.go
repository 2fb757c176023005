package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/cardscan/internal/client/models"
	"github.com/dmitrijs2005/cardscan/internal/client/views"
	"github.com/dmitrijs2005/cardscan/internal/common"
)

// guard handles a screen's mount error. A missing session sends the user
// back through a fresh mount of the router.
func (a *App) guard(ctx context.Context, err error) error {
	if errors.Is(err, common.ErrNotAuthenticated) {
		a.capture.Unmount()
		a.router.Mount(ctx)
		a.println(views.Alert("Session expired, please log in."))
		return err
	}
	a.alert(err)
	return err
}

// leaveCapture discards the capture form when the user lands elsewhere.
func (a *App) leaveCapture(route views.Route) {
	if route != views.RouteDashboard {
		a.capture.Unmount()
	}
}

// Dashboard starts a new capture with an empty form.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.open(views.RouteDashboard) {
		return nil
	}

	if err := a.capture.Mount(ctx); err != nil {
		return a.guard(ctx, err)
	}
	a.capture.OnPreview(func(p views.Preview) {
		a.println("Selected " + p.String())
	})

	a.println("Capture a card with 'scan <file>', adjust it with 'edit', then 'save'.")
	return nil
}

// ensureCapture opens the dashboard unless a capture is already running.
func (a *App) ensureCapture(ctx context.Context) bool {
	if a.router.Current() == views.RouteDashboard && a.capture.Mounted() {
		return true
	}
	if err := a.Dashboard(ctx); err != nil {
		return false
	}
	return a.capture.Mounted()
}

// Scan previews, uploads and recognizes an image, then shows the form.
func (a *App) Scan(ctx context.Context, args []string) error {
	if !a.ensureCapture(ctx) {
		return nil
	}

	path := strings.Join(args, " ")
	if path == "" {
		var err error
		if path, err = getSimpleText(a.reader, "Path to card image", a.out); err != nil {
			return err
		}
	}

	a.println("Processing...")
	err := a.capture.SelectFile(ctx, path)
	if err != nil {
		a.alert(err)
	}
	a.capture.Render(a.out)
	return err
}

// Edit sets one field ("edit email a@b.com") or walks all fields.
func (a *App) Edit(ctx context.Context, args []string) error {
	if !a.ensureCapture(ctx) {
		return nil
	}

	if len(args) > 0 {
		if err := a.capture.Edit(models.DraftField(args[0]), strings.Join(args[1:], " ")); err != nil {
			a.alert(err)
			return err
		}
		a.capture.Render(a.out)
		return nil
	}

	draft := a.capture.Draft()
	for _, f := range models.DraftFields {
		v, err := GetWithDefault(a.reader, strings.ToUpper(string(f[:1]))+string(f[1:]), draft.Get(f), a.out)
		if err != nil {
			return err
		}
		if err := a.capture.Edit(f, v); err != nil {
			return err
		}
	}
	a.capture.Render(a.out)
	return nil
}

// Save submits the form. After a short pause the list is shown.
func (a *App) Save(ctx context.Context) error {
	if a.router.Current() != views.RouteDashboard || !a.capture.Mounted() {
		err := common.ErrNotAuthenticated
		if a.isLoggedIn() {
			err = errors.New("nothing to save, start with 'dashboard' or 'scan'")
		}
		a.alert(err)
		return err
	}

	if _, err := a.capture.Submit(ctx); err != nil {
		a.alert(err)
		return err
	}

	a.println(views.Confirm("Card saved."))
	a.sleep(a.config.SaveRedirectDelay)
	return a.List(ctx)
}
