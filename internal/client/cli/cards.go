package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/cardscan/internal/client/models"
	"github.com/dmitrijs2005/cardscan/internal/client/views"
)

// List loads and shows the saved cards.
func (a *App) List(ctx context.Context) error {
	if !a.open(views.RouteList) {
		return nil
	}
	a.capture.Unmount()

	if err := a.list.Mount(ctx); err != nil {
		return a.guard(ctx, err)
	}
	a.list.Render(a.out)
	return a.list.Err()
}

// ensureList shows the list screen if another route is active.
func (a *App) ensureList(ctx context.Context) bool {
	if a.router.Current() == views.RouteList && a.list.State() != views.ListLoading {
		return true
	}
	_ = a.List(ctx)
	return a.router.Current() == views.RouteList
}

func (a *App) promptDraft(d models.CardDraft) (models.CardDraft, error) {
	for _, f := range models.DraftFields {
		v, err := GetWithDefault(a.reader, "Enter "+string(f), d.Get(f), a.out)
		if err != nil {
			return d, err
		}
		_ = d.Set(f, v)
	}
	return d, nil
}

// Create adds a card typed in by hand. Name and email are required.
func (a *App) Create(ctx context.Context) error {
	if !a.ensureList(ctx) {
		return nil
	}

	d, err := a.promptDraft(models.CardDraft{})
	if err != nil {
		return err
	}

	if err := a.list.Create(ctx, d); err != nil {
		a.alert(err)
		return err
	}
	a.println(views.Confirm("Card created."))
	a.list.Render(a.out)
	return nil
}

// pickCard resolves the display row id from args or a prompt.
func (a *App) pickCard(args []string) (models.SavedCard, bool, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		var err error
		if raw, err = getSimpleText(a.reader, "Enter card ID", a.out); err != nil {
			return models.SavedCard{}, false, err
		}
	}

	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		a.println(views.Alert(fmt.Sprintf("invalid card ID %q", raw)))
		return models.SavedCard{}, false, nil
	}

	c, ok := a.list.Card(id)
	if !ok {
		a.println(views.Alert(fmt.Sprintf("no card with ID %d", id)))
	}
	return c, ok, nil
}

// Update edits a saved card. Empty answers keep the current values.
func (a *App) Update(ctx context.Context, args []string) error {
	if !a.ensureList(ctx) {
		return nil
	}

	c, ok, err := a.pickCard(args)
	if err != nil || !ok {
		return err
	}

	d, err := a.promptDraft(c.Draft())
	if err != nil {
		return err
	}
	c.Name, c.Phone, c.Email, c.Website, c.Address = d.Name, d.Phone, d.Email, d.Website, d.Address

	if err := a.list.Update(ctx, c); err != nil {
		a.alert(err)
		return err
	}
	a.println(views.Confirm("Card updated."))
	a.list.Render(a.out)
	return nil
}

// Delete removes a saved card without confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	if !a.ensureList(ctx) {
		return nil
	}

	c, ok, err := a.pickCard(args)
	if err != nil || !ok {
		return err
	}

	if err := a.list.Delete(ctx, c.CardID); err != nil {
		a.alert(err)
		return err
	}
	a.println(views.Confirm("Card deleted."))
	a.list.Render(a.out)
	return nil
}

// Show opens the info card of a listed card and offers to download its
// stored image.
func (a *App) Show(ctx context.Context, args []string) error {
	if !a.ensureList(ctx) {
		return nil
	}

	c, ok, err := a.pickCard(args)
	if err != nil || !ok {
		return err
	}

	if !a.open(views.RouteInfoCard) {
		return nil
	}

	v := views.NewInfoCard(a.images, c)
	v.Render(a.out)
	if !v.HasImage() {
		return nil
	}

	answer, err := getSimpleText(a.reader, "Download image? (y/N)", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		return nil
	}

	path, err := v.DownloadImage(ctx)
	if err != nil {
		a.alert(err)
		return err
	}
	a.println("Saved to " + path)
	return nil
}
