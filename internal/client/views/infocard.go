package views

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/cardscan/internal/client/models"
)

// ImageDownloader saves a stored card image locally and returns its path.
type ImageDownloader interface {
	Download(ctx context.Context, rawURL string) (string, error)
}

// InfoCard shows one saved card and can download its image.
type InfoCard struct {
	images ImageDownloader
	card   models.SavedCard
}

func NewInfoCard(images ImageDownloader, card models.SavedCard) *InfoCard {
	return &InfoCard{images: images, card: card}
}

func (v *InfoCard) Card() models.SavedCard { return v.card }

func (v *InfoCard) HasImage() bool { return v.card.ImageStorage != "" }

// DownloadImage saves the card's image into the download directory.
func (v *InfoCard) DownloadImage(ctx context.Context) (string, error) {
	if !v.HasImage() {
		return "", fmt.Errorf("card %d has no stored image", v.card.ID)
	}
	return v.images.Download(ctx, v.card.ImageStorage)
}

func (v *InfoCard) Render(w io.Writer) {
	c := v.card
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Card #%d", c.ID)))

	fields := [][2]string{
		{"name", c.Name},
		{"phone", c.Phone},
		{"email", c.Email},
		{"website", c.Website},
		{"address", c.Address},
		{"image", c.ImageStorage},
	}
	for _, f := range fields {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(f[0]), f[1])
	}
}
