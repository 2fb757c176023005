package views

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Preview describes a selected image before it is uploaded.
type Preview struct {
	Name   string
	Size   int
	Format string
	Width  int
	Height int
}

// LocalPreview inspects data without any network call. Unknown formats get
// a preview with name and size only.
func LocalPreview(path string, data []byte) Preview {
	p := Preview{Name: filepath.Base(path), Size: len(data)}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err == nil {
		p.Format = format
		p.Width, p.Height = cfg.Width, cfg.Height
	}
	return p
}

func (p Preview) String() string {
	if p.Format == "" {
		return fmt.Sprintf("%s (%d bytes)", p.Name, p.Size)
	}
	return fmt.Sprintf("%s (%s, %dx%d, %d bytes)", p.Name, p.Format, p.Width, p.Height, p.Size)
}
