package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/cardscan/internal/client/client"
	"github.com/dmitrijs2005/cardscan/internal/client/models"
	"github.com/dmitrijs2005/cardscan/internal/common"
	"github.com/dmitrijs2005/cardscan/internal/logging"
)

// ImageService runs the two phases of the image pipeline. Callers must wait
// for Upload to succeed before calling Recognize with its file id.
type ImageService interface {
	Upload(ctx context.Context, filename string, data []byte) (*models.UploadedImage, error)
	Recognize(ctx context.Context, fileID string) (*models.Recognition, error)
}

type imageService struct {
	client client.Client
	log    logging.Logger
}

func NewImageService(c client.Client, log logging.Logger) ImageService {
	return &imageService{client: c, log: log}
}

func (s *imageService) Upload(ctx context.Context, filename string, data []byte) (*models.UploadedImage, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, common.Required("filename", "file name is required")
	}

	out, err := s.client.UploadImage(ctx, filename, data)
	if err != nil {
		return nil, &UploadError{Err: err}
	}
	if out.FileID == "" {
		return nil, &UploadError{Err: errMissingFileID}
	}

	s.log.Debug(ctx, "image uploaded", "file_id", out.FileID, "bytes", len(data))
	return out, nil
}

// Recognize fails when the call fails or when the body reports an error;
// a partial result is never returned.
func (s *imageService) Recognize(ctx context.Context, fileID string) (*models.Recognition, error) {
	if fileID == "" {
		return nil, common.Required("file_id", "file id is required")
	}

	out, err := s.client.RecognizeEntities(ctx, fileID)
	if err != nil {
		return nil, &RecognitionError{Err: err}
	}
	if out.Error != "" {
		s.log.Info(ctx, "recognition reported an error", "file_id", fileID, "error", out.Error)
		return nil, &RecognitionError{Message: out.Error}
	}
	return out, nil
}
