package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"time"

	"github.com/elmenyr/resturant-alokda/internal/storage"
)

var ErrNotPDF = errors.New("menu file must be a PDF")

// Storage is the slice of the object-store client the publisher needs.
// Implemented by *storage.R2Client.
type Storage interface {
	List(ctx context.Context, bucket string, limit int) ([]storage.ObjectInfo, error)
	Upload(ctx context.Context, bucket, key string, body io.Reader, contentType, cacheControl string) (string, error)
	Remove(ctx context.Context, bucket string, keys []string) error
	PublicURL(bucket, key string) string
}

type Service struct {
	storage Storage
	bucket  string
}

func NewService(store Storage, bucket string) *Service {
	return &Service{storage: store, bucket: bucket}
}

// --------------------------------------------------
// Publish (single-current-file policy)
// --------------------------------------------------

// Publish replaces the current menu: existing objects in the bucket
// are evicted first, then the new PDF is uploaded under a timestamped
// name so the newest object is always "the" menu. Eviction is
// best-effort and not atomic with the upload; a failure there can
// leave an extra file behind but never blocks the new upload.
func (s *Service) Publish(
	ctx context.Context,
	file multipart.File,
	header *multipart.FileHeader,
) (string, error) {

	if header.Header.Get("Content-Type") != "application/pdf" {
		return "", ErrNotPDF
	}

	old, err := s.storage.List(ctx, s.bucket, 0)
	if err != nil {
		log.Printf("menu: could not list old menu files: %v", err)
	} else if len(old) > 0 {
		keys := make([]string, 0, len(old))
		for _, obj := range old {
			keys = append(keys, obj.Key)
		}
		if err := s.storage.Remove(ctx, s.bucket, keys); err != nil {
			log.Printf("menu: could not delete old menu files: %v", err)
		}
	}

	key := fmt.Sprintf("menu-%d.pdf", time.Now().UnixMilli())
	return s.storage.Upload(ctx, s.bucket, key, file, "application/pdf", "max-age=3600")
}

// --------------------------------------------------
// Current menu URL
// --------------------------------------------------

// CurrentURL returns the public URL of the newest menu PDF, or ""
// when no menu has been published yet.
func (s *Service) CurrentURL(ctx context.Context) (string, error) {
	objects, err := s.storage.List(ctx, s.bucket, 1)
	if err != nil {
		return "", err
	}
	if len(objects) == 0 {
		return "", nil
	}
	return s.storage.PublicURL(s.bucket, objects[0].Key), nil
}
