package offers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/elmenyr/resturant-alokda/internal/storage"

	"github.com/google/uuid"
)

const maxImageSize = 5 << 20 // 5 MiB

// Storage is the slice of the object-store client the offer lifecycle
// needs. Implemented by *storage.R2Client.
type Storage interface {
	Upload(ctx context.Context, bucket, key string, body io.Reader, contentType, cacheControl string) (string, error)
	Remove(ctx context.Context, bucket string, keys []string) error
}

type Service struct {
	repo    Repository
	storage Storage
	bucket  string
}

func NewService(repo Repository, store Storage, bucket string) *Service {
	return &Service{repo: repo, storage: store, bucket: bucket}
}

// --------------------------------------------------
// List (all rows, expired included — dashboard view)
// --------------------------------------------------
func (s *Service) List(ctx context.Context) ([]*Offer, error) {
	offers, err := s.repo.List(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}
	return offers, nil
}

// --------------------------------------------------
// Validate + normalize form fields
// --------------------------------------------------
func validate(form Form) (*Offer, error) {
	title := strings.TrimSpace(form.Title)
	if title == "" {
		return nil, &ValidationError{Field: "title", Message: "required"}
	}

	description := strings.TrimSpace(form.Description)
	if description == "" {
		return nil, &ValidationError{Field: "description", Message: "required"}
	}

	offer := &Offer{
		Title:       title,
		Description: description,
	}

	// price is free-form text, passed through verbatim
	if form.Price != "" {
		price := form.Price
		offer.Price = &price
	}

	if form.ExpiryDate != "" {
		expiry, err := parseExpiry(form.ExpiryDate)
		if err != nil {
			return nil, &ValidationError{Field: "expiry_date", Message: "invalid timestamp"}
		}
		offer.ExpiryDate = &expiry
	}

	return offer, nil
}

// parseExpiry accepts the dashboard's datetime-local value (no zone,
// interpreted as server-local time) or a full RFC 3339 timestamp.
func parseExpiry(value string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02T15:04", value, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// --------------------------------------------------
// Resolve offer image
// --------------------------------------------------

// resolveImage returns the image URL the offer should persist. With no
// new file the existing URL passes through untouched and no storage
// call is made. A replacement deletes the old object best-effort
// before uploading the new one; a leaked old object is accepted and
// only logged.
func (s *Service) resolveImage(
	ctx context.Context,
	existingURL string,
	file *multipart.FileHeader,
) (string, error) {

	if file == nil {
		return existingURL, nil
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotImage
	}
	if file.Size > maxImageSize {
		return "", ErrImageTooLarge
	}

	if existingURL != "" {
		if key := storage.KeyFromURL(existingURL, s.bucket); key != "" {
			if err := s.storage.Remove(ctx, s.bucket, []string{key}); err != nil {
				log.Printf("offers: could not delete replaced image %s: %v", key, err)
			}
		}
	}

	f, err := file.Open()
	if err != nil {
		return "", &UploadError{Err: err}
	}
	defer f.Close()

	// timestamp plus random suffix so concurrent uploads cannot collide
	ext := strings.ToLower(filepath.Ext(file.Filename))
	key := fmt.Sprintf("offer-%d-%s%s", time.Now().UnixMilli(), uuid.New().String()[:8], ext)

	url, err := s.storage.Upload(ctx, s.bucket, key, f, contentType, "max-age=3600")
	if err != nil {
		return "", &UploadError{PolicyDenied: storage.IsAccessDenied(err), Err: err}
	}

	return url, nil
}

// --------------------------------------------------
// Save (create or full replace)
// --------------------------------------------------

// Save validates the form, resolves the image, and inserts a new
// record or fully replaces the one named by editingID. The persisted
// entity is returned; the caller decides whether to refetch the
// listing. On a store error nothing is mutated locally.
func (s *Service) Save(
	ctx context.Context,
	form Form,
	editingID string,
	image *multipart.FileHeader,
) (*Offer, error) {

	offer, err := validate(form)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.resolveImage(ctx, form.ImageURL, image)
	if err != nil {
		return nil, err
	}
	if imageURL != "" {
		offer.ImageURL = &imageURL
	}

	if editingID != "" {
		offer.ID = editingID
		if err := s.repo.Update(ctx, offer); err != nil {
			return nil, &PersistenceError{Op: "update", Err: err}
		}
		return offer, nil
	}

	if err := s.repo.Insert(ctx, offer); err != nil {
		return nil, &PersistenceError{Op: "insert", Err: err}
	}
	return offer, nil
}

// --------------------------------------------------
// Delete
// --------------------------------------------------

// Delete removes the offer row and best-effort deletes its stored
// image. A row that is already gone counts as success; a failed image
// removal is logged and the orphaned object accepted.
func (s *Service) Delete(ctx context.Context, id string) error {
	offer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return &PersistenceError{Op: "load", Err: err}
	}

	if offer.ImageURL != nil {
		if key := storage.KeyFromURL(*offer.ImageURL, s.bucket); key != "" {
			if err := s.storage.Remove(ctx, s.bucket, []string{key}); err != nil {
				log.Printf("offers: could not delete image for offer %s: %v", id, err)
			}
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return &PersistenceError{Op: "delete", Err: err}
	}
	return nil
}
