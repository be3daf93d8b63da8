package offers

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("offer not found")

// Repository is the offers data-access contract. List must return
// rows ordered by created_at descending; the service never re-sorts.
type Repository interface {
	List(ctx context.Context) ([]*Offer, error)
	GetByID(ctx context.Context, id string) (*Offer, error)
	Insert(ctx context.Context, offer *Offer) error
	Update(ctx context.Context, offer *Offer) error
	Delete(ctx context.Context, id string) error
}
