package offers

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// InMemoryRepository keeps offers newest-first, matching the ordering
// contract of the Postgres repository. Used by tests and local runs.
type InMemoryRepository struct {
	offers []*Offer
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*Offer, error) {
	out := make([]*Offer, len(r.offers))
	copy(out, r.offers)
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Offer, error) {
	for _, o := range r.offers {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryRepository) Insert(ctx context.Context, offer *Offer) error {
	if offer.ID == "" {
		offer.ID = uuid.New().String()
	}
	offer.CreatedAt = time.Now()
	r.offers = append([]*Offer{offer}, r.offers...)
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, offer *Offer) error {
	for i, o := range r.offers {
		if o.ID == offer.ID {
			offer.CreatedAt = o.CreatedAt
			r.offers[i] = offer
			return nil
		}
	}
	// zero rows affected is success
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	for i, o := range r.offers {
		if o.ID == id {
			r.offers = append(r.offers[:i], r.offers[i+1:]...)
			return nil
		}
	}
	return nil
}
