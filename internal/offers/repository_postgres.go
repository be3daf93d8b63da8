package offers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// List (newest first)
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]*Offer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			title,
			description,
			price,
			image_url,
			expiry_date,
			created_at
		FROM offers
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []*Offer

	for rows.Next() {
		var o Offer
		if err := rows.Scan(
			&o.ID,
			&o.Title,
			&o.Description,
			&o.Price,
			&o.ImageURL,
			&o.ExpiryDate,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		offers = append(offers, &o)
	}

	return offers, rows.Err()
}

// --------------------------------------------------
// Get by ID
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Offer, error) {
	var o Offer
	err := r.db.QueryRow(ctx, `
		SELECT
			id,
			title,
			description,
			price,
			image_url,
			expiry_date,
			created_at
		FROM offers
		WHERE id = $1
	`, id).Scan(
		&o.ID,
		&o.Title,
		&o.Description,
		&o.Price,
		&o.ImageURL,
		&o.ExpiryDate,
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// --------------------------------------------------
// Insert
// --------------------------------------------------
func (r *PostgresRepository) Insert(ctx context.Context, offer *Offer) error {
	if offer.ID == "" {
		offer.ID = uuid.New().String()
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO offers (
			id,
			title,
			description,
			price,
			image_url,
			expiry_date
		)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at
	`,
		offer.ID,
		offer.Title,
		offer.Description,
		offer.Price,
		offer.ImageURL,
		offer.ExpiryDate,
	).Scan(&offer.CreatedAt)
}

// --------------------------------------------------
// Update (full field replace)
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, offer *Offer) error {
	err := r.db.QueryRow(ctx, `
		UPDATE offers
		SET
			title = $2,
			description = $3,
			price = $4,
			image_url = $5,
			expiry_date = $6
		WHERE id = $1
		RETURNING created_at
	`,
		offer.ID,
		offer.Title,
		offer.Description,
		offer.Price,
		offer.ImageURL,
		offer.ExpiryDate,
	).Scan(&offer.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		// Zero rows affected counts as success: the row was removed
		// by another session and last-write-wins applies.
		return nil
	}
	return err
}

// --------------------------------------------------
// Delete
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM offers
		WHERE id = $1
	`, id)
	return err
}
