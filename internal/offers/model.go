package offers

import "time"

// Offer is a promotion shown on the public site. Price is free-form
// text (the admin types the currency), not a number. A nil ExpiryDate
// means the offer never expires.
type Offer struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       *string    `json:"price,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Form carries the raw dashboard form fields before validation.
// ImageURL holds the already-stored image URL when editing; a newly
// selected file arrives separately as a multipart part.
type Form struct {
	Title       string
	Description string
	Price       string
	ImageURL    string
	ExpiryDate  string
}
