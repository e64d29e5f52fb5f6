// File: internal/model/product.go
package model

import "time"

type Product struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	ImageURL    string    `db:"image_url" json:"imageUrl"`
	SubmittedAt time.Time `db:"submitted_at" json:"submittedAt"`
}
