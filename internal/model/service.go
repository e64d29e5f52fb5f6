// File: internal/model/service.go
package model

import "time"

type Service struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Icon        string    `db:"icon" json:"icon"`
	SubmittedAt time.Time `db:"submitted_at" json:"submittedAt"`
}
