package model

import "time"

// ContactEntity represents the contact table entity.
type ContactEntity struct {
	ID        uint64     `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Email     string     `db:"email" json:"email"`
	Phone     string     `db:"phone" json:"phone"`
	Favorite  bool       `db:"favorite" json:"favorite"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// ContactRequest carries the writable contact fields for create and update.
type ContactRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

// UpdateFavoriteRequest for the favorite status update. Favorite is a
// pointer so an absent field is distinguishable from false.
type UpdateFavoriteRequest struct {
	Favorite *bool `json:"favorite"`
}
