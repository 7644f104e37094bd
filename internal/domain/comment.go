package domain

import "time"

// Comment is a per-photo review entry. PhotoID is a soft reference: a photo
// delete does not cascade, orphaned comments are tolerated.
type Comment struct {
	ID        string    `json:"id"`
	PhotoID   string    `json:"photoId"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
}
