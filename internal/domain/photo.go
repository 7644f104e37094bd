package domain

import "time"

// Photo is a gallery record. The image itself lives on the external image
// host; ImageURL is the durable URL and StoragePath the opaque handle used
// for best-effort asset deletion.
type Photo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	Description string    `json:"description,omitempty"`
	StoragePath string    `json:"storagePath,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
