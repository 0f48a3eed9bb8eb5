package models

import "time"

// StoredFile records an object handed out for upload. The bytes live in
// object storage under Key; the row tracks ownership.
type StoredFile struct {
	Bucket      string
	Key         string
	OwnerID     string
	ContentType string
	CreatedAt   time.Time
}
