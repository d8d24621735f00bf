package domain

import "time"

// StoredFile is the metadata record for one uploaded binary. Bytes live in the
// document store under ObjectKey; this row is what access control is checked against.
type StoredFile struct {
	FileID      string    `json:"fileID"` // Primary Key (UUID), the opaque public reference
	OwnerUserID string    `json:"ownerUserID"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"sizeBytes"`
	ObjectKey   string    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}
