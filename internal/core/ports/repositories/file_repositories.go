package repositories

import (
	"context"

	"github.com/visadesk/visa_desk_app/internal/core/domain"
)

// FileRepository persists metadata for stored binaries. The bytes themselves go
// through DocumentStore; this table is what ownership checks run against.
type FileRepository interface {
	// SaveFile inserts a file metadata record.
	SaveFile(ctx context.Context, file domain.StoredFile) error

	// FindFileByID retrieves metadata by the opaque file id.
	// Returns apperrors.ErrNotFound if missing.
	FindFileByID(ctx context.Context, fileID string) (*domain.StoredFile, error)
}

// DocumentStore is the binary storage collaborator: store bytes under a key,
// fetch them back. Implementations must be durable before returning from Put —
// profile rows only ever reference already-stored files.
type DocumentStore interface {
	Put(ctx context.Context, objectKey, contentType string, content []byte) error
	Get(ctx context.Context, objectKey string) ([]byte, error)
}
