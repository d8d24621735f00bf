package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/visadesk/visa_desk_app/internal/apperrors"
	"github.com/visadesk/visa_desk_app/internal/core/domain"
	portsrepo "github.com/visadesk/visa_desk_app/internal/core/ports/repositories"
)

type PgxFileRepository struct {
	db *pgxpool.Pool
}

func newPgxFileRepository(db *pgxpool.Pool) portsrepo.FileRepository {
	return &PgxFileRepository{db: db}
}

// Ensure PgxFileRepository implements portsrepo.FileRepository
var _ portsrepo.FileRepository = (*PgxFileRepository)(nil)

func (r *PgxFileRepository) SaveFile(ctx context.Context, f domain.StoredFile) error {
	query := `
        INSERT INTO stored_files (file_id, owner_user_id, filename, content_type, size_bytes, object_key, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		f.FileID,
		f.OwnerUserID,
		f.Filename,
		f.ContentType,
		f.SizeBytes,
		f.ObjectKey,
		f.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save file metadata: %w", err)
	}
	return nil
}

func (r *PgxFileRepository) FindFileByID(ctx context.Context, fileID string) (*domain.StoredFile, error) {
	query := `
		SELECT file_id, owner_user_id, filename, content_type, size_bytes, object_key, created_at
		FROM stored_files
		WHERE file_id = $1;
	`
	var f domain.StoredFile
	err := r.db.QueryRow(ctx, query, fileID).Scan(
		&f.FileID,
		&f.OwnerUserID,
		&f.Filename,
		&f.ContentType,
		&f.SizeBytes,
		&f.ObjectKey,
		&f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find file %s: %w", fileID, err)
	}
	return &f, nil
}
