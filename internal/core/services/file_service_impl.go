package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/visadesk/visa_desk_app/internal/apperrors"
	"github.com/visadesk/visa_desk_app/internal/core/domain"
	portsrepo "github.com/visadesk/visa_desk_app/internal/core/ports/repositories"
	portssvc "github.com/visadesk/visa_desk_app/internal/core/ports/services"
)

// fileService serves stored binaries with owner-or-HR gating.
type fileService struct {
	BaseService
	fileRepo portsrepo.FileRepository
	docStore portsrepo.DocumentStore
}

// NewFileService creates a new file retrieval service.
func NewFileService(fileRepo portsrepo.FileRepository, docStore portsrepo.DocumentStore) portssvc.FileSvcFacade {
	return &fileService{fileRepo: fileRepo, docStore: docStore}
}

var _ portssvc.FileSvcFacade = (*fileService)(nil)

func (s *fileService) FetchFile(ctx context.Context, auth domain.AuthContext, fileID string) (*domain.StoredFile, []byte, error) {
	meta, err := s.fileRepo.FindFileByID(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}
	if !auth.CanActOn(meta.OwnerUserID) {
		return nil, nil, fmt.Errorf("user %s may not read file %s: %w", auth.UserID, fileID, apperrors.ErrForbidden)
	}

	content, err := s.docStore.Get(ctx, meta.ObjectKey)
	if err != nil {
		s.LogError(ctx, err, "Document store read failed", slog.String("file_id", fileID))
		return nil, nil, fmt.Errorf("fetching file %s: %w", fileID, apperrors.ErrStorage)
	}
	return meta, content, nil
}
