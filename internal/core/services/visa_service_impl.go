package services

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/visadesk/visa_desk_app/internal/apperrors"
	"github.com/visadesk/visa_desk_app/internal/core/domain"
	portsrepo "github.com/visadesk/visa_desk_app/internal/core/ports/repositories"
	portssvc "github.com/visadesk/visa_desk_app/internal/core/ports/services"
	"github.com/visadesk/visa_desk_app/internal/core/visa"
	"github.com/visadesk/visa_desk_app/internal/dto"
)

// visaService implements the VisaSvcFacade interface. The service owns access
// control and persistence; all state decisions are delegated to the visa engine.
type visaService struct {
	BaseService
	profileRepo portsrepo.ProfileRepository
	fileRepo    portsrepo.FileRepository
	docStore    portsrepo.DocumentStore
	notifier    portssvc.NotifierSvc
}

// NewVisaService creates a new visa document service with the provided dependencies.
func NewVisaService(
	profileRepo portsrepo.ProfileRepository,
	fileRepo portsrepo.FileRepository,
	docStore portsrepo.DocumentStore,
	notifier portssvc.NotifierSvc,
) portssvc.VisaSvcFacade {
	return &visaService{
		profileRepo: profileRepo,
		fileRepo:    fileRepo,
		docStore:    docStore,
		notifier:    notifier,
	}
}

var _ portssvc.VisaSvcFacade = (*visaService)(nil)

// buildVisaStatusResponse runs the engine's derivations over a profile.
func buildVisaStatusResponse(p *domain.EmployeeProfile) *dto.VisaStatusResponse {
	resp := dto.ToVisaStatusResponse(
		p,
		visa.Statuses(p.Visa),
		visa.OverallStatus(p.Visa),
		visa.NextStep(p.Visa),
		visa.AllDocumentsApproved(p.Visa),
	)
	return &resp
}

func (s *visaService) GetVisaStatus(ctx context.Context, auth domain.AuthContext, targetUserID string) (*dto.VisaStatusResponse, error) {
	if !auth.CanActOn(targetUserID) {
		return nil, fmt.Errorf("user %s may not read visa status of %s: %w", auth.UserID, targetUserID, apperrors.ErrForbidden)
	}

	profile, err := s.profileRepo.FindProfileByUserID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	return buildVisaStatusResponse(profile), nil
}

func (s *visaService) ReviewDocument(ctx context.Context, auth domain.AuthContext, targetUserID string, docType string, req dto.ReviewDocumentRequest) (*dto.VisaStatusResponse, error) {
	if !auth.IsHR() {
		return nil, fmt.Errorf("only HR may review documents: %w", apperrors.ErrForbidden)
	}

	t, ok := domain.ParseDocumentType(docType)
	if !ok {
		return nil, fmt.Errorf("unknown document type %q: %w", docType, apperrors.ErrValidation)
	}
	decision, ok := domain.ParseReviewDecision(req.Status)
	if !ok {
		return nil, fmt.Errorf("unknown review status %q: %w", req.Status, apperrors.ErrValidation)
	}

	profile, err := s.profileRepo.FindProfileByUserID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updatedVisa, err := visa.ApplyReview(profile.Visa, t, decision, req.Feedback, auth.UserID, now)
	if err != nil {
		return nil, err
	}

	// Only the reviewed document's row is written; a concurrent review of a
	// different document on the same profile cannot be clobbered.
	if err := s.profileRepo.UpdateDocumentRecord(ctx, targetUserID, t, updatedVisa.Record(t), now); err != nil {
		s.LogError(ctx, err, "Failed to persist document review",
			slog.String("target_user_id", targetUserID),
			slog.String("document_type", string(t)))
		return nil, err
	}

	s.LogInfo(ctx, "Document reviewed",
		slog.String("target_user_id", targetUserID),
		slog.String("document_type", string(t)),
		slog.String("decision", string(decision)))

	profile.Visa = updatedVisa
	return buildVisaStatusResponse(profile), nil
}

func (s *visaService) UploadDocument(ctx context.Context, auth domain.AuthContext, docType string, filename, contentType string, content []byte) (*dto.UploadDocumentResponse, error) {
	t, ok := domain.ParseDocumentType(docType)
	if !ok {
		return nil, fmt.Errorf("document type %q is not an accepted visa document: %w", docType, apperrors.ErrValidation)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("uploaded file is empty: %w", apperrors.ErrValidation)
	}

	profile, err := s.profileRepo.FindProfileByUserID(ctx, auth.UserID)
	if err != nil {
		return nil, err
	}

	// Validate the transition before any bytes are stored so a locked slot never
	// leaves an orphaned object behind.
	if profile.OnboardingStatus != domain.OnboardingApproved {
		return nil, fmt.Errorf("visa documents open after onboarding approval: %w", apperrors.ErrInvalidTransition)
	}
	if !profile.Visa.Requires(t) {
		return nil, fmt.Errorf("document %s is not part of the %s sequence: %w", t, profile.Visa.VisaClass, apperrors.ErrInvalidTransition)
	}
	if visa.EffectiveStatus(profile.Visa, t) == domain.StatusLocked {
		return nil, fmt.Errorf("document %s is locked until its predecessor is approved: %w", t, apperrors.ErrInvalidTransition)
	}

	fileID := uuid.NewString()
	objectKey := path.Join(auth.UserID, string(t), fileID)

	// The store write happens first; the profile row only ever references an
	// already-durable file. A storage failure leaves the profile untouched.
	if err := s.docStore.Put(ctx, objectKey, contentType, content); err != nil {
		s.LogError(ctx, err, "Document store write failed",
			slog.String("document_type", string(t)))
		return nil, fmt.Errorf("storing document %s: %w", t, apperrors.ErrStorage)
	}

	now := time.Now()
	storedFile := domain.StoredFile{
		FileID:      fileID,
		OwnerUserID: auth.UserID,
		Filename:    filename,
		ContentType: contentType,
		SizeBytes:   int64(len(content)),
		ObjectKey:   objectKey,
		CreatedAt:   now,
	}
	if err := s.fileRepo.SaveFile(ctx, storedFile); err != nil {
		s.LogError(ctx, err, "Failed to save file metadata", slog.String("file_id", fileID))
		return nil, err
	}

	updatedVisa, err := visa.ApplyUpload(profile.Visa, t, fileID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.UpdateDocumentRecord(ctx, auth.UserID, t, updatedVisa.Record(t), now); err != nil {
		s.LogError(ctx, err, "Failed to persist document upload",
			slog.String("document_type", string(t)))
		return nil, err
	}

	s.LogInfo(ctx, "Document uploaded",
		slog.String("document_type", string(t)),
		slog.String("file_id", fileID))

	profile.Visa = updatedVisa
	return &dto.UploadDocumentResponse{
		FileID:  fileID,
		Path:    "/api/v1/files/" + fileID,
		Profile: *buildVisaStatusResponse(profile),
	}, nil
}

func (s *visaService) NotifyNextStep(ctx context.Context, auth domain.AuthContext, targetUserID string, req dto.NotifyRequest) error {
	if !auth.IsHR() {
		return fmt.Errorf("only HR may send reminders: %w", apperrors.ErrForbidden)
	}
	if strings.TrimSpace(req.NextStep) == "" {
		return fmt.Errorf("next step description is required: %w", apperrors.ErrValidation)
	}

	profile, err := s.profileRepo.FindProfileByUserID(ctx, targetUserID)
	if err != nil {
		return err
	}

	if err := s.notifier.SendNextStepReminder(ctx, profile.Email, profile.Name, req.NextStep); err != nil {
		s.LogError(ctx, err, "Reminder dispatch failed", slog.String("target_user_id", targetUserID))
		return err
	}

	s.LogInfo(ctx, "Reminder dispatched", slog.String("target_user_id", targetUserID))
	return nil
}
