package repositories

import (
	"context"
	"time"

	"github.com/visadesk/visa_desk_app/internal/core/domain"
)

// ProfileReader defines read operations for employee profiles and their visa documents.
type ProfileReader interface {
	// FindProfileByUserID retrieves one profile with its visa document records.
	// Returns apperrors.ErrNotFound if missing.
	FindProfileByUserID(ctx context.Context, userID string) (*domain.EmployeeProfile, error)

	// ListProfiles retrieves the complete profile set with embedded visa documents.
	ListProfiles(ctx context.Context) ([]domain.EmployeeProfile, error)
}

// ProfileWriter defines write operations for employee profiles.
//
// UpdateDocumentRecord is deliberately scoped to one (userID, docType) row so two
// concurrent reviews of different documents on the same profile can never clobber
// each other; the row update is the concurrency boundary.
type ProfileWriter interface {
	// SaveProfile inserts a profile together with its visa document rows.
	SaveProfile(ctx context.Context, profile domain.EmployeeProfile) error

	// UpdateDocumentRecord overwrites the stored facts of a single document slot.
	UpdateDocumentRecord(ctx context.Context, userID string, docType domain.DocumentType, rec domain.DocumentRecord, updatedAt time.Time) error

	// SetOnboardingStatus updates the onboarding stage of a profile.
	SetOnboardingStatus(ctx context.Context, userID string, status domain.OnboardingStatus, updatedBy string, updatedAt time.Time) error

	// InitVisaDocuments creates the empty document rows for a profile's required
	// sequence. Idempotent: existing rows are left untouched.
	InitVisaDocuments(ctx context.Context, userID string, class domain.VisaClass, createdAt time.Time) error
}

// ProfileRepository combines all profile persistence operations.
type ProfileRepository interface {
	ProfileReader
	ProfileWriter
}
