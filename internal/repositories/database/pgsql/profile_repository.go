package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/visadesk/visa_desk_app/internal/apperrors"
	"github.com/visadesk/visa_desk_app/internal/core/domain"
	portsrepo "github.com/visadesk/visa_desk_app/internal/core/ports/repositories"
)

type PgxProfileRepository struct {
	db *pgxpool.Pool
}

func newPgxProfileRepository(db *pgxpool.Pool) portsrepo.ProfileRepository {
	return &PgxProfileRepository{db: db}
}

// Ensure PgxProfileRepository implements portsrepo.ProfileRepository
var _ portsrepo.ProfileRepository = (*PgxProfileRepository)(nil)

func (r *PgxProfileRepository) SaveProfile(ctx context.Context, p domain.EmployeeProfile) error {
	query := `
        INSERT INTO employee_profiles (user_id, name, email, title, visa_class, visa_end_date, onboarding_status, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		p.UserID,
		p.Name,
		p.Email,
		p.Title,
		string(p.VisaClass),
		p.VisaEndDate,
		string(p.OnboardingStatus),
		p.CreatedAt,
		p.CreatedBy,
		p.LastUpdatedAt,
		p.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save employee profile: %w", err)
	}
	return nil
}

func (r *PgxProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.EmployeeProfile, error) {
	query := `
		SELECT user_id, name, email, title, visa_class, visa_end_date, onboarding_status, created_at, created_by, last_updated_at, last_updated_by
		FROM employee_profiles
		WHERE user_id = $1;
	`
	profile, err := r.scanProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile for user %s: %w", userID, err)
	}

	docs, err := r.loadDocuments(ctx, []string{userID})
	if err != nil {
		return nil, err
	}
	profile.Visa = domain.VisaProfile{
		UserID:    profile.UserID,
		VisaClass: profile.VisaClass,
		Documents: docs[userID],
	}
	if profile.Visa.Documents == nil {
		profile.Visa.Documents = map[domain.DocumentType]domain.DocumentRecord{}
	}
	return profile, nil
}

func (r *PgxProfileRepository) ListProfiles(ctx context.Context) ([]domain.EmployeeProfile, error) {
	query := `
		SELECT user_id, name, email, title, visa_class, visa_end_date, onboarding_status, created_at, created_by, last_updated_at, last_updated_by
		FROM employee_profiles
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee profiles: %w", err)
	}
	defer rows.Close()

	profiles := []domain.EmployeeProfile{}
	userIDs := []string{}
	for rows.Next() {
		profile, err := r.scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		profiles = append(profiles, *profile)
		userIDs = append(userIDs, profile.UserID)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating profile rows: %w", rows.Err())
	}

	docsByUser, err := r.loadDocuments(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		docs := docsByUser[profiles[i].UserID]
		if docs == nil {
			docs = map[domain.DocumentType]domain.DocumentRecord{}
		}
		profiles[i].Visa = domain.VisaProfile{
			UserID:    profiles[i].UserID,
			VisaClass: profiles[i].VisaClass,
			Documents: docs,
		}
	}
	return profiles, nil
}

func (r *PgxProfileRepository) scanProfile(row pgx.Row) (*domain.EmployeeProfile, error) {
	var p domain.EmployeeProfile
	var visaClass, onboardingStatus string
	err := row.Scan(
		&p.UserID,
		&p.Name,
		&p.Email,
		&p.Title,
		&visaClass,
		&p.VisaEndDate,
		&onboardingStatus,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	p.VisaClass = domain.VisaClass(visaClass)
	p.OnboardingStatus = domain.OnboardingStatus(onboardingStatus)
	return &p, nil
}

// loadDocuments fetches the stored document facts for a set of users in one query.
func (r *PgxProfileRepository) loadDocuments(ctx context.Context, userIDs []string) (map[string]map[domain.DocumentType]domain.DocumentRecord, error) {
	if len(userIDs) == 0 {
		return map[string]map[domain.DocumentType]domain.DocumentRecord{}, nil
	}

	query := `
		SELECT user_id, doc_type, COALESCE(file_id, ''), COALESCE(decision, ''), feedback, reviewed_at, COALESCE(reviewed_by, '')
		FROM visa_documents
		WHERE user_id = ANY($1);
	`
	rows, err := r.db.Query(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query visa documents: %w", err)
	}
	defer rows.Close()

	out := map[string]map[domain.DocumentType]domain.DocumentRecord{}
	for rows.Next() {
		var userID, docType, fileID, decision, reviewedBy string
		var feedback string
		var reviewedAt *time.Time
		if err := rows.Scan(&userID, &docType, &fileID, &decision, &feedback, &reviewedAt, &reviewedBy); err != nil {
			return nil, fmt.Errorf("failed to scan visa document row: %w", err)
		}
		t, ok := domain.ParseDocumentType(docType)
		if !ok {
			return nil, fmt.Errorf("unknown document type %q in visa_documents for user %s", docType, userID)
		}
		if out[userID] == nil {
			out[userID] = map[domain.DocumentType]domain.DocumentRecord{}
		}
		out[userID][t] = domain.DocumentRecord{
			FileID:     fileID,
			Decision:   domain.ReviewDecision(decision),
			Feedback:   feedback,
			ReviewedAt: reviewedAt,
			ReviewedBy: reviewedBy,
		}
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating visa document rows: %w", rows.Err())
	}
	return out, nil
}

// UpdateDocumentRecord overwrites the facts of one (user, document) row. The
// single-row UPDATE is the concurrency boundary: reviews of different documents
// on the same profile touch different rows and never conflict.
func (r *PgxProfileRepository) UpdateDocumentRecord(ctx context.Context, userID string, docType domain.DocumentType, rec domain.DocumentRecord, updatedAt time.Time) error {
	query := `
        UPDATE visa_documents
        SET file_id = NULLIF($1, ''), decision = NULLIF($2, ''), feedback = $3, reviewed_at = $4, reviewed_by = NULLIF($5, ''), last_updated_at = $6
        WHERE user_id = $7 AND doc_type = $8;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		rec.FileID,
		string(rec.Decision),
		rec.Feedback,
		rec.ReviewedAt,
		rec.ReviewedBy,
		updatedAt,
		userID,
		string(docType),
	)
	if err != nil {
		return fmt.Errorf("failed to update visa document %s/%s: %w", userID, docType, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("visa document %s/%s not found: %w", userID, docType, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProfileRepository) SetOnboardingStatus(ctx context.Context, userID string, status domain.OnboardingStatus, updatedBy string, updatedAt time.Time) error {
	query := `
        UPDATE employee_profiles
        SET onboarding_status = $1, last_updated_at = $2, last_updated_by = $3
        WHERE user_id = $4;
    `
	cmdTag, err := r.db.Exec(ctx, query, string(status), updatedAt, updatedBy, userID)
	if err != nil {
		return fmt.Errorf("failed to set onboarding status for user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("profile for user %s not found: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProfileRepository) InitVisaDocuments(ctx context.Context, userID string, class domain.VisaClass, createdAt time.Time) error {
	query := `
        INSERT INTO visa_documents (user_id, doc_type, feedback, last_updated_at)
        VALUES ($1, $2, '', $3)
        ON CONFLICT (user_id, doc_type) DO NOTHING;
    `
	for _, t := range class.RequiredDocuments() {
		if _, err := r.db.Exec(ctx, query, userID, string(t), createdAt); err != nil {
			return fmt.Errorf("failed to init visa document %s/%s: %w", userID, t, err)
		}
	}
	return nil
}
