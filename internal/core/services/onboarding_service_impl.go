package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/visadesk/visa_desk_app/internal/apperrors"
	"github.com/visadesk/visa_desk_app/internal/core/domain"
	portsrepo "github.com/visadesk/visa_desk_app/internal/core/ports/repositories"
	portssvc "github.com/visadesk/visa_desk_app/internal/core/ports/services"
)

// onboardingService is the thin hook into the onboarding flow: approval is what
// provisions the employee's visa document sequence.
type onboardingService struct {
	BaseService
	profileRepo portsrepo.ProfileRepository
}

// NewOnboardingService creates a new onboarding service.
func NewOnboardingService(profileRepo portsrepo.ProfileRepository) portssvc.OnboardingSvcFacade {
	return &onboardingService{profileRepo: profileRepo}
}

var _ portssvc.OnboardingSvcFacade = (*onboardingService)(nil)

func (s *onboardingService) ApproveOnboarding(ctx context.Context, auth domain.AuthContext, targetUserID string) (*domain.EmployeeProfile, error) {
	if !auth.IsHR() {
		return nil, fmt.Errorf("only HR may approve onboarding: %w", apperrors.ErrForbidden)
	}

	profile, err := s.profileRepo.FindProfileByUserID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	if profile.OnboardingStatus == domain.OnboardingApproved {
		return profile, nil
	}

	now := time.Now()
	if err := s.profileRepo.SetOnboardingStatus(ctx, targetUserID, domain.OnboardingApproved, auth.UserID, now); err != nil {
		s.LogError(ctx, err, "Failed to approve onboarding", slog.String("target_user_id", targetUserID))
		return nil, err
	}
	if err := s.profileRepo.InitVisaDocuments(ctx, targetUserID, profile.VisaClass, now); err != nil {
		s.LogError(ctx, err, "Failed to initialize visa documents", slog.String("target_user_id", targetUserID))
		return nil, err
	}

	profile.OnboardingStatus = domain.OnboardingApproved
	profile.Visa = domain.NewVisaProfile(targetUserID, profile.VisaClass)
	profile.LastUpdatedAt = now
	profile.LastUpdatedBy = auth.UserID

	s.LogInfo(ctx, "Onboarding approved", slog.String("target_user_id", targetUserID))
	return profile, nil
}
