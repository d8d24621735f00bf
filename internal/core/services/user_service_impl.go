package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/visadesk/visa_desk_app/internal/apperrors"
	"github.com/visadesk/visa_desk_app/internal/core/domain"
	portsrepo "github.com/visadesk/visa_desk_app/internal/core/ports/repositories"
	portssvc "github.com/visadesk/visa_desk_app/internal/core/ports/services"
	"github.com/visadesk/visa_desk_app/internal/dto"
	"github.com/visadesk/visa_desk_app/internal/utils"
)

// userService implements the UserSvcFacade interface.
type userService struct {
	BaseService
	userRepo    portsrepo.UserRepository
	profileRepo portsrepo.ProfileRepository
}

// NewUserService creates a new user service with the provided dependencies.
func NewUserService(userRepo portsrepo.UserRepository, profileRepo portsrepo.ProfileRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, profileRepo: profileRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("username %s is taken: %w", req.Username, apperrors.ErrDuplicate)
	}

	role := domain.RoleEmployee
	if r, ok := domain.ParseRole(req.Role); ok {
		role = r
	}
	visaClass := domain.VisaClassOther
	if c, ok := domain.ParseVisaClass(req.VisaClass); ok {
		visaClass = c
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		Role:         role,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("username", req.Username))
		return nil, err
	}

	// Employees get a profile immediately; the visa document sequence is
	// initialized when onboarding is approved.
	if role == domain.RoleEmployee {
		profile := domain.EmployeeProfile{
			UserID:           userID,
			Name:             req.Name,
			Email:            req.Email,
			Title:            req.Title,
			VisaClass:        visaClass,
			OnboardingStatus: domain.OnboardingPending,
			Visa:             domain.VisaProfile{UserID: userID, VisaClass: visaClass, Documents: map[domain.DocumentType]domain.DocumentRecord{}},
			AuditFields:      user.AuditFields,
		}
		if err := s.profileRepo.SaveProfile(ctx, profile); err != nil {
			s.LogError(ctx, err, "Failed to save employee profile", slog.String("user_id", userID))
			return nil, err
		}
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", userID), slog.String("role", string(role)))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by username")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrForbidden)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrForbidden)
	}
	return user, nil
}
