package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/visadesk/visa_desk_app/internal/core/domain"
)

// --- Mock ProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.EmployeeProfile, error) {
	args := m.Called(ctx, userID)
	var profile *domain.EmployeeProfile
	if args.Get(0) != nil {
		profile = args.Get(0).(*domain.EmployeeProfile)
	}
	return profile, args.Error(1)
}

func (m *MockProfileRepository) ListProfiles(ctx context.Context) ([]domain.EmployeeProfile, error) {
	args := m.Called(ctx)
	var profiles []domain.EmployeeProfile
	if args.Get(0) != nil {
		profiles = args.Get(0).([]domain.EmployeeProfile)
	}
	return profiles, args.Error(1)
}

func (m *MockProfileRepository) SaveProfile(ctx context.Context, profile domain.EmployeeProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateDocumentRecord(ctx context.Context, userID string, docType domain.DocumentType, rec domain.DocumentRecord, updatedAt time.Time) error {
	args := m.Called(ctx, userID, docType, rec, updatedAt)
	return args.Error(0)
}

func (m *MockProfileRepository) SetOnboardingStatus(ctx context.Context, userID string, status domain.OnboardingStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, userID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockProfileRepository) InitVisaDocuments(ctx context.Context, userID string, class domain.VisaClass, createdAt time.Time) error {
	args := m.Called(ctx, userID, class, createdAt)
	return args.Error(0)
}

// --- Mock FileRepository ---
type MockFileRepository struct {
	mock.Mock
}

func (m *MockFileRepository) SaveFile(ctx context.Context, file domain.StoredFile) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockFileRepository) FindFileByID(ctx context.Context, fileID string) (*domain.StoredFile, error) {
	args := m.Called(ctx, fileID)
	var file *domain.StoredFile
	if args.Get(0) != nil {
		file = args.Get(0).(*domain.StoredFile)
	}
	return file, args.Error(1)
}

// --- Mock DocumentStore ---
type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Put(ctx context.Context, objectKey, contentType string, content []byte) error {
	args := m.Called(ctx, objectKey, contentType, content)
	return args.Error(0)
}

func (m *MockDocumentStore) Get(ctx context.Context, objectKey string) ([]byte, error) {
	args := m.Called(ctx, objectKey)
	var content []byte
	if args.Get(0) != nil {
		content = args.Get(0).([]byte)
	}
	return content, args.Error(1)
}

// --- Mock Notifier ---
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendNextStepReminder(ctx context.Context, toEmail, employeeName, nextStep string) error {
	args := m.Called(ctx, toEmail, employeeName, nextStep)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}
