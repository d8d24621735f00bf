package services

import (
	"context"

	"github.com/visadesk/visa_desk_app/internal/core/domain"
	"github.com/visadesk/visa_desk_app/internal/dto"
)

// VisaReaderSvc defines read operations on the document sequence.
type VisaReaderSvc interface {
	// GetVisaStatus returns the derived document view for one employee.
	// Callers may read their own status; HR may read anyone's.
	GetVisaStatus(ctx context.Context, auth domain.AuthContext, targetUserID string) (*dto.VisaStatusResponse, error)
}

// VisaReviewSvc defines the HR-side review operations.
type VisaReviewSvc interface {
	// ReviewDocument applies an approve/reject decision to one document. HR only.
	ReviewDocument(ctx context.Context, auth domain.AuthContext, targetUserID string, docType string, req dto.ReviewDocumentRequest) (*dto.VisaStatusResponse, error)

	// NotifyNextStep dispatches a next-step reminder to the employee. HR only.
	// Success reflects dispatch, not any document state change.
	NotifyNextStep(ctx context.Context, auth domain.AuthContext, targetUserID string, req dto.NotifyRequest) error
}

// VisaUploadSvc defines the employee-side upload operation.
type VisaUploadSvc interface {
	// UploadDocument stores the bytes durably, then records the file against the
	// caller's own profile slot. Employees can only fill their own slots.
	UploadDocument(ctx context.Context, auth domain.AuthContext, docType string, filename, contentType string, content []byte) (*dto.UploadDocumentResponse, error)
}

// VisaSvcFacade combines all visa document service interfaces.
type VisaSvcFacade interface {
	VisaReaderSvc
	VisaReviewSvc
	VisaUploadSvc
}

// RosterSvcFacade produces the HR-facing employee table.
type RosterSvcFacade interface {
	// ListEmployees applies filters, sort mode and finally pagination over the
	// full profile set. HR only.
	ListEmployees(ctx context.Context, auth domain.AuthContext, params dto.ListEmployeesParams) (*dto.ListEmployeesResponse, error)
}

// OnboardingSvcFacade is the thin hook into the (otherwise external) onboarding
// flow: approval provisions the visa profile.
type OnboardingSvcFacade interface {
	// ApproveOnboarding marks the employee's onboarding application approved and
	// initializes their visa document sequence. HR only.
	ApproveOnboarding(ctx context.Context, auth domain.AuthContext, targetUserID string) (*domain.EmployeeProfile, error)
}

// FileSvcFacade serves stored binaries with owner-or-HR gating.
type FileSvcFacade interface {
	// FetchFile returns metadata and bytes for one stored file.
	FetchFile(ctx context.Context, auth domain.AuthContext, fileID string) (*domain.StoredFile, []byte, error)
}

// NotifierSvc is the external reminder dispatch collaborator.
type NotifierSvc interface {
	// SendNextStepReminder sends the next-step description to an employee.
	SendNextStepReminder(ctx context.Context, toEmail, employeeName, nextStep string) error
}
