package dto

import (
	"time"

	"github.com/visadesk/visa_desk_app/internal/core/domain"
)

// ReviewDocumentRequest is the body of a PATCH review call.
type ReviewDocumentRequest struct {
	Status   string `json:"status" binding:"required,oneof=approved rejected"`
	Feedback string `json:"feedback"`
}

// NotifyRequest carries the next-step label to dispatch as a reminder.
type NotifyRequest struct {
	NextStep string `json:"nextStep" binding:"required"`
}

// DocumentStatusResponse is one slot of the sequence with its derived status.
type DocumentStatusResponse struct {
	DocumentType string     `json:"documentType"`
	Status       string     `json:"status"`
	FileID       string     `json:"fileID,omitempty"`
	Feedback     string     `json:"feedback,omitempty"`
	ReviewedAt   *time.Time `json:"reviewedAt,omitempty"`
}

// NextStepResponse describes the single next required action.
type NextStepResponse struct {
	Kind         string `json:"kind"`
	DocumentType string `json:"documentType,omitempty"`
	Label        string `json:"label"`
}

// VisaStatusResponse is the full derived view of one employee's document sequence.
type VisaStatusResponse struct {
	UserID        string                   `json:"userID"`
	Name          string                   `json:"name"`
	Email         string                   `json:"email"`
	VisaClass     string                   `json:"visaClass"`
	VisaEndDate   *time.Time               `json:"visaEndDate,omitempty"`
	OverallStatus string                   `json:"overallStatus"`
	AllApproved   bool                     `json:"allApproved"`
	NextStep      NextStepResponse         `json:"nextStep"`
	Documents     []DocumentStatusResponse `json:"documents"`
}

// UploadDocumentResponse returns the stored file reference plus the refreshed status view.
type UploadDocumentResponse struct {
	FileID  string             `json:"fileID"`
	Path    string             `json:"path"`
	Profile VisaStatusResponse `json:"profile"`
}

// ToVisaStatusResponse assembles the derived view from an employee profile and the
// engine's outputs. Documents are emitted in sequence order.
func ToVisaStatusResponse(
	p *domain.EmployeeProfile,
	statuses map[domain.DocumentType]domain.ReviewStatus,
	overall domain.OverallStatus,
	next domain.NextStep,
	allApproved bool,
) VisaStatusResponse {
	docs := make([]DocumentStatusResponse, 0, len(statuses))
	for _, t := range p.Visa.VisaClass.RequiredDocuments() {
		rec := p.Visa.Record(t)
		docs = append(docs, DocumentStatusResponse{
			DocumentType: string(t),
			Status:       string(statuses[t]),
			FileID:       rec.FileID,
			Feedback:     rec.Feedback,
			ReviewedAt:   rec.ReviewedAt,
		})
	}
	return VisaStatusResponse{
		UserID:        p.UserID,
		Name:          p.Name,
		Email:         p.Email,
		VisaClass:     string(p.Visa.VisaClass),
		VisaEndDate:   p.VisaEndDate,
		OverallStatus: string(overall),
		AllApproved:   allApproved,
		NextStep: NextStepResponse{
			Kind:         string(next.Kind),
			DocumentType: string(next.DocumentType),
			Label:        next.Label,
		},
		Documents: docs,
	}
}
