package domain

import "time"

// OnboardingStatus is the single-stage onboarding application state. The
// onboarding review flow itself is out of scope here; approval matters only
// because it provisions the visa profile.
type OnboardingStatus string

const (
	OnboardingPending  OnboardingStatus = "pending"
	OnboardingApproved OnboardingStatus = "approved"
	OnboardingRejected OnboardingStatus = "rejected"
)

// EmployeeProfile is one employee's record as the HR roster sees it.
type EmployeeProfile struct {
	UserID           string           `json:"userID"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Title            string           `json:"title"`
	VisaClass        VisaClass        `json:"visaClass"`
	VisaEndDate      *time.Time       `json:"visaEndDate,omitempty"`
	OnboardingStatus OnboardingStatus `json:"onboardingStatus"`
	Visa             VisaProfile      `json:"visa"`
	AuditFields
}
