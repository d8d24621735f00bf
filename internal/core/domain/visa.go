package domain

import "time"

// DocumentType identifies one slot in the work-authorization document sequence.
// The set of valid values is closed: ParseDocumentType is the only way in from
// request data, so a fifth key can never enter the system.
type DocumentType string

const (
	DocOPTReceipt DocumentType = "optReceipt"
	DocOPTEAD     DocumentType = "optEad"
	DocI983       DocumentType = "i983"
	DocI20        DocumentType = "i20"
)

// DocumentOrder is the fixed total order of the sequence. A later document only
// becomes reviewable after its immediate predecessor is approved.
var DocumentOrder = []DocumentType{DocOPTReceipt, DocOPTEAD, DocI983, DocI20}

// documentPredecessor maps each type to the one that must be approved before it
// unlocks. The first document has no predecessor.
var documentPredecessor = map[DocumentType]DocumentType{
	DocOPTEAD: DocOPTReceipt,
	DocI983:   DocOPTEAD,
	DocI20:    DocI983,
}

// ParseDocumentType validates a path/request value against the closed enum.
func ParseDocumentType(s string) (DocumentType, bool) {
	switch DocumentType(s) {
	case DocOPTReceipt, DocOPTEAD, DocI983, DocI20:
		return DocumentType(s), true
	}
	return "", false
}

// Predecessor returns the document that gates t, and false for the first in order.
func (t DocumentType) Predecessor() (DocumentType, bool) {
	p, ok := documentPredecessor[t]
	return p, ok
}

// DisplayName is the human-readable form used in next-step labels and notifications.
func (t DocumentType) DisplayName() string {
	switch t {
	case DocOPTReceipt:
		return "OPT Receipt"
	case DocOPTEAD:
		return "OPT EAD"
	case DocI983:
		return "I-983"
	case DocI20:
		return "I-20"
	}
	return string(t)
}

// ReviewStatus is the derived per-document state. It is computed from stored facts
// and sequence position at read time and never persisted, so a stored status can
// never disagree with the predecessor's state.
type ReviewStatus string

const (
	StatusLocked      ReviewStatus = "locked"
	StatusNotUploaded ReviewStatus = "notUploaded"
	StatusPending     ReviewStatus = "pending"
	StatusApproved    ReviewStatus = "approved"
	StatusRejected    ReviewStatus = "rejected"
)

// ReviewDecision is the stored HR decision fact for one document. Empty means no
// decision has been made for the current upload.
type ReviewDecision string

const (
	DecisionNone     ReviewDecision = ""
	DecisionApproved ReviewDecision = "approved"
	DecisionRejected ReviewDecision = "rejected"
)

// ParseReviewDecision validates a decision value from a review request.
func ParseReviewDecision(s string) (ReviewDecision, bool) {
	switch ReviewDecision(s) {
	case DecisionApproved, DecisionRejected:
		return ReviewDecision(s), true
	}
	return "", false
}

// DocumentRecord holds the stored facts for one document slot: the uploaded file
// reference and the review decision. Locked/NotUploaded/Pending are not facts and
// therefore not fields here.
type DocumentRecord struct {
	FileID     string         `json:"fileID,omitempty"`
	Decision   ReviewDecision `json:"decision,omitempty"`
	Feedback   string         `json:"feedback,omitempty"`
	ReviewedAt *time.Time     `json:"reviewedAt,omitempty"`
	ReviewedBy string         `json:"reviewedBy,omitempty"`
}

// HasFile reports whether a file has been uploaded into this slot.
func (r DocumentRecord) HasFile() bool {
	return r.FileID != ""
}

// VisaClass selects which document sequence applies to an employee. Applicability
// is explicit configuration, never inferred by string-matching the visa type.
type VisaClass string

const (
	// VisaClassOPT employees must file the full four-document sequence.
	VisaClassOPT VisaClass = "opt"
	// VisaClassOther employees have no required visa documents; onboarding
	// approval alone completes them.
	VisaClassOther VisaClass = "other"
)

// ParseVisaClass validates a visa class value.
func ParseVisaClass(s string) (VisaClass, bool) {
	switch VisaClass(s) {
	case VisaClassOPT, VisaClassOther:
		return VisaClass(s), true
	}
	return "", false
}

// RequiredDocuments returns the ordered document sequence this class must file.
func (c VisaClass) RequiredDocuments() []DocumentType {
	if c == VisaClassOPT {
		return DocumentOrder
	}
	return nil
}

// VisaProfile owns one DocumentRecord per required DocumentType for an employee.
type VisaProfile struct {
	UserID    string                          `json:"userID"`
	VisaClass VisaClass                       `json:"visaClass"`
	Documents map[DocumentType]DocumentRecord `json:"documents"`
}

// NewVisaProfile creates the initial profile: every required slot exists and holds
// no facts, which derives to NotUploaded for the first document and Locked for the rest.
func NewVisaProfile(userID string, class VisaClass) VisaProfile {
	docs := make(map[DocumentType]DocumentRecord, len(class.RequiredDocuments()))
	for _, t := range class.RequiredDocuments() {
		docs[t] = DocumentRecord{}
	}
	return VisaProfile{
		UserID:    userID,
		VisaClass: class,
		Documents: docs,
	}
}

// Record returns the stored facts for t, treating a missing map entry as empty.
func (p VisaProfile) Record(t DocumentType) DocumentRecord {
	return p.Documents[t]
}

// Requires reports whether t is part of this profile's required sequence.
func (p VisaProfile) Requires(t DocumentType) bool {
	for _, rt := range p.VisaClass.RequiredDocuments() {
		if rt == t {
			return true
		}
	}
	return false
}

// OverallStatus is the read-time projection over the whole document sequence.
type OverallStatus string

const (
	OverallNeverSubmitted OverallStatus = "neverSubmitted"
	OverallPending        OverallStatus = "pending"
	OverallApproved       OverallStatus = "approved"
	OverallRejected       OverallStatus = "rejected"
)

// NextStepKind says who must act next on a visa profile.
type NextStepKind string

const (
	NextStepEmployeeUpload   NextStepKind = "employeeUpload"
	NextStepWaitingForReview NextStepKind = "waitingForReview"
	NextStepDone             NextStepKind = "done"
	NextStepUnknown          NextStepKind = "unknown"
)

// NextStep is the single next required action for a profile.
type NextStep struct {
	Kind         NextStepKind `json:"kind"`
	DocumentType DocumentType `json:"documentType,omitempty"`
	Label        string       `json:"label"`
}
