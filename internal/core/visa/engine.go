// Package visa holds the pure decision logic for the work-authorization document
// sequence. Every function is a deterministic computation over a VisaProfile's
// stored facts; nothing here touches storage, logging, or request state.
package visa

import (
	"fmt"
	"strings"
	"time"

	"github.com/visadesk/visa_desk_app/internal/apperrors"
	"github.com/visadesk/visa_desk_app/internal/core/domain"
)

// EffectiveStatus derives the review status of one document from its stored facts
// and its position in the sequence. A slot with no file is Locked until its
// predecessor is approved; a slot with a file reflects the stored decision.
func EffectiveStatus(p domain.VisaProfile, t domain.DocumentType) domain.ReviewStatus {
	rec := p.Record(t)
	if rec.HasFile() {
		switch rec.Decision {
		case domain.DecisionApproved:
			return domain.StatusApproved
		case domain.DecisionRejected:
			return domain.StatusRejected
		default:
			return domain.StatusPending
		}
	}

	pred, hasPred := t.Predecessor()
	if !hasPred {
		return domain.StatusNotUploaded
	}
	if EffectiveStatus(p, pred) == domain.StatusApproved {
		return domain.StatusNotUploaded
	}
	return domain.StatusLocked
}

// Statuses derives the status of every required document in sequence order.
func Statuses(p domain.VisaProfile) map[domain.DocumentType]domain.ReviewStatus {
	out := make(map[domain.DocumentType]domain.ReviewStatus, len(p.VisaClass.RequiredDocuments()))
	for _, t := range p.VisaClass.RequiredDocuments() {
		out[t] = EffectiveStatus(p, t)
	}
	return out
}

// OverallStatus projects the whole sequence to a single status. Tie-break order:
// a rejection on any uploaded document dominates, anything still awaiting action
// counts as pending, and only a fully clear board is approved. A profile with no
// uploads at all has never submitted.
func OverallStatus(p domain.VisaProfile) domain.OverallStatus {
	anyUploaded := false
	anyRejected := false
	anyAwaiting := false
	for _, t := range p.VisaClass.RequiredDocuments() {
		rec := p.Record(t)
		if !rec.HasFile() {
			continue
		}
		anyUploaded = true
		switch EffectiveStatus(p, t) {
		case domain.StatusRejected:
			anyRejected = true
		case domain.StatusApproved:
			// clear
		default:
			anyAwaiting = true
		}
	}

	switch {
	case !anyUploaded:
		return domain.OverallNeverSubmitted
	case anyRejected:
		return domain.OverallRejected
	case anyAwaiting:
		return domain.OverallPending
	default:
		return domain.OverallApproved
	}
}

// AllDocumentsApproved reports whether every required document has a file on
// record and an approved decision. It is the completion gate, distinct from
// OverallStatus: an empty required sequence is trivially complete.
func AllDocumentsApproved(p domain.VisaProfile) bool {
	for _, t := range p.VisaClass.RequiredDocuments() {
		rec := p.Record(t)
		if !rec.HasFile() || rec.Decision != domain.DecisionApproved {
			return false
		}
	}
	return true
}

// NextStep computes the single next required action on a profile. First match wins:
//  1. a rejected upload needs the employee to re-upload;
//  2. any upload still awaiting a decision blocks everything;
//  3. otherwise the first un-filed slot in order is the employee's next upload,
//     redirected to its predecessor if that predecessor is not yet approved;
//  4. a fully approved board is done.
func NextStep(p domain.VisaProfile) domain.NextStep {
	required := p.VisaClass.RequiredDocuments()
	if len(required) == 0 {
		return domain.NextStep{Kind: domain.NextStepDone, Label: "No visa documents required"}
	}

	for _, t := range required {
		rec := p.Record(t)
		if rec.HasFile() && rec.Decision == domain.DecisionRejected {
			return domain.NextStep{
				Kind:         domain.NextStepEmployeeUpload,
				DocumentType: t,
				Label:        fmt.Sprintf("Re-upload %s", t.DisplayName()),
			}
		}
	}

	for _, t := range required {
		rec := p.Record(t)
		if rec.HasFile() && rec.Decision == domain.DecisionNone {
			return domain.NextStep{
				Kind:         domain.NextStepWaitingForReview,
				DocumentType: t,
				Label:        fmt.Sprintf("Waiting for HR to review %s", t.DisplayName()),
			}
		}
	}

	for _, t := range required {
		if p.Record(t).HasFile() {
			continue
		}
		pred, hasPred := t.Predecessor()
		if !hasPred || p.Record(pred).Decision == domain.DecisionApproved {
			return domain.NextStep{
				Kind:         domain.NextStepEmployeeUpload,
				DocumentType: t,
				Label:        fmt.Sprintf("Upload %s", t.DisplayName()),
			}
		}
		return domain.NextStep{
			Kind:         domain.NextStepEmployeeUpload,
			DocumentType: pred,
			Label:        fmt.Sprintf("Complete previous step: %s", pred.DisplayName()),
		}
	}

	if AllDocumentsApproved(p) {
		return domain.NextStep{Kind: domain.NextStepDone, Label: "All visa documents approved"}
	}
	return domain.NextStep{Kind: domain.NextStepUnknown, Label: "Unknown"}
}

// ApplyUpload records a new file in the given slot and returns the updated profile.
// Uploading into a locked slot, or into a type the profile does not require, fails
// with ErrInvalidTransition. A re-upload into an approved or rejected slot always
// restarts review: the prior decision, feedback and review timestamp are discarded.
func ApplyUpload(p domain.VisaProfile, t domain.DocumentType, fileID string) (domain.VisaProfile, error) {
	if fileID == "" {
		return p, fmt.Errorf("empty file reference: %w", apperrors.ErrValidation)
	}
	if !p.Requires(t) {
		return p, fmt.Errorf("document %s is not part of the %s sequence: %w", t, p.VisaClass, apperrors.ErrInvalidTransition)
	}
	if EffectiveStatus(p, t) == domain.StatusLocked {
		return p, fmt.Errorf("document %s is locked until its predecessor is approved: %w", t, apperrors.ErrInvalidTransition)
	}

	updated := cloneProfile(p)
	updated.Documents[t] = domain.DocumentRecord{FileID: fileID}
	return updated, nil
}

// ApplyReview records an HR decision on the given slot and returns the updated
// profile. The slot must hold a file; a rejection must carry non-empty feedback.
// Approval clears feedback. The successor's unlock is not written anywhere — it
// falls out of EffectiveStatus on the next read.
func ApplyReview(p domain.VisaProfile, t domain.DocumentType, decision domain.ReviewDecision, feedback, reviewerID string, now time.Time) (domain.VisaProfile, error) {
	if !p.Requires(t) {
		return p, fmt.Errorf("document %s is not part of the %s sequence: %w", t, p.VisaClass, apperrors.ErrInvalidTransition)
	}
	rec := p.Record(t)
	if !rec.HasFile() {
		return p, fmt.Errorf("no file uploaded for document %s: %w", t, apperrors.ErrNotFound)
	}

	switch decision {
	case domain.DecisionApproved:
		feedback = ""
	case domain.DecisionRejected:
		if strings.TrimSpace(feedback) == "" {
			return p, fmt.Errorf("feedback is required when rejecting a document: %w", apperrors.ErrValidation)
		}
	default:
		return p, fmt.Errorf("unknown review decision %q: %w", decision, apperrors.ErrValidation)
	}

	updated := cloneProfile(p)
	reviewedAt := now
	updated.Documents[t] = domain.DocumentRecord{
		FileID:     rec.FileID,
		Decision:   decision,
		Feedback:   feedback,
		ReviewedAt: &reviewedAt,
		ReviewedBy: reviewerID,
	}
	return updated, nil
}

func cloneProfile(p domain.VisaProfile) domain.VisaProfile {
	docs := make(map[domain.DocumentType]domain.DocumentRecord, len(p.Documents))
	for k, v := range p.Documents {
		docs[k] = v
	}
	p.Documents = docs
	return p
}
