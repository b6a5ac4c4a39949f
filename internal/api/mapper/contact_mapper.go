package mapper

import (
	"github.com/myasir/portfolio-api/internal/api/dto/v1/contact"
	"github.com/myasir/portfolio-api/internal/models"
)

// ContactRequestToSubmission maps a validated ContactRequest DTO to a ContactSubmission
func ContactRequestToSubmission(req *contact.ContactRequest) models.ContactSubmission {
	return models.ContactSubmission{
		Name:    contact.Value(req.Name),
		Email:   contact.Value(req.Email),
		Subject: contact.Value(req.Subject),
		Message: contact.Value(req.Message),
	}
}

// SubmissionToContactRequest builds a ContactRequest DTO from plain values,
// so non-HTTP callers can run the same validation
func SubmissionToContactRequest(s models.ContactSubmission) *contact.ContactRequest {
	return &contact.ContactRequest{
		Name:    &s.Name,
		Email:   &s.Email,
		Subject: &s.Subject,
		Message: &s.Message,
	}
}
