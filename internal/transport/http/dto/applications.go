package dto

import (
	"time"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

// CreateApplicationRequest: userEmail, applicationDate and paymentStatus are server-assigned.
type CreateApplicationRequest struct {
	ScholarshipID   string  `json:"scholarshipId" validate:"required,objectid"`
	UserName        string  `json:"userName" validate:"max=120"`
	ScholarshipName string  `json:"scholarshipName" validate:"max=200"`
	UniversityName  string  `json:"universityName" validate:"max=200"`
	ApplicationFees float64 `json:"applicationFees" validate:"gte=0"`
}

func (r CreateApplicationRequest) Input() domain.ApplicationInput {
	return domain.ApplicationInput{
		UserName:        r.UserName,
		ScholarshipID:   r.ScholarshipID,
		ScholarshipName: r.ScholarshipName,
		UniversityName:  r.UniversityName,
		ApplicationFees: r.ApplicationFees,
	}
}

type ApplicationResponse struct {
	ID              string    `json:"_id"`
	UserEmail       string    `json:"userEmail"`
	UserName        string    `json:"userName,omitempty"`
	ScholarshipID   string    `json:"scholarshipId"`
	ScholarshipName string    `json:"scholarshipName,omitempty"`
	UniversityName  string    `json:"universityName,omitempty"`
	ApplicationFees float64   `json:"applicationFees"`
	ApplicationDate time.Time `json:"applicationDate"`
	PaymentStatus   string    `json:"paymentStatus"`
	TransactionID   string    `json:"transactionId,omitempty"`
}

func Application(a *domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:              a.ID,
		UserEmail:       a.UserEmail,
		UserName:        a.UserName,
		ScholarshipID:   a.ScholarshipID,
		ScholarshipName: a.ScholarshipName,
		UniversityName:  a.UniversityName,
		ApplicationFees: a.ApplicationFees,
		ApplicationDate: a.ApplicationDate,
		PaymentStatus:   string(a.PaymentStatus),
		TransactionID:   a.TransactionID,
	}
}

func Applications(items []*domain.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(items))
	for _, a := range items {
		out = append(out, Application(a))
	}
	return out
}

type CheckoutRequest struct {
	ScholarshipID string `json:"scholarshipId" validate:"required,objectid"`
}
