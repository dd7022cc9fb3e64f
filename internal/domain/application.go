package domain

import (
	"strings"
	"time"
)

type Application struct {
	ID              string
	UserEmail       string
	UserName        string
	ScholarshipID   string
	ScholarshipName string
	UniversityName  string
	ApplicationFees float64
	ApplicationDate time.Time
	PaymentStatus   PaymentStatus
	TransactionID   string
}

type ApplicationInput struct {
	UserName        string
	ScholarshipID   string
	ScholarshipName string
	UniversityName  string
	ApplicationFees float64
}

// NewApplication forces applicationDate=now and paymentStatus=unpaid whatever the client sent.
func NewApplication(userEmail string, in ApplicationInput, now time.Time) (*Application, error) {
	userEmail = NormalizeEmail(userEmail)
	if userEmail == "" {
		return nil, ErrMissingField("userEmail")
	}
	sid := strings.TrimSpace(in.ScholarshipID)
	if !IsValidID(sid) {
		return nil, ErrInvalidID("scholarshipId")
	}
	if in.ApplicationFees < 0 {
		return nil, ErrInvalidField("applicationFees", "must be >= 0")
	}
	return &Application{
		ID:              NewID(),
		UserEmail:       userEmail,
		UserName:        strings.TrimSpace(in.UserName),
		ScholarshipID:   sid,
		ScholarshipName: strings.TrimSpace(in.ScholarshipName),
		UniversityName:  strings.TrimSpace(in.UniversityName),
		ApplicationFees: in.ApplicationFees,
		ApplicationDate: now.UTC(),
		PaymentStatus:   PaymentUnpaid,
	}, nil
}

func (a *Application) CanDelete(actorEmail string, actorRole Role) bool {
	if actorRole.IsAdmin() {
		return true
	}
	actorEmail = NormalizeEmail(actorEmail)
	return actorEmail != "" && actorEmail == a.UserEmail
}
