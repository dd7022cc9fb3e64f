package dto

import (
	"strings"
	"time"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

// ScholarshipRequest is shared by create and partial update; absent fields stay nil.
type ScholarshipRequest struct {
	UniversityName      *string  `json:"universityName" validate:"omitempty,max=200"`
	ScholarshipName     *string  `json:"scholarshipName" validate:"omitempty,max=200"`
	Degree              *string  `json:"degree" validate:"omitempty,max=80"`
	UniversityCountry   *string  `json:"universityCountry" validate:"omitempty,max=80"`
	UniversityCity      *string  `json:"universityCity" validate:"omitempty,max=80"`
	SubjectCategory     *string  `json:"subjectCategory" validate:"omitempty,max=80"`
	ScholarshipCategory *string  `json:"scholarshipCategory" validate:"omitempty,max=80"`
	TuitionFees         *float64 `json:"tuitionFees" validate:"omitempty,gte=0"`
	ApplicationFees     *float64 `json:"applicationFees" validate:"omitempty,gte=0"`
	ServiceCharge       *float64 `json:"serviceCharge" validate:"omitempty,gte=0"`
	// Deadline accepts RFC3339 or YYYY-MM-DD.
	Deadline *string `json:"deadline"`
}

func (r ScholarshipRequest) Fields() (domain.ScholarshipFields, error) {
	f := domain.ScholarshipFields{
		UniversityName:      r.UniversityName,
		ScholarshipName:     r.ScholarshipName,
		Degree:              r.Degree,
		UniversityCountry:   r.UniversityCountry,
		UniversityCity:      r.UniversityCity,
		SubjectCategory:     r.SubjectCategory,
		ScholarshipCategory: r.ScholarshipCategory,
		TuitionFees:         r.TuitionFees,
		ApplicationFees:     r.ApplicationFees,
		ServiceCharge:       r.ServiceCharge,
	}
	if r.Deadline != nil && strings.TrimSpace(*r.Deadline) != "" {
		d, err := parseDate(*r.Deadline)
		if err != nil {
			return domain.ScholarshipFields{}, domain.ErrInvalidField("deadline", "must be RFC3339 or YYYY-MM-DD")
		}
		f.Deadline = &d
	}
	return f, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.DateOnly, s)
}

type ScholarshipResponse struct {
	ID                  string     `json:"_id"`
	UniversityName      string     `json:"universityName"`
	ScholarshipName     string     `json:"scholarshipName"`
	Degree              string     `json:"degree"`
	UniversityCountry   string     `json:"universityCountry,omitempty"`
	UniversityCity      string     `json:"universityCity,omitempty"`
	SubjectCategory     string     `json:"subjectCategory,omitempty"`
	ScholarshipCategory string     `json:"scholarshipCategory,omitempty"`
	TuitionFees         float64    `json:"tuitionFees"`
	ApplicationFees     float64    `json:"applicationFees"`
	ServiceCharge       float64    `json:"serviceCharge"`
	Deadline            *time.Time `json:"deadline,omitempty"`
	PaymentStatus       string     `json:"paymentStatus"`
	PayAt               *time.Time `json:"payAt,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	CreatedBy           string     `json:"createdBy"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

func Scholarship(s *domain.Scholarship) ScholarshipResponse {
	return ScholarshipResponse{
		ID:                  s.ID,
		UniversityName:      s.UniversityName,
		ScholarshipName:     s.ScholarshipName,
		Degree:              s.Degree,
		UniversityCountry:   s.UniversityCountry,
		UniversityCity:      s.UniversityCity,
		SubjectCategory:     s.SubjectCategory,
		ScholarshipCategory: s.ScholarshipCategory,
		TuitionFees:         s.TuitionFees,
		ApplicationFees:     s.ApplicationFees,
		ServiceCharge:       s.ServiceCharge,
		Deadline:            s.Deadline,
		PaymentStatus:       string(s.PaymentStatus),
		PayAt:               s.PayAt,
		CreatedAt:           s.CreatedAt,
		CreatedBy:           s.CreatedBy,
		UpdatedAt:           s.UpdatedAt,
	}
}

func Scholarships(items []*domain.Scholarship) []ScholarshipResponse {
	out := make([]ScholarshipResponse, 0, len(items))
	for _, s := range items {
		out = append(out, Scholarship(s))
	}
	return out
}
