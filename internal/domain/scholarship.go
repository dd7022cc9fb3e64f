package domain

import (
	"strings"
	"time"
)

// PageSize caps every list endpoint.
const PageSize = 10

type Scholarship struct {
	ID                  string
	UniversityName      string
	ScholarshipName     string
	Degree              string
	UniversityCountry   string
	UniversityCity      string
	SubjectCategory     string
	ScholarshipCategory string
	TuitionFees         float64
	ApplicationFees     float64
	ServiceCharge       float64
	Deadline            *time.Time

	PaymentStatus PaymentStatus
	PayAt         *time.Time

	CreatedAt time.Time
	CreatedBy string
	UpdatedAt time.Time
}

// ScholarshipFields holds the admin-editable fields. Nil pointers are left untouched on update.
type ScholarshipFields struct {
	UniversityName      *string
	ScholarshipName     *string
	Degree              *string
	UniversityCountry   *string
	UniversityCity      *string
	SubjectCategory     *string
	ScholarshipCategory *string
	TuitionFees         *float64
	ApplicationFees     *float64
	ServiceCharge       *float64
	Deadline            *time.Time
}

func NewScholarship(f ScholarshipFields, createdBy string, now time.Time) (*Scholarship, error) {
	createdBy = NormalizeEmail(createdBy)
	if createdBy == "" {
		return nil, ErrMissingField("createdBy")
	}
	s := &Scholarship{
		ID:            NewID(),
		PaymentStatus: PaymentUnpaid,
		CreatedAt:     now.UTC(),
		CreatedBy:     createdBy,
		UpdatedAt:     now.UTC(),
	}
	if f.UniversityName == nil || strings.TrimSpace(*f.UniversityName) == "" {
		return nil, ErrMissingField("universityName")
	}
	if f.ScholarshipName == nil || strings.TrimSpace(*f.ScholarshipName) == "" {
		return nil, ErrMissingField("scholarshipName")
	}
	if f.Degree == nil || strings.TrimSpace(*f.Degree) == "" {
		return nil, ErrMissingField("degree")
	}
	if err := s.merge(f); err != nil {
		return nil, err
	}
	return s, nil
}

// ApplyUpdate merges the non-nil fields and stamps UpdatedAt.
func (s *Scholarship) ApplyUpdate(f ScholarshipFields, now time.Time) error {
	if err := s.merge(f); err != nil {
		return err
	}
	s.UpdatedAt = now.UTC()
	return nil
}

func (s *Scholarship) merge(f ScholarshipFields) error {
	text := []struct {
		name string
		src  *string
		dst  *string
		max  int
	}{
		{"universityName", f.UniversityName, &s.UniversityName, 200},
		{"scholarshipName", f.ScholarshipName, &s.ScholarshipName, 200},
		{"degree", f.Degree, &s.Degree, 80},
		{"universityCountry", f.UniversityCountry, &s.UniversityCountry, 80},
		{"universityCity", f.UniversityCity, &s.UniversityCity, 80},
		{"subjectCategory", f.SubjectCategory, &s.SubjectCategory, 80},
		{"scholarshipCategory", f.ScholarshipCategory, &s.ScholarshipCategory, 80},
	}
	for _, t := range text {
		if t.src == nil {
			continue
		}
		v := strings.TrimSpace(*t.src)
		if v == "" || len(v) > t.max {
			return ErrInvalidField(t.name, "must be non-empty and not too long")
		}
		*t.dst = v
	}

	money := []struct {
		name string
		src  *float64
		dst  *float64
	}{
		{"tuitionFees", f.TuitionFees, &s.TuitionFees},
		{"applicationFees", f.ApplicationFees, &s.ApplicationFees},
		{"serviceCharge", f.ServiceCharge, &s.ServiceCharge},
	}
	for _, m := range money {
		if m.src == nil {
			continue
		}
		if *m.src < 0 {
			return ErrInvalidField(m.name, "must be >= 0")
		}
		*m.dst = *m.src
	}

	if f.Deadline != nil {
		d := f.Deadline.UTC()
		s.Deadline = &d
	}
	return nil
}

// MarkPaid records a confirmed application-fee payment. Calling it again overwrites PayAt.
func (s *Scholarship) MarkPaid(now time.Time) {
	t := now.UTC()
	s.PaymentStatus = PaymentPaid
	s.PayAt = &t
}
