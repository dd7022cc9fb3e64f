package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

type scholarshipDoc struct {
	ID                  primitive.ObjectID `bson:"_id"`
	UniversityName      string             `bson:"universityName"`
	ScholarshipName     string             `bson:"scholarshipName"`
	Degree              string             `bson:"degree"`
	UniversityCountry   string             `bson:"universityCountry,omitempty"`
	UniversityCity      string             `bson:"universityCity,omitempty"`
	SubjectCategory     string             `bson:"subjectCategory,omitempty"`
	ScholarshipCategory string             `bson:"scholarshipCategory,omitempty"`
	TuitionFees         float64            `bson:"tuitionFees"`
	ApplicationFees     float64            `bson:"applicationFees"`
	ServiceCharge       float64            `bson:"serviceCharge"`
	Deadline            *time.Time         `bson:"deadline,omitempty"`
	PaymentStatus       string             `bson:"paymentStatus"`
	PayAt               *time.Time         `bson:"payAt,omitempty"`
	CreatedAt           time.Time          `bson:"createdAt"`
	CreatedBy           string             `bson:"createdBy"`
	UpdatedAt           time.Time          `bson:"updatedAt"`
}

type userDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Email       string             `bson:"email"`
	DisplayName string             `bson:"displayName,omitempty"`
	PhotoURL    string             `bson:"photoURL,omitempty"`
	Role        string             `bson:"role"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

type reviewDoc struct {
	ID            primitive.ObjectID `bson:"_id"`
	Email         string             `bson:"email"`
	ReviewerName  string             `bson:"reviewerName,omitempty"`
	ReviewerImage string             `bson:"reviewerImage,omitempty"`
	ScholarshipID string             `bson:"scholarshipId"`
	Rating        int                `bson:"rating"`
	Comment       string             `bson:"comment"`
	CreatedAt     time.Time          `bson:"createdAt"`
}

type applicationDoc struct {
	ID              primitive.ObjectID `bson:"_id"`
	UserEmail       string             `bson:"userEmail"`
	UserName        string             `bson:"userName,omitempty"`
	ScholarshipID   string             `bson:"scholarshipId"`
	ScholarshipName string             `bson:"scholarshipName,omitempty"`
	UniversityName  string             `bson:"universityName,omitempty"`
	ApplicationFees float64            `bson:"applicationFees"`
	ApplicationDate time.Time          `bson:"applicationDate"`
	PaymentStatus   string             `bson:"paymentStatus"`
	TransactionID   string             `bson:"transactionId,omitempty"`
}

func objectID(hex string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID("id")
	}
	return oid, nil
}

func toScholarshipDoc(s *domain.Scholarship) (scholarshipDoc, error) {
	oid, err := objectID(s.ID)
	if err != nil {
		return scholarshipDoc{}, err
	}
	return scholarshipDoc{
		ID:                  oid,
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
	}, nil
}

func (d scholarshipDoc) toDomain() *domain.Scholarship {
	status := domain.PaymentStatus(d.PaymentStatus)
	if !status.Valid() {
		status = domain.PaymentUnpaid
	}
	return &domain.Scholarship{
		ID:                  d.ID.Hex(),
		UniversityName:      d.UniversityName,
		ScholarshipName:     d.ScholarshipName,
		Degree:              d.Degree,
		UniversityCountry:   d.UniversityCountry,
		UniversityCity:      d.UniversityCity,
		SubjectCategory:     d.SubjectCategory,
		ScholarshipCategory: d.ScholarshipCategory,
		TuitionFees:         d.TuitionFees,
		ApplicationFees:     d.ApplicationFees,
		ServiceCharge:       d.ServiceCharge,
		Deadline:            utcPtr(d.Deadline),
		PaymentStatus:       status,
		PayAt:               utcPtr(d.PayAt),
		CreatedAt:           d.CreatedAt.UTC(),
		CreatedBy:           d.CreatedBy,
		UpdatedAt:           d.UpdatedAt.UTC(),
	}
}

func toUserDoc(u *domain.User) userDoc {
	return userDoc{
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
		Role:        u.Role.String(),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// toDomain keeps unknown stored roles as-is; role lookups fall back to the default.
func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		Email:       d.Email,
		DisplayName: d.DisplayName,
		PhotoURL:    d.PhotoURL,
		Role:        domain.Role(d.Role),
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

func toReviewDoc(r *domain.Review) (reviewDoc, error) {
	oid, err := objectID(r.ID)
	if err != nil {
		return reviewDoc{}, err
	}
	return reviewDoc{
		ID:            oid,
		Email:         r.Email,
		ReviewerName:  r.ReviewerName,
		ReviewerImage: r.ReviewerImage,
		ScholarshipID: r.ScholarshipID,
		Rating:        r.Rating,
		Comment:       r.Comment,
		CreatedAt:     r.CreatedAt,
	}, nil
}

func (d reviewDoc) toDomain() *domain.Review {
	return &domain.Review{
		ID:            d.ID.Hex(),
		Email:         d.Email,
		ReviewerName:  d.ReviewerName,
		ReviewerImage: d.ReviewerImage,
		ScholarshipID: d.ScholarshipID,
		Rating:        d.Rating,
		Comment:       d.Comment,
		CreatedAt:     d.CreatedAt.UTC(),
	}
}

func toApplicationDoc(a *domain.Application) (applicationDoc, error) {
	oid, err := objectID(a.ID)
	if err != nil {
		return applicationDoc{}, err
	}
	return applicationDoc{
		ID:              oid,
		UserEmail:       a.UserEmail,
		UserName:        a.UserName,
		ScholarshipID:   a.ScholarshipID,
		ScholarshipName: a.ScholarshipName,
		UniversityName:  a.UniversityName,
		ApplicationFees: a.ApplicationFees,
		ApplicationDate: a.ApplicationDate,
		PaymentStatus:   string(a.PaymentStatus),
		TransactionID:   a.TransactionID,
	}, nil
}

func (d applicationDoc) toDomain() *domain.Application {
	status := domain.PaymentStatus(d.PaymentStatus)
	if !status.Valid() {
		status = domain.PaymentUnpaid
	}
	return &domain.Application{
		ID:              d.ID.Hex(),
		UserEmail:       d.UserEmail,
		UserName:        d.UserName,
		ScholarshipID:   d.ScholarshipID,
		ScholarshipName: d.ScholarshipName,
		UniversityName:  d.UniversityName,
		ApplicationFees: d.ApplicationFees,
		ApplicationDate: d.ApplicationDate.UTC(),
		PaymentStatus:   status,
		TransactionID:   d.TransactionID,
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
