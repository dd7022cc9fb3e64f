package domain

import (
	"strings"
	"time"
)

type Review struct {
	ID            string
	Email         string
	ReviewerName  string
	ReviewerImage string
	ScholarshipID string
	Rating        int
	Comment       string
	CreatedAt     time.Time
}

// NewReview builds a review authored by authorEmail. Callers pass the verified principal,
// never an email taken from the request body.
func NewReview(authorEmail, reviewerName, reviewerImage, scholarshipID string, rating int, comment string, now time.Time) (*Review, error) {
	authorEmail = NormalizeEmail(authorEmail)
	if authorEmail == "" {
		return nil, ErrMissingField("email")
	}
	scholarshipID = strings.TrimSpace(scholarshipID)
	if !IsValidID(scholarshipID) {
		return nil, ErrInvalidID("scholarshipId")
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidField("rating", "must be between 1 and 5")
	}
	comment = strings.TrimSpace(comment)
	if len(comment) > 2000 {
		return nil, ErrInvalidField("comment", "must be <= 2000 chars")
	}
	return &Review{
		ID:            NewID(),
		Email:         authorEmail,
		ReviewerName:  strings.TrimSpace(reviewerName),
		ReviewerImage: strings.TrimSpace(reviewerImage),
		ScholarshipID: scholarshipID,
		Rating:        rating,
		Comment:       comment,
		CreatedAt:     now.UTC(),
	}, nil
}

// CanDelete: the author or any admin.
func (r *Review) CanDelete(actorEmail string, actorRole Role) bool {
	if actorRole.IsAdmin() {
		return true
	}
	actorEmail = NormalizeEmail(actorEmail)
	return actorEmail != "" && actorEmail == r.Email
}

type ReviewFilter struct {
	Email         string
	ScholarshipID string
}
