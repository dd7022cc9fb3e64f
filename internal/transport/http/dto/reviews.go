package dto

import (
	"time"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

// CreateReviewRequest: any "email" key in the body is ignored; the author is the caller.
type CreateReviewRequest struct {
	ScholarshipID string `json:"scholarshipId" validate:"required,objectid"`
	ReviewerName  string `json:"reviewerName" validate:"max=120"`
	ReviewerImage string `json:"reviewerImage" validate:"omitempty,max=2048"`
	Rating        int    `json:"rating" validate:"gte=1,lte=5"`
	Comment       string `json:"comment" validate:"max=2000"`
}

type ReviewResponse struct {
	ID            string    `json:"_id"`
	Email         string    `json:"email"`
	ReviewerName  string    `json:"reviewerName,omitempty"`
	ReviewerImage string    `json:"reviewerImage,omitempty"`
	ScholarshipID string    `json:"scholarshipId"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"createdAt"`
}

func Review(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:            r.ID,
		Email:         r.Email,
		ReviewerName:  r.ReviewerName,
		ReviewerImage: r.ReviewerImage,
		ScholarshipID: r.ScholarshipID,
		Rating:        r.Rating,
		Comment:       r.Comment,
		CreatedAt:     r.CreatedAt,
	}
}

func Reviews(items []*domain.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(items))
	for _, r := range items {
		out = append(out, Review(r))
	}
	return out
}
