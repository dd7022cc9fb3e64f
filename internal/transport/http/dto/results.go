package dto

import "github.com/elevatescholar/scholarship-api/internal/domain"

// Store-shaped results returned as the whole response body.

type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// ExistsResult is the sentinel for idempotent creates that found an existing record.
type ExistsResult struct {
	Message string `json:"message"`
	Exists  bool   `json:"exists"`
}

func Inserted(r domain.InsertResult) InsertResult {
	return InsertResult{Acknowledged: true, InsertedID: r.InsertedID}
}

func Updated(r domain.UpdateResult) UpdateResult {
	return UpdateResult{Acknowledged: true, MatchedCount: r.MatchedCount, ModifiedCount: r.ModifiedCount}
}

func Deleted(r domain.DeleteResult) DeleteResult {
	return DeleteResult{Acknowledged: true, DeletedCount: r.DeletedCount}
}

func Exists(what string) ExistsResult {
	return ExistsResult{Message: what + " already exists", Exists: true}
}

type RoleResponse struct {
	Role string `json:"role"`
}

type CheckoutResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"sessionId"`
}

type PaymentConfirmResponse struct {
	Success            bool   `json:"success"`
	PaymentStatus      string `json:"paymentStatus"`
	ScholarshipID      string `json:"scholarshipId,omitempty"`
	TransactionID      string `json:"transactionId,omitempty"`
	MatchedCount       int64  `json:"matchedCount"`
	ModifiedCount      int64  `json:"modifiedCount"`
	ApplicationUpdated bool   `json:"applicationUpdated"`
}
