package domain

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsValidID reports whether id is a 24-hex-char ObjectId.
func IsValidID(id string) bool {
	return primitive.IsValidObjectID(strings.TrimSpace(id))
}

// NewID returns a fresh ObjectId in hex form.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// NormalizeEmail lowercases and trims an email so it can be used as a lookup key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
