package models

import "time"

// User represents an application user record. Only the name field carries a
// validation contract (required, trimmed); the remaining attributes are
// stored as supplied by the caller.
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email,omitempty" json:"email,omitempty"`
	Role         string    `bson:"role,omitempty" json:"role,omitempty"`
	Organization string    `bson:"organization,omitempty" json:"organization,omitempty"`
	AvatarKey    string    `bson:"avatarKey,omitempty" json:"avatarKey,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
