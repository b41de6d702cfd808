package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents an account entity used for authentication and profile
// management. It is the sole persistent entity of the service.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the store-assigned unique identifier of the account.
	// Immutable after creation; serialized as a hex string.
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	// Username is the unique display handle, 3-50 characters, trimmed.
	// Stored case-sensitive.
	Username string `json:"username" bson:"username"`

	// Email is the unique contact address, lowercased and trimmed on write.
	Email string `json:"email" bson:"email"`

	// PasswordHash is the bcrypt hash of the account credential.
	// Never serialized in any outbound representation. Empty for accounts
	// created via external-identity signup.
	PasswordHash string `json:"-" bson:"password_hash,omitempty"`

	// ImageURL is the durable URL of the current avatar, nil when no
	// avatar is set. Serialized as "image" to match the public contract.
	ImageURL *string `json:"image" bson:"image_url,omitempty"`

	// ImageRef is the object-storage key required to delete the current
	// avatar. Set and cleared together with ImageURL; never exposed.
	ImageRef string `json:"-" bson:"image_ref,omitempty"`
}

// HasImage reports whether the account currently has an avatar set.
func (u User) HasImage() bool {
	return u.ImageURL != nil && u.ImageRef != ""
}

// CollectionName returns the name of the document collection
// associated with the User model.
func (u User) CollectionName() string {
	return "accounts"
}
