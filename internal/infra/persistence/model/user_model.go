// Package model holds the Firestore document shapes. Field names follow the
// camelCase keys already present in the collections.
package model

import "time"

// UserModel mirrors a document in the 'users' collection. The document id is the uid.
type UserModel struct {
	Email       string     `firestore:"email"`
	DisplayName string     `firestore:"displayName,omitempty"`
	Role        string     `firestore:"role"`
	Phone       string     `firestore:"phone,omitempty"`
	Address     string     `firestore:"address,omitempty"`
	City        string     `firestore:"city,omitempty"`
	ProfilePic  string     `firestore:"profilePic,omitempty"`
	CreatedAt   time.Time  `firestore:"createdAt"`
	UpdatedAt   *time.Time `firestore:"updatedAt,omitempty"`
}
